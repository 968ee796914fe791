package services

import (
	"context"
	"testing"
)

func TestTelegramNotifierDisabledWithoutConfig(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	notifier := NewTelegramNotifierFromEnv()
	if err := notifier.Notify(context.Background(), "title", "body"); err != nil {
		t.Fatalf("disabled notifier must be a no-op, got %v", err)
	}
}

func TestTelegramNotifierRequiresBothTokenAndChat(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token-only")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	notifier := NewTelegramNotifierFromEnv()
	if notifier.enabled {
		t.Fatalf("a token without a chat id must leave the notifier disabled")
	}
}
