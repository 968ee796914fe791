package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rntpans0531/healthcheckapp/internal/models"
)

type stubRecentReader struct {
	history []models.Report
	err     error
}

func (stub *stubRecentReader) FetchRecent(userID uint, startDay time.Time) ([]models.Report, error) {
	return stub.history, stub.err
}

type recordingNotifier struct {
	titles []string
	err    error
}

func (notifier *recordingNotifier) Notify(ctx context.Context, title string, body string) error {
	notifier.titles = append(notifier.titles, title)
	return notifier.err
}

var alertToday = time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

func historyWithPain(region models.BodyRegion, daysAgo ...int) []models.Report {
	history := make([]models.Report, 0, len(daysAgo))
	for _, ago := range daysAgo {
		history = append(history, models.Report{
			Date: alertToday.AddDate(0, 0, -ago),
			PainRecords: []models.PainRecord{
				{Region: region, Side: models.SideCenter, PainLevel: 4},
			},
		})
	}
	return history
}

func TestProcessSubmissionHighPainThreshold(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  bool
	}{
		{"below threshold", 6, false},
		{"at threshold", 7, true},
		{"above threshold", 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &recordingNotifier{}
			service := NewAlertService(&stubRecentReader{}, notifier, time.UTC)

			records := []models.PainRecord{{Region: models.RegionKnee, Side: models.SideLeft, PainLevel: tt.level}}
			result := service.ProcessSubmission(context.Background(), 1, alertToday, records)

			if result.HighPain != tt.want {
				t.Fatalf("HighPain = %v, want %v", result.HighPain, tt.want)
			}
			wantNotifications := 0
			if tt.want {
				wantNotifications = 1
			}
			if len(notifier.titles) != wantNotifications {
				t.Fatalf("notifications = %v, want %d", notifier.titles, wantNotifications)
			}
		})
	}
}

func TestProcessSubmissionHighPainNotifiesOncePerSubmission(t *testing.T) {
	notifier := &recordingNotifier{}
	service := NewAlertService(&stubRecentReader{}, notifier, time.UTC)

	records := []models.PainRecord{
		{Region: models.RegionKnee, Side: models.SideLeft, PainLevel: 8},
		{Region: models.RegionShoulder, Side: models.SideRight, PainLevel: 9},
	}
	result := service.ProcessSubmission(context.Background(), 1, alertToday, records)

	if !result.HighPain {
		t.Fatalf("expected high-pain alert")
	}
	if len(notifier.titles) != 1 {
		t.Fatalf("multiple high-pain records must notify once, got %v", notifier.titles)
	}
}

func TestDetectChronicRegionQualifies(t *testing.T) {
	// Four historical reports spanning 28 days, all before today.
	reader := &stubRecentReader{history: historyWithPain(models.RegionBack, 28, 20, 10, 2)}
	notifier := &recordingNotifier{}
	service := NewAlertService(reader, notifier, time.UTC)

	records := []models.PainRecord{{Region: models.RegionBack, Side: models.SideCenter, PainLevel: 3}}
	result := service.ProcessSubmission(context.Background(), 1, alertToday, records)

	if result.ChronicRegion != models.RegionBack {
		t.Fatalf("ChronicRegion = %q, want back", result.ChronicRegion)
	}
	if len(notifier.titles) != 1 || notifier.titles[0] != "Chronic pain alert" {
		t.Fatalf("notifications = %v", notifier.titles)
	}
}

func TestDetectChronicRegionNeedsFourHistoricalReports(t *testing.T) {
	reader := &stubRecentReader{history: historyWithPain(models.RegionBack, 28, 14, 2)}
	service := NewAlertService(reader, &recordingNotifier{}, time.UTC)

	records := []models.PainRecord{{Region: models.RegionBack, Side: models.SideCenter, PainLevel: 3}}
	result := service.ProcessSubmission(context.Background(), 1, alertToday, records)

	if result.ChronicRegion != "" {
		t.Fatalf("three historical reports must not qualify, got %q", result.ChronicRegion)
	}
}

func TestDetectChronicRegionIgnoresTodaysOwnReport(t *testing.T) {
	// Three historical reports plus today's just-saved one: today must not
	// count toward the four.
	history := historyWithPain(models.RegionBack, 28, 14, 2, 0)
	reader := &stubRecentReader{history: history}
	service := NewAlertService(reader, &recordingNotifier{}, time.UTC)

	records := []models.PainRecord{{Region: models.RegionBack, Side: models.SideCenter, PainLevel: 3}}
	result := service.ProcessSubmission(context.Background(), 1, alertToday, records)

	if result.ChronicRegion != "" {
		t.Fatalf("today's report must be excluded from the lookback, got %q", result.ChronicRegion)
	}
}

func TestDetectChronicRegionNeedsMinimumSpan(t *testing.T) {
	tests := []struct {
		name    string
		daysAgo []int
		want    models.BodyRegion
	}{
		{"span of 24 days is too short", []int{24, 18, 10, 2}, ""},
		{"span of exactly 25 days qualifies", []int{25, 18, 10, 2}, models.RegionBack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &stubRecentReader{history: historyWithPain(models.RegionBack, tt.daysAgo...)}
			service := NewAlertService(reader, &recordingNotifier{}, time.UTC)

			records := []models.PainRecord{{Region: models.RegionBack, Side: models.SideCenter, PainLevel: 3}}
			result := service.ProcessSubmission(context.Background(), 1, alertToday, records)
			if result.ChronicRegion != tt.want {
				t.Fatalf("ChronicRegion = %q, want %q", result.ChronicRegion, tt.want)
			}
		})
	}
}

func TestDetectChronicRegionSpanSurvivesSpringForward(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	// The 2026-03-08 spring-forward transition sits inside the span; the
	// earliest qualifying report is exactly 25 calendar days before today.
	today := time.Date(2026, 3, 26, 0, 0, 0, 0, newYork)
	history := make([]models.Report, 0, 4)
	for _, day := range []int{1, 10, 18, 24} {
		history = append(history, models.Report{
			Date: time.Date(2026, 3, day, 0, 0, 0, 0, newYork),
			PainRecords: []models.PainRecord{
				{Region: models.RegionBack, Side: models.SideCenter, PainLevel: 4},
			},
		})
	}
	service := NewAlertService(&stubRecentReader{history: history}, &recordingNotifier{}, newYork)

	records := []models.PainRecord{{Region: models.RegionBack, Side: models.SideCenter, PainLevel: 3}}
	result := service.ProcessSubmission(context.Background(), 1, today, records)

	if result.ChronicRegion != models.RegionBack {
		t.Fatalf("ChronicRegion = %q, want back on the 25-day boundary", result.ChronicRegion)
	}
}

func TestDetectChronicRegionFirstRegionInWalkOrderWins(t *testing.T) {
	history := append(
		historyWithPain(models.RegionShoulder, 28, 20, 10, 2),
		historyWithPain(models.RegionKnee, 28, 20, 10, 2)...,
	)
	reader := &stubRecentReader{history: history}
	notifier := &recordingNotifier{}
	service := NewAlertService(reader, notifier, time.UTC)

	records := []models.PainRecord{
		{Region: models.RegionShoulder, Side: models.SideRight, PainLevel: 2},
		{Region: models.RegionKnee, Side: models.SideLeft, PainLevel: 2},
	}
	result := service.ProcessSubmission(context.Background(), 1, alertToday, records)

	if result.ChronicRegion != models.RegionShoulder {
		t.Fatalf("ChronicRegion = %q, want shoulder (walk order)", result.ChronicRegion)
	}
	if len(notifier.titles) != 1 {
		t.Fatalf("at most one chronic notification per submission, got %v", notifier.titles)
	}
}

func TestProcessSubmissionSwallowsLookbackFailure(t *testing.T) {
	reader := &stubRecentReader{err: errors.New("query failed")}
	service := NewAlertService(reader, &recordingNotifier{}, time.UTC)

	records := []models.PainRecord{{Region: models.RegionBack, Side: models.SideCenter, PainLevel: 8}}
	result := service.ProcessSubmission(context.Background(), 1, alertToday, records)

	if !result.HighPain {
		t.Fatalf("high-pain alert must still fire when the lookback fails")
	}
	if result.ChronicRegion != "" {
		t.Fatalf("lookback failure must yield no chronic alert")
	}
}

func TestProcessSubmissionSwallowsNotifierFailure(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("telegram unreachable")}
	service := NewAlertService(&stubRecentReader{}, notifier, time.UTC)

	records := []models.PainRecord{{Region: models.RegionBack, Side: models.SideCenter, PainLevel: 9}}
	result := service.ProcessSubmission(context.Background(), 1, alertToday, records)

	if !result.HighPain {
		t.Fatalf("delivery failure must not change the alert result")
	}
}
