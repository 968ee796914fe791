package services

import (
	"context"
	"log"
	"time"

	"github.com/rntpans0531/healthcheckapp/internal/models"
)

const (
	chronicLookbackDays = 35
	chronicMinReports   = 4
	chronicMinSpanDays  = 25
)

// Notifier delivers a best-effort user notification. Callers on the save
// path discard the error by contract; delivery failure must never surface.
type Notifier interface {
	Notify(ctx context.Context, title string, body string) error
}

type RecentReportReader interface {
	FetchRecent(userID uint, startDay time.Time) ([]models.Report, error)
}

type AlertService struct {
	recent   RecentReportReader
	notifier Notifier
	location *time.Location
}

type AlertResult struct {
	HighPain      bool              `json:"highPain"`
	ChronicRegion models.BodyRegion `json:"chronicRegion,omitempty"`
}

func NewAlertService(recent RecentReportReader, notifier Notifier, location *time.Location) *AlertService {
	if location == nil {
		location = time.UTC
	}
	return &AlertService{
		recent:   recent,
		notifier: notifier,
		location: location,
	}
}

// ProcessSubmission runs the post-save analytics for a just-saved report:
// the immediate high-pain alert and the chronic-pain lookback. It never
// returns an error; history or delivery failures are logged and swallowed so
// the completed save is never blocked or rolled back by this step.
func (service *AlertService) ProcessSubmission(ctx context.Context, userID uint, day time.Time, records []models.PainRecord) AlertResult {
	result := AlertResult{}

	for _, record := range records {
		if record.PainLevel >= models.HighPainThreshold {
			result.HighPain = true
			service.notify(ctx, "Pain warning", "A high pain level was recorded today. Consider resting or consulting a specialist.")
			break
		}
	}

	region, found := service.detectChronicRegion(userID, day, records)
	if found {
		result.ChronicRegion = region
		service.notify(ctx, "Chronic pain alert",
			"Pain in the "+string(region)+" region has persisted for about a month. A clinic visit is recommended.")
	}

	return result
}

// detectChronicRegion scans a 35-day lookback window: a submitted region
// with pain qualifies when at least 4 earlier reports in the window recorded
// pain there and the span from the earliest of them to today covers 25 days
// or more. Only the first qualifying region in walk order is reported, so a
// submission fires at most one chronic notification.
func (service *AlertService) detectChronicRegion(userID uint, day time.Time, records []models.PainRecord) (models.BodyRegion, bool) {
	today := DateAtLocation(day, service.location)
	startDay := today.AddDate(0, 0, -chronicLookbackDays)

	history, err := service.recent.FetchRecent(userID, startDay)
	if err != nil {
		log.Printf("alerts: chronic lookback fetch failed for user %d: %v", userID, err)
		return "", false
	}

	for _, record := range records {
		if record.PainLevel <= 0 {
			continue
		}

		qualifying := make([]models.Report, 0, len(history))
		for _, report := range history {
			if !DateAtLocation(report.Date, service.location).Before(today) {
				continue
			}
			if reportHasPainForRegion(report, record.Region) {
				qualifying = append(qualifying, report)
			}
		}
		if len(qualifying) < chronicMinReports {
			continue
		}

		earliest := qualifying[0].Date
		for _, report := range qualifying[1:] {
			if report.Date.Before(earliest) {
				earliest = report.Date
			}
		}
		if DaysBetween(earliest, today, service.location) >= chronicMinSpanDays {
			return record.Region, true
		}
	}

	return "", false
}

func (service *AlertService) notify(ctx context.Context, title string, body string) {
	if service.notifier == nil {
		return
	}
	if err := service.notifier.Notify(ctx, title, body); err != nil {
		log.Printf("alerts: notify %q failed: %v", title, err)
	}
}

func reportHasPainForRegion(report models.Report, region models.BodyRegion) bool {
	for _, record := range report.PainRecords {
		if record.Region == region && record.PainLevel > 0 {
			return true
		}
	}
	return false
}
