package services

import (
	"math"

	"github.com/rntpans0531/healthcheckapp/internal/models"
)

const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"

	weeklyWindowReports  = 7
	monthlyWindowReports = 30

	// Perfect score shown for an empty window.
	maxHealthScore = 100
)

type StatsReportReader interface {
	ListByUser(userID uint) ([]models.Report, error)
}

type StatsService struct {
	reports StatsReportReader
}

func NewStatsService(reports StatsReportReader) *StatsService {
	return &StatsService{reports: reports}
}

// DashboardPoint is one chart sample: the day's pain level per region (0
// where a region was not recorded), activity hours, and exercise minutes.
type DashboardPoint struct {
	Date     string                    `json:"date"`
	Pain     map[models.BodyRegion]int `json:"pain"`
	Times    models.ActivityTimes      `json:"times"`
	Exercise models.ExerciseMinutes    `json:"exercise"`
}

type DashboardOverview struct {
	Period      string           `json:"period"`
	HealthScore int              `json:"healthScore"`
	ReportCount int              `json:"reportCount"`
	Series      []DashboardPoint `json:"series"`
}

// BuildOverview computes the dashboard for one of the two fixed windows:
// weekly keeps the latest 7 reports, monthly the latest 30. The series runs
// oldest to newest.
func (service *StatsService) BuildOverview(userID uint, period string) (DashboardOverview, error) {
	history, err := service.reports.ListByUser(userID)
	if err != nil {
		return DashboardOverview{}, err
	}

	window := DashboardWindow(history, period)
	return DashboardOverview{
		Period:      period,
		HealthScore: ComputeHealthScore(window),
		ReportCount: len(window),
		Series:      BuildDashboardSeries(window),
	}, nil
}

// DashboardWindow slices a newest-first history down to the period's report
// count and flips it to chronological order.
func DashboardWindow(history []models.Report, period string) []models.Report {
	limit := weeklyWindowReports
	if period == PeriodMonthly {
		limit = monthlyWindowReports
	}
	if len(history) > limit {
		history = history[:limit]
	}

	window := make([]models.Report, len(history))
	for index, report := range history {
		window[len(history)-1-index] = report
	}
	return window
}

// ComputeHealthScore inverts average recorded pain into a 0-100 score. An
// empty window scores 100; so does a window whose reports carry no pain
// records, since the average pain is then zero.
func ComputeHealthScore(window []models.Report) int {
	if len(window) == 0 {
		return maxHealthScore
	}

	sum := 0
	count := 0
	for _, report := range window {
		for _, record := range report.PainRecords {
			sum += record.PainLevel
			count++
		}
	}

	averagePain := 0.0
	if count > 0 {
		averagePain = float64(sum) / float64(count)
	}

	score := int(math.Round((10 - averagePain) * 10))
	if score < 0 {
		return 0
	}
	return score
}

func BuildDashboardSeries(window []models.Report) []DashboardPoint {
	series := make([]DashboardPoint, 0, len(window))
	for _, report := range window {
		pain := make(map[models.BodyRegion]int, len(models.AllBodyRegions()))
		for _, definition := range models.AllBodyRegions() {
			pain[definition.ID] = 0
		}
		for _, record := range report.PainRecords {
			pain[record.Region] = record.PainLevel
		}
		series = append(series, DashboardPoint{
			Date:     report.DateString(),
			Pain:     pain,
			Times:    report.Times,
			Exercise: report.Exercise,
		})
	}
	return series
}

// IsValidPeriod reports whether raw names one of the dashboard windows.
func IsValidPeriod(raw string) bool {
	return raw == PeriodWeekly || raw == PeriodMonthly
}
