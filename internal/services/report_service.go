package services

import (
	"errors"
	"time"

	"github.com/rntpans0531/healthcheckapp/internal/models"
)

var (
	ErrReportLoadFailed   = errors.New("load report failed")
	ErrReportCreateFailed = errors.New("create report failed")
	ErrReportUpdateFailed = errors.New("update report failed")
)

type ReportRepository interface {
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.Report, bool, error)
	ListByUser(userID uint) ([]models.Report, error)
	ListByUserSinceDate(userID uint, startDay time.Time) ([]models.Report, error)
	Create(report *models.Report) error
	Save(report *models.Report) error
}

type ReportService struct {
	reports ReportRepository
}

func NewReportService(reports ReportRepository) *ReportService {
	return &ReportService{reports: reports}
}

// Finalize assembles the persistable report from the session's draft and the
// survey's final record list, then upserts it by (user, date): an existing
// report for the day is overwritten in place, never duplicated.
func (service *ReportService) Finalize(userID uint, day time.Time, times models.ActivityTimes, exercise models.ExerciseMinutes, records []models.PainRecord, location *time.Location) (models.Report, error) {
	dayStart, dayEnd := DayRange(day, location)
	existing, found, err := service.reports.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.Report{}, ErrReportLoadFailed
	}

	if records == nil {
		records = []models.PainRecord{}
	}

	if found {
		existing.Times = times
		existing.Exercise = exercise
		existing.PainRecords = records
		if err := service.reports.Save(&existing); err != nil {
			return models.Report{}, ErrReportUpdateFailed
		}
		return existing, nil
	}

	report := models.Report{
		UserID:      userID,
		Date:        dayStart,
		Times:       times,
		Exercise:    exercise,
		PainRecords: records,
	}
	if err := service.reports.Create(&report); err != nil {
		return models.Report{}, ErrReportCreateFailed
	}
	return report, nil
}

// FetchByDate returns the report for the user's calendar day, if any.
func (service *ReportService) FetchByDate(userID uint, day time.Time, location *time.Location) (models.Report, bool, error) {
	dayStart, dayEnd := DayRange(day, location)
	return service.reports.FindByUserAndDayRange(userID, dayStart, dayEnd)
}

// FetchHistory returns the user's reports newest first by save time.
func (service *ReportService) FetchHistory(userID uint) ([]models.Report, error) {
	return service.reports.ListByUser(userID)
}

// FetchRecent returns reports with date >= startDay, oldest first, for the
// chronic-pain lookback.
func (service *ReportService) FetchRecent(userID uint, startDay time.Time) ([]models.Report, error) {
	return service.reports.ListByUserSinceDate(userID, startDay)
}
