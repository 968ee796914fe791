package db

import (
	"time"

	"github.com/rntpans0531/healthcheckapp/internal/models"
	"gorm.io/gorm"
)

type ReportRepository struct {
	database *gorm.DB
}

func NewReportRepository(database *gorm.DB) *ReportRepository {
	return &ReportRepository{database: database}
}

// FindByUserAndDayRange returns the single report whose date falls inside
// [dayStart, dayEnd). The unique (user_id, date) index keeps it to one row.
func (repo *ReportRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.Report, bool, error) {
	report := models.Report{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&report)
	if result.Error != nil {
		return models.Report{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Report{}, false, nil
	}
	return report, true, nil
}

// ListByUser returns the user's full history, newest first by save time.
func (repo *ReportRepository) ListByUser(userID uint) ([]models.Report, error) {
	reports := make([]models.Report, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ListByUserSinceDate returns reports with date >= startDay, oldest first.
func (repo *ReportRepository) ListByUserSinceDate(userID uint, startDay time.Time) ([]models.Report, error) {
	reports := make([]models.Report, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ?", userID, startDay).
		Order("date ASC, id ASC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (repo *ReportRepository) Create(report *models.Report) error {
	return repo.database.Create(report).Error
}

func (repo *ReportRepository) Save(report *models.Report) error {
	return repo.database.Save(report).Error
}
