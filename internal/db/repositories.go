package db

import "gorm.io/gorm"

type Repositories struct {
	Users   *UserRepository
	Reports *ReportRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:   NewUserRepository(database),
		Reports: NewReportRepository(database),
	}
}
