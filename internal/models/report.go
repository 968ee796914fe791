package models

import "time"

const (
	PainLevelMin = 1
	PainLevelMax = 10

	// HighPainThreshold is the level at or above which a just-submitted
	// record triggers an immediate alert.
	HighPainThreshold = 7
)

// PainRecord is one region's full survey answer for a given day. Records are
// immutable once part of a saved report; re-submitting the same region before
// save supersedes the earlier record.
type PainRecord struct {
	Region           BodyRegion `json:"region"`
	Side             Side       `json:"side"`
	PainLevel        int        `json:"painLevel"`
	History12Months  bool       `json:"history12Months"`
	WorkInterference bool       `json:"workInterference"`
	Recent7Days      bool       `json:"recent7Days"`
}

// ActivityTimes holds hours spent per activity. The UI steps in half hours,
// so fractional values are expected.
type ActivityTimes struct {
	Sitting  float64 `json:"sitting"`
	Standing float64 `json:"standing"`
	Sleeping float64 `json:"sleeping"`
	Driving  float64 `json:"driving"`
}

func (times ActivityTimes) Total() float64 {
	return times.Sitting + times.Standing + times.Sleeping + times.Driving
}

type ExerciseMinutes struct {
	High int `json:"high"`
	Mid  int `json:"mid"`
	Low  int `json:"low"`
}

// Report is the atomic persisted unit: one user's one day's activity log plus
// all pain records. At most one report exists per (user, date); saving an
// existing key overwrites.
type Report struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;uniqueIndex:uidx_report_user_date" json:"userId"`
	Date        time.Time       `gorm:"type:date;not null;uniqueIndex:uidx_report_user_date" json:"-"`
	Times       ActivityTimes   `gorm:"embedded;embeddedPrefix:time_" json:"times"`
	Exercise    ExerciseMinutes `gorm:"embedded;embeddedPrefix:exercise_" json:"exercise"`
	PainRecords []PainRecord    `gorm:"serializer:json" json:"painRecords"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// DateString renders the report day as ISO yyyy-MM-dd, the wire format for
// dates everywhere in the API.
func (report Report) DateString() string {
	return report.Date.Format("2006-01-02")
}
