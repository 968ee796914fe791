package services

import (
	"errors"

	"github.com/rntpans0531/healthcheckapp/internal/models"
)

var (
	ErrPainLevelOutOfRange = errors.New("pain level out of range")
	ErrSurveyComplete      = errors.New("survey already complete")
)

// SurveyAnswers is the fixed-shape answer record collected per region.
type SurveyAnswers struct {
	PainLevel        int  `json:"painLevel"`
	History12Months  bool `json:"history12Months"`
	WorkInterference bool `json:"workInterference"`
	Recent7Days      bool `json:"recent7Days"`
}

// DefaultSurveyAnswers is the answer draft each step starts from.
func DefaultSurveyAnswers() SurveyAnswers {
	return SurveyAnswers{PainLevel: models.PainLevelMin}
}

// SurveySequence walks a frozen copy of the selection set one region at a
// time, strictly forward. An empty selection is immediately complete and
// yields an empty record list (the "no pain" terminal).
type SurveySequence struct {
	steps        []models.SelectedRegion
	currentIndex int
	records      []models.PainRecord
	complete     bool
}

func NewSurveySequence(selection []models.SelectedRegion) *SurveySequence {
	steps := make([]models.SelectedRegion, len(selection))
	copy(steps, selection)
	return &SurveySequence{
		steps:    steps,
		records:  make([]models.PainRecord, 0, len(steps)),
		complete: len(steps) == 0,
	}
}

func (sequence *SurveySequence) Complete() bool {
	return sequence.complete
}

func (sequence *SurveySequence) StepCount() int {
	return len(sequence.steps)
}

func (sequence *SurveySequence) CurrentIndex() int {
	return sequence.currentIndex
}

// Current returns the region being asked about.
func (sequence *SurveySequence) Current() (models.SelectedRegion, error) {
	if sequence.complete {
		return models.SelectedRegion{}, ErrSurveyComplete
	}
	return sequence.steps[sequence.currentIndex], nil
}

// SubmitCurrent records answers for the current region and advances. The
// record replaces any earlier record for the same region rather than
// appending, so a re-visited step cannot duplicate. On the last step the
// sequence becomes complete and Records holds the final ordered list.
func (sequence *SurveySequence) SubmitCurrent(answers SurveyAnswers) (bool, error) {
	if sequence.complete {
		return false, ErrSurveyComplete
	}
	if answers.PainLevel < models.PainLevelMin || answers.PainLevel > models.PainLevelMax {
		return false, ErrPainLevelOutOfRange
	}

	step := sequence.steps[sequence.currentIndex]
	record := models.PainRecord{
		Region:           step.Region,
		Side:             step.Side,
		PainLevel:        answers.PainLevel,
		History12Months:  answers.History12Months,
		WorkInterference: answers.WorkInterference,
		Recent7Days:      answers.Recent7Days,
	}
	sequence.upsertRecord(record)

	if sequence.currentIndex == len(sequence.steps)-1 {
		sequence.complete = true
		return true, nil
	}
	sequence.currentIndex++
	return false, nil
}

// Records returns the collected pain records in walk order.
func (sequence *SurveySequence) Records() []models.PainRecord {
	records := make([]models.PainRecord, len(sequence.records))
	copy(records, sequence.records)
	return records
}

func (sequence *SurveySequence) upsertRecord(record models.PainRecord) {
	for index, existing := range sequence.records {
		if existing.Region == record.Region {
			sequence.records[index] = record
			return
		}
	}
	sequence.records = append(sequence.records, record)
}
