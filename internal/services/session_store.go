package services

import (
	"errors"
	"sync"
	"time"

	"github.com/rntpans0531/healthcheckapp/internal/models"
)

var (
	ErrNoSurveyInProgress = errors.New("no survey in progress")
	ErrSurveyNotComplete  = errors.New("survey not complete")
)

// SessionState is one user's editable wizard state between the daily-log
// form, the body map, and the survey: the draft report fields, the selection
// set, collected pain records, and survey progress. All mutation goes
// through the SessionStore so a session is never touched concurrently.
type SessionState struct {
	Date      time.Time
	Times     models.ActivityTimes
	Exercise  models.ExerciseMinutes
	selection *Selection
	records   []models.PainRecord
	survey    *SurveySequence
}

// SessionSnapshot is a read-only copy handed to handlers.
type SessionSnapshot struct {
	Date        time.Time
	Times       models.ActivityTimes
	Exercise    models.ExerciseMinutes
	Selection   []models.SelectedRegion
	PainRecords []models.PainRecord
	Survey      *SurveyProgress
}

type SurveyProgress struct {
	CurrentIndex int
	StepCount    int
	Complete     bool
	Current      *models.SelectedRegion
}

type SessionStore struct {
	mu       sync.Mutex
	sessions map[uint]*SessionState
	location *time.Location
}

func NewSessionStore(location *time.Location) *SessionStore {
	if location == nil {
		location = time.UTC
	}
	return &SessionStore{
		sessions: make(map[uint]*SessionState),
		location: location,
	}
}

func (store *SessionStore) Snapshot(userID uint) SessionSnapshot {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.sessionLocked(userID).snapshot()
}

// LoadReport points the session at a calendar day. When a saved report for
// that day is supplied, the draft, records, and selection set are
// reconstructed from it; otherwise the draft resets to zeros for a new entry.
func (store *SessionStore) LoadReport(userID uint, day time.Time, report *models.Report) SessionSnapshot {
	store.mu.Lock()
	defer store.mu.Unlock()

	session := store.sessionLocked(userID)
	session.Date = DateAtLocation(day, store.location)
	session.survey = nil

	if report == nil {
		session.Times = models.ActivityTimes{}
		session.Exercise = models.ExerciseMinutes{}
		session.records = session.records[:0]
		session.selection.Reset()
		return session.snapshot()
	}

	session.Times = report.Times
	session.Exercise = report.Exercise
	session.records = append(session.records[:0], report.PainRecords...)

	restored := make([]models.SelectedRegion, 0, len(report.PainRecords))
	for _, record := range report.PainRecords {
		restored = append(restored, models.SelectedRegion{Region: record.Region, Side: record.Side})
	}
	session.selection.Restore(restored)
	return session.snapshot()
}

func (store *SessionStore) UpdateDraft(userID uint, times models.ActivityTimes, exercise models.ExerciseMinutes) SessionSnapshot {
	store.mu.Lock()
	defer store.mu.Unlock()

	session := store.sessionLocked(userID)
	session.Times = times
	session.Exercise = exercise
	return session.snapshot()
}

func (store *SessionStore) Toggle(userID uint, region models.BodyRegion, side models.Side) ([]models.SelectedRegion, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	session := store.sessionLocked(userID)
	if err := session.selection.Toggle(region, side); err != nil {
		return nil, err
	}
	return session.selection.Entries(), nil
}

func (store *SessionStore) RemoveRegion(userID uint, region models.BodyRegion) []models.SelectedRegion {
	store.mu.Lock()
	defer store.mu.Unlock()

	session := store.sessionLocked(userID)
	session.selection.Remove(region)
	return session.selection.Entries()
}

// ResetSelection clears the selection set and any collected pain records in
// one step, so the two can never disagree.
func (store *SessionStore) ResetSelection(userID uint) {
	store.mu.Lock()
	defer store.mu.Unlock()

	session := store.sessionLocked(userID)
	session.selection.Reset()
	session.records = session.records[:0]
	session.survey = nil
}

// StartSurvey freezes the current selection into a survey sequence. An empty
// selection yields an already-complete sequence (the "no pain" path).
func (store *SessionStore) StartSurvey(userID uint) SessionSnapshot {
	store.mu.Lock()
	defer store.mu.Unlock()

	session := store.sessionLocked(userID)
	session.survey = NewSurveySequence(session.selection.Entries())
	return session.snapshot()
}

func (store *SessionStore) CurrentStep(userID uint) (SurveyProgress, SurveyAnswers, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	session := store.sessionLocked(userID)
	if session.survey == nil {
		return SurveyProgress{}, SurveyAnswers{}, ErrNoSurveyInProgress
	}
	return *session.surveyProgress(), DefaultSurveyAnswers(), nil
}

// SubmitAnswers records the current step's answers. done reports whether the
// sequence just completed; the session keeps its state either way so a
// failed save can be retried without re-entering data.
func (store *SessionStore) SubmitAnswers(userID uint, answers SurveyAnswers) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	session := store.sessionLocked(userID)
	if session.survey == nil {
		return false, ErrNoSurveyInProgress
	}
	return session.survey.SubmitCurrent(answers)
}

// CompletedRecords returns the final record list of a completed sequence,
// ready for aggregation into a report.
func (store *SessionStore) CompletedRecords(userID uint) ([]models.PainRecord, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	session := store.sessionLocked(userID)
	if session.survey == nil {
		return nil, ErrNoSurveyInProgress
	}
	if !session.survey.Complete() {
		return nil, ErrSurveyNotComplete
	}
	return session.survey.Records(), nil
}

// MarkSaved commits a successful save back into the session: the saved
// records become the session's records and the survey reaches its terminal
// state.
func (store *SessionStore) MarkSaved(userID uint, report *models.Report) {
	store.mu.Lock()
	defer store.mu.Unlock()

	session := store.sessionLocked(userID)
	session.records = append(session.records[:0], report.PainRecords...)
	session.survey = nil
}

func (store *SessionStore) sessionLocked(userID uint) *SessionState {
	session, ok := store.sessions[userID]
	if !ok {
		session = &SessionState{
			Date:      DateAtLocation(time.Now(), store.location),
			selection: NewSelection(),
			records:   make([]models.PainRecord, 0),
		}
		store.sessions[userID] = session
	}
	return session
}

func (session *SessionState) snapshot() SessionSnapshot {
	records := make([]models.PainRecord, len(session.records))
	copy(records, session.records)
	return SessionSnapshot{
		Date:        session.Date,
		Times:       session.Times,
		Exercise:    session.Exercise,
		Selection:   session.selection.Entries(),
		PainRecords: records,
		Survey:      session.surveyProgress(),
	}
}

func (session *SessionState) surveyProgress() *SurveyProgress {
	if session.survey == nil {
		return nil
	}
	progress := &SurveyProgress{
		CurrentIndex: session.survey.CurrentIndex(),
		StepCount:    session.survey.StepCount(),
		Complete:     session.survey.Complete(),
	}
	if current, err := session.survey.Current(); err == nil {
		progress.Current = &current
	}
	return progress
}
