package challenge

import (
	"time"

	"github.com/google/uuid"
)

type GoalType string

const (
	GoalQuantity GoalType = "quantity"
	GoalTime     GoalType = "time"
	GoalBoolean  GoalType = "boolean"
)

type Cadence string

const (
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

type EnrollmentStatus string

const (
	StatusActive   EnrollmentStatus = "active"
	StatusComplete EnrollmentStatus = "complete"
	StatusFailed   EnrollmentStatus = "failed"
)

type Challenge struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	GoalType     GoalType `json:"goal_type"`
	Unit         string   `json:"unit"`
	TargetValue  float64  `json:"target_value"`
	Cadence      Cadence  `json:"cadence"`
	DurationDays int      `json:"duration_days"`
	Customizable bool     `json:"customizable"`
	Active       bool     `json:"active"`
}

// Enrollment is a user's participation in a challenge. ProgressPercent is a
// cached display value; the authoritative number comes from the progress package.
type Enrollment struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	ChallengeID     string           `json:"challenge_id"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         time.Time        `json:"end_date"`
	Status          EnrollmentStatus `json:"status"`
	ProgressPercent int              `json:"progress_percent"`
}

type Record struct {
	ID             string    `json:"id"`
	ChallengeID    string    `json:"challenge_id"`
	Date           time.Time `json:"date"`
	ConsumedAmount float64   `json:"consumed_amount"`
	Note           *string   `json:"note,omitempty"`
}

type Definition struct {
	Name         string
	Description  string
	Category     string
	GoalType     GoalType
	Unit         string
	TargetValue  float64
	Cadence      Cadence
	DurationDays int
	Customizable bool
	Active       bool
}

func NewChallenge(def Definition) Challenge {
	return Challenge{
		ID:           uuid.NewString(),
		Name:         def.Name,
		Description:  def.Description,
		Category:     def.Category,
		GoalType:     def.GoalType,
		Unit:         def.Unit,
		TargetValue:  def.TargetValue,
		Cadence:      def.Cadence,
		DurationDays: def.DurationDays,
		Customizable: def.Customizable,
		Active:       def.Active,
	}
}

// NewEnrollment starts an active enrollment ending DurationDays after start.
func NewEnrollment(userID string, ch Challenge, start time.Time) Enrollment {
	return Enrollment{
		ID:          uuid.NewString(),
		UserID:      userID,
		ChallengeID: ch.ID,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, ch.DurationDays),
		Status:      StatusActive,
	}
}

func NewRecord(challengeID string, date time.Time, amount float64, note *string) Record {
	return Record{
		ID:             uuid.NewString(),
		ChallengeID:    challengeID,
		Date:           date,
		ConsumedAmount: amount,
		Note:           note,
	}
}

func (g GoalType) Valid() bool {
	switch g {
	case GoalQuantity, GoalTime, GoalBoolean:
		return true
	}
	return false
}

func (c Cadence) Valid() bool {
	switch c {
	case CadenceDaily, CadenceWeekly, CadenceMonthly:
		return true
	}
	return false
}
