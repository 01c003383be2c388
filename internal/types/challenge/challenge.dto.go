package challenge

type CreateChallengeRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Category     string  `json:"category" validate:"required"`
	GoalType     string  `json:"goal_type" validate:"required,oneof=quantity time boolean"`
	Unit         string  `json:"unit" validate:"required"`
	TargetValue  float64 `json:"target_value" validate:"gt=0"`
	Cadence      string  `json:"cadence" validate:"required,oneof=daily weekly monthly"`
	DurationDays int     `json:"duration_days" validate:"gt=0"`
	Customizable *bool   `json:"customizable,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

// CreateRecordRequest carries a check-in. Date is a calendar day, YYYY-MM-DD.
type CreateRecordRequest struct {
	Date           string  `json:"date" validate:"required,datetime=2006-01-02"`
	ConsumedAmount float64 `json:"consumed_amount" validate:"gte=0"`
	Note           string  `json:"note,omitempty"`
}

type EnrollRequest struct {
	StartDate string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type DayTotal struct {
	Day   string  `json:"day"`
	Total float64 `json:"total"`
	Met   bool    `json:"met"`
}

type ProgressResponse struct {
	ChallengeID     string `json:"challenge_id"`
	ProgressPercent int    `json:"progress_percent"`
	DaysMet         int    `json:"days_met"`
	DaysTracked     int    `json:"days_tracked"`
}

type DetailsResponse struct {
	Challenge       Challenge   `json:"challenge"`
	ProgressPercent int         `json:"progress_percent"`
	Days            []DayTotal  `json:"days"`
	Enrollment      *Enrollment `json:"enrollment,omitempty"`
}

// EnrollmentView pairs an enrollment with the challenge it belongs to.
type EnrollmentView struct {
	Enrollment Enrollment `json:"enrollment"`
	Challenge  Challenge  `json:"challenge"`
}
