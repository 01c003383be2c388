package calendar

import "time"

// CalendarDay is one day of a challenge's month view. Days without records
// have Tracked false and are never Met.
type CalendarDay struct {
	Date    time.Time `json:"date"`
	Tracked bool      `json:"tracked"`
	Total   float64   `json:"total"`
	Met     bool      `json:"met"`
	IsToday bool      `json:"is_today"`
}

type CalendarResponse struct {
	ChallengeID string         `json:"challenge_id"`
	Year        int            `json:"year"`
	Month       int            `json:"month"`
	Days        []*CalendarDay `json:"days"`
}
