// Package progress scores challenges against their consumption records.
//
// Everything here is pure: inputs are read, never modified, and every call
// recomputes from scratch.
package progress

import (
	"fmt"
	"math"
	"sort"
	"time"

	"betterBiteAPI/internal/types/calendar"
	"betterBiteAPI/internal/types/challenge"
)

const dayLayout = "2006-01-02"

// DayKey is the calendar day a record counts towards, formatted YYYY-MM-DD.
type DayKey string

// DayKeyOf truncates t to its UTC calendar day.
func DayKeyOf(t time.Time) DayKey {
	return DayKey(t.UTC().Format(dayLayout))
}

// ParseDay converts a YYYY-MM-DD string into midnight UTC of that day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// DailyGoalMet reports whether one day's aggregated consumption satisfies the
// challenge. Unknown goal types are never met.
func DailyGoalMet(ch challenge.Challenge, totalForDay float64) bool {
	switch ch.GoalType {
	case challenge.GoalQuantity, challenge.GoalTime:
		return totalForDay >= ch.TargetValue
	case challenge.GoalBoolean:
		return totalForDay > 0
	default:
		return false
	}
}

// dailyTotals groups the challenge's records by calendar day and sums them.
// Grouping is always by day, whatever the challenge cadence.
func dailyTotals(ch challenge.Challenge, records []challenge.Record) map[DayKey]float64 {
	totals := make(map[DayKey]float64)
	for _, r := range records {
		if r.ChallengeID != ch.ID {
			continue
		}
		totals[DayKeyOf(r.Date)] += r.ConsumedAmount
	}
	return totals
}

// Summary is the raw outcome behind a progress percentage.
type Summary struct {
	DaysMet     int
	DaysTracked int
	Percent     int
}

// Summarize counts tracked and successful days for the challenge.
func Summarize(ch challenge.Challenge, records []challenge.Record) Summary {
	totals := dailyTotals(ch, records)

	var s Summary
	s.DaysTracked = len(totals)
	for _, total := range totals {
		if DailyGoalMet(ch, total) {
			s.DaysMet++
		}
	}
	if s.DaysTracked == 0 {
		return s
	}

	pct := int(math.Round(100 * float64(s.DaysMet) / float64(s.DaysTracked)))
	if pct > 100 {
		pct = 100
	}
	s.Percent = pct
	return s
}

// ProgressPercent returns the share of tracked days on which the goal was met,
// rounded half away from zero into [0, 100]. No records means 0.
func ProgressPercent(ch challenge.Challenge, records []challenge.Record) int {
	return Summarize(ch, records).Percent
}

// DailyBreakdown lists each tracked day with its total, most recent first.
func DailyBreakdown(ch challenge.Challenge, records []challenge.Record) []challenge.DayTotal {
	totals := dailyTotals(ch, records)

	days := make([]challenge.DayTotal, 0, len(totals))
	for day, total := range totals {
		days = append(days, challenge.DayTotal{
			Day:   string(day),
			Total: total,
			Met:   DailyGoalMet(ch, total),
		})
	}
	// YYYY-MM-DD sorts lexically in date order.
	sort.Slice(days, func(i, j int) bool {
		return days[i].Day > days[j].Day
	})
	return days
}

// MonthCalendar lays out every day of the given month with the challenge's
// totals. today marks the IsToday flag.
func MonthCalendar(ch challenge.Challenge, records []challenge.Record, year int, month time.Month, today time.Time) *calendar.CalendarResponse {
	totals := dailyTotals(ch, records)

	startDate := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, -1)
	todayKey := DayKeyOf(today)

	days := make([]*calendar.CalendarDay, 0, endDate.Day())
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		key := DayKeyOf(d)
		total, tracked := totals[key]
		days = append(days, &calendar.CalendarDay{
			Date:    d,
			Tracked: tracked,
			Total:   total,
			Met:     tracked && DailyGoalMet(ch, total),
			IsToday: key == todayKey,
		})
	}

	return &calendar.CalendarResponse{
		ChallengeID: ch.ID,
		Year:        year,
		Month:       int(month),
		Days:        days,
	}
}

// UserAlreadyEnrolled is true only for an active enrollment; complete or
// failed ones allow the user to join again.
func UserAlreadyEnrolled(userID, challengeID string, enrollments []challenge.Enrollment) bool {
	for _, e := range enrollments {
		if e.UserID == userID && e.ChallengeID == challengeID && e.Status == challenge.StatusActive {
			return true
		}
	}
	return false
}
