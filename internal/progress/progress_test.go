package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betterBiteAPI/internal/types/challenge"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDay(s)
	require.NoError(t, err)
	return d
}

func testChallenge(goal challenge.GoalType, target float64) challenge.Challenge {
	return challenge.NewChallenge(challenge.Definition{
		Name:         "3L of water",
		GoalType:     goal,
		Unit:         "liters",
		TargetValue:  target,
		Cadence:      challenge.CadenceDaily,
		DurationDays: 7,
	})
}

func rec(ch challenge.Challenge, at time.Time, amount float64) challenge.Record {
	return challenge.NewRecord(ch.ID, at, amount, nil)
}

func TestDailyGoalMet_Threshold(t *testing.T) {
	for _, goal := range []challenge.GoalType{challenge.GoalQuantity, challenge.GoalTime} {
		ch := testChallenge(goal, 3)
		assert.True(t, DailyGoalMet(ch, 3), goal)
		assert.True(t, DailyGoalMet(ch, 4.5), goal)
		assert.False(t, DailyGoalMet(ch, 2.99), goal)
		assert.False(t, DailyGoalMet(ch, 0), goal)
	}
}

func TestDailyGoalMet_BooleanIgnoresTarget(t *testing.T) {
	ch := testChallenge(challenge.GoalBoolean, 50)
	assert.False(t, DailyGoalMet(ch, 0))
	assert.True(t, DailyGoalMet(ch, 0.1))
	assert.True(t, DailyGoalMet(ch, 1))
}

func TestDailyGoalMet_UnknownGoalType(t *testing.T) {
	ch := testChallenge("unknown", 1)
	assert.False(t, DailyGoalMet(ch, 999))
}

func TestProgressPercent_NoRecords(t *testing.T) {
	ch := testChallenge(challenge.GoalQuantity, 3)
	assert.Equal(t, 0, ProgressPercent(ch, nil))
	assert.Equal(t, 0, ProgressPercent(ch, []challenge.Record{}))
}

func TestProgressPercent_HalfDaysMet(t *testing.T) {
	ch := testChallenge(challenge.GoalQuantity, 3)
	records := []challenge.Record{
		rec(ch, day(t, "2025-06-01"), 1),
		rec(ch, day(t, "2025-06-01"), 1),
		rec(ch, day(t, "2025-06-01"), 1),
		rec(ch, day(t, "2025-06-02"), 1),
	}
	assert.Equal(t, 50, ProgressPercent(ch, records))
}

func TestProgressPercent_ZeroAmountDayCountsAsTracked(t *testing.T) {
	ch := testChallenge(challenge.GoalQuantity, 1)
	records := []challenge.Record{
		rec(ch, day(t, "2025-06-01"), 1),
		rec(ch, day(t, "2025-06-01"), 1),
		rec(ch, day(t, "2025-06-02"), 0),
	}
	s := Summarize(ch, records)
	assert.Equal(t, 2, s.DaysTracked)
	assert.Equal(t, 1, s.DaysMet)
	assert.Equal(t, 50, s.Percent)
}

func TestProgressPercent_BooleanSingleRecord(t *testing.T) {
	ch := testChallenge(challenge.GoalBoolean, 1)
	records := []challenge.Record{rec(ch, day(t, "2025-06-01"), 1)}
	assert.Equal(t, 100, ProgressPercent(ch, records))
}

func TestProgressPercent_AllAndNoneMet(t *testing.T) {
	ch := testChallenge(challenge.GoalQuantity, 2)
	met := []challenge.Record{
		rec(ch, day(t, "2025-06-01"), 2),
		rec(ch, day(t, "2025-06-02"), 5),
	}
	assert.Equal(t, 100, ProgressPercent(ch, met))

	missed := []challenge.Record{
		rec(ch, day(t, "2025-06-01"), 1),
		rec(ch, day(t, "2025-06-02"), 0.5),
	}
	assert.Equal(t, 0, ProgressPercent(ch, missed))
}

func TestProgressPercent_SameDayDifferentTimesSummed(t *testing.T) {
	ch := testChallenge(challenge.GoalQuantity, 3)
	base := day(t, "2025-06-03")
	records := []challenge.Record{
		rec(ch, base.Add(7*time.Hour), 1),
		rec(ch, base.Add(12*time.Hour+30*time.Minute), 1),
		rec(ch, base.Add(23*time.Hour+59*time.Minute), 1),
	}
	s := Summarize(ch, records)
	assert.Equal(t, 1, s.DaysTracked)
	assert.Equal(t, 100, s.Percent)
}

func TestProgressPercent_IgnoresOtherChallenges(t *testing.T) {
	ch := testChallenge(challenge.GoalQuantity, 1)
	other := testChallenge(challenge.GoalQuantity, 1)
	records := []challenge.Record{
		rec(ch, day(t, "2025-06-01"), 1),
		rec(other, day(t, "2025-06-02"), 0),
		rec(other, day(t, "2025-06-03"), 0),
	}
	assert.Equal(t, 100, ProgressPercent(ch, records))
}

func TestProgressPercent_Rounding(t *testing.T) {
	ch := testChallenge(challenge.GoalQuantity, 1)
	// 1 of 3 days -> 33.33 -> 33; 2 of 3 -> 66.67 -> 67.
	records := []challenge.Record{
		rec(ch, day(t, "2025-06-01"), 1),
		rec(ch, day(t, "2025-06-02"), 0),
		rec(ch, day(t, "2025-06-03"), 0),
	}
	assert.Equal(t, 33, ProgressPercent(ch, records))

	records[1].ConsumedAmount = 1
	assert.Equal(t, 67, ProgressPercent(ch, records))

	// 1 of 8 -> 12.5 rounds away from zero.
	eight := []challenge.Record{rec(ch, day(t, "2025-07-01"), 1)}
	for i := 2; i <= 8; i++ {
		eight = append(eight, rec(ch, day(t, "2025-07-01").AddDate(0, 0, i), 0))
	}
	assert.Equal(t, 13, ProgressPercent(ch, eight))
}

func TestProgressPercent_Bounds(t *testing.T) {
	ch := testChallenge(challenge.GoalQuantity, 2)
	var records []challenge.Record
	start := day(t, "2025-01-01")
	for i := 0; i < 40; i++ {
		records = append(records, rec(ch, start.AddDate(0, 0, i%17), float64(i%4)))
		pct := ProgressPercent(ch, records)
		assert.GreaterOrEqual(t, pct, 0)
		assert.LessOrEqual(t, pct, 100)
	}
}

func TestProgressPercent_DoesNotMutateInput(t *testing.T) {
	ch := testChallenge(challenge.GoalQuantity, 3)
	records := []challenge.Record{
		rec(ch, day(t, "2025-06-02"), 1),
		rec(ch, day(t, "2025-06-01"), 3),
	}
	before := append([]challenge.Record(nil), records...)
	_ = ProgressPercent(ch, records)
	_ = DailyBreakdown(ch, records)
	assert.Equal(t, before, records)
}

func TestDailyBreakdown_SortedDescending(t *testing.T) {
	ch := testChallenge(challenge.GoalQuantity, 3)
	records := []challenge.Record{
		rec(ch, day(t, "2025-06-01"), 3),
		rec(ch, day(t, "2025-06-03"), 1),
		rec(ch, day(t, "2025-06-02"), 1),
		rec(ch, day(t, "2025-06-02"), 0.5),
	}
	days := DailyBreakdown(ch, records)
	require.Len(t, days, 3)
	assert.Equal(t, "2025-06-03", days[0].Day)
	assert.Equal(t, "2025-06-02", days[1].Day)
	assert.InDelta(t, 1.5, days[1].Total, 1e-9)
	assert.False(t, days[1].Met)
	assert.Equal(t, "2025-06-01", days[2].Day)
	assert.True(t, days[2].Met)
}

func TestDayKeyOf_UsesUTCDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	// 22:00 in UTC-3 is already the next day in UTC.
	at := time.Date(2025, 6, 1, 22, 0, 0, 0, loc)
	assert.Equal(t, DayKey("2025-06-02"), DayKeyOf(at))
}

func TestParseDay_Invalid(t *testing.T) {
	_, err := ParseDay("07/06/2025")
	assert.Error(t, err)
}

func TestUserAlreadyEnrolled(t *testing.T) {
	ch := testChallenge(challenge.GoalQuantity, 3)
	start := day(t, "2025-06-01")

	completed := challenge.NewEnrollment("u1", ch, start)
	completed.Status = challenge.StatusComplete
	failed := challenge.NewEnrollment("u1", ch, start)
	failed.Status = challenge.StatusFailed

	assert.False(t, UserAlreadyEnrolled("u1", ch.ID, []challenge.Enrollment{completed, failed}))
	assert.False(t, UserAlreadyEnrolled("u1", ch.ID, nil))

	active := challenge.NewEnrollment("u1", ch, start)
	assert.True(t, UserAlreadyEnrolled("u1", ch.ID, []challenge.Enrollment{completed, active}))
	assert.False(t, UserAlreadyEnrolled("u2", ch.ID, []challenge.Enrollment{active}))
	assert.False(t, UserAlreadyEnrolled("u1", "other", []challenge.Enrollment{active}))
}

func TestMonthCalendar(t *testing.T) {
	ch := testChallenge(challenge.GoalQuantity, 3)
	records := []challenge.Record{
		rec(ch, day(t, "2025-06-01"), 3),
		rec(ch, day(t, "2025-06-02"), 1),
		rec(ch, day(t, "2025-07-01"), 3),
	}
	cal := MonthCalendar(ch, records, 2025, time.June, day(t, "2025-06-02"))

	assert.Equal(t, ch.ID, cal.ChallengeID)
	assert.Equal(t, 6, cal.Month)
	require.Len(t, cal.Days, 30)

	assert.True(t, cal.Days[0].Tracked)
	assert.True(t, cal.Days[0].Met)
	assert.True(t, cal.Days[1].Tracked)
	assert.False(t, cal.Days[1].Met)
	assert.True(t, cal.Days[1].IsToday)
	assert.False(t, cal.Days[2].Tracked)
	assert.False(t, cal.Days[29].Tracked)
}
