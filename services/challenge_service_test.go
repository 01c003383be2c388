package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"betterBiteAPI/internal/store"
	"betterBiteAPI/internal/types/challenge"
)

func newTestChallengeService(t *testing.T, challenges ...challenge.Challenge) *ChallengeService {
	t.Helper()
	s := NewChallengeService(
		store.NewChallengeStore(challenges...),
		store.NewRecordStore(),
		store.NewEnrollmentStore(),
		zap.NewNop(),
	)
	s.now = func() time.Time { return time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC) }
	return s
}

func waterChallenge() challenge.Challenge {
	return challenge.NewChallenge(challenge.Definition{
		Name:         "3L of water",
		Category:     "water",
		GoalType:     challenge.GoalQuantity,
		Unit:         "liters",
		TargetValue:  3,
		Cadence:      challenge.CadenceDaily,
		DurationDays: 7,
		Active:       true,
	})
}

func TestChallengeService_GetChallengeNotFound(t *testing.T) {
	s := newTestChallengeService(t)
	_, err := s.GetChallenge(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrChallengeNotFound)

	_, err = s.Progress(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrChallengeNotFound)

	_, err = s.Records(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestChallengeService_CreateChallenge(t *testing.T) {
	s := newTestChallengeService(t)
	ctx := context.Background()

	ch, err := s.CreateChallenge(ctx, &challenge.CreateChallengeRequest{
		Name:         "  Eat greens ",
		Description:  "One portion of greens",
		Category:     "meals",
		GoalType:     "boolean",
		Unit:         "times",
		TargetValue:  1,
		Cadence:      "daily",
		DurationDays: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Eat greens", ch.Name)
	assert.True(t, ch.Customizable)
	assert.True(t, ch.Active)
	assert.Len(t, s.ListChallenges(ctx), 1)
}

func TestChallengeService_CreateChallengeValidation(t *testing.T) {
	s := newTestChallengeService(t)
	_, err := s.CreateChallenge(context.Background(), &challenge.CreateChallengeRequest{
		Name:         "Bad",
		Description:  "bad",
		Category:     "x",
		GoalType:     "frequency",
		Unit:         "times",
		TargetValue:  1,
		Cadence:      "daily",
		DurationDays: 5,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, s.ListChallenges(context.Background()))
}

func TestChallengeService_RecordsAndProgress(t *testing.T) {
	ch := waterChallenge()
	s := newTestChallengeService(t, ch)
	ctx := context.Background()

	for _, req := range []challenge.CreateRecordRequest{
		{Date: "2025-06-01", ConsumedAmount: 1.5},
		{Date: "2025-06-01", ConsumedAmount: 1.5, Note: "evening"},
		{Date: "2025-06-02", ConsumedAmount: 1},
	} {
		_, err := s.AddRecord(ctx, ch.ID, &req)
		require.NoError(t, err)
	}

	p, err := s.Progress(ctx, ch.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, p.ProgressPercent)
	assert.Equal(t, 1, p.DaysMet)
	assert.Equal(t, 2, p.DaysTracked)

	records, err := s.Records(ctx, ch.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Nil(t, records[0].Note)
	require.NotNil(t, records[1].Note)
	assert.Equal(t, "evening", *records[1].Note)
}

func TestChallengeService_AddRecordRejectsBadInput(t *testing.T) {
	ch := waterChallenge()
	s := newTestChallengeService(t, ch)
	ctx := context.Background()

	_, err := s.AddRecord(ctx, ch.ID, &challenge.CreateRecordRequest{Date: "01/06/2025", ConsumedAmount: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.AddRecord(ctx, ch.ID, &challenge.CreateRecordRequest{Date: "2025-06-01", ConsumedAmount: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.AddRecord(ctx, "missing", &challenge.CreateRecordRequest{Date: "2025-06-01", ConsumedAmount: 1})
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestChallengeService_EnrollTwiceConflicts(t *testing.T) {
	ch := waterChallenge()
	s := newTestChallengeService(t, ch)
	ctx := context.Background()

	e, err := s.Enroll(ctx, "u1", ch.ID, &challenge.EnrollRequest{})
	require.NoError(t, err)
	assert.Equal(t, challenge.StatusActive, e.Status)
	assert.Equal(t, s.now().UTC(), e.StartDate)
	assert.Equal(t, e.StartDate.AddDate(0, 0, 7), e.EndDate)

	_, err = s.Enroll(ctx, "u1", ch.ID, &challenge.EnrollRequest{})
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	// Another user is unaffected.
	_, err = s.Enroll(ctx, "u2", ch.ID, &challenge.EnrollRequest{StartDate: "2025-06-10"})
	assert.NoError(t, err)
}

func TestChallengeService_ConcurrentEnrollCreatesOneActive(t *testing.T) {
	ch := waterChallenge()
	s := newTestChallengeService(t, ch)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Enroll(ctx, "u1", ch.ID, &challenge.EnrollRequest{})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	}
	assert.Equal(t, 1, ok)
	assert.Len(t, s.enrollments.ByUser("u1"), 1)
}

func TestChallengeService_ReenrollAfterCompletion(t *testing.T) {
	ch := waterChallenge()
	s := newTestChallengeService(t, ch)
	ctx := context.Background()

	e, err := s.Enroll(ctx, "u1", ch.ID, &challenge.EnrollRequest{})
	require.NoError(t, err)
	require.NoError(t, s.enrollments.UpdateStatus(e.ID, challenge.StatusComplete))

	_, err = s.Enroll(ctx, "u1", ch.ID, &challenge.EnrollRequest{})
	assert.NoError(t, err)
}

func TestChallengeService_DetailsAndUserEnrollments(t *testing.T) {
	ch := waterChallenge()
	s := newTestChallengeService(t, ch)
	ctx := context.Background()

	_, err := s.AddRecord(ctx, ch.ID, &challenge.CreateRecordRequest{Date: "2025-06-01", ConsumedAmount: 3})
	require.NoError(t, err)
	_, err = s.Enroll(ctx, "u1", ch.ID, &challenge.EnrollRequest{StartDate: "2025-06-01"})
	require.NoError(t, err)

	d, err := s.Details(ctx, ch.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, 100, d.ProgressPercent)
	require.Len(t, d.Days, 1)
	require.NotNil(t, d.Enrollment)
	assert.Equal(t, "u1", d.Enrollment.UserID)

	anon, err := s.Details(ctx, ch.ID, "")
	require.NoError(t, err)
	assert.Nil(t, anon.Enrollment)

	views := s.UserEnrollments(ctx, "u1")
	require.Len(t, views, 1)
	assert.Equal(t, 100, views[0].Enrollment.ProgressPercent)
	assert.Equal(t, ch.ID, views[0].Challenge.ID)
	assert.Empty(t, s.UserEnrollments(ctx, "nobody"))
}

func TestChallengeService_Calendar(t *testing.T) {
	ch := waterChallenge()
	s := newTestChallengeService(t, ch)
	ctx := context.Background()

	_, err := s.AddRecord(ctx, ch.ID, &challenge.CreateRecordRequest{Date: "2025-06-02", ConsumedAmount: 3})
	require.NoError(t, err)

	cal, err := s.Calendar(ctx, ch.ID, 2025, time.June)
	require.NoError(t, err)
	require.Len(t, cal.Days, 30)
	assert.True(t, cal.Days[1].Met)
	assert.True(t, cal.Days[1].IsToday)

	_, err = s.Calendar(ctx, ch.ID, 2025, time.Month(13))
	assert.ErrorIs(t, err, ErrInvalidDate)
}
