package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"betterBiteAPI/internal/progress"
	"betterBiteAPI/internal/store"
	"betterBiteAPI/internal/types/calendar"
	"betterBiteAPI/internal/types/challenge"
)

var (
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrAlreadyEnrolled   = errors.New("user already enrolled in challenge")
	ErrInvalidDate       = errors.New("invalid date")
)

type ChallengeService struct {
	challenges  *store.ChallengeStore
	records     *store.RecordStore
	enrollments *store.EnrollmentStore
	logger      *zap.Logger
	now         func() time.Time
}

func NewChallengeService(challenges *store.ChallengeStore, records *store.RecordStore, enrollments *store.EnrollmentStore, logger *zap.Logger) *ChallengeService {
	return &ChallengeService{
		challenges:  challenges,
		records:     records,
		enrollments: enrollments,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *ChallengeService) ListChallenges(ctx context.Context) []challenge.Challenge {
	return s.challenges.List()
}

func (s *ChallengeService) GetChallenge(ctx context.Context, id string) (*challenge.Challenge, error) {
	ch, err := s.challenges.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrChallengeNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load challenge: %w", err)
	}
	return &ch, nil
}

func (s *ChallengeService) CreateChallenge(ctx context.Context, req *challenge.CreateChallengeRequest) (*challenge.Challenge, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	def := challenge.Definition{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Category:     req.Category,
		GoalType:     challenge.GoalType(req.GoalType),
		Unit:         req.Unit,
		TargetValue:  req.TargetValue,
		Cadence:      challenge.Cadence(req.Cadence),
		DurationDays: req.DurationDays,
		Customizable: true,
		Active:       true,
	}
	if req.Customizable != nil {
		def.Customizable = *req.Customizable
	}
	if req.Active != nil {
		def.Active = *req.Active
	}

	ch := challenge.NewChallenge(def)
	s.challenges.Add(ch)
	challengesCreated.Inc()

	s.logger.Info("challenge created",
		zap.String("challenge_id", ch.ID),
		zap.String("goal_type", string(ch.GoalType)),
	)
	return &ch, nil
}

// AddRecord logs consumption against an existing challenge.
func (s *ChallengeService) AddRecord(ctx context.Context, challengeID string, req *challenge.CreateRecordRequest) (*challenge.Record, error) {
	ch, err := s.GetChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	date, err := progress.ParseDay(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	var note *string
	if n := strings.TrimSpace(req.Note); n != "" {
		note = &n
	}

	rec := challenge.NewRecord(ch.ID, date, req.ConsumedAmount, note)
	s.records.Append(rec)
	recordsLogged.WithLabelValues(string(ch.GoalType)).Inc()

	s.logger.Debug("record added",
		zap.String("challenge_id", ch.ID),
		zap.String("day", req.Date),
		zap.Float64("amount", req.ConsumedAmount),
	)
	return &rec, nil
}

func (s *ChallengeService) Records(ctx context.Context, challengeID string) ([]challenge.Record, error) {
	if _, err := s.GetChallenge(ctx, challengeID); err != nil {
		return nil, err
	}
	return s.records.ByChallenge(challengeID), nil
}

func (s *ChallengeService) Progress(ctx context.Context, challengeID string) (*challenge.ProgressResponse, error) {
	ch, err := s.GetChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	summary := progress.Summarize(*ch, s.records.ByChallenge(ch.ID))
	return &challenge.ProgressResponse{
		ChallengeID:     ch.ID,
		ProgressPercent: summary.Percent,
		DaysMet:         summary.DaysMet,
		DaysTracked:     summary.DaysTracked,
	}, nil
}

// Details is the challenge screen: progress, the per-day breakdown and, when
// userID is set, that user's latest enrollment in the challenge.
func (s *ChallengeService) Details(ctx context.Context, challengeID, userID string) (*challenge.DetailsResponse, error) {
	ch, err := s.GetChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	records := s.records.ByChallenge(ch.ID)
	resp := &challenge.DetailsResponse{
		Challenge:       *ch,
		ProgressPercent: progress.ProgressPercent(*ch, records),
		Days:            progress.DailyBreakdown(*ch, records),
	}

	if userID != "" {
		for _, e := range s.enrollments.ByChallenge(ch.ID) {
			if e.UserID == userID {
				resp.Enrollment = &e
			}
		}
	}
	return resp, nil
}

func (s *ChallengeService) Calendar(ctx context.Context, challengeID string, year int, month time.Month) (*calendar.CalendarResponse, error) {
	ch, err := s.GetChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	return progress.MonthCalendar(*ch, s.records.ByChallenge(ch.ID), year, month, s.now()), nil
}

// Enroll starts the user on a challenge. A missing start date means today.
func (s *ChallengeService) Enroll(ctx context.Context, userID, challengeID string, req *challenge.EnrollRequest) (*challenge.Enrollment, error) {
	ch, err := s.GetChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	start := s.now().UTC()
	if req.StartDate != "" {
		start, err = progress.ParseDay(req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDate, err)
		}
	}

	e := challenge.NewEnrollment(userID, *ch, start)
	added := s.enrollments.AddUnless(e, func(existing []challenge.Enrollment) bool {
		return progress.UserAlreadyEnrolled(userID, ch.ID, existing)
	})
	if !added {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyEnrolled, ch.ID)
	}
	enrollmentsCreated.Inc()

	s.logger.Info("user enrolled",
		zap.String("user_id", userID),
		zap.String("challenge_id", ch.ID),
		zap.Time("end_date", e.EndDate),
	)
	return &e, nil
}

// UserEnrollments lists the user's enrollments. Active ones get their progress
// recomputed from the records; finished ones keep the value they ended with.
// Enrollments whose challenge is gone are skipped.
func (s *ChallengeService) UserEnrollments(ctx context.Context, userID string) []challenge.EnrollmentView {
	enrollments := s.enrollments.ByUser(userID)
	views := make([]challenge.EnrollmentView, 0, len(enrollments))

	for _, e := range enrollments {
		ch, err := s.challenges.Get(e.ChallengeID)
		if err != nil {
			s.logger.Warn("enrollment references missing challenge",
				zap.String("enrollment_id", e.ID),
				zap.String("challenge_id", e.ChallengeID),
			)
			continue
		}
		if e.Status == challenge.StatusActive {
			e.ProgressPercent = progress.ProgressPercent(ch, s.records.ByChallenge(ch.ID))
		}
		views = append(views, challenge.EnrollmentView{Enrollment: e, Challenge: ch})
	}
	return views
}
