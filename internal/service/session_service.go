package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"courtside/coaching-app/internal/domain"
	"courtside/coaching-app/internal/repository"
	"courtside/coaching-app/internal/stats"
)

var ErrSessionNotFound = errors.New("session not found")

// ExerciseInput is the raw exercise form data before enum validation.
type ExerciseInput struct {
	Type      string
	Area      string
	Exercise  string
	Duration  string
	Intensity int
}

// SessionService manages finalized training sessions.
type SessionService interface {
	CreateSession(ctx context.Context, coachID, playerID primitive.ObjectID, date time.Time, exercises []ExerciseInput, notes string) (*domain.TrainingSession, error)
	GetSessionsForAcademy(ctx context.Context, coachID, academyID primitive.ObjectID, start, end *time.Time) ([]domain.TrainingSession, error)
	GetSessionsForPlayer(ctx context.Context, coachID, playerID primitive.ObjectID, start, end *time.Time) ([]domain.TrainingSession, error)
	UpdateNotes(ctx context.Context, coachID, sessionID primitive.ObjectID, notes string) (*domain.TrainingSession, error)
	DeleteSession(ctx context.Context, coachID, sessionID primitive.ObjectID) error
}

type sessionService struct {
	sessionRepo repository.SessionRepository
	playerRepo  repository.PlayerRepository
	academyRepo repository.AcademyRepository
}

func NewSessionService(sessionRepo repository.SessionRepository, playerRepo repository.PlayerRepository, academyRepo repository.AcademyRepository) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,
		academyRepo: academyRepo,
	}
}

// buildExercise validates one exercise form entry and assigns its ID.
// Durations stay free text; only the enums and intensity are checked here.
func buildExercise(in ExerciseInput) (domain.LoggedExercise, error) {
	var out domain.LoggedExercise

	t, err := domain.ParseTrainingType(in.Type)
	if err != nil {
		return out, err
	}
	a, err := domain.ParseTrainingArea(in.Area)
	if err != nil {
		return out, err
	}
	if !domain.ValidAreaForType(t, a) {
		return out, fmt.Errorf("area %q is not available for type %q", in.Area, in.Type)
	}
	if strings.TrimSpace(in.Exercise) == "" {
		return out, errors.New("exercise name cannot be empty")
	}
	if strings.TrimSpace(in.Duration) == "" {
		return out, errors.New("duration cannot be empty")
	}
	if in.Intensity < domain.MinIntensity || in.Intensity > domain.MaxIntensity {
		return out, fmt.Errorf("intensity must be between %d and %d", domain.MinIntensity, domain.MaxIntensity)
	}

	out = domain.LoggedExercise{
		ID:        uuid.NewString(),
		Type:      t,
		Area:      a,
		Exercise:  in.Exercise,
		Duration:  in.Duration,
		Intensity: in.Intensity,
	}
	return out, nil
}

// CreateSession records a past session directly, outside the live flow.
func (s *sessionService) CreateSession(ctx context.Context, coachID, playerID primitive.ObjectID, date time.Time, exercises []ExerciseInput, notes string) (*domain.TrainingSession, error) {
	if len(exercises) == 0 && notes == "" {
		return nil, errors.New("a session needs at least one exercise or notes")
	}
	player, err := s.loadPlayer(ctx, coachID, playerID)
	if err != nil {
		return nil, err
	}

	logged := make([]domain.LoggedExercise, 0, len(exercises))
	for _, in := range exercises {
		ex, err := buildExercise(in)
		if err != nil {
			return nil, err
		}
		logged = append(logged, ex)
	}

	if date.IsZero() {
		date = time.Now().UTC()
	}
	session := &domain.TrainingSession{
		AcademyID: player.AcademyID,
		PlayerID:  playerID,
		Date:      date,
		Exercises: logged,
		Notes:     notes,
	}
	id, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, err
	}
	session.ID = id
	return session, nil
}

// GetSessionsForAcademy lists academy sessions, optionally windowed by an
// inclusive day range, most recent first.
func (s *sessionService) GetSessionsForAcademy(ctx context.Context, coachID, academyID primitive.ObjectID, start, end *time.Time) ([]domain.TrainingSession, error) {
	if _, err := requireMember(ctx, s.academyRepo, academyID, coachID); err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.GetByAcademyID(ctx, academyID)
	if err != nil {
		return nil, err
	}
	return stats.FilterByDateRange(sessions, start, end), nil
}

func (s *sessionService) GetSessionsForPlayer(ctx context.Context, coachID, playerID primitive.ObjectID, start, end *time.Time) ([]domain.TrainingSession, error) {
	if _, err := s.loadPlayer(ctx, coachID, playerID); err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return stats.FilterByDateRange(sessions, start, end), nil
}

// UpdateNotes edits the only mutable field of a finalized session.
func (s *sessionService) UpdateNotes(ctx context.Context, coachID, sessionID primitive.ObjectID, notes string) (*domain.TrainingSession, error) {
	session, err := s.loadSession(ctx, coachID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.sessionRepo.UpdateNotes(ctx, sessionID, notes); err != nil {
		return nil, err
	}
	session.Notes = notes
	return session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, coachID, sessionID primitive.ObjectID) error {
	if _, err := s.loadSession(ctx, coachID, sessionID); err != nil {
		return err
	}
	return s.sessionRepo.Delete(ctx, sessionID)
}

func (s *sessionService) loadPlayer(ctx context.Context, coachID, playerID primitive.ObjectID) (*domain.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	if _, err := requireMember(ctx, s.academyRepo, player.AcademyID, coachID); err != nil {
		return nil, err
	}
	return player, nil
}

func (s *sessionService) loadSession(ctx context.Context, coachID, sessionID primitive.ObjectID) (*domain.TrainingSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if _, err := requireMember(ctx, s.academyRepo, session.AcademyID, coachID); err != nil {
		return nil, err
	}
	return session, nil
}
