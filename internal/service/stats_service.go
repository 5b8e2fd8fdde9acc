package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"courtside/coaching-app/internal/domain"
	"courtside/coaching-app/internal/repository"
	"courtside/coaching-app/internal/stats"
)

// BreakdownResult is the pie chart payload for one drill-down level.
type BreakdownResult struct {
	Title  string                 `json:"title"`
	Level  stats.Level            `json:"level"`
	Path   []string               `json:"path"`
	Points []stats.ChartDataPoint `json:"points"`
}

// IntensityResult is the intensity line chart payload for one drill-down
// scope.
type IntensityResult struct {
	Title  string                 `json:"title"`
	Path   []string               `json:"path"`
	Points []stats.IntensityPoint `json:"points"`
}

// StatsService computes the player analytics charts from finalized
// sessions.
type StatsService interface {
	PlayerBreakdown(ctx context.Context, coachID, playerID primitive.ObjectID, path stats.DrillDownPath, start, end *time.Time) (*BreakdownResult, error)
	PlayerIntensity(ctx context.Context, coachID, playerID primitive.ObjectID, path stats.DrillDownPath, start, end *time.Time) (*IntensityResult, error)
}

type statsService struct {
	sessionRepo repository.SessionRepository
	playerRepo  repository.PlayerRepository
	academyRepo repository.AcademyRepository
}

func NewStatsService(sessionRepo repository.SessionRepository, playerRepo repository.PlayerRepository, academyRepo repository.AcademyRepository) StatsService {
	return &statsService{
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,
		academyRepo: academyRepo,
	}
}

// PlayerBreakdown aggregates recorded minutes per category at the path's
// level, over the player's sessions inside the date window.
func (s *statsService) PlayerBreakdown(ctx context.Context, coachID, playerID primitive.ObjectID, path stats.DrillDownPath, start, end *time.Time) (*BreakdownResult, error) {
	sessions, err := s.scopedSessions(ctx, coachID, playerID, start, end)
	if err != nil {
		return nil, err
	}
	return &BreakdownResult{
		Title:  path.BreakdownTitle(),
		Level:  path.Level(),
		Path:   path,
		Points: stats.CategoryBreakdown(sessions, path),
	}, nil
}

// PlayerIntensity computes the per-session mean intensity series within the
// path's scope.
func (s *statsService) PlayerIntensity(ctx context.Context, coachID, playerID primitive.ObjectID, path stats.DrillDownPath, start, end *time.Time) (*IntensityResult, error) {
	sessions, err := s.scopedSessions(ctx, coachID, playerID, start, end)
	if err != nil {
		return nil, err
	}
	return &IntensityResult{
		Title:  path.IntensityTitle(),
		Path:   path,
		Points: stats.IntensitySeries(sessions, path),
	}, nil
}

func (s *statsService) scopedSessions(ctx context.Context, coachID, playerID primitive.ObjectID, start, end *time.Time) ([]domain.TrainingSession, error) {
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
	sessions, err := s.sessionRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return stats.FilterByDateRange(sessions, start, end), nil
}
