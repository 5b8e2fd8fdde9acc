package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"courtside/coaching-app/internal/domain"
	"courtside/coaching-app/internal/repository"
)

var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrBadDateRange       = errors.New("end date cannot be before start date")
)

// TournamentService manages each player's tournament calendar.
type TournamentService interface {
	CreateTournament(ctx context.Context, coachID, playerID primitive.ObjectID, name string, importance domain.TournamentImportance, start, end time.Time) (*domain.Tournament, error)
	GetTournamentsForPlayer(ctx context.Context, coachID, playerID primitive.ObjectID) ([]domain.Tournament, error)
	UpdateTournament(ctx context.Context, coachID, tournamentID primitive.ObjectID, name string, importance domain.TournamentImportance, start, end time.Time) (*domain.Tournament, error)
	DeleteTournament(ctx context.Context, coachID, tournamentID primitive.ObjectID) error
}

type tournamentService struct {
	tournamentRepo repository.TournamentRepository
	playerRepo     repository.PlayerRepository
	academyRepo    repository.AcademyRepository
}

func NewTournamentService(tournamentRepo repository.TournamentRepository, playerRepo repository.PlayerRepository, academyRepo repository.AcademyRepository) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
		academyRepo:    academyRepo,
	}
}

func (s *tournamentService) CreateTournament(ctx context.Context, coachID, playerID primitive.ObjectID, name string, importance domain.TournamentImportance, start, end time.Time) (*domain.Tournament, error) {
	if name == "" {
		return nil, errors.New("tournament name cannot be empty")
	}
	if end.Before(start) {
		return nil, ErrBadDateRange
	}
	player, err := s.loadPlayer(ctx, coachID, playerID)
	if err != nil {
		return nil, err
	}

	tournament := &domain.Tournament{
		AcademyID:  player.AcademyID,
		PlayerID:   playerID,
		Name:       name,
		Importance: importance,
		StartDate:  start,
		EndDate:    end,
	}
	id, err := s.tournamentRepo.Create(ctx, tournament)
	if err != nil {
		return nil, err
	}
	tournament.ID = id
	return tournament, nil
}

func (s *tournamentService) GetTournamentsForPlayer(ctx context.Context, coachID, playerID primitive.ObjectID) ([]domain.Tournament, error) {
	if _, err := s.loadPlayer(ctx, coachID, playerID); err != nil {
		return nil, err
	}
	return s.tournamentRepo.GetByPlayerID(ctx, playerID)
}

func (s *tournamentService) UpdateTournament(ctx context.Context, coachID, tournamentID primitive.ObjectID, name string, importance domain.TournamentImportance, start, end time.Time) (*domain.Tournament, error) {
	if end.Before(start) {
		return nil, ErrBadDateRange
	}
	tournament, err := s.loadTournament(ctx, coachID, tournamentID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		tournament.Name = name
	}
	tournament.Importance = importance
	tournament.StartDate = start
	tournament.EndDate = end
	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		return nil, err
	}
	return tournament, nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, coachID, tournamentID primitive.ObjectID) error {
	if _, err := s.loadTournament(ctx, coachID, tournamentID); err != nil {
		return err
	}
	return s.tournamentRepo.Delete(ctx, tournamentID)
}

func (s *tournamentService) loadPlayer(ctx context.Context, coachID, playerID primitive.ObjectID) (*domain.Player, error) {
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

func (s *tournamentService) loadTournament(ctx context.Context, coachID, tournamentID primitive.ObjectID) (*domain.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	if _, err := requireMember(ctx, s.academyRepo, tournament.AcademyID, coachID); err != nil {
		return nil, err
	}
	return tournament, nil
}
