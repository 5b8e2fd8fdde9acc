package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"courtside/coaching-app/internal/domain"
	"courtside/coaching-app/internal/repository"
)

var ErrPlayerNotFound = errors.New("player not found")

// PlayerService manages the athletes of an academy.
type PlayerService interface {
	CreatePlayer(ctx context.Context, coachID, academyID primitive.ObjectID, name string) (*domain.Player, error)
	GetPlayer(ctx context.Context, coachID, playerID primitive.ObjectID) (*domain.Player, error)
	GetPlayersForAcademy(ctx context.Context, coachID, academyID primitive.ObjectID) ([]domain.Player, error)
	UpdateProfile(ctx context.Context, coachID, playerID primitive.ObjectID, name string, profile domain.PlayerProfile) (*domain.Player, error)
	SetStatus(ctx context.Context, coachID, playerID primitive.ObjectID, status domain.PlayerStatus) (*domain.Player, error)
}

type playerService struct {
	playerRepo  repository.PlayerRepository
	academyRepo repository.AcademyRepository
}

func NewPlayerService(playerRepo repository.PlayerRepository, academyRepo repository.AcademyRepository) PlayerService {
	return &playerService{playerRepo: playerRepo, academyRepo: academyRepo}
}

// CreatePlayer registers a new active player in the academy. The profile
// starts empty and is filled in later from the player page.
func (s *playerService) CreatePlayer(ctx context.Context, coachID, academyID primitive.ObjectID, name string) (*domain.Player, error) {
	if name == "" {
		return nil, errors.New("player name cannot be empty")
	}
	if _, err := requireMember(ctx, s.academyRepo, academyID, coachID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	player := &domain.Player{
		AcademyID: academyID,
		Name:      name,
		Status:    domain.PlayerActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := s.playerRepo.Create(ctx, player)
	if err != nil {
		return nil, err
	}
	player.ID = id
	return player, nil
}

// GetPlayer fetches one player after checking the coach can see them.
func (s *playerService) GetPlayer(ctx context.Context, coachID, playerID primitive.ObjectID) (*domain.Player, error) {
	return s.loadAuthorized(ctx, coachID, playerID)
}

// GetPlayersForAcademy lists every player in the academy, active and
// archived alike; the roster view filters client-side.
func (s *playerService) GetPlayersForAcademy(ctx context.Context, coachID, academyID primitive.ObjectID) ([]domain.Player, error) {
	if _, err := requireMember(ctx, s.academyRepo, academyID, coachID); err != nil {
		return nil, err
	}
	return s.playerRepo.GetByAcademyID(ctx, academyID)
}

// UpdateProfile replaces the player's name and profile block.
func (s *playerService) UpdateProfile(ctx context.Context, coachID, playerID primitive.ObjectID, name string, profile domain.PlayerProfile) (*domain.Player, error) {
	player, err := s.loadAuthorized(ctx, coachID, playerID)
	if err != nil {
		return nil, err
	}
	if name != "" {
		player.Name = name
	}
	player.Profile = profile
	player.UpdatedAt = time.Now().UTC()
	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// SetStatus archives or reactivates a player. Archived players keep their
// history but drop out of session and live-session pickers.
func (s *playerService) SetStatus(ctx context.Context, coachID, playerID primitive.ObjectID, status domain.PlayerStatus) (*domain.Player, error) {
	if status != domain.PlayerActive && status != domain.PlayerArchived {
		return nil, errors.New("status must be active or archived")
	}
	player, err := s.loadAuthorized(ctx, coachID, playerID)
	if err != nil {
		return nil, err
	}
	player.Status = status
	player.UpdatedAt = time.Now().UTC()
	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

func (s *playerService) loadAuthorized(ctx context.Context, coachID, playerID primitive.ObjectID) (*domain.Player, error) {
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
