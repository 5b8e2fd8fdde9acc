package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"courtside/coaching-app/internal/domain"
	"courtside/coaching-app/internal/repository"
)

var (
	ErrObjectiveNotFound = errors.New("objective not found")
	ErrObjectiveCap      = fmt.Errorf("a player can have at most %d objectives in progress", domain.MaxActiveObjectives)
)

// ObjectiveService manages per-player training objectives.
type ObjectiveService interface {
	CreateObjective(ctx context.Context, coachID, playerID primitive.ObjectID, text, body string) (*domain.Objective, error)
	GetObjectivesForPlayer(ctx context.Context, coachID, playerID primitive.ObjectID) ([]domain.Objective, error)
	UpdateObjective(ctx context.Context, coachID, objectiveID primitive.ObjectID, text, body string, status domain.ObjectiveStatus) (*domain.Objective, error)
	DeleteObjective(ctx context.Context, coachID, objectiveID primitive.ObjectID) error
}

type objectiveService struct {
	objectiveRepo repository.ObjectiveRepository
	playerRepo    repository.PlayerRepository
	academyRepo   repository.AcademyRepository
}

func NewObjectiveService(objectiveRepo repository.ObjectiveRepository, playerRepo repository.PlayerRepository, academyRepo repository.AcademyRepository) ObjectiveService {
	return &objectiveService{
		objectiveRepo: objectiveRepo,
		playerRepo:    playerRepo,
		academyRepo:   academyRepo,
	}
}

// CreateObjective adds a new in-progress objective for the player. A player
// carries at most MaxActiveObjectives in-progress objectives at a time.
func (s *objectiveService) CreateObjective(ctx context.Context, coachID, playerID primitive.ObjectID, text, body string) (*domain.Objective, error) {
	if text == "" {
		return nil, errors.New("objective text cannot be empty")
	}
	player, err := s.loadPlayer(ctx, coachID, playerID)
	if err != nil {
		return nil, err
	}

	count, err := s.objectiveRepo.CountByPlayerAndStatus(ctx, playerID, domain.ObjectiveInProgress)
	if err != nil {
		return nil, err
	}
	if count >= domain.MaxActiveObjectives {
		return nil, ErrObjectiveCap
	}

	objective := &domain.Objective{
		AcademyID: player.AcademyID,
		PlayerID:  playerID,
		Text:      text,
		Body:      body,
		Status:    domain.ObjectiveInProgress,
	}
	id, err := s.objectiveRepo.Create(ctx, objective)
	if err != nil {
		return nil, err
	}
	objective.ID = id
	return objective, nil
}

func (s *objectiveService) GetObjectivesForPlayer(ctx context.Context, coachID, playerID primitive.ObjectID) ([]domain.Objective, error) {
	if _, err := s.loadPlayer(ctx, coachID, playerID); err != nil {
		return nil, err
	}
	return s.objectiveRepo.GetByPlayerID(ctx, playerID)
}

// UpdateObjective edits text, body, and status. Moving an objective back
// to in-progress re-checks the cap.
func (s *objectiveService) UpdateObjective(ctx context.Context, coachID, objectiveID primitive.ObjectID, text, body string, status domain.ObjectiveStatus) (*domain.Objective, error) {
	objective, err := s.loadObjective(ctx, coachID, objectiveID)
	if err != nil {
		return nil, err
	}

	if status != objective.Status && status == domain.ObjectiveInProgress {
		count, err := s.objectiveRepo.CountByPlayerAndStatus(ctx, objective.PlayerID, domain.ObjectiveInProgress)
		if err != nil {
			return nil, err
		}
		if count >= domain.MaxActiveObjectives {
			return nil, ErrObjectiveCap
		}
	}

	if text != "" {
		objective.Text = text
	}
	objective.Body = body
	objective.Status = status
	if err := s.objectiveRepo.Update(ctx, objective); err != nil {
		return nil, err
	}
	return objective, nil
}

func (s *objectiveService) DeleteObjective(ctx context.Context, coachID, objectiveID primitive.ObjectID) error {
	if _, err := s.loadObjective(ctx, coachID, objectiveID); err != nil {
		return err
	}
	return s.objectiveRepo.Delete(ctx, objectiveID)
}

func (s *objectiveService) loadPlayer(ctx context.Context, coachID, playerID primitive.ObjectID) (*domain.Player, error) {
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

func (s *objectiveService) loadObjective(ctx context.Context, coachID, objectiveID primitive.ObjectID) (*domain.Objective, error) {
	objective, err := s.objectiveRepo.GetByID(ctx, objectiveID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrObjectiveNotFound
		}
		return nil, err
	}
	if _, err := requireMember(ctx, s.academyRepo, objective.AcademyID, coachID); err != nil {
		return nil, err
	}
	return objective, nil
}
