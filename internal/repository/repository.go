package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"courtside/coaching-app/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate document")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors from driver errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository persists coach accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// AcademyRepository persists academies and their coach membership.
type AcademyRepository interface {
	Create(ctx context.Context, academy *domain.Academy) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Academy, error)
	GetByShareCode(ctx context.Context, code string) (*domain.Academy, error)
	GetByMemberID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Academy, error)
	AddMember(ctx context.Context, academyID, coachID primitive.ObjectID) error
}

// PlayerRepository persists players, always scoped to one academy.
type PlayerRepository interface {
	Create(ctx context.Context, player *domain.Player) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Player, error)
	GetByAcademyID(ctx context.Context, academyID primitive.ObjectID) ([]domain.Player, error)
	Update(ctx context.Context, player *domain.Player) error
}

// ObjectiveRepository persists per-player training objectives.
type ObjectiveRepository interface {
	Create(ctx context.Context, objective *domain.Objective) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Objective, error)
	GetByPlayerID(ctx context.Context, playerID primitive.ObjectID) ([]domain.Objective, error)
	CountByPlayerAndStatus(ctx context.Context, playerID primitive.ObjectID, status domain.ObjectiveStatus) (int64, error)
	Update(ctx context.Context, objective *domain.Objective) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TournamentRepository persists per-player tournament calendar entries.
type TournamentRepository interface {
	Create(ctx context.Context, tournament *domain.Tournament) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Tournament, error)
	GetByPlayerID(ctx context.Context, playerID primitive.ObjectID) ([]domain.Tournament, error)
	Update(ctx context.Context, tournament *domain.Tournament) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// SessionRepository persists finalized training sessions. Exercises are
// written once with the session and never updated in place; only notes and
// deletion change a session afterwards.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.TrainingSession) (primitive.ObjectID, error)
	CreateMany(ctx context.Context, sessions []domain.TrainingSession) ([]primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSession, error)
	GetByAcademyID(ctx context.Context, academyID primitive.ObjectID) ([]domain.TrainingSession, error)
	GetByPlayerID(ctx context.Context, playerID primitive.ObjectID) ([]domain.TrainingSession, error)
	UpdateNotes(ctx context.Context, id primitive.ObjectID, notes string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
