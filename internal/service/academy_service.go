package service

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"courtside/coaching-app/internal/domain"
	"courtside/coaching-app/internal/repository"
)

var (
	ErrAcademyNotFound = errors.New("academy not found")
	ErrAccessDenied    = errors.New("coach is not a member of this academy")
	ErrBadShareCode    = errors.New("no academy with this share code")
)

const (
	shareCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	shareCodeLength   = 6
)

// AcademyService manages tenants and coach membership.
type AcademyService interface {
	CreateAcademy(ctx context.Context, ownerID primitive.ObjectID, name string) (*domain.Academy, error)
	JoinAcademy(ctx context.Context, coachID primitive.ObjectID, shareCode string) (*domain.Academy, error)
	GetAcademiesForCoach(ctx context.Context, coachID primitive.ObjectID) ([]domain.Academy, error)
	RequireMember(ctx context.Context, academyID, coachID primitive.ObjectID) (*domain.Academy, error)
}

type academyService struct {
	academyRepo repository.AcademyRepository
}

func NewAcademyService(academyRepo repository.AcademyRepository) AcademyService {
	return &academyService{academyRepo: academyRepo}
}

// CreateAcademy creates a new academy owned by the coach, who becomes its
// first member. Share-code collisions are retried a few times; the unique
// index is the final arbiter.
func (s *academyService) CreateAcademy(ctx context.Context, ownerID primitive.ObjectID, name string) (*domain.Academy, error) {
	if name == "" {
		return nil, errors.New("academy name cannot be empty")
	}
	if ownerID == primitive.NilObjectID {
		return nil, errors.New("owner ID is required")
	}

	for attempt := 0; attempt < 3; attempt++ {
		academy := &domain.Academy{
			Name:      name,
			ShareCode: newShareCode(),
			OwnerID:   ownerID,
			MemberIDs: []primitive.ObjectID{ownerID},
		}
		id, err := s.academyRepo.Create(ctx, academy)
		if errors.Is(err, repository.ErrDuplicate) {
			continue
		}
		if err != nil {
			return nil, err
		}
		academy.ID = id
		return academy, nil
	}
	return nil, errors.New("could not allocate a unique share code")
}

// JoinAcademy adds the coach to the academy matching the share code.
func (s *academyService) JoinAcademy(ctx context.Context, coachID primitive.ObjectID, shareCode string) (*domain.Academy, error) {
	code := strings.ToUpper(strings.TrimSpace(shareCode))
	if code == "" {
		return nil, ErrBadShareCode
	}

	academy, err := s.academyRepo.GetByShareCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBadShareCode
		}
		return nil, err
	}
	if err := s.academyRepo.AddMember(ctx, academy.ID, coachID); err != nil {
		return nil, err
	}
	if !academy.HasMember(coachID) {
		academy.MemberIDs = append(academy.MemberIDs, coachID)
	}
	return academy, nil
}

// GetAcademiesForCoach lists the academies the coach belongs to.
func (s *academyService) GetAcademiesForCoach(ctx context.Context, coachID primitive.ObjectID) ([]domain.Academy, error) {
	return s.academyRepo.GetByMemberID(ctx, coachID)
}

// RequireMember loads the academy and verifies the coach belongs to it.
func (s *academyService) RequireMember(ctx context.Context, academyID, coachID primitive.ObjectID) (*domain.Academy, error) {
	return requireMember(ctx, s.academyRepo, academyID, coachID)
}

// requireMember is the access check every academy-scoped operation in
// this package goes through.
func requireMember(ctx context.Context, academyRepo repository.AcademyRepository, academyID, coachID primitive.ObjectID) (*domain.Academy, error) {
	academy, err := academyRepo.GetByID(ctx, academyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAcademyNotFound
		}
		return nil, err
	}
	if !academy.HasMember(coachID) {
		return nil, ErrAccessDenied
	}
	return academy, nil
}

// newShareCode builds a 6-character join code like the ones printed on
// academy invites.
func newShareCode() string {
	var b strings.Builder
	for i := 0; i < shareCodeLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(shareCodeAlphabet))))
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			panic(err)
		}
		b.WriteByte(shareCodeAlphabet[n.Int64()])
	}
	return b.String()
}
