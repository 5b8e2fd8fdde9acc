package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"courtside/coaching-app/internal/domain"
	"courtside/coaching-app/internal/repository"
)

// In-memory repository fakes. They mirror the Mongo implementations'
// observable behavior closely enough for service-level tests.

type fakeAcademyRepo struct {
	academies map[primitive.ObjectID]*domain.Academy
}

func newFakeAcademyRepo() *fakeAcademyRepo {
	return &fakeAcademyRepo{academies: make(map[primitive.ObjectID]*domain.Academy)}
}

func (f *fakeAcademyRepo) Create(_ context.Context, academy *domain.Academy) (primitive.ObjectID, error) {
	for _, existing := range f.academies {
		if existing.ShareCode == academy.ShareCode {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	id := primitive.NewObjectID()
	stored := *academy
	stored.ID = id
	f.academies[id] = &stored
	return id, nil
}

func (f *fakeAcademyRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Academy, error) {
	academy, ok := f.academies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *academy
	return &copied, nil
}

func (f *fakeAcademyRepo) GetByShareCode(_ context.Context, code string) (*domain.Academy, error) {
	for _, academy := range f.academies {
		if academy.ShareCode == code {
			copied := *academy
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAcademyRepo) GetByMemberID(_ context.Context, coachID primitive.ObjectID) ([]domain.Academy, error) {
	var out []domain.Academy
	for _, academy := range f.academies {
		if academy.HasMember(coachID) {
			out = append(out, *academy)
		}
	}
	return out, nil
}

func (f *fakeAcademyRepo) AddMember(_ context.Context, academyID, coachID primitive.ObjectID) error {
	academy, ok := f.academies[academyID]
	if !ok {
		return repository.ErrNotFound
	}
	if !academy.HasMember(coachID) {
		academy.MemberIDs = append(academy.MemberIDs, coachID)
	}
	return nil
}

type fakePlayerRepo struct {
	players map[primitive.ObjectID]*domain.Player
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[primitive.ObjectID]*domain.Player)}
}

func (f *fakePlayerRepo) Create(_ context.Context, player *domain.Player) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *player
	stored.ID = id
	f.players[id] = &stored
	return id, nil
}

func (f *fakePlayerRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Player, error) {
	player, ok := f.players[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *player
	return &copied, nil
}

func (f *fakePlayerRepo) GetByAcademyID(_ context.Context, academyID primitive.ObjectID) ([]domain.Player, error) {
	var out []domain.Player
	for _, player := range f.players {
		if player.AcademyID == academyID {
			out = append(out, *player)
		}
	}
	return out, nil
}

func (f *fakePlayerRepo) Update(_ context.Context, player *domain.Player) error {
	if _, ok := f.players[player.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *player
	f.players[player.ID] = &stored
	return nil
}

type fakeObjectiveRepo struct {
	objectives map[primitive.ObjectID]*domain.Objective
}

func newFakeObjectiveRepo() *fakeObjectiveRepo {
	return &fakeObjectiveRepo{objectives: make(map[primitive.ObjectID]*domain.Objective)}
}

func (f *fakeObjectiveRepo) Create(_ context.Context, objective *domain.Objective) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *objective
	stored.ID = id
	f.objectives[id] = &stored
	return id, nil
}

func (f *fakeObjectiveRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Objective, error) {
	objective, ok := f.objectives[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *objective
	return &copied, nil
}

func (f *fakeObjectiveRepo) GetByPlayerID(_ context.Context, playerID primitive.ObjectID) ([]domain.Objective, error) {
	var out []domain.Objective
	for _, objective := range f.objectives {
		if objective.PlayerID == playerID {
			out = append(out, *objective)
		}
	}
	return out, nil
}

func (f *fakeObjectiveRepo) CountByPlayerAndStatus(_ context.Context, playerID primitive.ObjectID, status domain.ObjectiveStatus) (int64, error) {
	var count int64
	for _, objective := range f.objectives {
		if objective.PlayerID == playerID && objective.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeObjectiveRepo) Update(_ context.Context, objective *domain.Objective) error {
	if _, ok := f.objectives[objective.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *objective
	f.objectives[objective.ID] = &stored
	return nil
}

func (f *fakeObjectiveRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.objectives[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.objectives, id)
	return nil
}

type fakeSessionRepo struct {
	sessions map[primitive.ObjectID]*domain.TrainingSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[primitive.ObjectID]*domain.TrainingSession)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *domain.TrainingSession) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *session
	stored.ID = id
	f.sessions[id] = &stored
	return id, nil
}

func (f *fakeSessionRepo) CreateMany(ctx context.Context, sessions []domain.TrainingSession) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(sessions))
	for i := range sessions {
		id, err := f.Create(ctx, &sessions[i])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeSessionRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.TrainingSession, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionRepo) GetByAcademyID(_ context.Context, academyID primitive.ObjectID) ([]domain.TrainingSession, error) {
	var out []domain.TrainingSession
	for _, session := range f.sessions {
		if session.AcademyID == academyID {
			out = append(out, *session)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) GetByPlayerID(_ context.Context, playerID primitive.ObjectID) ([]domain.TrainingSession, error) {
	var out []domain.TrainingSession
	for _, session := range f.sessions {
		if session.PlayerID == playerID {
			out = append(out, *session)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) UpdateNotes(_ context.Context, id primitive.ObjectID, notes string) error {
	session, ok := f.sessions[id]
	if !ok {
		return repository.ErrNotFound
	}
	session.Notes = notes
	return nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.sessions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.sessions, id)
	return nil
}

// seedAcademy creates an academy with the coach as owner and member.
func seedAcademy(repo *fakeAcademyRepo, coachID primitive.ObjectID) primitive.ObjectID {
	id := primitive.NewObjectID()
	repo.academies[id] = &domain.Academy{
		ID:        id,
		Name:      "Test Academy",
		ShareCode: "ABC123",
		OwnerID:   coachID,
		MemberIDs: []primitive.ObjectID{coachID},
	}
	return id
}

// seedPlayer creates an active player in the academy.
func seedPlayer(repo *fakePlayerRepo, academyID primitive.ObjectID, name string) primitive.ObjectID {
	id := primitive.NewObjectID()
	repo.players[id] = &domain.Player{
		ID:        id,
		AcademyID: academyID,
		Name:      name,
		Status:    domain.PlayerActive,
	}
	return id
}
