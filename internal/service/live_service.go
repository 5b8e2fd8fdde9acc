package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"courtside/coaching-app/internal/domain"
	"courtside/coaching-app/internal/live"
	"courtside/coaching-app/internal/repository"
)

var (
	ErrLastParticipant = errors.New("a live session must keep at least one participant")
	ErrNotParticipant  = errors.New("player is not part of the live session")
)

// LiveState is the API view of a coach's in-progress session.
type LiveState struct {
	Active       bool                   `json:"active"`
	AcademyID    primitive.ObjectID     `json:"academyId,omitempty"`
	Participants []domain.Player        `json:"participants"`
	Exercises    []live.SessionExercise `json:"exercises"`
}

// LiveService runs one in-progress session per coach, durable across server
// restarts.
type LiveService interface {
	Start(ctx context.Context, coachID, academyID primitive.ObjectID, playerIDs []primitive.ObjectID) (*LiveState, error)
	State(ctx context.Context, coachID primitive.ObjectID) (*LiveState, error)
	AddExercise(ctx context.Context, coachID primitive.ObjectID, playerIDs []primitive.ObjectID, exercise ExerciseInput) (*LiveState, error)
	AddParticipant(ctx context.Context, coachID, playerID primitive.ObjectID) (*LiveState, error)
	RemoveParticipant(ctx context.Context, coachID, playerID primitive.ObjectID) (*LiveState, error)
	Finish(ctx context.Context, coachID primitive.ObjectID, notes string) (saved int, err error)
	Discard(ctx context.Context, coachID primitive.ObjectID) error
}

type liveService struct {
	playerRepo  repository.PlayerRepository
	academyRepo repository.AcademyRepository
	sessionRepo repository.SessionRepository

	snapshotDir string

	mu     sync.Mutex
	stores map[string]*live.Store
}

// NewLiveService creates the live session coordinator. snapshotDir may be
// empty, in which case sessions survive only as long as the process.
func NewLiveService(playerRepo repository.PlayerRepository, academyRepo repository.AcademyRepository, sessionRepo repository.SessionRepository, snapshotDir string) LiveService {
	return &liveService{
		playerRepo:  playerRepo,
		academyRepo: academyRepo,
		sessionRepo: sessionRepo,
		snapshotDir: snapshotDir,
		stores:      make(map[string]*live.Store),
	}
}

// storeFor returns the coach's store, creating it on first use. Each coach
// gets their own snapshot file keyed by coach ID.
func (s *liveService) storeFor(coachID primitive.ObjectID) (*live.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := coachID.Hex()
	if store, ok := s.stores[key]; ok {
		return store, nil
	}

	var storage live.Storage
	if s.snapshotDir == "" {
		storage = live.NewMemoryStorage()
	} else {
		fs, err := live.NewFileStorage(s.snapshotDir, key)
		if err != nil {
			return nil, err
		}
		storage = fs
	}
	store := live.NewStore(storage)
	s.stores[key] = store
	return store, nil
}

// Start opens a live session with the chosen players, all of whom must be
// active members of the academy.
func (s *liveService) Start(ctx context.Context, coachID, academyID primitive.ObjectID, playerIDs []primitive.ObjectID) (*LiveState, error) {
	if len(playerIDs) == 0 {
		return nil, errors.New("select at least one player to start a session")
	}
	if _, err := requireMember(ctx, s.academyRepo, academyID, coachID); err != nil {
		return nil, err
	}

	players := make([]domain.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		player, err := s.playerRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrPlayerNotFound
			}
			return nil, err
		}
		if player.AcademyID != academyID {
			return nil, ErrPlayerNotFound
		}
		if !player.IsActive() {
			return nil, errors.New("archived players cannot join a live session")
		}
		players = append(players, *player)
	}

	store, err := s.storeFor(coachID)
	if err != nil {
		return nil, err
	}
	if err := store.Start(players); err != nil {
		return nil, err
	}
	return s.stateOf(store), nil
}

// State reports the coach's current live session, resuming a stored
// snapshot if the server restarted mid-session.
func (s *liveService) State(ctx context.Context, coachID primitive.ObjectID) (*LiveState, error) {
	store, err := s.storeFor(coachID)
	if err != nil {
		return nil, err
	}
	if !store.Active() {
		if _, err := store.Resume(); err != nil {
			return nil, err
		}
	}
	return s.stateOf(store), nil
}

// AddExercise logs the exercise once per listed player. The same entry
// appears in each player's final session, each copy with its own ID.
func (s *liveService) AddExercise(ctx context.Context, coachID primitive.ObjectID, playerIDs []primitive.ObjectID, exercise ExerciseInput) (*LiveState, error) {
	if len(playerIDs) == 0 {
		return nil, errors.New("select at least one player to log the exercise for")
	}
	store, err := s.storeFor(coachID)
	if err != nil {
		return nil, err
	}

	participants := store.Participants()
	byID := make(map[string]domain.Player, len(participants))
	for _, p := range participants {
		byID[p.ID.Hex()] = p
	}

	for _, id := range playerIDs {
		player, ok := byID[id.Hex()]
		if !ok {
			return nil, ErrNotParticipant
		}
		ex, err := buildExercise(exercise)
		if err != nil {
			return nil, err
		}
		entry := live.SessionExercise{
			LoggedExercise:      ex,
			LoggedForPlayerID:   player.ID.Hex(),
			LoggedForPlayerName: player.Name,
		}
		if err := store.AddExercise(entry); err != nil {
			return nil, err
		}
	}
	return s.stateOf(store), nil
}

// AddParticipant brings another academy player into the running session.
func (s *liveService) AddParticipant(ctx context.Context, coachID, playerID primitive.ObjectID) (*LiveState, error) {
	store, err := s.storeFor(coachID)
	if err != nil {
		return nil, err
	}
	participants := store.Participants()
	if len(participants) == 0 {
		return nil, live.ErrNoActiveSession
	}

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	if player.AcademyID != participants[0].AcademyID {
		return nil, ErrPlayerNotFound
	}
	if !player.IsActive() {
		return nil, errors.New("archived players cannot join a live session")
	}

	if err := store.AddParticipant(*player); err != nil {
		return nil, err
	}
	return s.stateOf(store), nil
}

// RemoveParticipant drops a player, keeping their already-logged exercises.
// The last participant cannot be removed; discard the session instead.
func (s *liveService) RemoveParticipant(ctx context.Context, coachID, playerID primitive.ObjectID) (*LiveState, error) {
	store, err := s.storeFor(coachID)
	if err != nil {
		return nil, err
	}
	if !store.Active() {
		return nil, live.ErrNoActiveSession
	}
	if len(store.Participants()) <= 1 {
		return nil, ErrLastParticipant
	}
	if err := store.RemoveParticipant(playerID); err != nil {
		return nil, err
	}
	return s.stateOf(store), nil
}

// Finish converts the live session into one TrainingSession per
// participating player, saves them, and clears the snapshot. Participants
// with no exercises and no notes are skipped.
func (s *liveService) Finish(ctx context.Context, coachID primitive.ObjectID, notes string) (int, error) {
	store, err := s.storeFor(coachID)
	if err != nil {
		return 0, err
	}
	participants := store.Participants()
	if len(participants) == 0 {
		return 0, live.ErrNoActiveSession
	}

	sessions, err := store.BuildSessions(participants[0].AcademyID, notes, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	if len(sessions) > 0 {
		if _, err := s.sessionRepo.CreateMany(ctx, sessions); err != nil {
			return 0, err
		}
	}
	if err := store.Finalize(); err != nil {
		return 0, err
	}
	return len(sessions), nil
}

// Discard throws the live session away without saving anything.
func (s *liveService) Discard(ctx context.Context, coachID primitive.ObjectID) error {
	store, err := s.storeFor(coachID)
	if err != nil {
		return err
	}
	return store.Discard()
}

func (s *liveService) stateOf(store *live.Store) *LiveState {
	state := &LiveState{
		Active:       store.Active(),
		Participants: store.Participants(),
		Exercises:    store.Exercises(),
	}
	if state.Active && len(state.Participants) > 0 {
		state.AcademyID = state.Participants[0].AcademyID
	}
	return state
}
