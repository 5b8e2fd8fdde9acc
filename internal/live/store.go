// Package live keeps a coach's unfinished training session durable across
// restarts without committing it to the permanent session collection. Every
// mutation writes the full snapshot through to storage, so a crash loses at
// most the in-flight mutation.
package live

import (
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"courtside/coaching-app/internal/domain"
)

var (
	ErrSessionActive   = errors.New("a live session is already active")
	ErrNoActiveSession = errors.New("no live session is active")
)

// SessionExercise is a logged exercise tagged with the participant it was
// recorded for, so the snapshot can later be split into one TrainingSession
// per player.
type SessionExercise struct {
	domain.LoggedExercise
	LoggedForPlayerID   string `json:"loggedForPlayerId"`
	LoggedForPlayerName string `json:"loggedForPlayerName"`
}

// Snapshot is the durable form of an in-progress session.
type Snapshot struct {
	Participants []domain.Player   `json:"participants"`
	Exercises    []SessionExercise `json:"exercises"`
}

// Store is the in-progress session state machine: Idle until Start, Active
// until Finalize or Discard. Mutations outside Active fail fast rather than
// silently corrupting the snapshot.
type Store struct {
	mu      sync.Mutex
	storage Storage

	active       bool
	participants []domain.Player
	exercises    []SessionExercise
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Start opens a live session with the given participants and persists the
// initial snapshot.
func (s *Store) Start(players []domain.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return ErrSessionActive
	}
	if len(players) == 0 {
		return errors.New("a live session needs at least one participant")
	}
	s.participants = append([]domain.Player(nil), players...)
	s.exercises = nil
	s.active = true
	return s.persist()
}

// Active reports whether a session is in progress.
func (s *Store) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Participants returns a copy of the current participant list.
func (s *Store) Participants() []domain.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Player(nil), s.participants...)
}

// Exercises returns a copy of the exercise log.
func (s *Store) Exercises() []SessionExercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SessionExercise(nil), s.exercises...)
}

// AddExercise appends to the exercise log and writes the snapshot through.
func (s *Store) AddExercise(ex SessionExercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return ErrNoActiveSession
	}
	s.exercises = append(s.exercises, ex)
	return s.persist()
}

// AddParticipant adds a player to the session; already-present players are
// a no-op.
func (s *Store) AddParticipant(p domain.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return ErrNoActiveSession
	}
	for _, existing := range s.participants {
		if existing.ID == p.ID {
			return nil
		}
	}
	s.participants = append(s.participants, p)
	return s.persist()
}

// RemoveParticipant drops a player from the session. The store itself has
// no lower bound on participants; the caller enforces keeping at least one.
func (s *Store) RemoveParticipant(playerID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return ErrNoActiveSession
	}
	kept := s.participants[:0]
	for _, p := range s.participants {
		if p.ID != playerID {
			kept = append(kept, p)
		}
	}
	s.participants = kept
	return s.persist()
}

// Resume restores a previously stored snapshot into the Active state. It
// reports false when no snapshot exists; an empty participant list is
// treated as no snapshot.
func (s *Store) Resume() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return true, nil
	}
	snap, ok, err := s.storage.Load()
	if err != nil {
		return false, err
	}
	if !ok || len(snap.Participants) == 0 {
		return false, nil
	}
	s.participants = snap.Participants
	s.exercises = snap.Exercises
	s.active = true
	return true, nil
}

// BuildSessions groups the logged exercises by the player they were
// recorded for, producing one TrainingSession draft per participant.
// Participants with no exercises and no notes are dropped. The caller is
// expected to persist the drafts and then call Finalize.
func (s *Store) BuildSessions(academyID primitive.ObjectID, notes string, now time.Time) ([]domain.TrainingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return nil, ErrNoActiveSession
	}
	var sessions []domain.TrainingSession
	for _, p := range s.participants {
		var exercises []domain.LoggedExercise
		for _, ex := range s.exercises {
			if ex.LoggedForPlayerID == p.ID.Hex() {
				exercises = append(exercises, ex.LoggedExercise)
			}
		}
		if len(exercises) == 0 && notes == "" {
			continue
		}
		sessions = append(sessions, domain.TrainingSession{
			AcademyID: academyID,
			PlayerID:  p.ID,
			Date:      now,
			Exercises: exercises,
			Notes:     notes,
		})
	}
	return sessions, nil
}

// Finalize clears the stored snapshot and resets the store to Idle. The
// in-memory session must already have been converted into permanent
// TrainingSession documents by the caller.
func (s *Store) Finalize() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return ErrNoActiveSession
	}
	return s.reset()
}

// Discard throws the session away without persisting anything. Discarding
// with no active session just clears any stale snapshot.
func (s *Store) Discard() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reset()
}

func (s *Store) reset() error {
	s.participants = nil
	s.exercises = nil
	s.active = false
	return s.storage.Clear()
}

// persist writes the full snapshot through to storage. Called with the
// mutex held, after the in-memory mutation it reflects.
func (s *Store) persist() error {
	return s.storage.Save(&Snapshot{
		Participants: s.participants,
		Exercises:    s.exercises,
	})
}
