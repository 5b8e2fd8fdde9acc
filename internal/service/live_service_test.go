package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"courtside/coaching-app/internal/live"
)

type liveFixture struct {
	svc         LiveService
	sessionRepo *fakeSessionRepo
	coachID     primitive.ObjectID
	academyID   primitive.ObjectID
	carlos      primitive.ObjectID
	maria       primitive.ObjectID
}

func newLiveFixture(t *testing.T) *liveFixture {
	t.Helper()
	academyRepo := newFakeAcademyRepo()
	playerRepo := newFakePlayerRepo()
	sessionRepo := newFakeSessionRepo()

	coachID := primitive.NewObjectID()
	academyID := seedAcademy(academyRepo, coachID)
	carlos := seedPlayer(playerRepo, academyID, "Carlos")
	maria := seedPlayer(playerRepo, academyID, "Maria")

	// Empty snapshot dir keeps live state in memory for tests.
	svc := NewLiveService(playerRepo, academyRepo, sessionRepo, "")
	return &liveFixture{
		svc:         svc,
		sessionRepo: sessionRepo,
		coachID:     coachID,
		academyID:   academyID,
		carlos:      carlos,
		maria:       maria,
	}
}

func TestLiveSessionLifecycle(t *testing.T) {
	f := newLiveFixture(t)
	ctx := context.Background()

	state, err := f.svc.Start(ctx, f.coachID, f.academyID, []primitive.ObjectID{f.carlos, f.maria})
	require.NoError(t, err)
	assert.True(t, state.Active)
	assert.Len(t, state.Participants, 2)
	assert.Equal(t, f.academyID, state.AcademyID)

	// Starting again while active fails.
	_, err = f.svc.Start(ctx, f.coachID, f.academyID, []primitive.ObjectID{f.carlos})
	assert.ErrorIs(t, err, live.ErrSessionActive)

	// Log one exercise for both players at once.
	state, err = f.svc.AddExercise(ctx, f.coachID, []primitive.ObjectID{f.carlos, f.maria}, ExerciseInput{
		Type: "Live Ball", Area: "Points", Exercise: "Free", Duration: "20m", Intensity: 8,
	})
	require.NoError(t, err)
	require.Len(t, state.Exercises, 2)
	assert.NotEqual(t, state.Exercises[0].ID, state.Exercises[1].ID)

	saved, err := f.svc.Finish(ctx, f.coachID, "solid points play")
	require.NoError(t, err)
	assert.Equal(t, 2, saved)

	// The store is idle again and sessions are persisted per player.
	state, err = f.svc.State(ctx, f.coachID)
	require.NoError(t, err)
	assert.False(t, state.Active)

	carlosSessions, err := f.sessionRepo.GetByPlayerID(ctx, f.carlos)
	require.NoError(t, err)
	require.Len(t, carlosSessions, 1)
	assert.Equal(t, "solid points play", carlosSessions[0].Notes)
	require.Len(t, carlosSessions[0].Exercises, 1)
}

func TestLiveFinishSkipsIdleParticipants(t *testing.T) {
	f := newLiveFixture(t)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, f.coachID, f.academyID, []primitive.ObjectID{f.carlos, f.maria})
	require.NoError(t, err)

	_, err = f.svc.AddExercise(ctx, f.coachID, []primitive.ObjectID{f.carlos}, ExerciseInput{
		Type: "Basket", Area: "Net", Exercise: "Volley", Duration: "15m", Intensity: 6,
	})
	require.NoError(t, err)

	// No notes, so Maria has nothing to save.
	saved, err := f.svc.Finish(ctx, f.coachID, "")
	require.NoError(t, err)
	assert.Equal(t, 1, saved)

	mariaSessions, err := f.sessionRepo.GetByPlayerID(ctx, f.maria)
	require.NoError(t, err)
	assert.Empty(t, mariaSessions)
}

func TestLiveParticipantManagement(t *testing.T) {
	f := newLiveFixture(t)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, f.coachID, f.academyID, []primitive.ObjectID{f.carlos})
	require.NoError(t, err)

	// The only participant cannot be removed.
	_, err = f.svc.RemoveParticipant(ctx, f.coachID, f.carlos)
	assert.ErrorIs(t, err, ErrLastParticipant)

	state, err := f.svc.AddParticipant(ctx, f.coachID, f.maria)
	require.NoError(t, err)
	assert.Len(t, state.Participants, 2)

	state, err = f.svc.RemoveParticipant(ctx, f.coachID, f.carlos)
	require.NoError(t, err)
	require.Len(t, state.Participants, 1)
	assert.Equal(t, f.maria, state.Participants[0].ID)

	// Exercises cannot be logged for a non-participant.
	_, err = f.svc.AddExercise(ctx, f.coachID, []primitive.ObjectID{f.carlos}, ExerciseInput{
		Type: "Basket", Area: "Baseline", Exercise: "Static", Duration: "10m", Intensity: 5,
	})
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestLiveDiscardSavesNothing(t *testing.T) {
	f := newLiveFixture(t)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, f.coachID, f.academyID, []primitive.ObjectID{f.carlos})
	require.NoError(t, err)
	_, err = f.svc.AddExercise(ctx, f.coachID, []primitive.ObjectID{f.carlos}, ExerciseInput{
		Type: "Basket", Area: "Baseline", Exercise: "Static", Duration: "10m", Intensity: 5,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Discard(ctx, f.coachID))

	state, err := f.svc.State(ctx, f.coachID)
	require.NoError(t, err)
	assert.False(t, state.Active)

	sessions, err := f.sessionRepo.GetByPlayerID(ctx, f.carlos)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestLiveSessionsAreIsolatedPerCoach(t *testing.T) {
	f := newLiveFixture(t)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, f.coachID, f.academyID, []primitive.ObjectID{f.carlos})
	require.NoError(t, err)

	otherCoach := primitive.NewObjectID()
	state, err := f.svc.State(ctx, otherCoach)
	require.NoError(t, err)
	assert.False(t, state.Active)
}
