package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"courtside/coaching-app/internal/domain"
)

func newSessionFixture(t *testing.T) (SessionService, *fakeSessionRepo, primitive.ObjectID, primitive.ObjectID, primitive.ObjectID) {
	t.Helper()
	academyRepo := newFakeAcademyRepo()
	playerRepo := newFakePlayerRepo()
	sessionRepo := newFakeSessionRepo()

	coachID := primitive.NewObjectID()
	academyID := seedAcademy(academyRepo, coachID)
	playerID := seedPlayer(playerRepo, academyID, "Carlos")

	svc := NewSessionService(sessionRepo, playerRepo, academyRepo)
	return svc, sessionRepo, coachID, academyID, playerID
}

func validExercise() ExerciseInput {
	return ExerciseInput{
		Type:      "Basket",
		Area:      "Baseline",
		Exercise:  "Static",
		Duration:  "30m",
		Intensity: 7,
	}
}

func TestCreateSession(t *testing.T) {
	svc, _, coachID, academyID, playerID := newSessionFixture(t)
	date := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

	session, err := svc.CreateSession(context.Background(), coachID, playerID, date, []ExerciseInput{validExercise()}, "good pace")
	require.NoError(t, err)

	assert.Equal(t, academyID, session.AcademyID)
	assert.Equal(t, playerID, session.PlayerID)
	require.Len(t, session.Exercises, 1)
	assert.NotEmpty(t, session.Exercises[0].ID)
	assert.Equal(t, domain.TypeBasket, session.Exercises[0].Type)
	assert.Equal(t, "30m", session.Exercises[0].Duration)
}

func TestCreateSessionValidatesExercises(t *testing.T) {
	svc, _, coachID, _, playerID := newSessionFixture(t)

	cases := []struct {
		name   string
		mutate func(*ExerciseInput)
	}{
		{"unknown type", func(ex *ExerciseInput) { ex.Type = "Cardio" }},
		{"unknown area", func(ex *ExerciseInput) { ex.Area = "Baselines" }},
		// Points only exists under Live Ball.
		{"area not valid for type", func(ex *ExerciseInput) { ex.Area = "Points" }},
		{"empty exercise name", func(ex *ExerciseInput) { ex.Exercise = " " }},
		{"empty duration", func(ex *ExerciseInput) { ex.Duration = "" }},
		{"intensity too low", func(ex *ExerciseInput) { ex.Intensity = 0 }},
		{"intensity too high", func(ex *ExerciseInput) { ex.Intensity = 11 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ex := validExercise()
			tc.mutate(&ex)
			_, err := svc.CreateSession(context.Background(), coachID, playerID, time.Now(), []ExerciseInput{ex}, "")
			assert.Error(t, err)
		})
	}
}

func TestCreateSessionNeedsContent(t *testing.T) {
	svc, _, coachID, _, playerID := newSessionFixture(t)

	_, err := svc.CreateSession(context.Background(), coachID, playerID, time.Now(), nil, "")
	assert.Error(t, err)

	// Notes alone are enough.
	_, err = svc.CreateSession(context.Background(), coachID, playerID, time.Now(), nil, "rained out after warmup")
	assert.NoError(t, err)
}

func TestGetSessionsForPlayerWindowed(t *testing.T) {
	svc, _, coachID, _, playerID := newSessionFixture(t)
	day := func(d int) time.Time { return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC) }

	for _, d := range []int{5, 10, 15} {
		_, err := svc.CreateSession(context.Background(), coachID, playerID, day(d), []ExerciseInput{validExercise()}, "")
		require.NoError(t, err)
	}

	start := day(8)
	end := day(12)
	sessions, err := svc.GetSessionsForPlayer(context.Background(), coachID, playerID, &start, &end)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, day(10), sessions[0].Date)

	// Open-ended list comes back most recent first.
	sessions, err = svc.GetSessionsForPlayer(context.Background(), coachID, playerID, nil, nil)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, day(15), sessions[0].Date)
	assert.Equal(t, day(5), sessions[2].Date)
}

func TestUpdateNotesAndDelete(t *testing.T) {
	svc, repo, coachID, _, playerID := newSessionFixture(t)

	session, err := svc.CreateSession(context.Background(), coachID, playerID, time.Now(), []ExerciseInput{validExercise()}, "")
	require.NoError(t, err)

	updated, err := svc.UpdateNotes(context.Background(), coachID, session.ID, "windy day")
	require.NoError(t, err)
	assert.Equal(t, "windy day", updated.Notes)

	stored, err := repo.GetByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, "windy day", stored.Notes)

	require.NoError(t, svc.DeleteSession(context.Background(), coachID, session.ID))
	_, err = svc.UpdateNotes(context.Background(), coachID, session.ID, "gone")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionAccessControl(t *testing.T) {
	svc, _, coachID, _, playerID := newSessionFixture(t)
	stranger := primitive.NewObjectID()

	session, err := svc.CreateSession(context.Background(), coachID, playerID, time.Now(), []ExerciseInput{validExercise()}, "")
	require.NoError(t, err)

	_, err = svc.GetSessionsForPlayer(context.Background(), stranger, playerID, nil, nil)
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.DeleteSession(context.Background(), stranger, session.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
