package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"courtside/coaching-app/internal/domain"
)

func newObjectiveFixture(t *testing.T) (ObjectiveService, primitive.ObjectID, primitive.ObjectID) {
	t.Helper()
	academyRepo := newFakeAcademyRepo()
	playerRepo := newFakePlayerRepo()
	objectiveRepo := newFakeObjectiveRepo()

	coachID := primitive.NewObjectID()
	academyID := seedAcademy(academyRepo, coachID)
	playerID := seedPlayer(playerRepo, academyID, "Carlos")

	svc := NewObjectiveService(objectiveRepo, playerRepo, academyRepo)
	return svc, coachID, playerID
}

func TestCreateObjectiveStartsInProgress(t *testing.T) {
	svc, coachID, playerID := newObjectiveFixture(t)

	objective, err := svc.CreateObjective(context.Background(), coachID, playerID, "Flatten the serve toss", "")
	require.NoError(t, err)
	assert.Equal(t, domain.ObjectiveInProgress, objective.Status)
	assert.Equal(t, playerID, objective.PlayerID)
}

func TestCreateObjectiveEnforcesCap(t *testing.T) {
	svc, coachID, playerID := newObjectiveFixture(t)

	for i := 0; i < domain.MaxActiveObjectives; i++ {
		_, err := svc.CreateObjective(context.Background(), coachID, playerID, fmt.Sprintf("Objective %d", i), "")
		require.NoError(t, err)
	}

	_, err := svc.CreateObjective(context.Background(), coachID, playerID, "One too many", "")
	assert.ErrorIs(t, err, ErrObjectiveCap)
}

func TestObjectiveCapFreesUpWhenStatusMoves(t *testing.T) {
	svc, coachID, playerID := newObjectiveFixture(t)

	var first *domain.Objective
	for i := 0; i < domain.MaxActiveObjectives; i++ {
		objective, err := svc.CreateObjective(context.Background(), coachID, playerID, fmt.Sprintf("Objective %d", i), "")
		require.NoError(t, err)
		if first == nil {
			first = objective
		}
	}

	// Consolidating one frees a slot.
	_, err := svc.UpdateObjective(context.Background(), coachID, first.ID, "", "", domain.ObjectiveConsolidating)
	require.NoError(t, err)

	_, err = svc.CreateObjective(context.Background(), coachID, playerID, "Now it fits", "")
	require.NoError(t, err)

	// And moving it back is blocked while the cap is full again.
	_, err = svc.UpdateObjective(context.Background(), coachID, first.ID, "", "", domain.ObjectiveInProgress)
	assert.ErrorIs(t, err, ErrObjectiveCap)
}

func TestObjectiveAccessControl(t *testing.T) {
	svc, _, playerID := newObjectiveFixture(t)
	stranger := primitive.NewObjectID()

	_, err := svc.CreateObjective(context.Background(), stranger, playerID, "Should fail", "")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetObjectivesForPlayer(context.Background(), stranger, playerID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestDeleteObjective(t *testing.T) {
	svc, coachID, playerID := newObjectiveFixture(t)

	objective, err := svc.CreateObjective(context.Background(), coachID, playerID, "Short-lived", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteObjective(context.Background(), coachID, objective.ID))

	objectives, err := svc.GetObjectivesForPlayer(context.Background(), coachID, playerID)
	require.NoError(t, err)
	assert.Empty(t, objectives)
}
