package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectiveStatus tracks how far a training objective has progressed.
type ObjectiveStatus string

const (
	ObjectiveInProgress    ObjectiveStatus = "in_progress"
	ObjectiveConsolidating ObjectiveStatus = "consolidating"
	ObjectiveIncorporated  ObjectiveStatus = "incorporated"
)

// ParseObjectiveStatus validates a status value coming from the API.
func ParseObjectiveStatus(s string) (ObjectiveStatus, error) {
	switch ObjectiveStatus(s) {
	case ObjectiveInProgress, ObjectiveConsolidating, ObjectiveIncorporated:
		return ObjectiveStatus(s), nil
	}
	return "", fmt.Errorf("unknown objective status %q", s)
}

// MaxActiveObjectives caps how many in-progress objectives a player may
// carry at once.
const MaxActiveObjectives = 5

// Objective is a training goal a coach sets for one player.
type Objective struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AcademyID primitive.ObjectID `bson:"academyId" json:"academyId"`
	PlayerID  primitive.ObjectID `bson:"playerId" json:"playerId"`
	Text      string             `bson:"text" json:"text"`
	Body      string             `bson:"body,omitempty" json:"body,omitempty"` // longer working notes for the objective
	Status    ObjectiveStatus    `bson:"status" json:"status"`
}
