package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TournamentImportance grades how much a tournament matters for planning.
type TournamentImportance string

const (
	ImportanceCritical TournamentImportance = "critical"
	ImportanceHigh     TournamentImportance = "high"
	ImportanceMedium   TournamentImportance = "medium"
	ImportanceLow      TournamentImportance = "low"
	ImportanceNone     TournamentImportance = "none"
)

// ParseTournamentImportance validates an importance value from the API.
func ParseTournamentImportance(s string) (TournamentImportance, error) {
	switch TournamentImportance(s) {
	case ImportanceCritical, ImportanceHigh, ImportanceMedium, ImportanceLow, ImportanceNone:
		return TournamentImportance(s), nil
	}
	return "", fmt.Errorf("unknown tournament importance %q", s)
}

// Tournament is a calendar entry for one player.
type Tournament struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	AcademyID  primitive.ObjectID   `bson:"academyId" json:"academyId"`
	PlayerID   primitive.ObjectID   `bson:"playerId" json:"playerId"`
	Name       string               `bson:"name" json:"name"`
	Importance TournamentImportance `bson:"importance" json:"importance"`
	StartDate  time.Time            `bson:"startDate" json:"startDate"`
	EndDate    time.Time            `bson:"endDate" json:"endDate"`
}
