package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoggedExercise is one recorded unit of training work inside a session.
// Exercises are frozen once their session document is written; only
// session-level fields change after creation.
type LoggedExercise struct {
	ID        string       `bson:"id" json:"id"` // client-generated UUID, not a Mongo ObjectID
	Type      TrainingType `bson:"type" json:"type"`
	Area      TrainingArea `bson:"area" json:"area"`
	Exercise  string       `bson:"exercise" json:"exercise"`
	Duration  string       `bson:"duration" json:"duration"` // free text as entered, e.g. "30m", "1h 30m"
	Intensity int          `bson:"intensity" json:"intensity"`
}

// TrainingSession is one player's record of a finished live session. A
// coach finalizing a live session writes one TrainingSession per
// participating player.
type TrainingSession struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AcademyID primitive.ObjectID `bson:"academyId" json:"academyId"`
	PlayerID  primitive.ObjectID `bson:"playerId" json:"playerId"`
	Date      time.Time          `bson:"date" json:"date"`
	Exercises []LoggedExercise   `bson:"exercises" json:"exercises"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
}
