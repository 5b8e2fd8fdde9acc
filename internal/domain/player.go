package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlayerStatus marks whether a player is still training with the academy.
type PlayerStatus string

const (
	PlayerActive   PlayerStatus = "active"
	PlayerArchived PlayerStatus = "archived"
)

// DominantSide is used for both the playing arm and the sighting eye.
type DominantSide string

const (
	SideRight DominantSide = "right"
	SideLeft  DominantSide = "left"
)

// Player is an athlete coached within an academy.
type Player struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AcademyID primitive.ObjectID `bson:"academyId" json:"academyId"`
	Name      string             `bson:"name" json:"name"`
	Status    PlayerStatus       `bson:"status" json:"status"`
	Profile   PlayerProfile      `bson:"profile,omitempty" json:"profile"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PlayerProfile holds the physical and sporting background a coach fills
// in on the player page. All fields are optional.
type PlayerProfile struct {
	Age                  int          `bson:"age,omitempty" json:"age,omitempty"`
	HeightCm             float64      `bson:"heightCm,omitempty" json:"heightCm,omitempty"`
	WeightKg             float64      `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	IdealWeightKg        float64      `bson:"idealWeightKg,omitempty" json:"idealWeightKg,omitempty"`
	DominantArm          DominantSide `bson:"dominantArm,omitempty" json:"dominantArm,omitempty"`
	DominantEye          DominantSide `bson:"dominantEye,omitempty" json:"dominantEye,omitempty"`
	CommunicationChannel string       `bson:"communicationChannel,omitempty" json:"communicationChannel,omitempty"`
	SportsHistory        string       `bson:"sportsHistory,omitempty" json:"sportsHistory,omitempty"`
	CurrentInjuries      string       `bson:"currentInjuries,omitempty" json:"currentInjuries,omitempty"`
	PastInjuries         string       `bson:"pastInjuries,omitempty" json:"pastInjuries,omitempty"`
	WeeklyFrequency      string       `bson:"weeklyFrequency,omitempty" json:"weeklyFrequency,omitempty"`
}

func (p *Player) IsActive() bool {
	return p.Status == PlayerActive
}
