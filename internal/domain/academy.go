package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Academy is the tenant unit: players, sessions, objectives and
// tournaments are all scoped to exactly one academy. Coaches join an
// academy with its share code.
type Academy struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      string               `bson:"name" json:"name"`
	ShareCode string               `bson:"shareCode" json:"shareCode"` // 6 uppercase alphanumerics, unique
	OwnerID   primitive.ObjectID   `bson:"ownerId" json:"ownerId"`
	MemberIDs []primitive.ObjectID `bson:"memberIds" json:"memberIds"` // includes the owner
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
}

// HasMember reports whether the given coach belongs to the academy.
func (a *Academy) HasMember(coachID primitive.ObjectID) bool {
	for _, id := range a.MemberIDs {
		if id == coachID {
			return true
		}
	}
	return false
}
