package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Member povezuje nalog (userId) sa ulogom i podacima o članu tima.
type Member struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID string             `bson:"userId" json:"userId"`
	Name   string             `bson:"name" json:"name"`
	Role   string             `bson:"role" json:"role"`
}
