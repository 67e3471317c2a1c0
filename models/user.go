package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User predstavlja nalog u kolekciji users (interni identity provider).
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email" json:"email"`
	Password   string             `bson:"password" json:"-"`
	ResetToken string             `bson:"resetToken,omitempty" json:"-"`
}
