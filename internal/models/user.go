package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password"`
}

// PublicUser is the identity shape returned by the API. The password hash
// never leaves the process.
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID.Hex(),
		Email: u.Email,
	}
}
