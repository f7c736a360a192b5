package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin คือ operator ที่สร้าง survey และดู report ได้
type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	AdminID      string `json:"adminId" validate:"required"`
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	AdminID      string `json:"adminId"`
	Email        string `json:"email"`
}
