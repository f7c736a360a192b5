package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Survey ---
// Survey เก็บ questions และ options ไว้ในเอกสารเดียวกัน
type Survey struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`

	Questions []Question `bson:"questions" json:"questions"`
}

// --- Question ---
type Question struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Text    string             `bson:"text" json:"text"`
	Options []Option           `bson:"options" json:"options"`
}

// --- Option ---
type Option struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Text string             `bson:"text" json:"text"`
}

// CreateSurveyRequest คือ payload สำหรับสร้าง survey ใหม่
type CreateSurveyRequest struct {
	Title       string                  `json:"title" validate:"required"`
	Description string                  `json:"description"`
	Questions   []CreateQuestionRequest `json:"questions"`
}

type CreateQuestionRequest struct {
	Text    string                `json:"text" validate:"required"`
	Options []CreateOptionRequest `json:"options"`
}

type CreateOptionRequest struct {
	Text string `json:"text"`
}

// SurveyListItem ใช้ในหน้า list ของ operator
type SurveyListItem struct {
	ID              primitive.ObjectID `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	InvitationCount int64              `json:"invitationCount"`
	SubmittedCount  int64              `json:"submittedCount"`
}
