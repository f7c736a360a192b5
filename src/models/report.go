package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SummaryReport รายงานภาพรวมของ survey หนึ่งตัว คำนวณสดทุกครั้ง
type SummaryReport struct {
	SurveyTitle      string           `json:"surveyTitle"`
	TotalInvitations int              `json:"totalInvitations"`
	TotalResponses   int              `json:"totalResponses"`
	ResponseRate     float64          `json:"responseRate"`
	QuestionReports  []QuestionReport `json:"questionReports"`
}

type QuestionReport struct {
	QuestionID   primitive.ObjectID `json:"questionId"`
	QuestionText string             `json:"questionText"`
	Options      []OptionReport     `json:"options"`
}

type OptionReport struct {
	OptionID   primitive.ObjectID `json:"optionId"`
	OptionText string             `json:"optionText"`
	Count      int                `json:"count"`
	Percentage float64            `json:"percentage"`
}

// RespondentReport รายงานรายคน group ตาม email
type RespondentReport struct {
	Email   string             `json:"email"`
	Answers []RespondentAnswer `json:"answers"`
}

type RespondentAnswer struct {
	Question       string `json:"question"`
	SelectedOption string `json:"selectedOption"`
}
