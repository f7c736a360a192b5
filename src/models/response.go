package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Response คือคำตอบหนึ่งข้อจากผู้ตอบหนึ่งคน append-only
// surveyId ถูก denormalize มาด้วยเพื่อให้ query report ง่าย
type Response struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	InvitationID primitive.ObjectID `bson:"invitationId" json:"invitationId"`
	SurveyID     primitive.ObjectID `bson:"surveyId" json:"surveyId"`
	QuestionID   primitive.ObjectID `bson:"questionId" json:"questionId"`
	OptionID     primitive.ObjectID `bson:"optionId" json:"optionId"`
	SubmittedAt  time.Time          `bson:"submittedAt,omitempty" json:"submittedAt"`
}

// SurveyForResponse คือข้อมูลที่หน้า respond ต้องใช้
type SurveyForResponse struct {
	Survey       Survey             `json:"survey"`
	InvitationID primitive.ObjectID `json:"invitationId"`
}
