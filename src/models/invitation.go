package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Invitation คือสิทธิ์การตอบ survey ของอีเมลหนึ่ง ใช้ได้ครั้งเดียว
// (surveyId, email) ต้องไม่ซ้ำกัน บังคับด้วย unique index
type Invitation struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SurveyID    primitive.ObjectID `bson:"surveyId" json:"surveyId"`
	Email       string             `bson:"email" json:"email"`
	UniqueLink  string             `bson:"uniqueLink" json:"uniqueLink"`
	IsSubmitted bool               `bson:"isSubmitted" json:"isSubmitted"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}

// InviteResult สรุปผลการส่งคำเชิญหนึ่ง batch
type InviteResult struct {
	SentCount    int      `json:"sentCount"`
	FailedCount  int      `json:"failedCount"`
	SentEmails   []string `json:"sentEmails"`
	FailedEmails []string `json:"failedEmails"`
}
