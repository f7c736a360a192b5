package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"survey-api/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleInvitationReminder ส่งเมลเตือนถ้า invitation ยังไม่ถูกตอบ
// invitation หายหรือตอบไปแล้ว = งานจบ ไม่ retry
func HandleInvitationReminder(db *mongo.Database, sender MailSender, baseURL string) asynq.HandlerFunc {
	invitations := db.Collection("invitations")
	surveys := db.Collection("surveys")

	return func(ctx context.Context, t *asynq.Task) error {
		var p InvitationReminderPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Println("❌ reminder payload decode error:", err)
			return err
		}

		id, err := primitive.ObjectIDFromHex(p.InvitationID)
		if err != nil {
			log.Println("❌ reminder: bad invitation id:", p.InvitationID)
			return nil
		}

		var inv models.Invitation
		if err := invitations.FindOne(ctx, bson.M{"_id": id}).Decode(&inv); err != nil {
			if err == mongo.ErrNoDocuments {
				log.Println("⚠️ reminder: invitation not found, skip:", p.InvitationID)
				return nil
			}
			return err
		}
		if inv.IsSubmitted {
			return nil // ตอบแล้ว ไม่ต้องเตือน
		}

		var survey models.Survey
		if err := surveys.FindOne(ctx, bson.M{"_id": inv.SurveyID}).Decode(&survey); err != nil {
			if err == mongo.ErrNoDocuments {
				log.Println("⚠️ reminder: survey deleted, skip:", inv.SurveyID.Hex())
				return nil
			}
			return err
		}

		html, err := RenderInvitationHTML(InvitationEmailData{
			SurveyTitle:       survey.Title,
			SurveyDescription: survey.Description,
			SurveyURL:         BuildSurveyURL(baseURL, inv.UniqueLink),
			IsReminder:        true,
		})
		if err != nil {
			return fmt.Errorf("render reminder email: %w", err)
		}

		if err := sender.Send(inv.Email, ReminderSubject(survey.Title), html); err != nil {
			return fmt.Errorf("send reminder to %s: %w", inv.Email, err)
		}

		log.Println("✅ reminder sent:", inv.Email)
		return nil
	}
}
