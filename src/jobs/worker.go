package jobs

import (
	"log"
	"os"

	"survey-api/src/database"
	"survey-api/src/services/invitations/email"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
)

// StartWorker รัน asynq worker สำหรับงานเตือน invitation ที่ยังไม่ถูกตอบ
// ไม่มี Redis หรือ SMTP → ข้าม ระบบหลักทำงานต่อได้
func StartWorker(db *mongo.Database) {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("⚠️ Redis not available → reminder worker not started")
		return
	}

	sender, err := email.NewSMTPSenderFromEnv()
	if err != nil {
		log.Println("⚠️ SMTP not configured → reminder worker not started:", err)
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI, Password: os.Getenv("REDIS_PASSWORD")},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(email.TypeInvitationReminder, email.HandleInvitationReminder(db, sender, email.BaseURLFromEnv()))

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ asynq worker stopped:", err)
		}
	}()
	log.Println("✅ Reminder worker started")
}
