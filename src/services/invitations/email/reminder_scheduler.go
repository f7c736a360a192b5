package email

import (
	"log"
	"os"
	"strconv"
	"time"

	DB "survey-api/src/database"
	"survey-api/src/models"

	"github.com/hibiken/asynq"
)

const defaultReminderAfterHours = 72

// reminderDelay อ่านจาก REMINDER_AFTER_HOURS ได้ ค่าเริ่มต้น 72 ชั่วโมง
func reminderDelay() time.Duration {
	hours := defaultReminderAfterHours
	if v := os.Getenv("REMINDER_AFTER_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			hours = n
		}
	}
	return time.Duration(hours) * time.Hour
}

// ScheduleInvitationReminders ตั้ง task เตือนให้ invitation ที่เพิ่งสร้าง
// TaskID ผูกกับ invitation กันการตั้งซ้ำ
func ScheduleInvitationReminders(invitations []models.Invitation) {
	if DB.AsynqClient == nil {
		log.Println("⚠️ Redis/Asynq not available → skip scheduling invitation reminders")
		return
	}

	delay := reminderDelay()
	for _, inv := range invitations {
		task, err := NewInvitationReminderTask(inv.ID.Hex())
		if err != nil {
			log.Println("reminder: create task failed:", err)
			continue
		}

		taskID := "invite-reminder-" + inv.ID.Hex()
		if _, err := DB.AsynqClient.Enqueue(
			task,
			asynq.ProcessIn(delay),
			asynq.TaskID(taskID),
			asynq.MaxRetry(3),
		); err != nil {
			log.Println("reminder: enqueue failed:", err)
		} else {
			log.Printf("✅ scheduled reminder: %s in %s", taskID, delay)
		}
	}
}
