package email

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeInvitationReminder = "invitation:reminder"

type InvitationReminderPayload struct {
	InvitationID string `json:"invitation_id"`
}

func NewInvitationReminderTask(invitationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(InvitationReminderPayload{InvitationID: invitationID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeInvitationReminder, payload), nil
}
