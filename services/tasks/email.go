package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeEmailSend = "email:send"

// EmailPayload is the queued unit of outbound mail.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

func NewEmailTask(payload EmailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeEmailSend, b), nil
}
