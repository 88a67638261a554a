package http

import "github.com/hostelhub/notify-gateway/internal/domain/notify"

type SendRequest struct {
	Number  string `json:"number"`
	Message string `json:"message"`
}

type SendResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

type QRResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	QR      string `json:"qr,omitempty"`
	Message string `json:"message,omitempty"`
}

type SessionStartRequest struct {
	UserID string `json:"userId"`
}

type SessionStartResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

type TaskSpecRequest struct {
	Title   string `json:"title"`
	DueDate string `json:"dueDate"`
}

type DispatchRequest struct {
	Session    string             `json:"session"`
	Template   string             `json:"template"`
	Recipients []notify.Recipient `json:"recipients"`
	Task       *TaskSpecRequest   `json:"task,omitempty"`
}

type DispatchResponse struct {
	Success      bool                    `json:"success"`
	Summary      notify.DispatchSummary  `json:"summary"`
	TasksCreated int                     `json:"tasksCreated"`
	TasksFailed  int                     `json:"tasksFailed"`
	Results      []notify.DispatchResult `json:"results"`
}

type SessionEventPayload struct {
	Status string `json:"status"`
	QR     string `json:"qr,omitempty"`
	Detail string `json:"detail,omitempty"`
}
