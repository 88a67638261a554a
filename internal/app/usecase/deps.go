package usecase

import (
	"context"

	"github.com/hostelhub/notify-gateway/internal/infra/tasks"
)

// MessageSender is the slice of the session manager the orchestration layer
// needs. Tests substitute a fake to drive batches without a live session.
type MessageSender interface {
	SendMessage(ctx context.Context, session, number, body string) (string, error)
}

// TaskCreator persists the to-do side record a dispatch can create per
// recipient.
type TaskCreator interface {
	Create(ctx context.Context, t tasks.Task) error
}
