package usecase

import (
	"context"
	"fmt"

	"github.com/hostelhub/notify-gateway/internal/infra/wa"
)

type StartSessionUsecase struct {
	wa *wa.Manager
}

func NewStartSessionUsecase(waManager *wa.Manager) *StartSessionUsecase {
	return &StartSessionUsecase{wa: waManager}
}

// Execute idempotently ensures a session exists for the given user. A session
// that is already live is left untouched.
func (u *StartSessionUsecase) Execute(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := u.wa.Start(ctx, userID); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	return nil
}
