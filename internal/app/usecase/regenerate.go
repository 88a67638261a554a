package usecase

import (
	"context"
	"fmt"

	"github.com/hostelhub/notify-gateway/internal/infra/wa"
)

type RegenerateUsecase struct {
	wa *wa.Manager
}

func NewRegenerateUsecase(waManager *wa.Manager) *RegenerateUsecase {
	return &RegenerateUsecase{wa: waManager}
}

// Execute forces a fresh QR cycle for the session.
func (u *RegenerateUsecase) Execute(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := u.wa.Regenerate(ctx, userID); err != nil {
		return fmt.Errorf("regenerate session: %w", err)
	}
	return nil
}
