package usecase

import (
	"context"
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/hostelhub/notify-gateway/internal/infra/wa"
)

type SessionStatusOutput struct {
	Status  string
	QR      string // PNG data URL, qr_pending only
	Message string
}

type SessionStatusUsecase struct {
	wa *wa.Manager
}

func NewSessionStatusUsecase(waManager *wa.Manager) *SessionStatusUsecase {
	return &SessionStatusUsecase{wa: waManager}
}

// Execute returns the poll-variant snapshot. The raw QR token is rendered as
// a PNG data URL so the admin page can drop it straight into an <img> tag.
// Every call is independent and idempotent; the server holds no per-client
// state.
func (u *SessionStatusUsecase) Execute(ctx context.Context, session string) (*SessionStatusOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := u.wa.Snapshot(session)
	out := &SessionStatusOutput{Status: string(snap.Status)}

	switch snap.Status {
	case wa.StatusConnected:
		out.Message = "Already connected"
	case wa.StatusQRPending:
		dataURL, err := qrDataURL(snap.QR)
		if err != nil {
			return nil, fmt.Errorf("render qr: %w", err)
		}
		out.QR = dataURL
	}

	return out, nil
}

func qrDataURL(token string) (string, error) {
	png, err := qrcode.Encode(token, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
