package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/hostelhub/notify-gateway/internal/domain/phone"
)

type SendTextInput struct {
	Session string
	Number  string
	Message string
}

type SendTextOutput struct {
	Status    string
	MessageID string
}

type SendTextUsecase struct {
	sender  MessageSender
	country string
}

func NewSendTextUsecase(sender MessageSender, countryCode string) *SendTextUsecase {
	return &SendTextUsecase{sender: sender, country: countryCode}
}

// Execute sends one message to one number. The number goes through the
// canonical normalization before it reaches the session layer.
func (u *SendTextUsecase) Execute(ctx context.Context, in SendTextInput) (*SendTextOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Session) == "" {
		return nil, fmt.Errorf("session is required")
	}
	if strings.TrimSpace(in.Message) == "" {
		return nil, fmt.Errorf("message is required")
	}

	number, err := phone.NormalizeWithCountry(in.Number, u.country)
	if err != nil {
		return nil, err
	}

	id, err := u.sender.SendMessage(ctx, in.Session, number, in.Message)
	if err != nil {
		return nil, err
	}

	out := &SendTextOutput{Status: "sent", MessageID: id}
	return out, nil
}
