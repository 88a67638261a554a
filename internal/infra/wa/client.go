package wa

import (
	"context"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/types"
	walog "go.mau.fi/whatsmeow/util/log"
	"google.golang.org/protobuf/proto"
)

// waClient is the slice of the whatsmeow client the manager depends on.
// Tests swap in a fake through Manager.newClient.
type waClient interface {
	Connect() error
	Disconnect()
	IsConnected() bool
	NeedsPairing() bool
	GetQRChannel(ctx context.Context) (<-chan whatsmeow.QRChannelItem, error)
	AddEventHandler(handler func(evt interface{}))
	SendText(ctx context.Context, to types.JID, body string) (string, error)
	Logout(ctx context.Context) error
}

type meowClient struct {
	*whatsmeow.Client
}

func newMeowClient(device *store.Device, logger walog.Logger) waClient {
	return meowClient{whatsmeow.NewClient(device, logger)}
}

func (c meowClient) NeedsPairing() bool {
	return c.Store.ID == nil
}

func (c meowClient) GetQRChannel(ctx context.Context) (<-chan whatsmeow.QRChannelItem, error) {
	return c.Client.GetQRChannel(ctx)
}

func (c meowClient) AddEventHandler(handler func(evt interface{})) {
	c.Client.AddEventHandler(handler)
}

func (c meowClient) SendText(ctx context.Context, to types.JID, body string) (string, error) {
	msg := &waE2E.Message{Conversation: proto.String(body)}
	resp, err := c.Client.SendMessage(ctx, to, msg)
	if err != nil {
		return "", err
	}
	return string(resp.ID), nil
}

func (c meowClient) Logout(ctx context.Context) error {
	return c.Client.Logout(ctx)
}
