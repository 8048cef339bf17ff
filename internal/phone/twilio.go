package phone

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type TwilioSender struct {
	api  messageCreator
	from string
}

func NewTwilioSender(accountSID, authToken, fromNumber string) (*TwilioSender, error) {
	if accountSID == "" || authToken == "" || fromNumber == "" {
		return nil, ErrNotConfigured
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{api: client.Api, from: fromNumber}, nil
}

// SendSMS does not honour ctx cancellation; the Twilio client has no
// context-aware call.
func (s *TwilioSender) SendSMS(_ context.Context, phoneNumber, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phoneNumber)
	params.SetFrom(s.from)
	params.SetBody(message)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		slog.Error("Twilio rejected message", "to", phoneNumber, "error", err)
		return fmt.Errorf("failed to send SMS via twilio: %w", err)
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	slog.Info("SMS successfully sent", "provider", "twilio", "sid", sid)
	return nil
}
