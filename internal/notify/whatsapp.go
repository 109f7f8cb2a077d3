package notify

import (
	"context"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/LunaSuiteApps/salon-scheduler/internal/config"
)

// WhatsAppSink sends booking confirmations over Twilio's WhatsApp
// channel.
type WhatsAppSink struct {
	client *twilio.RestClient
	from   string
}

func NewWhatsAppSink(cfg *config.Config) *WhatsAppSink {
	return &WhatsAppSink{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		from: cfg.TwilioWhatsAppFrom,
	}
}

func (s *WhatsAppSink) BookingConfirmed(ctx context.Context, b Booking) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom("whatsapp:" + s.from)
	params.SetTo("whatsapp:" + b.Phone)
	params.SetBody(b.Message())

	_, err := s.client.Api.CreateMessage(params)
	return err
}

var _ Sink = (*WhatsAppSink)(nil)
