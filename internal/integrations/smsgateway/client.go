package smsgateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Client отправляет SMS через Twilio
type Client struct {
	api  MessageCreator
	from string
	log  Logger
}

// NewClient создает клиента Twilio
func NewClient(accountSID, authToken, from string, log Logger) *Client {
	rc := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return newClient(rc.Api, from, log)
}

func newClient(api MessageCreator, from string, log Logger) *Client {
	return &Client{api: api, from: from, log: log}
}

// SendSMS отправляет сообщение на номер to
func (c *Client) SendSMS(ctx context.Context, to, body string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return ErrInvalidPhone
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetBody(body)

	resp, err := c.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrSend, to, err)
	}

	if resp != nil && resp.Sid != nil {
		c.log.Info("SendSMS: message sent to=%s sid=%s", to, *resp.Sid)
	} else {
		c.log.Info("SendSMS: message sent to=%s", to)
	}
	return nil
}
