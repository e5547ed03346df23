package omisegateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

// Client клиент Omise для проверки входящих событий
type Client struct {
	omc *omise.Client
	log Logger
}

// NewClient создает клиента Omise
func NewClient(publicKey, secretKey string, log Logger) (*Client, error) {
	omc, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: create omise client: %v", ErrInternal, err)
	}
	omc.SetDebug(false)

	return &Client{omc: omc, log: log}, nil
}

// VerifyEvent перечитывает событие по id через API Omise.
// Поддельный id не найдётся, поэтому само тело вебхука не используется.
func (c *Client) VerifyEvent(ctx context.Context, eventID string) (*ChargeEvent, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: empty event id", ErrEventNotVerified)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEventNotVerified, err)
	}

	ev := &omise.Event{}
	if err := c.omc.Do(ev, &operations.RetrieveEvent{EventID: eventID}); err != nil {
		c.log.Warn("VerifyEvent: retrieve event id=%s failed: %v", eventID, err)
		return nil, fmt.Errorf("%w: retrieve event %s: %v", ErrEventNotVerified, eventID, err)
	}

	return normalizeEvent(eventID, ev)
}

// normalizeEvent переводит событие Omise в ChargeEvent.
// Для событий не о платеже заполняются только EventID и EventType.
func normalizeEvent(eventID string, ev *omise.Event) (*ChargeEvent, error) {
	out := &ChargeEvent{
		EventID:   eventID,
		EventType: ev.Key,
	}

	if ev.Key != EventChargeComplete {
		return out, nil
	}

	// ev.Data приходит как interface{}: сериализуем обратно и разбираем как Charge
	raw, err := json.Marshal(ev.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal event data: %v", ErrInvalidEvent, err)
	}

	var ch omise.Charge
	if err := json.Unmarshal(raw, &ch); err != nil {
		return nil, fmt.Errorf("%w: unmarshal charge: %v", ErrInvalidEvent, err)
	}

	out.ChargeID = ch.ID
	out.ChargeStatus = string(ch.Status)
	out.Amount = ch.Amount
	out.Currency = ch.Currency
	out.Metadata = ch.Metadata
	out.Raw = raw

	out.Method = "card"
	if ch.Source != nil && ch.Source.Type != "" {
		out.Method = string(ch.Source.Type)
	}
	if ch.FailureCode != nil {
		out.FailureCode = *ch.FailureCode
	}
	if out.Metadata == nil {
		out.Metadata = map[string]interface{}{}
	}

	return out, nil
}
