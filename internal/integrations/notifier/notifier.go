package notifier

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Notifier ставит письма в очередь почтового воркера.
// Без publisher работает в режиме только логирования.
type Notifier struct {
	publisher Publisher
	log       Logger
	now       func() time.Time
}

// NewNotifier создает отправщика уведомлений; publisher может быть nil
func NewNotifier(publisher Publisher, log Logger) *Notifier {
	return &Notifier{
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

// Send публикует задание на отправку письма
func (n *Notifier) Send(ctx context.Context, to, subject, htmlBody string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return ErrInvalidRecipient
	}

	if n.publisher == nil {
		n.log.Info("Send: broker disabled, email to=%s subject=%q not queued", to, subject)
		return nil
	}

	job := EmailJob{
		To:        to,
		Subject:   subject,
		HTMLBody:  htmlBody,
		CreatedAt: n.now().UTC(),
	}

	if err := n.publisher.PublishJSON(ctx, EmailRoutingKey, job); err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrPublish, to, err)
	}

	n.log.Info("Send: email to=%s subject=%q queued", to, subject)
	return nil
}
