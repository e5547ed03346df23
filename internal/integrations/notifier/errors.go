package notifier

import "errors"

var (
	// ErrInvalidRecipient пустой адрес получателя
	ErrInvalidRecipient = errors.New("notifier: recipient is required")

	// ErrPublish не удалось поставить письмо в очередь
	ErrPublish = errors.New("notifier: failed to publish email job")

	// ErrConnect не удалось подключиться к RabbitMQ
	ErrConnect = errors.New("notifier: failed to connect to broker")
)
