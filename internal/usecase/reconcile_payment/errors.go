package reconcile_payment

import "errors"

var (
	// ErrInvalidInput возвращается, если событие не содержит обязательных полей
	ErrInvalidInput = errors.New("reconcile_payment: invalid event")

	// ErrUnprocessableEvent возвращается, когда по событию нельзя создать заказ (нет email клиента).
	// Событие подтверждается провайдеру и не обрабатывается повторно.
	ErrUnprocessableEvent = errors.New("reconcile_payment: unprocessable event")

	// ErrOrderNotFound возвращается, когда заказ из метаданных не найден
	ErrOrderNotFound = errors.New("reconcile_payment: order not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reconcile_payment: internal error")

	// errDuplicateDelivery сигнал из транзакции: заказ с этой сессией уже создан
	errDuplicateDelivery = errors.New("reconcile_payment: duplicate delivery")
)
