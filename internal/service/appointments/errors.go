package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена или удалена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("invalid appointment status transition")

	// ErrPaymentExists возвращается при попытке отменить запись с оплаченным заказом
	ErrPaymentExists = errors.New("appointment has a paid order and cannot be cancelled")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
