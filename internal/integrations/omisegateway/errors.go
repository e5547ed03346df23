package omisegateway

import "errors"

var (
	// ErrEventNotVerified событие не удалось получить у Omise: подделка или недоступность API
	ErrEventNotVerified = errors.New("omisegateway: event could not be verified")

	// ErrInvalidEvent событие получено, но его данные не разбираются
	ErrInvalidEvent = errors.New("omisegateway: invalid event payload")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("omisegateway: internal error")
)
