package smsgateway

import "errors"

var (
	// ErrInvalidPhone пустой номер получателя
	ErrInvalidPhone = errors.New("smsgateway: recipient phone is required")

	// ErrSend Twilio отклонил сообщение
	ErrSend = errors.New("smsgateway: failed to send sms")
)
