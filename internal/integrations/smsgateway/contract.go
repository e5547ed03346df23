package smsgateway

import (
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// MessageCreator часть Twilio API, которой пользуется клиент
type MessageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
