package notifier

import "time"

// EmailRoutingKey ключ маршрутизации писем; очередь почтового воркера привязана к нему
const EmailRoutingKey = "notification.email"

// EmailJob задание на отправку письма
type EmailJob struct {
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	HTMLBody  string    `json:"html_body"`
	CreatedAt time.Time `json:"created_at"`
}
