package reconcile_payment

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/m04kA/SMC-TyreService/internal/domain"
)

var customerTemplate = template.Must(template.New("customer").Parse(`<h2>{{.ShopName}}: payment received</h2>
<p>Hi {{.CustomerName}},</p>
<p>Thank you for your order #{{.OrderID}}. Payment status: <b>{{.PaymentStatus}}</b>.</p>
{{if .HasAppointment}}<p>Your appointment is confirmed for <b>{{.Date}}</b>{{if .Time}} at <b>{{.Time}}</b>{{end}}.</p>
{{else if .SlotConflict}}<p>The time you selected is no longer available. We will contact you to arrange a new time.</p>
{{end}}<table>
{{range .Items}}<tr><td>{{.Name}}{{if .Brand}} ({{.Brand}}){{end}}</td><td>x{{.Quantity}}</td><td>{{.LineTotal.StringFixed 2}}</td></tr>
{{end}}</table>
<p>Subtotal: {{.Subtotal}}<br>{{.TaxName}}: {{.TaxAmount}}<br>Charges: {{.Charges}}<br><b>Total: {{.Total}}</b></p>`))

var adminTemplate = template.Must(template.New("admin").Parse(`<h2>New paid order #{{.OrderID}}</h2>
{{if .SlotConflict}}<p><b>ATTENTION: slot {{.SlotID}} on {{.Date}} was already taken. No appointment was created, contact the customer.</b></p>
{{end}}<p>Customer: {{.CustomerName}} &lt;{{.CustomerEmail}}&gt; {{.CustomerPhone}}</p>
<p>Appointment: {{.Date}} {{.Time}} ({{.SlotID}})</p>
<p>Payment: {{.PaymentStatus}}, {{.PaidAmount}}, transaction {{.TransactionID}}</p>
<p>Total: {{.Total}}</p>`))

type notificationView struct {
	ShopName       string
	OrderID        int64
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	HasAppointment bool
	SlotConflict   bool
	Date           string
	Time           string
	SlotID         string
	Items          []domain.OrderItem
	Subtotal       string
	TaxName        string
	TaxAmount      string
	Charges        string
	Total          string
	PaymentStatus  string
	PaidAmount     string
	TransactionID  string
}

func newNotificationView(shopName string, n notification) notificationView {
	o := n.order
	v := notificationView{
		ShopName:       shopName,
		OrderID:        o.ID,
		CustomerName:   o.Customer.Name,
		CustomerEmail:  o.Customer.Email,
		CustomerPhone:  o.Customer.Phone,
		HasAppointment: o.AppointmentID != nil,
		SlotConflict:   o.SlotConflict,
		Items:          o.Items,
		Subtotal:       o.Subtotal.StringFixed(2),
		TaxName:        o.TaxName,
		TaxAmount:      o.TaxAmount.StringFixed(2),
		Charges:        o.Charges.StringFixed(2),
		Total:          o.Total.StringFixed(2),
	}
	if n.appointment != nil {
		v.Date = n.appointment.Date.String()
		v.Time = n.appointment.Time
		v.SlotID = n.appointment.SlotID
	}
	if p := o.PrimaryPayment(); p != nil {
		v.PaymentStatus = string(p.Status)
		v.PaidAmount = p.Amount.StringFixed(2)
		v.TransactionID = p.TransactionID
	}
	return v
}

func render(t *template.Template, v notificationView) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// notify отправляет письма и SMS после фиксации транзакции.
// Ошибки логируются и считаются в метриках, результат обработки от них не зависит.
func (uc *UseCase) notify(ctx context.Context, n notification, adminNotice bool) {
	timeout := uc.settings.NotifyTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	v := newNotificationView(uc.settings.ShopName, n)

	// 1. Клиенту
	if v.CustomerEmail != "" {
		subject := fmt.Sprintf("%s: order #%d confirmed", uc.settings.ShopName, v.OrderID)
		uc.sendEmail(ctx, "customer", v.CustomerEmail, subject, customerTemplate, v)
	}

	// 2. Администратору
	if adminNotice && uc.settings.AdminEmail != "" {
		subject := fmt.Sprintf("New order #%d", v.OrderID)
		if v.SlotConflict {
			subject = fmt.Sprintf("ACTION REQUIRED: order #%d slot conflict", v.OrderID)
		}
		uc.sendEmail(ctx, "admin", uc.settings.AdminEmail, subject, adminTemplate, v)
	}

	// 3. SMS
	if uc.deps.SMS != nil && v.CustomerPhone != "" && v.HasAppointment {
		body := fmt.Sprintf("%s: your appointment on %s %s is confirmed. Order #%d.",
			uc.settings.ShopName, v.Date, v.Time, v.OrderID)
		if err := uc.deps.SMS.SendSMS(ctx, v.CustomerPhone, body); err != nil {
			uc.deps.Metrics.IncNotificationFailure("sms")
			uc.logger.Warn("ReconcilePayment: SMS for order id=%d failed: %v", v.OrderID, err)
		}
	}
}

func (uc *UseCase) sendEmail(ctx context.Context, kind, to, subject string, t *template.Template, v notificationView) {
	body, err := render(t, v)
	if err != nil {
		uc.deps.Metrics.IncNotificationFailure("email")
		uc.logger.Error("ReconcilePayment: failed to render %s email for order id=%d: %v", kind, v.OrderID, err)
		return
	}
	if err := uc.deps.Notifier.Send(ctx, to, subject, body); err != nil {
		uc.deps.Metrics.IncNotificationFailure("email")
		uc.logger.Warn("ReconcilePayment: %s email for order id=%d failed: %v", kind, v.OrderID, err)
	}
}
