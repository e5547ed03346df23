package models

import (
	"time"

	"github.com/m04kA/SMC-TyreService/internal/domain"
)

// OrderResponse заказ для ответа API; суммы строками с двумя знаками
type OrderResponse struct {
	ID               int64                       `json:"id"`
	Items            []OrderItemResponse         `json:"items"`
	Subtotal         string                      `json:"subtotal"`
	Charges          string                      `json:"charges"`
	TaxName          string                      `json:"taxName"`
	TaxPercentage    string                      `json:"taxPercentage"`
	TaxAmount        string                      `json:"taxAmount"`
	Total            string                      `json:"total"`
	AppointmentID    *int64                      `json:"appointmentId,omitempty"`
	Appointment      *domain.AppointmentSnapshot `json:"appointment,omitempty"`
	Customer         domain.CustomerSnapshot     `json:"customer"`
	Payments         []PaymentResponse           `json:"payments"`
	PaymentSessionID *string                     `json:"paymentSessionId,omitempty"`
	SlotConflict     bool                        `json:"slotConflict"`
	CreatedAt        time.Time                   `json:"createdAt"`
	UpdatedAt        time.Time                   `json:"updatedAt"`
}

// OrderItemResponse позиция заказа
type OrderItemResponse struct {
	Kind      string `json:"kind"`
	RefID     int64  `json:"refId"`
	Name      string `json:"name"`
	Brand     string `json:"brand,omitempty"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	LineTotal string `json:"lineTotal"`
}

// PaymentResponse платеж заказа без сырого payload провайдера
type PaymentResponse struct {
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency,omitempty"`
	TransactionID string    `json:"transactionId,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FromDomainOrder конвертирует domain модель в response
func FromDomainOrder(o *domain.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			Kind:      string(it.Kind),
			RefID:     it.RefID,
			Name:      it.Name,
			Brand:     it.Brand,
			Quantity:  it.Quantity,
			Price:     it.Price.StringFixed(2),
			LineTotal: it.LineTotal.StringFixed(2),
		})
	}

	payments := make([]PaymentResponse, 0, len(o.Payments))
	for _, p := range o.Payments {
		payments = append(payments, PaymentResponse{
			Method:        p.Method,
			Status:        string(p.Status),
			Amount:        p.Amount.StringFixed(2),
			Currency:      p.Currency,
			TransactionID: p.TransactionID,
			UpdatedAt:     p.UpdatedAt,
		})
	}

	return &OrderResponse{
		ID:               o.ID,
		Items:            items,
		Subtotal:         o.Subtotal.StringFixed(2),
		Charges:          o.Charges.StringFixed(2),
		TaxName:          o.TaxName,
		TaxPercentage:    o.TaxPercentage.String(),
		TaxAmount:        o.TaxAmount.StringFixed(2),
		Total:            o.Total.StringFixed(2),
		AppointmentID:    o.AppointmentID,
		Appointment:      o.Appointment,
		Customer:         o.Customer,
		Payments:         payments,
		PaymentSessionID: o.PaymentSessionID,
		SlotConflict:     o.SlotConflict,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
