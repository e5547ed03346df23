package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TyreService/pkg/types"
)

// PaymentStatus represents the status of a payment record
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentFull    PaymentStatus = "full"
	PaymentFailed  PaymentStatus = "failed"
)

// PaymentOption is what the customer chose at checkout
type PaymentOption string

const (
	PaymentOptionFull    PaymentOption = "full"
	PaymentOptionPartial PaymentOption = "partial"
)

// IsValid returns true for a known option
func (p PaymentOption) IsValid() bool {
	return p == PaymentOptionFull || p == PaymentOptionPartial
}

// Status maps the option to the payment status it settles into
func (p PaymentOption) Status() PaymentStatus {
	if p == PaymentOptionPartial {
		return PaymentPartial
	}
	return PaymentFull
}

// ItemKind distinguishes catalog products from workshop services
type ItemKind string

const (
	ItemProduct ItemKind = "product"
	ItemService ItemKind = "service"
)

// IsValid returns true for a known kind
func (k ItemKind) IsValid() bool {
	return k == ItemProduct || k == ItemService
}

// OrderItem is a line item with a price snapshot
type OrderItem struct {
	Kind      ItemKind        `json:"kind"`
	RefID     int64           `json:"refId"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// Payment is one payment record of an order
type Payment struct {
	Method        string          `json:"method"`
	Status        PaymentStatus   `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency,omitempty"`
	TransactionID string          `json:"transactionId,omitempty"`
	RawPayload    json.RawMessage `json:"rawPayload,omitempty"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// AppointmentSnapshot is the appointment as it was when the order was created
type AppointmentSnapshot struct {
	ID     *int64     `json:"id,omitempty"`
	Name   string     `json:"name"`
	Phone  string     `json:"phone"`
	Email  string     `json:"email"`
	Date   types.Date `json:"date"`
	SlotID string     `json:"slotId"`
	Time   string     `json:"time"`
}

// CustomerSnapshot is the customer contact at order time
type CustomerSnapshot struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Order represents a purchase and its payments
type Order struct {
	ID               int64
	Items            []OrderItem
	Subtotal         decimal.Decimal
	Charges          decimal.Decimal
	TaxName          string
	TaxPercentage    decimal.Decimal
	TaxAmount        decimal.Decimal
	Total            decimal.Decimal
	AppointmentID    *int64
	Appointment      *AppointmentSnapshot
	Customer         CustomerSnapshot
	Payments         []Payment
	PaymentSessionID *string
	// SlotConflict is set when the order was paid but its slot had been taken
	SlotConflict bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PrimaryPayment returns the first payment record, or nil
func (o *Order) PrimaryPayment() *Payment {
	if len(o.Payments) == 0 {
		return nil
	}
	return &o.Payments[0]
}

// IsFullyPaid returns true if the primary payment is settled in full
func (o *Order) IsFullyPaid() bool {
	p := o.PrimaryPayment()
	return p != nil && p.Status == PaymentFull
}

// HasPaidAmount returns true if any payment record carries a positive amount
func (o *Order) HasPaidAmount() bool {
	for _, p := range o.Payments {
		if p.Amount.IsPositive() {
			return true
		}
	}
	return false
}

// Totals is the result of pricing an order
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// CalculateTotals applies tax to the subtotal and adds charges.
// Tax is rounded to cents.
func CalculateTotals(subtotal, charges, taxPercentage decimal.Decimal) Totals {
	tax := subtotal.Mul(taxPercentage).Div(decimal.NewFromInt(100)).Round(2)
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal.Add(tax).Add(charges),
	}
}
