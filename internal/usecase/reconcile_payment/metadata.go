package reconcile_payment

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

// Ключи метаданных платежа
const (
	metaOrderID           = "order_id"
	metaTempOrderID       = "temp_order_id"
	metaPaymentType       = "payment_type"
	metaCheckoutSessionID = "checkout_session_id"

	// Устаревший формат: черновик целиком в метаданных
	metaCustomerEmail = "customer_email"
	metaCustomerName  = "customer_name"
	metaCustomerPhone = "customer_phone"
	metaDate          = "date"
	metaSlotID        = "slot_id"
	metaTimeSlotID    = "time_slot_id"
	metaTime          = "time"
	metaItems         = "items"
	metaPaymentOption = "payment_option"
	metaCharges       = "charges"
	metaPaymentAmount = "payment_amount"
)

// metadata метаданные платежа; значения приходят строками или числами JSON
type metadata map[string]interface{}

func (m metadata) str(key string) string {
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// rawJSON значение как JSON: строка с JSON внутри или вложенный объект/массив
func (m metadata) rawJSON(key string) []byte {
	switch v := m[key].(type) {
	case nil:
		return nil
	case string:
		return []byte(strings.TrimSpace(v))
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		return raw
	}
}

func (m metadata) int64Ptr(key string) *int64 {
	s := m.str(key)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

func (m metadata) decimal(key string) decimal.Decimal {
	d, err := decimal.NewFromString(m.str(key))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (m metadata) orderID() *int64 {
	return m.int64Ptr(metaOrderID)
}

func (m metadata) tempOrderID() (uuid.UUID, bool) {
	id, err := uuid.Parse(m.str(metaTempOrderID))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// paymentType объявленный тип оплаты; пустое значение, если не задан или неизвестен
func (m metadata) paymentType() domain.PaymentOption {
	opt := domain.PaymentOption(strings.ToLower(m.str(metaPaymentType)))
	if !opt.IsValid() {
		return ""
	}
	return opt
}

// sessionID ключ уникальности заказа: checkout_session_id из метаданных или fallback
func (m metadata) sessionID(fallback string) string {
	if s := m.str(metaCheckoutSessionID); s != "" {
		return s
	}
	return fallback
}

// legacyItem позиция в устаревшем формате: поддерживаются kind/type и refId/id
type legacyItem struct {
	Kind     string      `json:"kind"`
	Type     string      `json:"type"`
	RefID    json.Number `json:"refId"`
	ID       json.Number `json:"id"`
	Quantity json.Number `json:"quantity"`
}

// legacyPayload собирает черновик заказа из устаревших метаданных
func (m metadata) legacyPayload() (*domain.StagedOrderPayload, error) {
	p := &domain.StagedOrderPayload{
		Appointment: domain.StagedAppointment{
			Name:       m.str(metaCustomerName),
			Phone:      m.str(metaCustomerPhone),
			Email:      m.str(metaCustomerEmail),
			Date:       types.Date(m.str(metaDate)),
			SlotID:     m.str(metaSlotID),
			TimeSlotID: m.int64Ptr(metaTimeSlotID),
			Time:       m.str(metaTime),
		},
		PaymentOption: domain.PaymentOption(strings.ToLower(m.str(metaPaymentOption))),
		Charges:       m.decimal(metaCharges),
		PaymentAmount: m.decimal(metaPaymentAmount),
	}
	if !p.PaymentOption.IsValid() {
		p.PaymentOption = domain.PaymentOptionFull
	}

	rawItems := m.rawJSON(metaItems)
	if len(rawItems) == 0 {
		return p, nil
	}

	var items []legacyItem
	if err := json.Unmarshal(rawItems, &items); err != nil {
		return p, fmt.Errorf("decode items: %w", err)
	}
	for _, it := range items {
		kind := domain.ItemKind(strings.ToLower(firstNonEmpty(it.Kind, it.Type)))
		ref, err := strconv.ParseInt(firstNonEmpty(it.RefID.String(), it.ID.String()), 10, 64)
		if err != nil || ref <= 0 || !kind.IsValid() {
			continue
		}
		qty, err := it.Quantity.Int64()
		if err != nil || qty <= 0 {
			qty = 1
		}
		p.Items = append(p.Items, domain.StagedItem{Kind: kind, RefID: ref, Quantity: int(qty)})
	}
	return p, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
