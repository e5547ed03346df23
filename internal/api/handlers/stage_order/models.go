package stage_order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	stageOrder "github.com/m04kA/SMC-TyreService/internal/usecase/stage_order"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

// StageOrderRequest HTTP request model
type StageOrderRequest struct {
	Appointment   AppointmentDraft `json:"appointment"`
	Items         []ItemDraft      `json:"items"`
	PaymentOption string           `json:"paymentOption"` // full | partial
	Charges       decimal.Decimal  `json:"charges"`
	PaymentAmount decimal.Decimal  `json:"paymentAmount"`
}

// AppointmentDraft данные записи до оплаты
type AppointmentDraft struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Date       string `json:"date"`
	SlotID     string `json:"slotId"`
	TimeSlotID *int64 `json:"timeSlotId,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// ItemDraft позиция заказа
type ItemDraft struct {
	Kind     string `json:"kind"` // product | service
	RefID    int64  `json:"refId"`
	Quantity int    `json:"quantity"`
}

// StageOrderResponse HTTP response model; tempOrderId передается в метаданные платежа
type StageOrderResponse struct {
	TempOrderID string `json:"tempOrderId"`
	Time        string `json:"time"`
	ExpiresAt   string `json:"expiresAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *StageOrderRequest) ToUseCaseRequest() (*stageOrder.Request, error) {
	date, err := types.ParseDate(r.Appointment.Date)
	if err != nil {
		return nil, err
	}

	items := make([]stageOrder.Item, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, stageOrder.Item{
			Kind:     domain.ItemKind(it.Kind),
			RefID:    it.RefID,
			Quantity: it.Quantity,
		})
	}

	return &stageOrder.Request{
		Appointment: stageOrder.Appointment{
			Name:       r.Appointment.Name,
			Phone:      r.Appointment.Phone,
			Email:      r.Appointment.Email,
			Date:       date,
			SlotID:     r.Appointment.SlotID,
			TimeSlotID: r.Appointment.TimeSlotID,
			Notes:      r.Appointment.Notes,
		},
		Items:         items,
		PaymentOption: domain.PaymentOption(r.PaymentOption),
		Charges:       r.Charges,
		PaymentAmount: r.PaymentAmount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *stageOrder.Response) *StageOrderResponse {
	return &StageOrderResponse{
		TempOrderID: resp.ID.String(),
		Time:        resp.Time,
		ExpiresAt:   resp.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
