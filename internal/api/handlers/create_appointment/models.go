package create_appointment

import (
	"time"

	createAppointment "github.com/m04kA/SMC-TyreService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	Date       string  `json:"date"`   // "2025-10-15"
	SlotID     string  `json:"slotId"` // "slot_3"
	TimeSlotID *int64  `json:"timeSlotId,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	Date       string  `json:"date"`
	SlotID     string  `json:"slotId"`
	TimeSlotID int64   `json:"timeSlotId"`
	Time       string  `json:"time"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
		Date:       date,
		SlotID:     r.SlotID,
		TimeSlotID: r.TimeSlotID,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         resp.ID,
		Name:       resp.Name,
		Phone:      resp.Phone,
		Email:      resp.Email,
		Date:       resp.Date.String(),
		SlotID:     resp.SlotID,
		TimeSlotID: resp.TimeSlotID,
		Time:       resp.Time,
		Status:     resp.Status,
		Notes:      resp.Notes,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
