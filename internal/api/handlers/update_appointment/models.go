package update_appointment

import (
	"time"

	updateAppointment "github.com/m04kA/SMC-TyreService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

// UpdateAppointmentRequest HTTP request model; отсутствующие поля не меняются
type UpdateAppointmentRequest struct {
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	Date       *string `json:"date,omitempty"`
	SlotID     *string `json:"slotId,omitempty"`
	TimeSlotID *int64  `json:"timeSlotId,omitempty"`
	EmployeeID *int64  `json:"employeeId,omitempty"`
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
	EmployeeID *int64  `json:"employeeId,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(id int64) (*updateAppointment.Request, error) {
	req := &updateAppointment.Request{
		ID:         id,
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
		SlotID:     r.SlotID,
		TimeSlotID: r.TimeSlotID,
		EmployeeID: r.EmployeeID,
		Notes:      r.Notes,
	}
	if r.Date != nil {
		date, err := types.ParseDate(*r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateAppointment.Response) *AppointmentResponse {
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
		EmployeeID: resp.EmployeeID,
		Notes:      resp.Notes,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
