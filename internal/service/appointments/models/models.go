package models

import (
	"time"

	"github.com/m04kA/SMC-TyreService/internal/domain"
)

// ListRequest запрос на список записей
type ListRequest struct {
	Date           *string // YYYY-MM-DD (опционально)
	IncludeDeleted bool    // включить отмененные и удаленные
}

// UpdateStatusRequest запрос на смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AppointmentResponse запись для ответа API
type AppointmentResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Date       string    `json:"date"`
	SlotID     string    `json:"slotId"`
	TimeSlotID int64     `json:"timeSlotId"`
	Time       string    `json:"time"`
	Status     string    `json:"status"`
	EmployeeID *int64    `json:"employeeId,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
	IsDeleted  bool      `json:"isDelete"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         a.ID,
		Name:       a.Name,
		Phone:      a.Phone,
		Email:      a.Email,
		Date:       a.Date.String(),
		SlotID:     a.SlotID,
		TimeSlotID: a.TimeSlotID,
		Time:       a.Time,
		Status:     string(a.Status),
		EmployeeID: a.EmployeeID,
		Notes:      a.Notes,
		IsDeleted:  a.IsDeleted,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список записей
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, 0, len(list))
	for _, a := range list {
		result = append(result, FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: result, Total: len(result)}
}
