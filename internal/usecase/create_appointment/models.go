package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Name       string     // Имя клиента
	Phone      string     // Телефон клиента
	Email      string     // Email клиента
	Date       types.Date // Дата записи
	SlotID     string     // ID слота из конфигурации (например, "slot_3")
	TimeSlotID *int64     // ID конфигурации (nil: активная)
	Notes      *string    // Заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID         int64
	Name       string
	Phone      string
	Email      string
	Date       types.Date
	SlotID     string
	TimeSlotID int64
	Time       string // "HH:MM - HH:MM"
	Status     string
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func newResponse(a *domain.Appointment) *Response {
	return &Response{
		ID:         a.ID,
		Name:       a.Name,
		Phone:      a.Phone,
		Email:      a.Email,
		Date:       a.Date,
		SlotID:     a.SlotID,
		TimeSlotID: a.TimeSlotID,
		Time:       a.Time,
		Status:     string(a.Status),
		Notes:      a.Notes,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
