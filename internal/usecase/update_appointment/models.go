package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

// Request модель запроса на частичное обновление записи; nil поля не меняются
type Request struct {
	ID         int64
	Name       *string
	Phone      *string
	Email      *string
	Date       *types.Date
	SlotID     *string
	TimeSlotID *int64 // конфигурация для нового слота (nil: активная)
	EmployeeID *int64 // назначенный мастер
	Notes      *string
}

// movesSlot возвращает true, если запрос меняет дату, слот или конфигурацию
func (r *Request) movesSlot() bool {
	return r.Date != nil || r.SlotID != nil || r.TimeSlotID != nil
}

// Response модель ответа с обновленной записью
type Response struct {
	ID         int64
	Name       string
	Phone      string
	Email      string
	Date       types.Date
	SlotID     string
	TimeSlotID int64
	Time       string
	Status     string
	EmployeeID *int64
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
		EmployeeID: a.EmployeeID,
		Notes:      a.Notes,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
