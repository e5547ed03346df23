package booking_guard

import (
	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

// ResolutionKind результат поиска конфигурации
type ResolutionKind int

const (
	// Found конфигурация найдена
	Found ResolutionKind = iota + 1
	// NoActiveConfiguration конфигурация не указана и в системе её нет
	NoActiveConfiguration
)

// Resolution конфигурация, к которой относится слот
type Resolution struct {
	Kind   ResolutionKind
	Config *domain.TimeSlotConfig // nil при NoActiveConfiguration
}

// CheckRequest проверяемая пара (дата, слот)
type CheckRequest struct {
	Date       types.Date
	SlotID     string
	TimeSlotID *int64 // nil: активная конфигурация
	// ExcludeAppointmentID исключает редактируемую запись из проверки занятости
	ExcludeAppointmentID *int64
}

// CheckResult конфигурация и слот, прошедшие проверку
type CheckResult struct {
	Config *domain.TimeSlotConfig
	Slot   domain.Slot
}
