package get_available_slots

import (
	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date       types.Date // Дата, на которую нужны слоты
	TimeSlotID *int64     // ID конфигурации (nil: активная)
}

// Response модель ответа со списком слотов
type Response struct {
	Date       types.Date             // Дата, на которую запрашивались слоты
	TimeSlotID int64                  // ID использованной конфигурации
	Slots      []domain.AvailableSlot // Все слоты конфигурации в порядке генерации
}
