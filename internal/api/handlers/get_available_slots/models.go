package get_available_slots

import (
	"strconv"

	getAvailableSlots "github.com/m04kA/SMC-TyreService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date       string          `json:"date"`
	TimeSlotID int64           `json:"timeSlotId"`
	Slots      []AvailableSlot `json:"slots"`
}

// AvailableSlot слот с признаком доступности на дату
type AvailableSlot struct {
	SlotID      string `json:"slotId"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsBreak     bool   `json:"isBreak"`
	IsAvailable bool   `json:"isAvailable"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, timeSlotIDStr string) (*getAvailableSlots.Request, error) {
	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{Date: date}
	if timeSlotIDStr != "" {
		id, err := strconv.ParseInt(timeSlotIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.TimeSlotID = &id
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			SlotID:      slot.SlotID,
			StartTime:   slot.StartTime.String(),
			EndTime:     slot.EndTime.String(),
			IsBreak:     slot.IsBreak,
			IsAvailable: slot.IsAvailable,
		}
	}

	return &AvailableSlotsResponse{
		Date:       resp.Date.String(),
		TimeSlotID: resp.TimeSlotID,
		Slots:      slots,
	}
}
