package models

import (
	"time"

	"github.com/m04kA/SMC-TyreService/internal/domain"
)

// Request модели

// BreakTime перерыв в запросах и ответах
type BreakTime struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CreateConfigRequest запрос на создание конфигурации слотов
type CreateConfigRequest struct {
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	BreakTime *BreakTime `json:"breakTime,omitempty"`
	Duration  int        `json:"duration"` // минуты, 15..480
}

// UpdateConfigRequest запрос на обновление конфигурации
// Все поля опциональны; слоты генерируются заново
type UpdateConfigRequest struct {
	StartTime *string    `json:"startTime,omitempty"`
	EndTime   *string    `json:"endTime,omitempty"`
	BreakTime *BreakTime `json:"breakTime,omitempty"`
	// RemoveBreak убирает перерыв; игнорируется, если передан BreakTime
	RemoveBreak bool `json:"removeBreak,omitempty"`
	Duration    *int `json:"duration,omitempty"`
}

// Response модели

// SlotResponse сгенерированный слот
type SlotResponse struct {
	SlotID    string `json:"slotId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBreak   bool   `json:"isBreak"`
}

// ConfigResponse ответ с конфигурацией
type ConfigResponse struct {
	ID             int64          `json:"id"`
	StartTime      string         `json:"startTime"`
	EndTime        string         `json:"endTime"`
	BreakTime      *BreakTime     `json:"breakTime,omitempty"`
	Duration       int            `json:"duration"`
	GeneratedSlots []SlotResponse `json:"generatedSlots"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.TimeSlotConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		ID:             c.ID,
		StartTime:      c.StartTime.String(),
		EndTime:        c.EndTime.String(),
		Duration:       c.Duration,
		GeneratedSlots: make([]SlotResponse, 0, len(c.GeneratedSlots)),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}

	if c.BreakTime != nil {
		resp.BreakTime = &BreakTime{
			Start: c.BreakTime.Start.String(),
			End:   c.BreakTime.End.String(),
		}
	}

	for _, s := range c.GeneratedSlots {
		resp.GeneratedSlots = append(resp.GeneratedSlots, SlotResponse{
			SlotID:    s.SlotID,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			IsBreak:   s.IsBreak,
		})
	}

	return resp
}
