package list_appointments

import (
	"strconv"

	"github.com/m04kA/SMC-TyreService/internal/service/appointments/models"
)

// ToServiceRequest создает запрос из query параметров date и includeDeleted
func ToServiceRequest(date, includeDeleted string) (*models.ListRequest, error) {
	req := &models.ListRequest{}
	if date != "" {
		req.Date = &date
	}
	if includeDeleted != "" {
		v, err := strconv.ParseBool(includeDeleted)
		if err != nil {
			return nil, err
		}
		req.IncludeDeleted = v
	}
	return req, nil
}
