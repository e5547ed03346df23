package slotconfig

import (
	"github.com/m04kA/SMC-TyreService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
