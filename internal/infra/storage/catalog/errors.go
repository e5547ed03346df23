package catalog

import "errors"

var (
	// ErrProductNotFound возвращается, когда товар не найден или удалён
	ErrProductNotFound = errors.New("catalog.repository: product not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или удалена
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrTaxNotFound возвращается, когда налог не настроен
	ErrTaxNotFound = errors.New("catalog.repository: tax not configured")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")
)
