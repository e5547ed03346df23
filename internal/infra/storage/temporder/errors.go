package temporder

import "errors"

var (
	// ErrStagedOrderNotFound возвращается, когда черновик не найден или истёк
	ErrStagedOrderNotFound = errors.New("temporder.repository: staged order not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("temporder.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("temporder.repository: failed to execute query")

	// ErrEncode возвращается при ошибке (де)сериализации payload
	ErrEncode = errors.New("temporder.repository: failed to encode payload")
)
