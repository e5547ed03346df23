package stage_order

import (
	"context"

	stageOrder "github.com/m04kA/SMC-TyreService/internal/usecase/stage_order"
)

type StageOrderUseCase interface {
	Execute(ctx context.Context, req *stageOrder.Request) (*stageOrder.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
