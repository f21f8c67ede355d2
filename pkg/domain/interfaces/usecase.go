package interfaces

import (
	"context"

	"github.com/m-mizutani/carton/pkg/domain/model"
)

// InspectUseCase drives one container inspection run.
type InspectUseCase interface {
	Inspect(ctx context.Context, req *model.InspectRequest) (*model.Report, error)
}
