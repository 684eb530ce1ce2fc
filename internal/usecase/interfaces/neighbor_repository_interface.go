package interfaces

import (
	"context"

	"control_plagas/internal/domain/entities"
)

// INeighborRepository abstracts DynamoDB persistence for Neighbor.
//
// Not-found convention: reads and updates return a zero-value Neighbor with a
// nil error when the id does not exist; Delete reports existence through its
// bool result. Callers distinguish absence by ID == "".
type INeighborRepository interface {
	Create(ctx context.Context, n entities.Neighbor) (entities.Neighbor, error)
	GetByID(ctx context.Context, id string) (entities.Neighbor, error)
	List(ctx context.Context) ([]entities.Neighbor, error)
	Update(ctx context.Context, id string, patch entities.NeighborPatch) (entities.Neighbor, error)
	Delete(ctx context.Context, id string) (bool, error)
}
