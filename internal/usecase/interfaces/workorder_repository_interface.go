package interfaces

import (
	"context"

	"control_plagas/internal/domain/entities"
)

// IWorkOrderRepository abstracts DynamoDB persistence for WorkOrder.
//
// The repository must provide:
//   - NextNumeroOrden: an atomic increment-and-get on a dedicated counter, so
//     concurrent creations can never observe the same sequence number.
//   - AppendVisit: an atomic list append, so concurrent appends to the same
//     order cannot overwrite each other (no load-mutate-store).
//
// Not-found convention matches INeighborRepository: zero-value entity with nil
// error, bool result on Delete.
type IWorkOrderRepository interface {
	NextNumeroOrden(ctx context.Context) (int64, error)
	Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	List(ctx context.Context) ([]entities.WorkOrder, error)
	Update(ctx context.Context, id string, patch entities.WorkOrderPatch) (entities.WorkOrder, error)
	Delete(ctx context.Context, id string) (bool, error)
	AppendVisit(ctx context.Context, id string, v entities.Visit) (entities.WorkOrder, error)
	SetStatus(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error)
}
