package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"control_plagas/internal/domain/entities"
	"control_plagas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrWorkOrderNotFound  = errors.New("work order not found")
	ErrInvalidWorkOrderID = errors.New("invalid work order id")
	ErrInvalidWorkOrder   = errors.New("invalid work order payload")
	ErrInvalidVisit       = errors.New("invalid visit payload")
)

// IWorkOrderUseCase exposes the work order ledger operations.
//
// The ledger owns sequence-number assignment (numeroOrden), visit appension
// and state transition. numeroOrden is assigned exactly once at creation and
// can never be changed afterwards; WorkOrderPatch has no field for it.
type IWorkOrderUseCase interface {
	Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error)
	ListAll(ctx context.Context) ([]entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	Update(ctx context.Context, id string, patch entities.WorkOrderPatch) (entities.WorkOrder, error)
	Delete(ctx context.Context, id string) error
	AppendVisit(ctx context.Context, id string, v entities.Visit) (entities.WorkOrder, error)
	Complete(ctx context.Context, id string) (entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo         interfaces.IWorkOrderRepository
	neighborRepo interfaces.INeighborRepository
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, neighborRepo interfaces.INeighborRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, neighborRepo: neighborRepo}
}

func (u *WorkOrderUseCase) Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	o.NeighborID = strings.TrimSpace(o.NeighborID)
	if o.NeighborID == "" {
		return entities.WorkOrder{}, fmt.Errorf("%w: neighbor_id is required", ErrInvalidWorkOrder)
	}
	if strings.TrimSpace(o.ServiceType) == "" {
		return entities.WorkOrder{}, fmt.Errorf("%w: service_type is required", ErrInvalidWorkOrder)
	}

	// The neighbor reference must resolve before the order is accepted.
	neighbor, err := u.neighborRepo.GetByID(ctx, o.NeighborID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if neighbor.ID == "" {
		return entities.WorkOrder{}, fmt.Errorf("%w: neighbor %s does not exist", ErrInvalidWorkOrder, o.NeighborID)
	}

	numero, err := u.repo.NextNumeroOrden(ctx)
	if err != nil {
		log.Printf("[workorder][usecase] sequence assignment failed err=%v", err)
		return entities.WorkOrder{}, err
	}

	now := time.Now().UTC()
	o.ID = uuid.NewString()
	o.NumeroOrden = numero
	o.Status = entities.WorkOrderStatusPending
	o.Visits = []entities.Visit{}
	o.CreatedAt = now
	o.UpdatedAt = now
	o.Neighbor = nil

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	log.Printf("[workorder][usecase] created id=%s numero_orden=%d neighbor_id=%s", created.ID, created.NumeroOrden, created.NeighborID)
	created.Neighbor = &neighbor
	return created, nil
}

func (u *WorkOrderUseCase) ListAll(ctx context.Context) ([]entities.WorkOrder, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return u.resolveNeighbors(ctx, orders)
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	o, err := u.getByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	neighbor, err := u.neighborRepo.GetByID(ctx, o.NeighborID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if neighbor.ID != "" {
		o.Neighbor = &neighbor
	}
	return o, nil
}

func (u *WorkOrderUseCase) Update(ctx context.Context, id string, patch entities.WorkOrderPatch) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	if patch.Empty() {
		return entities.WorkOrder{}, fmt.Errorf("%w: empty patch", ErrInvalidWorkOrder)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return entities.WorkOrder{}, fmt.Errorf("%w: unknown status %q", ErrInvalidWorkOrder, *patch.Status)
	}
	if patch.ServiceType != nil && strings.TrimSpace(*patch.ServiceType) == "" {
		return entities.WorkOrder{}, fmt.Errorf("%w: service_type cannot be blank", ErrInvalidWorkOrder)
	}
	if patch.NeighborID != nil {
		neighborID := strings.TrimSpace(*patch.NeighborID)
		if neighborID == "" {
			return entities.WorkOrder{}, fmt.Errorf("%w: neighbor_id cannot be blank", ErrInvalidWorkOrder)
		}
		neighbor, err := u.neighborRepo.GetByID(ctx, neighborID)
		if err != nil {
			return entities.WorkOrder{}, err
		}
		if neighbor.ID == "" {
			return entities.WorkOrder{}, fmt.Errorf("%w: neighbor %s does not exist", ErrInvalidWorkOrder, neighborID)
		}
		patch.NeighborID = &neighborID
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return updated, nil
}

// Delete removes only the local record. Any calendar event mirrored from this
// order is untouched; the caller sequences the external removal itself.
func (u *WorkOrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidWorkOrderID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrWorkOrderNotFound
	}
	return nil
}

func (u *WorkOrderUseCase) AppendVisit(ctx context.Context, id string, v entities.Visit) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	if err := validateVisit(v); err != nil {
		return entities.WorkOrder{}, err
	}
	if v.Technicians == nil {
		v.Technicians = []string{}
	}

	updated, err := u.repo.AppendVisit(ctx, id, v)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	log.Printf("[workorder][usecase] visit appended id=%s visits=%d", updated.ID, len(updated.Visits))
	return updated, nil
}

// Complete forces the order into completed, whatever the current state. The
// operation is idempotent: completing a completed order is a no-op success.
func (u *WorkOrderUseCase) Complete(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	updated, err := u.repo.SetStatus(ctx, id, entities.WorkOrderStatusCompleted)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return updated, nil
}

func (u *WorkOrderUseCase) getByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if o.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return o, nil
}

// resolveNeighbors joins each order with its neighbor, fetching every distinct
// neighbor id once. Orders whose neighbor vanished keep a nil Neighbor.
func (u *WorkOrderUseCase) resolveNeighbors(ctx context.Context, orders []entities.WorkOrder) ([]entities.WorkOrder, error) {
	cache := make(map[string]*entities.Neighbor, len(orders))
	for i := range orders {
		neighborID := orders[i].NeighborID
		if neighborID == "" {
			continue
		}
		if cached, ok := cache[neighborID]; ok {
			orders[i].Neighbor = cached
			continue
		}
		n, err := u.neighborRepo.GetByID(ctx, neighborID)
		if err != nil {
			return nil, err
		}
		if n.ID == "" {
			cache[neighborID] = nil
			continue
		}
		resolved := n
		cache[neighborID] = &resolved
		orders[i].Neighbor = &resolved
	}
	return orders, nil
}

func validateVisit(v entities.Visit) error {
	switch {
	case v.Date.IsZero():
		return fmt.Errorf("%w: date is required", ErrInvalidVisit)
	case strings.TrimSpace(v.Observations) == "":
		return fmt.Errorf("%w: observations are required", ErrInvalidVisit)
	case v.ProductQuantity <= 0:
		return fmt.Errorf("%w: product_quantity must be positive", ErrInvalidVisit)
	case strings.TrimSpace(v.ProductType) == "":
		return fmt.Errorf("%w: product_type is required", ErrInvalidVisit)
	}
	return nil
}
