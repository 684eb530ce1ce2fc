package entities

import "time"

// WorkOrderStatus represents the lifecycle of a work order.
//
// Domain notes:
//   - pending is the initial state.
//   - Transitions are deliberately unguarded: Update may set any valid state
//     and Complete forces completed regardless of the current state.
type WorkOrderStatus string

const (
	WorkOrderStatusPending    WorkOrderStatus = "pending"
	WorkOrderStatusInProgress WorkOrderStatus = "in_progress"
	WorkOrderStatusCompleted  WorkOrderStatus = "completed"
)

// Valid reports whether s is one of the known lifecycle states.
func (s WorkOrderStatus) Valid() bool {
	switch s {
	case WorkOrderStatusPending, WorkOrderStatusInProgress, WorkOrderStatusCompleted:
		return true
	}
	return false
}

// Visit is one field execution recorded against a work order. Visits are
// append-only: once recorded they are never mutated or removed while the
// order exists.
type Visit struct {
	Date            time.Time `json:"date"`
	Observations    string    `json:"observations"`
	ProductQuantity float64   `json:"product_quantity"`
	ProductType     string    `json:"product_type"`
	Technicians     []string  `json:"technicians"`
}

// WorkOrder is a tracked service engagement (orden de trabajo) for one
// neighbor.
//
// Storage model (DynamoDB):
//   - PK: id
//   - numero_orden comes from an atomic counter item and is immutable once
//     assigned; it never appears in any update expression.
type WorkOrder struct {
	ID            string          `json:"id"`
	NumeroOrden   int64           `json:"numero_orden"`
	NeighborID    string          `json:"neighbor_id"`
	ServiceType   string          `json:"service_type"`
	ProblemType   string          `json:"problem_type"`
	Status        WorkOrderStatus `json:"status"`
	ReceiptNumber string          `json:"receipt_number"`
	ScheduledAt   *time.Time      `json:"scheduled_at,omitempty"`
	Visits        []Visit         `json:"visits"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Neighbor is resolved on reads (joined), never persisted with the order.
	Neighbor *Neighbor `json:"neighbor,omitempty"`
}

// WorkOrderPatch carries the updatable fields of a WorkOrder. NumeroOrden is
// intentionally absent: it cannot be changed through any patch.
type WorkOrderPatch struct {
	NeighborID    *string
	ServiceType   *string
	ProblemType   *string
	Status        *WorkOrderStatus
	ReceiptNumber *string
	ScheduledAt   *time.Time
}

// Empty reports whether the patch would change nothing.
func (p WorkOrderPatch) Empty() bool {
	return p.NeighborID == nil && p.ServiceType == nil && p.ProblemType == nil &&
		p.Status == nil && p.ReceiptNumber == nil && p.ScheduledAt == nil
}
