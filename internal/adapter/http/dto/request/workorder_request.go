package request

import (
	"time"

	"control_plagas/internal/domain/entities"
)

// WorkOrderRequest is the creation payload for a work order. The sequence
// number is never accepted from the caller; the ledger assigns it.
type WorkOrderRequest struct {
	NeighborID    string     `json:"neighbor_id" binding:"required"`
	ServiceType   string     `json:"service_type" binding:"required"`
	ProblemType   string     `json:"problem_type"`
	ReceiptNumber string     `json:"receipt_number"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
}

func (r WorkOrderRequest) ToEntity() entities.WorkOrder {
	return entities.WorkOrder{
		NeighborID:    r.NeighborID,
		ServiceType:   r.ServiceType,
		ProblemType:   r.ProblemType,
		ReceiptNumber: r.ReceiptNumber,
		ScheduledAt:   r.ScheduledAt,
	}
}

// WorkOrderUpdateRequest is a partial patch. There is deliberately no
// numero_orden field here: the sequence number is immutable.
type WorkOrderUpdateRequest struct {
	NeighborID    *string    `json:"neighbor_id"`
	ServiceType   *string    `json:"service_type"`
	ProblemType   *string    `json:"problem_type"`
	Status        *string    `json:"status"`
	ReceiptNumber *string    `json:"receipt_number"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
}

func (r WorkOrderUpdateRequest) ToPatch() entities.WorkOrderPatch {
	patch := entities.WorkOrderPatch{
		NeighborID:    r.NeighborID,
		ServiceType:   r.ServiceType,
		ProblemType:   r.ProblemType,
		ReceiptNumber: r.ReceiptNumber,
		ScheduledAt:   r.ScheduledAt,
	}
	if r.Status != nil {
		status := entities.WorkOrderStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

// VisitRequest records one field execution against a work order.
// Technicians may be empty but the field itself is part of the payload.
type VisitRequest struct {
	Date            time.Time `json:"date" binding:"required"`
	Observations    string    `json:"observations" binding:"required"`
	ProductQuantity float64   `json:"product_quantity" binding:"required,gt=0"`
	ProductType     string    `json:"product_type" binding:"required"`
	Technicians     []string  `json:"technicians"`
}

func (r VisitRequest) ToEntity() entities.Visit {
	technicians := r.Technicians
	if technicians == nil {
		technicians = []string{}
	}
	return entities.Visit{
		Date:            r.Date,
		Observations:    r.Observations,
		ProductQuantity: r.ProductQuantity,
		ProductType:     r.ProductType,
		Technicians:     technicians,
	}
}
