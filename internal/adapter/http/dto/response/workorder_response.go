package response

import (
	"time"

	"control_plagas/internal/domain/entities"
)

type VisitResponse struct {
	Date            time.Time `json:"date"`
	Observations    string    `json:"observations"`
	ProductQuantity float64   `json:"product_quantity"`
	ProductType     string    `json:"product_type"`
	Technicians     []string  `json:"technicians"`
}

type WorkOrderResponse struct {
	ID            string            `json:"id"`
	NumeroOrden   int64             `json:"numero_orden"`
	NeighborID    string            `json:"neighbor_id"`
	ServiceType   string            `json:"service_type"`
	ProblemType   string            `json:"problem_type"`
	Status        string            `json:"status"`
	ReceiptNumber string            `json:"receipt_number"`
	ScheduledAt   *time.Time        `json:"scheduled_at,omitempty"`
	Visits        []VisitResponse   `json:"visits"`
	Neighbor      *NeighborResponse `json:"neighbor,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func FromWorkOrder(o entities.WorkOrder) WorkOrderResponse {
	visits := make([]VisitResponse, 0, len(o.Visits))
	for _, v := range o.Visits {
		technicians := v.Technicians
		if technicians == nil {
			technicians = []string{}
		}
		visits = append(visits, VisitResponse{
			Date:            v.Date,
			Observations:    v.Observations,
			ProductQuantity: v.ProductQuantity,
			ProductType:     v.ProductType,
			Technicians:     technicians,
		})
	}

	resp := WorkOrderResponse{
		ID:            o.ID,
		NumeroOrden:   o.NumeroOrden,
		NeighborID:    o.NeighborID,
		ServiceType:   o.ServiceType,
		ProblemType:   o.ProblemType,
		Status:        string(o.Status),
		ReceiptNumber: o.ReceiptNumber,
		ScheduledAt:   o.ScheduledAt,
		Visits:        visits,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	if o.Neighbor != nil {
		n := FromNeighbor(*o.Neighbor)
		resp.Neighbor = &n
	}
	return resp
}

func FromWorkOrders(orders []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromWorkOrder(o))
	}
	return out
}
