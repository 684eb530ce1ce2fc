package response

import (
	"time"

	"control_plagas/internal/domain/entities"
)

type AddressResponse struct {
	Street   string `json:"street"`
	Number   string `json:"number"`
	Locality string `json:"locality"`
}

type NeighborResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Address          AddressResponse `json:"address"`
	Neighborhood     string          `json:"neighborhood"`
	Phone            string          `json:"phone"`
	AreaM2           float64         `json:"area_m2"`
	IsDelegation     bool            `json:"is_delegation"`
	Delegation       string          `json:"delegation"`
	Pays             bool            `json:"pays"`
	ReceiptNumber    string          `json:"receipt_number"`
	NonPaymentReason string          `json:"non_payment_reason"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func FromNeighbor(n entities.Neighbor) NeighborResponse {
	return NeighborResponse{
		ID:   n.ID,
		Name: n.Name,
		Address: AddressResponse{
			Street:   n.Address.Street,
			Number:   n.Address.Number,
			Locality: n.Address.Locality,
		},
		Neighborhood:     n.Neighborhood,
		Phone:            n.Phone,
		AreaM2:           n.AreaM2,
		IsDelegation:     n.IsDelegation,
		Delegation:       n.Delegation,
		Pays:             n.Pays,
		ReceiptNumber:    n.ReceiptNumber,
		NonPaymentReason: n.NonPaymentReason,
		CreatedAt:        n.CreatedAt,
		UpdatedAt:        n.UpdatedAt,
	}
}

func FromNeighbors(neighbors []entities.Neighbor) []NeighborResponse {
	out := make([]NeighborResponse, 0, len(neighbors))
	for _, n := range neighbors {
		out = append(out, FromNeighbor(n))
	}
	return out
}
