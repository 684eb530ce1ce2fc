package request

import "control_plagas/internal/domain/entities"

type AddressRequest struct {
	Street   string `json:"street" binding:"required"`
	Number   string `json:"number"`
	Locality string `json:"locality" binding:"required"`
}

// NeighborRequest is the creation payload for a neighbor record.
type NeighborRequest struct {
	Name             string         `json:"name" binding:"required"`
	Address          AddressRequest `json:"address" binding:"required"`
	Neighborhood     string         `json:"neighborhood" binding:"required"`
	Phone            string         `json:"phone" binding:"required"`
	AreaM2           float64        `json:"area_m2" binding:"required,gt=0"`
	IsDelegation     bool           `json:"is_delegation"`
	Delegation       string         `json:"delegation"`
	Pays             bool           `json:"pays"`
	ReceiptNumber    string         `json:"receipt_number"`
	NonPaymentReason string         `json:"non_payment_reason"`
}

func (r NeighborRequest) ToEntity() entities.Neighbor {
	return entities.Neighbor{
		Name: r.Name,
		Address: entities.Address{
			Street:   r.Address.Street,
			Number:   r.Address.Number,
			Locality: r.Address.Locality,
		},
		Neighborhood:     r.Neighborhood,
		Phone:            r.Phone,
		AreaM2:           r.AreaM2,
		IsDelegation:     r.IsDelegation,
		Delegation:       r.Delegation,
		Pays:             r.Pays,
		ReceiptNumber:    r.ReceiptNumber,
		NonPaymentReason: r.NonPaymentReason,
	}
}

// NeighborUpdateRequest is a partial patch; absent fields stay unchanged.
type NeighborUpdateRequest struct {
	Name             *string         `json:"name"`
	Address          *AddressRequest `json:"address"`
	Neighborhood     *string         `json:"neighborhood"`
	Phone            *string         `json:"phone"`
	AreaM2           *float64        `json:"area_m2"`
	IsDelegation     *bool           `json:"is_delegation"`
	Delegation       *string         `json:"delegation"`
	Pays             *bool           `json:"pays"`
	ReceiptNumber    *string         `json:"receipt_number"`
	NonPaymentReason *string         `json:"non_payment_reason"`
}

func (r NeighborUpdateRequest) ToPatch() entities.NeighborPatch {
	patch := entities.NeighborPatch{
		Name:             r.Name,
		Neighborhood:     r.Neighborhood,
		Phone:            r.Phone,
		AreaM2:           r.AreaM2,
		IsDelegation:     r.IsDelegation,
		Delegation:       r.Delegation,
		Pays:             r.Pays,
		ReceiptNumber:    r.ReceiptNumber,
		NonPaymentReason: r.NonPaymentReason,
	}
	if r.Address != nil {
		patch.Address = &entities.Address{
			Street:   r.Address.Street,
			Number:   r.Address.Number,
			Locality: r.Address.Locality,
		}
	}
	return patch
}
