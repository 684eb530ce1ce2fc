package entities

import (
	"strings"
	"time"
)

// Address is the service site location of a neighbor.
type Address struct {
	Street   string `json:"street"`
	Number   string `json:"number"`
	Locality string `json:"locality"`
}

// Format renders the address as a single line ("Street 123, Locality"),
// the form used for calendar event locations.
func (a Address) Format() string {
	line := strings.TrimSpace(a.Street)
	if n := strings.TrimSpace(a.Number); n != "" {
		line += " " + n
	}
	if l := strings.TrimSpace(a.Locality); l != "" {
		line += ", " + l
	}
	return line
}

// Neighbor is a client record (vecino) requesting pest-control service.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Neighbors are referenced, never owned, by work orders via their id.
type Neighbor struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Address          Address   `json:"address"`
	Neighborhood     string    `json:"neighborhood"`
	Phone            string    `json:"phone"`
	AreaM2           float64   `json:"area_m2"`
	IsDelegation     bool      `json:"is_delegation"`
	Delegation       string    `json:"delegation"`
	Pays             bool      `json:"pays"`
	ReceiptNumber    string    `json:"receipt_number"`
	NonPaymentReason string    `json:"non_payment_reason"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NeighborPatch carries the updatable fields of a Neighbor. Nil means
// "leave unchanged".
type NeighborPatch struct {
	Name             *string
	Address          *Address
	Neighborhood     *string
	Phone            *string
	AreaM2           *float64
	IsDelegation     *bool
	Delegation       *string
	Pays             *bool
	ReceiptNumber    *string
	NonPaymentReason *string
}

// Empty reports whether the patch would change nothing.
func (p NeighborPatch) Empty() bool {
	return p.Name == nil && p.Address == nil && p.Neighborhood == nil &&
		p.Phone == nil && p.AreaM2 == nil && p.IsDelegation == nil &&
		p.Delegation == nil && p.Pays == nil && p.ReceiptNumber == nil &&
		p.NonPaymentReason == nil
}
