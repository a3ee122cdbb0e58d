// Package contract defines the contract-status record sourced from the
// external system of record, the ports used to fetch and cache it, and the
// typed errors the resolver surfaces.
package contract

import "time"

// Status is a snapshot of a contract's state in the external system.
// Snapshots are immutable: a refresh replaces the cached entry wholesale,
// it never merges fields.
type Status struct {
	ContractID      string     `json:"contract_id"`
	Etat            string     `json:"etat"`
	SousEtat        string     `json:"sous_etat,omitempty"`
	SousEtat2       string     `json:"sous_etat_2,omitempty"`
	AppointmentDate *time.Time `json:"appointment_date,omitempty"`
	Technician      string     `json:"technician,omitempty"`
	Seller          string     `json:"seller,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Resolution is a Status plus resolver provenance.
type Resolution struct {
	Status    *Status
	FromCache bool
}
