package model

import "time"

// Document is a compliance artifact owned by one account. The same shape is
// stored in both the active and archived spaces; which space a document lives
// in is decided by the repository it is read from, never by a field on the row.
type Document struct {
	ID           string     `json:"id"`
	AccountID    string     `json:"account_id"`
	DocType      string     `json:"doc_type"`
	StorageURL   string     `json:"storage_url"`
	OwnerName    string     `json:"owner_name"`
	ResourceKind string     `json:"resource_kind"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// CompanyDocument is an organization-wide artifact with no owner.
type CompanyDocument struct {
	ID           string     `json:"id"`
	DocType      string     `json:"doc_type"`
	StorageURL   string     `json:"storage_url"`
	ResourceKind string     `json:"resource_kind"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
