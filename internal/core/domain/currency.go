package domain

import "github.com/google/uuid"

// Currency represents a currency known to the ledger.
type Currency struct {
	CurrencyID uuid.UUID `json:"currencyID"` // Opaque stable identifier
	Code       string    `json:"code"`       // e.g., "USD"
	Symbol     string    `json:"symbol"`     // e.g., "$"
	Name       string    `json:"name"`       // e.g., "US Dollar"
	IsBase     bool      `json:"isBase"`     // Exactly one currency per dataset is the base
}
