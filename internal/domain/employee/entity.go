package employee

import "time"

type Employee struct {
	ID               string
	UserID           string
	PayrollID        *string
	FirstName        string
	LastName         string
	SSN              *string
	PrimaryPhone     string
	SecondaryPhone   *string
	AddressStreet    string
	AddressSecondary *string
	City             string
	State            string
	PostalCode       string
	IsActive         bool
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedBy        string
	UpdatedAt        time.Time
}

// FullName returns the display name used in batch responses.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// OwnerID resolves the principal that owns this record for visibility
// and self-service checks.
func (e *Employee) OwnerID() string {
	return e.UserID
}
