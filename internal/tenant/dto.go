package tenant

import (
	"time"
)

type RegisterTenantRequest struct {
	FirstName   string `json:"firstName"   validate:"required"`
	MiddleName  string `json:"middleName"`
	LastName    string `json:"lastName"    validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	UnitID      string `json:"unitId"      validate:"required"`
	MoveInDate  string `json:"moveInDate"  validate:"required"`
}

type TenantResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	MiddleName  string    `json:"middleName,omitempty"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	UnitID      string    `json:"unitId"`
	MoveInDate  time.Time `json:"moveInDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToTenantResponse(t *Tenant) TenantResponse {
	return TenantResponse{
		ID:          t.ID,
		FirstName:   t.FirstName,
		MiddleName:  t.MiddleName,
		LastName:    t.LastName,
		PhoneNumber: t.PhoneNumber,
		UnitID:      t.UnitID,
		MoveInDate:  t.MoveInDate,
		CreatedAt:   t.CreatedAt,
	}
}
