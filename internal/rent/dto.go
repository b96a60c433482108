package rent

import (
	"time"
)

type CollectRentRequest struct {
	TenantID      string  `json:"tenantId"      validate:"required"`
	UnitID        string  `json:"unitId"        validate:"required"`
	PaidAmount    float64 `json:"paidAmount"    validate:"gte=0"`
	RentStartDate string  `json:"rentStartDate" validate:"required"`
	RentEndDate   string  `json:"rentEndDate"   validate:"required"`
}

type RentResponse struct {
	ID            string    `json:"id"`
	TenantID      string    `json:"tenantId"`
	UnitID        string    `json:"unitId"`
	PaidAmount    float64   `json:"paidAmount"`
	RentStartDate time.Time `json:"rentStartDate"`
	RentEndDate   time.Time `json:"rentEndDate"`
	CreatedAt     time.Time `json:"createdAt"`
}

func ToRentResponse(rn *Rent) RentResponse {
	return RentResponse{
		ID:            rn.ID,
		TenantID:      rn.TenantID,
		UnitID:        rn.UnitID,
		PaidAmount:    rn.PaidAmount,
		RentStartDate: rn.RentStartDate,
		RentEndDate:   rn.RentEndDate,
		CreatedAt:     rn.CreatedAt,
	}
}

func ToRentResponses(rents []Rent) []RentResponse {
	out := make([]RentResponse, len(rents))
	for i := range rents {
		out[i] = ToRentResponse(&rents[i])
	}
	return out
}
