package unit

import (
	"time"
)

type CreateUnitRequest struct {
	UnitID     string  `validate:"required"`
	UnitName   string  `validate:"required"`
	UnitSize   string  `validate:"required"`
	RentAmount float64 `validate:"gte=0"`
}

// Attachment is one condition photo submitted with a unit creation request,
// already read into memory by the handler.
type Attachment struct {
	Name string
	Data []byte
}

type UnitResponse struct {
	ID              string    `json:"id"`
	UnitID          string    `json:"unitId"`
	UnitName        string    `json:"unitName"`
	UnitSize        string    `json:"unitSize"`
	RentAmount      float64   `json:"rentAmount"`
	ConditionImages []string  `json:"conditionImages"`
	CreatedAt       time.Time `json:"createdAt"`
}

func ToUnitResponse(u *Unit) UnitResponse {
	images := u.ConditionImages
	if images == nil {
		images = StringList{}
	}
	return UnitResponse{
		ID:              u.ID,
		UnitID:          u.UnitID,
		UnitName:        u.UnitName,
		UnitSize:        u.UnitSize,
		RentAmount:      u.RentAmount,
		ConditionImages: images,
		CreatedAt:       u.CreatedAt,
	}
}
