package rent

import (
	"time"
)

// Rent is one recorded rent payment covering a date window. Append-only; the
// notification query reads rows whose window has ended. rentStartDate is not
// required to precede rentEndDate.
type Rent struct {
	ID            string    `db:"id"              bson:"_id"`
	TenantID      string    `db:"tenant_id"       bson:"tenantId"`
	UnitID        string    `db:"unit_id"         bson:"unitId"`
	PaidAmount    float64   `db:"paid_amount"     bson:"paidAmount"`
	RentStartDate time.Time `db:"rent_start_date" bson:"rentStartDate"`
	RentEndDate   time.Time `db:"rent_end_date"   bson:"rentEndDate"`
	CreatedAt     time.Time `db:"created_at"      bson:"createdAt"`
}
