package tenant

import (
	"time"
)

// Tenant is append-only: registered once, never updated or deleted through
// the API. The unitId is a plain identifier reference; it is not checked
// against the unit ledger at write time.
type Tenant struct {
	ID          string    `db:"id"           bson:"_id"`
	FirstName   string    `db:"first_name"   bson:"firstName"`
	MiddleName  string    `db:"middle_name"  bson:"middleName"`
	LastName    string    `db:"last_name"    bson:"lastName"`
	PhoneNumber string    `db:"phone_number" bson:"phoneNumber"`
	UnitID      string    `db:"unit_id"      bson:"unitId"`
	MoveInDate  time.Time `db:"move_in_date" bson:"moveInDate"`
	CreatedAt   time.Time `db:"created_at"   bson:"createdAt"`
}
