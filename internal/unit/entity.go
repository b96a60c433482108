package unit

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores attachment paths as a JSONB column in Postgres while
// staying a plain array under the Mongo and memory backends.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("scan StringList: unsupported type %T", src)
	}
}

// Unit is a rental unit record. Units are append-only: once created they are
// never updated or deleted through the API.
type Unit struct {
	ID              string     `db:"id"               bson:"_id"`
	UnitID          string     `db:"unit_id"          bson:"unitId"`
	UnitName        string     `db:"unit_name"        bson:"unitName"`
	UnitSize        string     `db:"unit_size"        bson:"unitSize"`
	RentAmount      float64    `db:"rent_amount"      bson:"rentAmount"`
	ConditionImages StringList `db:"condition_images" bson:"conditionImages"`
	CreatedAt       time.Time  `db:"created_at"       bson:"createdAt"`
}
