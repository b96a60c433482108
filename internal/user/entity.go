package user

import (
	"time"
)

// User is a landlord account. The password is only ever stored as a bcrypt
// hash; the plaintext never leaves the registration/login request scope.
type User struct {
	ID           string    `db:"id"            bson:"_id"`
	Username     string    `db:"username"      bson:"username"`
	PasswordHash string    `db:"password_hash" bson:"password"`
	Name         string    `db:"name"          bson:"name"`
	CreatedAt    time.Time `db:"created_at"    bson:"createdAt"`
}
