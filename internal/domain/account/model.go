package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is one registered practitioner. The password is stored as the
// user entered it, matching the original record shape; fixing that is
// explicitly out of scope.
type Account struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Email         string    `db:"email" json:"email"`
	Phone         string    `db:"phone" json:"phone"`
	PracticeState string    `db:"practice_state" json:"practiceState,omitempty"`
	PracticeCity  string    `db:"practice_city" json:"practiceCity,omitempty"`
	LicenseNumber string    `db:"license_number" json:"licenseNumber,omitempty"`
	Password      string    `db:"password" json:"-"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// Clone returns a copy so store callers can't alias internal state.
func (a *Account) Clone() *Account {
	cp := *a
	return &cp
}
