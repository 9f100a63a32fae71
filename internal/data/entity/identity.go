package entity

import "time"

// Identity is a phone-identified end user. It exists unregistered until the
// profile is completed.
type Identity struct {
	BaseNoDelete
	Mobile       string     `db:"mobile"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Email        *string    `db:"email"`
	IsActive     bool       `db:"is_active"`
	IsRegistered bool       `db:"is_registered"`
	LastLoginAt  *time.Time `db:"last_login_at"`
}

func (i *Identity) FullName() string {
	if i.LastName == "" {
		return i.FirstName
	}
	return i.FirstName + " " + i.LastName
}
