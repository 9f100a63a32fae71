package entity

import "time"

// StaffUser is an admin panel account. Created only through the create-admin command.
type StaffUser struct {
	BaseNoDelete
	Username     string     `db:"username"`
	PasswordHash string     `db:"password_hash"`
	FullName     string     `db:"full_name"`
	IsActive     bool       `db:"is_active"`
	LastLoginAt  *time.Time `db:"last_login_at"`
}
