package model

import (
	"time"

	"hostel/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldFullName  = "full_name"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

// User is an authentication identity. A student owns exactly one through students.user_id.
type User struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Role      string     `db:"role"`
	FullName  string     `db:"full_name"`
	LastLogin *time.Time `db:"last_login"`
	Active    bool       `db:"active"`
	model.Metadata
}
