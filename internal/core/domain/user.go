package domain

import "time"

// UserRole is a coarse application role used for authorization and for
// role-based notification recipients.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleHandler UserRole = "HANDLER" // Claims handler
	RoleManager UserRole = "MANAGER"
)

// User represents a user of the application in the domain.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (e.g., UUID)
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`
	IsActive     bool     `json:"isActive"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
