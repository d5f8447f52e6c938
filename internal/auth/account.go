package auth

import "time"

// Role decides what an account may administer. The desk itself never
// branches on role; it only ever sees the resolved tenant id.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// Account is one login of the system. Emails are stored lowercase and
// matched case-insensitively. Accounts live in their own relational table,
// not in the tenant document collections.
type Account struct {
	ID           int64     `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;size:256;not null"`
	PasswordHash string    `gorm:"size:128;not null"`
	Role         Role      `gorm:"size:32;not null"`
	TenantID     string    `gorm:"index;size:128;not null"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}
