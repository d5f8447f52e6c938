package model

import (
	"time"

	"gorm.io/datatypes"
)

// TenantDocument is one persisted collection of one tenant, stored as a
// single JSON payload. The store always reads and rewrites the whole
// payload; there are no partial updates.
type TenantDocument struct {
	ID         int64          `gorm:"primaryKey"`
	TenantID   string         `gorm:"uniqueIndex:idx_tenant_collection;size:128;not null"`
	Collection string         `gorm:"uniqueIndex:idx_tenant_collection;size:64;not null"`
	Payload    datatypes.JSON `gorm:"not null"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
}
