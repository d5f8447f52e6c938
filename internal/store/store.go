package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hoteldesk-backend/internal/model"
)

// Collection names used per tenant.
const (
	CollectionGuests = "guests"
	CollectionRooms  = "rooms"
)

// Store is the persistence gateway for tenant collections. Loads return the
// full collection (empty when absent) and saves overwrite it completely.
// There is no atomicity across two saves; callers that touch guests and
// rooms in one operation serialize through a per-tenant writer lock.
type Store interface {
	LoadGuests(ctx context.Context, tenantID string) ([]model.Guest, error)
	SaveGuests(ctx context.Context, tenantID string, guests []model.Guest) error
	LoadRooms(ctx context.Context, tenantID string) ([]model.Room, error)
	SaveRooms(ctx context.Context, tenantID string, rooms []model.Room) error
}

// gormStore implements Store on top of a single tenant_documents table,
// one JSON payload per (tenant, collection).
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) LoadGuests(ctx context.Context, tenantID string) ([]model.Guest, error) {
	guests := []model.Guest{}
	if err := s.loadCollection(ctx, tenantID, CollectionGuests, &guests); err != nil {
		return nil, err
	}
	return guests, nil
}

func (s *gormStore) SaveGuests(ctx context.Context, tenantID string, guests []model.Guest) error {
	if guests == nil {
		guests = []model.Guest{}
	}
	return s.saveCollection(ctx, tenantID, CollectionGuests, guests)
}

func (s *gormStore) LoadRooms(ctx context.Context, tenantID string) ([]model.Room, error) {
	rooms := []model.Room{}
	if err := s.loadCollection(ctx, tenantID, CollectionRooms, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *gormStore) SaveRooms(ctx context.Context, tenantID string, rooms []model.Room) error {
	if rooms == nil {
		rooms = []model.Room{}
	}
	return s.saveCollection(ctx, tenantID, CollectionRooms, rooms)
}

func (s *gormStore) loadCollection(ctx context.Context, tenantID, collection string, out any) error {
	if tenantID == "" {
		return fmt.Errorf("load %s: tenant id is required", collection)
	}

	var doc model.TenantDocument
	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND collection = ?", tenantID, collection).
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Absent collection reads as empty; out already holds an empty slice.
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s for tenant %s: %w", collection, tenantID, err)
	}

	if err := json.Unmarshal(doc.Payload, out); err != nil {
		return fmt.Errorf("failed to decode %s payload for tenant %s: %w", collection, tenantID, err)
	}
	return nil
}

func (s *gormStore) saveCollection(ctx context.Context, tenantID, collection string, records any) error {
	if tenantID == "" {
		return fmt.Errorf("save %s: tenant id is required", collection)
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s for tenant %s: %w", collection, tenantID, err)
	}

	doc := model.TenantDocument{
		TenantID:   tenantID,
		Collection: collection,
		Payload:    datatypes.JSON(payload),
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "collection"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("failed to save %s for tenant %s: %w", collection, tenantID, err)
	}
	return nil
}
