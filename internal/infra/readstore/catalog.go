package readstore

import (
	"context"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/pgconv"
	"courtbook/internal/usecase/queries"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type CourtReadStore struct {
	db db.DBTX
}

func NewCourtReadStore(db db.DBTX) *CourtReadStore {
	return &CourtReadStore{db: db}
}

func (r *CourtReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.CourtSnapshot, error) {
	const query = `
		SELECT id, name, court_type, base_rate, is_active
		FROM courts
		WHERE id = $1`

	var snap shared.CourtSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Name, &snap.CourtType, &snap.BaseRate, &snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court by ID", err)
	}
	return &snap, nil
}

func (r *CourtReadStore) ListCourts(ctx context.Context) ([]*queries.CourtView, error) {
	const query = `
		SELECT id, name, court_type, base_rate, is_active
		FROM courts
		WHERE is_active
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courts", err)
	}
	defer rows.Close()

	var result []*queries.CourtView
	for rows.Next() {
		var v queries.CourtView
		if err := rows.Scan(&v.ID, &v.Name, &v.CourtType, &v.BaseRate, &v.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan court row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate court rows", err)
	}
	return result, nil
}

type CoachReadStore struct {
	db db.DBTX
}

func NewCoachReadStore(db db.DBTX) *CoachReadStore {
	return &CoachReadStore{db: db}
}

func (r *CoachReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.CoachSnapshot, error) {
	const query = `
		SELECT id, name, specialization, hourly_rate, is_active
		FROM coaches
		WHERE id = $1`

	var snap shared.CoachSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Name, &snap.Specialization, &snap.HourlyRate, &snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coach not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coach by ID", err)
	}
	return &snap, nil
}

func (r *CoachReadStore) ListCoaches(ctx context.Context) ([]*queries.CoachView, error) {
	const query = `
		SELECT id, name, specialization, hourly_rate, is_active
		FROM coaches
		WHERE is_active
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coaches", err)
	}
	defer rows.Close()

	var result []*queries.CoachView
	for rows.Next() {
		var v queries.CoachView
		if err := rows.Scan(&v.ID, &v.Name, &v.Specialization, &v.HourlyRate, &v.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan coach row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coach rows", err)
	}
	return result, nil
}

type EquipmentReadStore struct {
	db db.DBTX
}

func NewEquipmentReadStore(db db.DBTX) *EquipmentReadStore {
	return &EquipmentReadStore{db: db}
}

func (r *EquipmentReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*shared.EquipmentSnapshot, error) {
	result := make(map[uuid.UUID]*shared.EquipmentSnapshot, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	const query = `
		SELECT id, name, equipment_type, total_stock, unit_price
		FROM equipment
		WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find equipment by IDs", err)
	}
	defer rows.Close()

	for rows.Next() {
		var snap shared.EquipmentSnapshot
		if err := rows.Scan(&snap.ID, &snap.Name, &snap.EquipmentType, &snap.TotalStock, &snap.UnitPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan equipment row", err)
		}
		result[snap.ID] = &snap
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate equipment rows", err)
	}
	return result, nil
}

func (r *EquipmentReadStore) ListEquipment(ctx context.Context) ([]*queries.EquipmentView, error) {
	const query = `
		SELECT id, name, equipment_type, total_stock, unit_price
		FROM equipment
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list equipment", err)
	}
	defer rows.Close()

	var result []*queries.EquipmentView
	for rows.Next() {
		var v queries.EquipmentView
		if err := rows.Scan(&v.ID, &v.Name, &v.EquipmentType, &v.TotalStock, &v.UnitPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan equipment row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate equipment rows", err)
	}
	return result, nil
}

type PricingRuleReadStore struct {
	db db.DBTX
}

func NewPricingRuleReadStore(db db.DBTX) *PricingRuleReadStore {
	return &PricingRuleReadStore{db: db}
}

func (r *PricingRuleReadStore) ListOrdered(ctx context.Context) ([]*shared.RuleSnapshot, error) {
	const query = `
		SELECT id, name, rule_type, multiplier, addition,
		       COALESCE(start_hour, 0), COALESCE(end_hour, 0), COALESCE(days, '{}'),
		       priority
		FROM pricing_rules
		WHERE is_active
		ORDER BY priority, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	defer rows.Close()

	var result []*shared.RuleSnapshot
	for rows.Next() {
		var (
			snap shared.RuleSnapshot
			days []int32
		)
		err := rows.Scan(
			&snap.ID, &snap.Name, &snap.Kind, &snap.Multiplier, &snap.Addition,
			&snap.StartHour, &snap.EndHour, &days, &snap.Priority,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing rule row", err)
		}
		snap.Days = make([]int, len(days))
		for i, d := range days {
			snap.Days[i] = int(d)
		}
		result = append(result, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pricing rule rows", err)
	}
	return result, nil
}

// CatalogReadStore bundles the catalog list queries behind a single port
// for the read side.
type CatalogReadStore struct {
	courts    *CourtReadStore
	coaches   *CoachReadStore
	equipment *EquipmentReadStore
}

func NewCatalogReadStore(courts *CourtReadStore, coaches *CoachReadStore, equipment *EquipmentReadStore) *CatalogReadStore {
	return &CatalogReadStore{courts: courts, coaches: coaches, equipment: equipment}
}

func (r *CatalogReadStore) ListCourts(ctx context.Context) ([]*queries.CourtView, error) {
	return r.courts.ListCourts(ctx)
}

func (r *CatalogReadStore) ListCoaches(ctx context.Context) ([]*queries.CoachView, error) {
	return r.coaches.ListCoaches(ctx)
}

func (r *CatalogReadStore) ListEquipment(ctx context.Context) ([]*queries.EquipmentView, error) {
	return r.equipment.ListEquipment(ctx)
}
