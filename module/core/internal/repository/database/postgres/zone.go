package postgres

import (
	"context"
	"database/sql"

	"github.com/mutti-dev/famloc/module/core/domain"
	"github.com/mutti-dev/famloc/module/core/internal/repository/database"
)

var _ database.ZoneRepository = (*ZoneRepo)(nil)

type ZoneRepo struct {
	db *sql.DB
}

func NewZoneRepo(db *sql.DB) *ZoneRepo {
	return &ZoneRepo{db: db}
}

const zoneColumns = `id, circle_id, created_by, name, description, latitude, longitude, radius_m,
		zone_type, active, notify_on_entry, notify_on_exit, notify_admin, notify_member, created_at, updated_at`

func (r *ZoneRepo) Insert(ctx context.Context, zone *domain.Zone) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO zones (`+zoneColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		zone.ID, zone.CircleID, zone.CreatedBy, zone.Name, zone.Description,
		zone.Center.Lat, zone.Center.Lng, zone.RadiusM,
		string(zone.ZoneType), zone.Active,
		zone.Notifications.OnEntry, zone.Notifications.OnExit,
		zone.Notifications.NotifyAdmin, zone.Notifications.NotifyMember,
		zone.CreatedAt, zone.UpdatedAt,
	)
	return err
}

func (r *ZoneRepo) GetByID(ctx context.Context, zoneID string) (*domain.Zone, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+zoneColumns+` FROM zones WHERE id = $1`,
		zoneID,
	)
	return scanZone(row)
}

func (r *ZoneRepo) ListByCircle(ctx context.Context, circleID string) ([]domain.Zone, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+zoneColumns+` FROM zones WHERE circle_id = $1 ORDER BY created_at`,
		circleID,
	)
	if err != nil {
		return nil, err
	}
	return collectZones(rows)
}

func (r *ZoneRepo) ListActiveByCircle(ctx context.Context, circleID string) ([]domain.Zone, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+zoneColumns+` FROM zones WHERE circle_id = $1 AND active = TRUE ORDER BY created_at`,
		circleID,
	)
	if err != nil {
		return nil, err
	}
	return collectZones(rows)
}

func (r *ZoneRepo) Update(ctx context.Context, zone *domain.Zone) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE zones SET name = $2, description = $3, latitude = $4, longitude = $5, radius_m = $6,
		 zone_type = $7, notify_on_entry = $8, notify_on_exit = $9, notify_admin = $10, notify_member = $11,
		 updated_at = $12
		 WHERE id = $1`,
		zone.ID, zone.Name, zone.Description, zone.Center.Lat, zone.Center.Lng, zone.RadiusM,
		string(zone.ZoneType),
		zone.Notifications.OnEntry, zone.Notifications.OnExit,
		zone.Notifications.NotifyAdmin, zone.Notifications.NotifyMember,
		zone.UpdatedAt,
	)
	return err
}

func (r *ZoneRepo) SetActive(ctx context.Context, zoneID string, active bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE zones SET active = $2, updated_at = NOW() WHERE id = $1`,
		zoneID, active,
	)
	return err
}

func (r *ZoneRepo) Delete(ctx context.Context, zoneID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM zones WHERE id = $1`, zoneID)
	return err
}

func scanZone(row rowScanner) (*domain.Zone, error) {
	var (
		z        domain.Zone
		desc     sql.NullString
		zoneType string
	)
	if err := row.Scan(
		&z.ID, &z.CircleID, &z.CreatedBy, &z.Name, &desc,
		&z.Center.Lat, &z.Center.Lng, &z.RadiusM,
		&zoneType, &z.Active,
		&z.Notifications.OnEntry, &z.Notifications.OnExit,
		&z.Notifications.NotifyAdmin, &z.Notifications.NotifyMember,
		&z.CreatedAt, &z.UpdatedAt,
	); err != nil {
		return nil, err
	}
	z.Description = desc.String
	z.ZoneType = domain.ZoneType(zoneType)
	return &z, nil
}

func collectZones(rows *sql.Rows) ([]domain.Zone, error) {
	defer func() { _ = rows.Close() }()

	var results []domain.Zone
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *z)
	}
	return results, rows.Err()
}
