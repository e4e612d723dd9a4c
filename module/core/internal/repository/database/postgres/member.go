package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/mutti-dev/famloc/module/core/domain"
	"github.com/mutti-dev/famloc/module/core/internal/repository/database"
)

var _ database.MemberRepository = (*MemberRepo)(nil)

type MemberRepo struct {
	db *sql.DB
}

func NewMemberRepo(db *sql.DB) *MemberRepo {
	return &MemberRepo{db: db}
}

func (r *MemberRepo) GetByID(ctx context.Context, memberID string) (*domain.Member, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, circle_id, latitude, longitude, location_updated_at, push_token, created_at, updated_at
		 FROM members WHERE id = $1`,
		memberID,
	)
	return scanMember(row)
}

func (r *MemberRepo) UpdateLocation(ctx context.Context, memberID string, loc domain.Coordinate, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE members SET latitude = $2, longitude = $3, location_updated_at = $4, updated_at = $4 WHERE id = $1`,
		memberID, loc.Lat, loc.Lng, at,
	)
	return err
}

func (r *MemberRepo) UpdatePushToken(ctx context.Context, memberID, token string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE members SET push_token = $2, updated_at = NOW() WHERE id = $1`,
		memberID, token,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*domain.Member, error) {
	var (
		m         domain.Member
		circleID  sql.NullString
		lat, lng  sql.NullFloat64
		locAt     sql.NullTime
		pushToken sql.NullString
	)
	if err := row.Scan(&m.ID, &m.Name, &circleID, &lat, &lng, &locAt, &pushToken, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.CircleID = circleID.String
	m.PushToken = pushToken.String
	if lat.Valid && lng.Valid {
		m.Location = &domain.Coordinate{Lat: lat.Float64, Lng: lng.Float64}
	}
	if locAt.Valid {
		t := locAt.Time
		m.LocationUpdatedAt = &t
	}
	return &m, nil
}
