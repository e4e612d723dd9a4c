package postgres

import (
	"context"
	"database/sql"

	"github.com/mutti-dev/famloc/module/core/domain"
	"github.com/mutti-dev/famloc/module/core/internal/repository/database"
)

var _ database.CircleRepository = (*CircleRepo)(nil)

type CircleRepo struct {
	db *sql.DB
}

func NewCircleRepo(db *sql.DB) *CircleRepo {
	return &CircleRepo{db: db}
}

func (r *CircleRepo) GetByID(ctx context.Context, circleID string) (*domain.Circle, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, admin_id, invite_code, invite_expires_at, share_code, share_expires_at, created_at, updated_at
		 FROM circles WHERE id = $1`,
		circleID,
	)

	var (
		c          domain.Circle
		inviteCode sql.NullString
		inviteExp  sql.NullTime
		shareCode  sql.NullString
		shareExp   sql.NullTime
	)
	if err := row.Scan(&c.ID, &c.Name, &c.AdminID, &inviteCode, &inviteExp, &shareCode, &shareExp, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.InviteCode = inviteCode.String
	c.ShareCode = shareCode.String
	if inviteExp.Valid {
		t := inviteExp.Time
		c.InviteExpiresAt = &t
	}
	if shareExp.Valid {
		t := shareExp.Time
		c.ShareExpiresAt = &t
	}
	return &c, nil
}

func (r *CircleRepo) ListMembers(ctx context.Context, circleID string) ([]domain.Member, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, circle_id, latitude, longitude, location_updated_at, push_token, created_at, updated_at
		 FROM members WHERE circle_id = $1 ORDER BY name`,
		circleID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *m)
	}
	return results, rows.Err()
}
