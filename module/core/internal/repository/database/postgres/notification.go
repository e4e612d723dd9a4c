package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mutti-dev/famloc/module/core/domain"
	"github.com/mutti-dev/famloc/module/core/internal/repository/database"
)

var _ database.NotificationRepository = (*NotificationRepo)(nil)

type NotificationRepo struct {
	db *sql.DB
}

func NewNotificationRepo(db *sql.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) Insert(ctx context.Context, n *domain.Notification) error {
	var data []byte
	if n.Data != nil {
		var err error
		data, err = json.Marshal(n.Data)
		if err != nil {
			return err
		}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (id, member_id, type, message, data, read, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		n.ID, n.MemberID, string(n.Type), n.Message, data, n.Read, n.CreatedAt,
	)
	return err
}

func (r *NotificationRepo) GetByID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, member_id, type, message, data, read, created_at FROM notifications WHERE id = $1`,
		notificationID,
	)
	return scanNotification(row)
}

func (r *NotificationRepo) ListByMember(ctx context.Context, memberID string) ([]domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, member_id, type, message, data, read, created_at
		 FROM notifications WHERE member_id = $1 ORDER BY created_at DESC`,
		memberID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *n)
	}
	return results, rows.Err()
}

func (r *NotificationRepo) MarkRead(ctx context.Context, notificationID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read = TRUE WHERE id = $1`,
		notificationID,
	)
	return err
}

func (r *NotificationRepo) Delete(ctx context.Context, notificationID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, notificationID)
	return err
}

func scanNotification(row rowScanner) (*domain.Notification, error) {
	var (
		n     domain.Notification
		ntype string
		data  []byte
	)
	if err := row.Scan(&n.ID, &n.MemberID, &ntype, &n.Message, &data, &n.Read, &n.CreatedAt); err != nil {
		return nil, err
	}
	n.Type = domain.NotificationType(ntype)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &n.Data); err != nil {
			return nil, err
		}
	}
	return &n, nil
}
