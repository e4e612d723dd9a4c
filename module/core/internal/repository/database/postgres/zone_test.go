package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mutti-dev/famloc/module/core/domain"
)

var zoneCols = []string{
	"id", "circle_id", "created_by", "name", "description", "latitude", "longitude", "radius_m",
	"zone_type", "active", "notify_on_entry", "notify_on_exit", "notify_admin", "notify_member",
	"created_at", "updated_at",
}

func sampleZoneRow(rows *sqlmock.Rows, id string, active bool) *sqlmock.Rows {
	ts := time.Unix(1715003456, 0)
	return rows.AddRow(
		id, "circle-1", "admin-1", "Home", "the house", 0.0, 0.0, 100.0,
		"safe", active, true, true, true, false, ts, ts,
	)
}

func TestZoneInsert_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	ts := time.Unix(1715003456, 0)
	mock.ExpectExec(`INSERT INTO zones`).
		WithArgs("zone-1", "circle-1", "admin-1", "Home", "the house", 0.0, 0.0, 100.0,
			"safe", true, true, true, true, false, ts, ts).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewZoneRepo(db)
	err = repo.Insert(context.Background(), &domain.Zone{
		ID:          "zone-1",
		CircleID:    "circle-1",
		CreatedBy:   "admin-1",
		Name:        "Home",
		Description: "the house",
		Center:      domain.Coordinate{Lat: 0, Lng: 0},
		RadiusM:     100,
		ZoneType:    domain.ZoneTypeSafe,
		Active:      true,
		Notifications: domain.NotificationSettings{
			OnEntry: true, OnExit: true, NotifyAdmin: true, NotifyMember: false,
		},
		CreatedAt: ts,
		UpdatedAt: ts,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestZoneGetByID_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	rows := sampleZoneRow(sqlmock.NewRows(zoneCols), "zone-1", true)
	mock.ExpectQuery(`SELECT (.+) FROM zones WHERE id = (.+)`).
		WithArgs("zone-1").
		WillReturnRows(rows)

	repo := NewZoneRepo(db)
	zone, err := repo.GetByID(context.Background(), "zone-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if zone.Name != "Home" {
		t.Errorf("expected Home, got %s", zone.Name)
	}
	if zone.ZoneType != domain.ZoneTypeSafe {
		t.Errorf("expected safe, got %s", zone.ZoneType)
	}
	if !zone.Notifications.OnEntry || zone.Notifications.NotifyMember {
		t.Errorf("unexpected notification settings: %+v", zone.Notifications)
	}
}

func TestZoneGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT (.+) FROM zones WHERE id = (.+)`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(zoneCols))

	repo := NewZoneRepo(db)
	if _, err := repo.GetByID(context.Background(), "ghost"); err == nil {
		t.Fatal("expected error")
	}
}

func TestZoneListActiveByCircle_FiltersActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	rows := sampleZoneRow(sqlmock.NewRows(zoneCols), "zone-1", true)
	rows = sampleZoneRow(rows, "zone-2", true)
	mock.ExpectQuery(`SELECT (.+) FROM zones WHERE circle_id = (.+) AND active = TRUE`).
		WithArgs("circle-1").
		WillReturnRows(rows)

	repo := NewZoneRepo(db)
	zones, err := repo.ListActiveByCircle(context.Background(), "circle-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(zones) != 2 {
		t.Fatalf("expected 2 zones, got %d", len(zones))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestZoneSetActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`UPDATE zones SET active = (.+) WHERE id = (.+)`).
		WithArgs("zone-1", false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewZoneRepo(db)
	if err := repo.SetActive(context.Background(), "zone-1", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestZoneDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`DELETE FROM zones WHERE id = (.+)`).
		WithArgs("zone-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewZoneRepo(db)
	if err := repo.Delete(context.Background(), "zone-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
