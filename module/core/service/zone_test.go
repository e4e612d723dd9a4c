package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mutti-dev/famloc/module/core/domain"
)

func adminCircle() *mockCircleRepo {
	return &mockCircleRepo{
		getByIDFn: func(_ context.Context, circleID string) (*domain.Circle, error) {
			return &domain.Circle{ID: circleID, Name: "Family", AdminID: "admin-1"}, nil
		},
	}
}

func TestCreateZone_RadiusHeuristic(t *testing.T) {
	cases := []struct {
		name   string
		radius float64
		unit   string
		wantM  float64
	}{
		{"small value read as km", 5, "", 5000},
		{"large value read as meters", 5000, "", 5000},
		{"threshold value read as km", 1000, "", 1000000},
		{"explicit meters override", 500, "m", 500},
		{"explicit km override", 1.5, "km", 1500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var inserted *domain.Zone
			zones := &mockZoneRepo{
				insertFn: func(_ context.Context, zone *domain.Zone) error {
					inserted = zone
					return nil
				},
			}
			svc := NewZoneService(zones, adminCircle())

			zone, err := svc.Create(context.Background(), CreateZoneInput{
				CircleID:   "circle-1",
				CreatedBy:  "admin-1",
				Name:       "Home",
				Center:     domain.Coordinate{Lat: 0, Lng: 0},
				Radius:     tc.radius,
				RadiusUnit: tc.unit,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if zone.RadiusM != tc.wantM {
				t.Errorf("expected %f meters, got %f", tc.wantM, zone.RadiusM)
			}
			if inserted == nil || inserted.RadiusM != tc.wantM {
				t.Errorf("stored radius mismatch: %+v", inserted)
			}
		})
	}
}

func TestCreateZone_OnlyAdmin(t *testing.T) {
	svc := NewZoneService(&mockZoneRepo{}, adminCircle())

	_, err := svc.Create(context.Background(), CreateZoneInput{
		CircleID:  "circle-1",
		CreatedBy: "member-2",
		Name:      "Home",
		Radius:    100,
	})
	if !errors.Is(err, ErrNotCircleAdmin) {
		t.Fatalf("expected ErrNotCircleAdmin, got %v", err)
	}
}

func TestCreateZone_Defaults(t *testing.T) {
	svc := NewZoneService(&mockZoneRepo{}, adminCircle())

	zone, err := svc.Create(context.Background(), CreateZoneInput{
		CircleID:  "circle-1",
		CreatedBy: "admin-1",
		Name:      "Home",
		Radius:    100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !zone.Active {
		t.Error("expected new zones to be active")
	}
	if zone.ZoneType != domain.ZoneTypeCustom {
		t.Errorf("expected custom zone type, got %s", zone.ZoneType)
	}
	if zone.ID == "" {
		t.Error("expected generated id")
	}
}

func TestUpdateZone_OnlyCreator(t *testing.T) {
	zones := &mockZoneRepo{
		getByIDFn: func(_ context.Context, zoneID string) (*domain.Zone, error) {
			return &domain.Zone{ID: zoneID, CircleID: "circle-1", CreatedBy: "admin-1", Name: "Home"}, nil
		},
	}
	svc := NewZoneService(zones, adminCircle())

	_, err := svc.Update(context.Background(), "zone-1", "member-2", UpdateZoneInput{Name: "Home", Radius: 100})
	if !errors.Is(err, ErrNotZoneCreator) {
		t.Fatalf("expected ErrNotZoneCreator, got %v", err)
	}
}

func TestUpdateZone_NormalizesRadius(t *testing.T) {
	var updated *domain.Zone
	zones := &mockZoneRepo{
		getByIDFn: func(_ context.Context, zoneID string) (*domain.Zone, error) {
			return &domain.Zone{ID: zoneID, CircleID: "circle-1", CreatedBy: "admin-1", Name: "Home", RadiusM: 100}, nil
		},
		updateFn: func(_ context.Context, zone *domain.Zone) error {
			updated = zone
			return nil
		},
	}
	svc := NewZoneService(zones, adminCircle())

	zone, err := svc.Update(context.Background(), "zone-1", "admin-1", UpdateZoneInput{Name: "Home", Radius: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if zone.RadiusM != 2000 {
		t.Errorf("expected 2000 meters, got %f", zone.RadiusM)
	}
	if updated == nil {
		t.Fatal("expected Update to be called")
	}
}

func TestToggleZoneActive(t *testing.T) {
	var setTo *bool
	zones := &mockZoneRepo{
		getByIDFn: func(_ context.Context, zoneID string) (*domain.Zone, error) {
			return &domain.Zone{ID: zoneID, CreatedBy: "admin-1", Active: true}, nil
		},
		setActiveFn: func(_ context.Context, _ string, active bool) error {
			setTo = &active
			return nil
		},
	}
	svc := NewZoneService(zones, adminCircle())

	zone, err := svc.ToggleActive(context.Background(), "zone-1", "admin-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if zone.Active {
		t.Error("expected zone to be inactive after toggle")
	}
	if setTo == nil || *setTo {
		t.Error("expected SetActive(false)")
	}
}

func TestDeleteZone_OnlyCreator(t *testing.T) {
	deleted := false
	zones := &mockZoneRepo{
		getByIDFn: func(_ context.Context, zoneID string) (*domain.Zone, error) {
			return &domain.Zone{ID: zoneID, CreatedBy: "admin-1"}, nil
		},
		deleteFn: func(_ context.Context, _ string) error {
			deleted = true
			return nil
		},
	}
	svc := NewZoneService(zones, adminCircle())

	if err := svc.Delete(context.Background(), "zone-1", "member-2"); !errors.Is(err, ErrNotZoneCreator) {
		t.Fatalf("expected ErrNotZoneCreator, got %v", err)
	}
	if deleted {
		t.Error("delete must not run for non-creators")
	}

	if err := svc.Delete(context.Background(), "zone-1", "admin-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("expected delete to run for the creator")
	}
}
