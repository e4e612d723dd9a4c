package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/mutti-dev/famloc/module/core/domain"
	"github.com/mutti-dev/famloc/module/core/internal/repository/database"
)

const earthRadiusKm = 6371

// GeofenceService evaluates a member's location reports against the
// active zones of the member's circle and produces entry/exit events.
type GeofenceService struct {
	members database.MemberRepository
	zones   database.ZoneRepository
	logger  *zap.Logger
}

func NewGeofenceService(members database.MemberRepository, zones database.ZoneRepository, logger *zap.Logger) *GeofenceService {
	return &GeofenceService{
		members: members,
		zones:   zones,
		logger:  logger,
	}
}

// Evaluate classifies every active zone of the member's circle against
// the previous and current coordinate and returns the transitions that
// the zone configuration allows to fire. Failures are logged and yield
// no events; a location update must never fail because evaluation did.
func (s *GeofenceService) Evaluate(ctx context.Context, memberID string, prev *domain.Coordinate, cur domain.Coordinate) []domain.TriggeredEvent {
	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		s.logger.Error("geofence: resolve member", zap.String("member_id", memberID), zap.Error(err))
		return nil
	}
	if member.CircleID == "" {
		return nil
	}

	zones, err := s.zones.ListActiveByCircle(ctx, member.CircleID)
	if err != nil {
		s.logger.Error("geofence: load zones", zap.String("circle_id", member.CircleID), zap.Error(err))
		return nil
	}

	now := time.Now()
	var events []domain.TriggeredEvent
	for i := range zones {
		zone := zones[i]
		wasInside, isInside := Classify(prev, cur, &zone)
		entered := !wasInside && isInside
		exited := wasInside && !isInside

		switch {
		case entered && zone.Notifications.OnEntry:
			events = append(events, domain.TriggeredEvent{
				Zone:      &zone,
				Member:    member,
				Event:     domain.GeofenceEntry,
				Location:  cur,
				Timestamp: now,
			})
		case exited && zone.Notifications.OnExit:
			events = append(events, domain.TriggeredEvent{
				Zone:      &zone,
				Member:    member,
				Event:     domain.GeofenceExit,
				Location:  cur,
				Timestamp: now,
			})
		}
	}
	return events
}

// Classify reports whether the member was inside and is inside the zone.
// A nil previous coordinate (first report) counts as outside, so a first
// report landing inside a zone surfaces as an entry. The boundary is
// inclusive: distance equal to the radius is inside.
func Classify(prev *domain.Coordinate, cur domain.Coordinate, zone *domain.Zone) (wasInside, isInside bool) {
	radiusKm := zone.RadiusKm()
	isInside = DistanceKm(cur.Lat, cur.Lng, zone.Center.Lat, zone.Center.Lng) <= radiusKm
	if prev != nil {
		wasInside = DistanceKm(prev.Lat, prev.Lng, zone.Center.Lat, zone.Center.Lng) <= radiusKm
	}
	return wasInside, isInside
}

// DistanceKm is the haversine great-circle distance in kilometers.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
