package subscriber

import (
	"context"
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/mutti-dev/famloc/module/core/domain"
)

const topicPattern = "/famloc/member/+/location"

type locationService interface {
	UpdateLocation(ctx context.Context, memberID string, loc domain.Coordinate) (*domain.Coordinate, error)
}

type geofenceService interface {
	Evaluate(ctx context.Context, memberID string, prev *domain.Coordinate, cur domain.Coordinate) []domain.TriggeredEvent
}

type dispatchService interface {
	Dispatch(ctx context.Context, event *domain.TriggeredEvent)
}

type locationMessage struct {
	MemberID  string  `json:"member_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

// LocationSubscriber ingests location reports published by mobile
// clients over MQTT and runs the same persist-evaluate-dispatch
// pipeline as the HTTP entrypoint.
type LocationSubscriber struct {
	client      mqtt.Client
	locationSvc locationService
	geofenceSvc geofenceService
	dispatchSvc dispatchService
	logger      *zap.Logger
}

func NewLocationSubscriber(client mqtt.Client, locationSvc locationService, geofenceSvc geofenceService, dispatchSvc dispatchService, logger *zap.Logger) *LocationSubscriber {
	return &LocationSubscriber{
		client:      client,
		locationSvc: locationSvc,
		geofenceSvc: geofenceSvc,
		dispatchSvc: dispatchSvc,
		logger:      logger,
	}
}

func (s *LocationSubscriber) Start() error {
	token := s.client.Subscribe(topicPattern, 1, s.handleMessage)
	token.Wait()
	return token.Error()
}

func (s *LocationSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var raw locationMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		s.logger.Warn("invalid location message", zap.Error(err))
		return
	}

	if err := validateLocationMessage(&raw); err != nil {
		s.logger.Warn("location message rejected", zap.Error(err))
		return
	}

	cur := domain.Coordinate{Lat: raw.Latitude, Lng: raw.Longitude}
	ctx := context.Background()

	prev, err := s.locationSvc.UpdateLocation(ctx, raw.MemberID, cur)
	if err != nil {
		s.logger.Error("save location", zap.String("member_id", raw.MemberID), zap.Error(err))
		return
	}

	for _, event := range s.geofenceSvc.Evaluate(ctx, raw.MemberID, prev, cur) {
		ev := event
		s.dispatchSvc.Dispatch(ctx, &ev)
	}
}

func validateLocationMessage(msg *locationMessage) error {
	if msg.MemberID == "" {
		return fmt.Errorf("member_id: required")
	}
	if msg.Latitude < -90 || msg.Latitude > 90 {
		return fmt.Errorf("latitude: must be between -90 and 90")
	}
	if msg.Longitude < -180 || msg.Longitude > 180 {
		return fmt.Errorf("longitude: must be between -180 and 180")
	}
	if msg.Timestamp <= 0 {
		return fmt.Errorf("timestamp: must be positive")
	}
	return nil
}
