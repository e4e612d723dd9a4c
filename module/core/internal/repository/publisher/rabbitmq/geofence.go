package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/mutti-dev/famloc/module/core/domain"
	"github.com/mutti-dev/famloc/module/core/internal/repository/publisher"
)

var _ publisher.GeofencePublisher = (*GeofencePublisher)(nil)

const (
	exchangeName = "famloc.events"
	queueName    = "geofence_alerts"
)

type GeofencePublisher struct {
	ch *amqp.Channel
}

func NewGeofencePublisher(conn *amqp.Connection) (*GeofencePublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(queueName, "", exchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	return &GeofencePublisher{ch: ch}, nil
}

type eventMessage struct {
	Event      domain.GeofenceEventType `json:"event"`
	MemberID   string                   `json:"member_id"`
	MemberName string                   `json:"member_name"`
	CircleID   string                   `json:"circle_id"`
	ZoneID     string                   `json:"zone_id"`
	ZoneName   string                   `json:"zone_name"`
	Latitude   float64                  `json:"latitude"`
	Longitude  float64                  `json:"longitude"`
	Timestamp  int64                    `json:"timestamp"`
}

func (p *GeofencePublisher) PublishEvent(ctx context.Context, event *domain.TriggeredEvent) error {
	msg := eventMessage{
		Event:      event.Event,
		MemberID:   event.Member.ID,
		MemberName: event.Member.Name,
		CircleID:   event.Zone.CircleID,
		ZoneID:     event.Zone.ID,
		ZoneName:   event.Zone.Name,
		Latitude:   event.Location.Lat,
		Longitude:  event.Location.Lng,
		Timestamp:  event.Timestamp.Unix(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return p.ch.PublishWithContext(ctx, exchangeName, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}
