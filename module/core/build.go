package core

import (
	"database/sql"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	handler "github.com/mutti-dev/famloc/module/core/internal/handler/http"
	"github.com/mutti-dev/famloc/module/core/internal/handler/subscriber"
	"github.com/mutti-dev/famloc/module/core/internal/repository/database/postgres"
	"github.com/mutti-dev/famloc/module/core/internal/repository/push"
	"github.com/mutti-dev/famloc/module/core/internal/repository/push/fcm"
	"github.com/mutti-dev/famloc/module/core/internal/repository/publisher/rabbitmq"
	"github.com/mutti-dev/famloc/module/core/service"
	"github.com/mutti-dev/famloc/pkg/ws"
)

type Module struct {
	LocationSvc     *service.LocationService
	GeofenceSvc     *service.GeofenceService
	DispatchSvc     *service.DispatchService
	ZoneSvc         *service.ZoneService
	NotificationSvc *service.NotificationService

	locationHandler     *handler.LocationHandler
	zoneHandler         *handler.ZoneHandler
	notificationHandler *handler.NotificationHandler
	wsHandler           *handler.WSHandler
	subscriber          *subscriber.LocationSubscriber
}

type PushConfig struct {
	Endpoint  string
	ServerKey string
}

func Build(db *sql.DB, amqpConn *amqp.Connection, mqttClient mqtt.Client, hub *ws.Hub, pushCfg PushConfig, logger *zap.Logger) (*Module, error) {
	memberRepo := postgres.NewMemberRepo(db)
	circleRepo := postgres.NewCircleRepo(db)
	zoneRepo := postgres.NewZoneRepo(db)
	notificationRepo := postgres.NewNotificationRepo(db)

	geofencePub, err := rabbitmq.NewGeofencePublisher(amqpConn)
	if err != nil {
		return nil, fmt.Errorf("geofence publisher: %w", err)
	}

	var pushSender push.Sender = fcm.NewSender(pushCfg.Endpoint, pushCfg.ServerKey)

	locationSvc := service.NewLocationService(memberRepo)
	geofenceSvc := service.NewGeofenceService(memberRepo, zoneRepo, logger)
	dispatchSvc := service.NewDispatchService(circleRepo, memberRepo, notificationRepo, pushSender, hub, geofencePub, logger)
	zoneSvc := service.NewZoneService(zoneRepo, circleRepo)
	circleSvc := service.NewCircleService(circleRepo)
	notificationSvc := service.NewNotificationService(notificationRepo)

	return &Module{
		LocationSvc:     locationSvc,
		GeofenceSvc:     geofenceSvc,
		DispatchSvc:     dispatchSvc,
		ZoneSvc:         zoneSvc,
		NotificationSvc: notificationSvc,

		locationHandler:     handler.NewLocationHandler(locationSvc, geofenceSvc, dispatchSvc, circleSvc),
		zoneHandler:         handler.NewZoneHandler(zoneSvc),
		notificationHandler: handler.NewNotificationHandler(notificationSvc),
		wsHandler:           handler.NewWSHandler(hub, locationSvc, logger),
		subscriber:          subscriber.NewLocationSubscriber(mqttClient, locationSvc, geofenceSvc, dispatchSvc, logger),
	}, nil
}

func (m *Module) RegisterRoutes(r *gin.RouterGroup) {
	m.locationHandler.Register(r)
	m.zoneHandler.Register(r)
	m.notificationHandler.Register(r)
	m.wsHandler.Register(r)
}

func (m *Module) StartSubscribers() error {
	return m.subscriber.Start()
}
