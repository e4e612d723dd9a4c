package publisher

import (
	"context"

	"github.com/mutti-dev/famloc/module/core/domain"
)

type GeofencePublisher interface {
	PublishEvent(ctx context.Context, event *domain.TriggeredEvent) error
}
