package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mutti-dev/famloc/module/core/domain"
	"github.com/mutti-dev/famloc/module/core/service"
)

type notificationService interface {
	ListByMember(ctx context.Context, memberID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID, callerID string) (*domain.Notification, error)
	Delete(ctx context.Context, notificationID, callerID string) error
}

type NotificationHandler struct {
	notificationSvc notificationService
}

func NewNotificationHandler(notificationSvc notificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

func (h *NotificationHandler) Register(r *gin.RouterGroup) {
	r.GET("/members/:member_id/notifications", h.ListNotifications)
	r.PATCH("/notifications/:notification_id/read", h.MarkRead)
	r.DELETE("/notifications/:notification_id", h.DeleteNotification)
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.notificationSvc.ListByMember(c.Request.Context(), c.Param("member_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notifications"})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	callerID := c.GetHeader(callerHeader)
	if callerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing caller identity"})
		return
	}

	n, err := h.notificationSvc.MarkRead(c.Request.Context(), c.Param("notification_id"), callerID)
	if err != nil {
		writeNotificationError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	callerID := c.GetHeader(callerHeader)
	if callerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing caller identity"})
		return
	}

	if err := h.notificationSvc.Delete(c.Request.Context(), c.Param("notification_id"), callerID); err != nil {
		writeNotificationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeNotificationError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotNotificationOwner) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
}
