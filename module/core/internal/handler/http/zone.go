package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mutti-dev/famloc/module/core/domain"
	"github.com/mutti-dev/famloc/module/core/service"
)

// callerHeader carries the authenticated member id. JWT verification
// happens in the gateway in front of this service.
const callerHeader = "X-Member-ID"

type zoneService interface {
	Create(ctx context.Context, in service.CreateZoneInput) (*domain.Zone, error)
	ListByCircle(ctx context.Context, circleID string) ([]domain.Zone, error)
	Update(ctx context.Context, zoneID, callerID string, in service.UpdateZoneInput) (*domain.Zone, error)
	ToggleActive(ctx context.Context, zoneID, callerID string) (*domain.Zone, error)
	Delete(ctx context.Context, zoneID, callerID string) error
}

type zoneRequest struct {
	Name          string                      `json:"name" binding:"required"`
	Description   string                      `json:"description"`
	Latitude      *float64                    `json:"latitude" binding:"required"`
	Longitude     *float64                    `json:"longitude" binding:"required"`
	Radius        *float64                    `json:"radius" binding:"required"`
	RadiusUnit    string                      `json:"radius_unit"`
	ZoneType      string                      `json:"zone_type"`
	Notifications domain.NotificationSettings `json:"notifications"`
}

type ZoneHandler struct {
	zoneSvc zoneService
}

func NewZoneHandler(zoneSvc zoneService) *ZoneHandler {
	return &ZoneHandler{zoneSvc: zoneSvc}
}

func (h *ZoneHandler) Register(r *gin.RouterGroup) {
	r.POST("/circles/:circle_id/zones", h.CreateZone)
	r.GET("/circles/:circle_id/zones", h.ListZones)
	r.PUT("/zones/:zone_id", h.UpdateZone)
	r.PATCH("/zones/:zone_id/active", h.ToggleZoneActive)
	r.DELETE("/zones/:zone_id", h.DeleteZone)
}

func (h *ZoneHandler) CreateZone(c *gin.Context) {
	callerID := c.GetHeader(callerHeader)
	if callerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing caller identity"})
		return
	}

	var req zoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, latitude, longitude and radius are required"})
		return
	}
	if req.RadiusUnit != "" && req.RadiusUnit != "m" && req.RadiusUnit != "km" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "radius_unit must be m or km"})
		return
	}

	zone, err := h.zoneSvc.Create(c.Request.Context(), service.CreateZoneInput{
		CircleID:      c.Param("circle_id"),
		CreatedBy:     callerID,
		Name:          req.Name,
		Description:   req.Description,
		Center:        domain.Coordinate{Lat: *req.Latitude, Lng: *req.Longitude},
		Radius:        *req.Radius,
		RadiusUnit:    req.RadiusUnit,
		ZoneType:      domain.ZoneType(req.ZoneType),
		Notifications: req.Notifications,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotCircleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create zone"})
		return
	}

	c.JSON(http.StatusCreated, zone)
}

func (h *ZoneHandler) ListZones(c *gin.Context) {
	zones, err := h.zoneSvc.ListByCircle(c.Request.Context(), c.Param("circle_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch zones"})
		return
	}
	c.JSON(http.StatusOK, zones)
}

func (h *ZoneHandler) UpdateZone(c *gin.Context) {
	callerID := c.GetHeader(callerHeader)
	if callerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing caller identity"})
		return
	}

	var req zoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, latitude, longitude and radius are required"})
		return
	}

	zone, err := h.zoneSvc.Update(c.Request.Context(), c.Param("zone_id"), callerID, service.UpdateZoneInput{
		Name:          req.Name,
		Description:   req.Description,
		Center:        domain.Coordinate{Lat: *req.Latitude, Lng: *req.Longitude},
		Radius:        *req.Radius,
		RadiusUnit:    req.RadiusUnit,
		ZoneType:      domain.ZoneType(req.ZoneType),
		Notifications: req.Notifications,
	})
	if err != nil {
		writeZoneError(c, err)
		return
	}

	c.JSON(http.StatusOK, zone)
}

func (h *ZoneHandler) ToggleZoneActive(c *gin.Context) {
	callerID := c.GetHeader(callerHeader)
	if callerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing caller identity"})
		return
	}

	zone, err := h.zoneSvc.ToggleActive(c.Request.Context(), c.Param("zone_id"), callerID)
	if err != nil {
		writeZoneError(c, err)
		return
	}

	c.JSON(http.StatusOK, zone)
}

func (h *ZoneHandler) DeleteZone(c *gin.Context) {
	callerID := c.GetHeader(callerHeader)
	if callerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing caller identity"})
		return
	}

	if err := h.zoneSvc.Delete(c.Request.Context(), c.Param("zone_id"), callerID); err != nil {
		writeZoneError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeZoneError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotZoneCreator) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "zone not found"})
}
