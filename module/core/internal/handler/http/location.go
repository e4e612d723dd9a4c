package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mutti-dev/famloc/module/core/domain"
)

type locationService interface {
	UpdateLocation(ctx context.Context, memberID string, loc domain.Coordinate) (*domain.Coordinate, error)
	GetMember(ctx context.Context, memberID string) (*domain.Member, error)
	UpdatePushToken(ctx context.Context, memberID, token string) error
}

type geofenceService interface {
	Evaluate(ctx context.Context, memberID string, prev *domain.Coordinate, cur domain.Coordinate) []domain.TriggeredEvent
}

type dispatchService interface {
	Dispatch(ctx context.Context, event *domain.TriggeredEvent)
}

type circleService interface {
	ListMembers(ctx context.Context, circleID string) ([]domain.Member, error)
}

type locationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

type pushTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type LocationHandler struct {
	locationSvc locationService
	geofenceSvc geofenceService
	dispatchSvc dispatchService
	circleSvc   circleService
}

func NewLocationHandler(locationSvc locationService, geofenceSvc geofenceService, dispatchSvc dispatchService, circleSvc circleService) *LocationHandler {
	return &LocationHandler{
		locationSvc: locationSvc,
		geofenceSvc: geofenceSvc,
		dispatchSvc: dispatchSvc,
		circleSvc:   circleSvc,
	}
}

func (h *LocationHandler) Register(r *gin.RouterGroup) {
	r.PUT("/members/:member_id/location", h.UpdateLocation)
	r.GET("/members/:member_id/location", h.GetLocation)
	r.PUT("/members/:member_id/push-token", h.UpdatePushToken)
	r.GET("/circles/:circle_id/members", h.ListCircleMembers)
}

// UpdateLocation persists the report and then evaluates geofences.
// Evaluation and dispatch are best-effort: their failures never turn
// into a failed location update.
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	memberID := c.Param("member_id")

	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude are required"})
		return
	}
	if *req.Latitude < -90 || *req.Latitude > 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude must be between -90 and 90"})
		return
	}
	if *req.Longitude < -180 || *req.Longitude > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "longitude must be between -180 and 180"})
		return
	}

	cur := domain.Coordinate{Lat: *req.Latitude, Lng: *req.Longitude}
	prev, err := h.locationSvc.UpdateLocation(c.Request.Context(), memberID, cur)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		return
	}

	for _, event := range h.geofenceSvc.Evaluate(c.Request.Context(), memberID, prev, cur) {
		ev := event
		h.dispatchSvc.Dispatch(c.Request.Context(), &ev)
	}

	c.JSON(http.StatusOK, gin.H{
		"member_id": memberID,
		"location":  cur,
	})
}

func (h *LocationHandler) GetLocation(c *gin.Context) {
	member, err := h.locationSvc.GetMember(c.Request.Context(), c.Param("member_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		return
	}
	if member.Location == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "member has not reported a location"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"member_id":  member.ID,
		"location":   member.Location,
		"updated_at": member.LocationUpdatedAt,
	})
}

func (h *LocationHandler) UpdatePushToken(c *gin.Context) {
	var req pushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	if err := h.locationSvc.UpdatePushToken(c.Request.Context(), c.Param("member_id"), req.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update push token"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LocationHandler) ListCircleMembers(c *gin.Context) {
	members, err := h.circleSvc.ListMembers(c.Request.Context(), c.Param("circle_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch members"})
		return
	}
	c.JSON(http.StatusOK, members)
}
