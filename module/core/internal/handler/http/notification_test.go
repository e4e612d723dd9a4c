package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mutti-dev/famloc/module/core/domain"
	"github.com/mutti-dev/famloc/module/core/service"
)

type mockNotificationService struct {
	listByMemberFn func(ctx context.Context, memberID string) ([]domain.Notification, error)
	markReadFn     func(ctx context.Context, notificationID, callerID string) (*domain.Notification, error)
	deleteFn       func(ctx context.Context, notificationID, callerID string) error
}

func (m *mockNotificationService) ListByMember(ctx context.Context, memberID string) ([]domain.Notification, error) {
	return m.listByMemberFn(ctx, memberID)
}

func (m *mockNotificationService) MarkRead(ctx context.Context, notificationID, callerID string) (*domain.Notification, error) {
	return m.markReadFn(ctx, notificationID, callerID)
}

func (m *mockNotificationService) Delete(ctx context.Context, notificationID, callerID string) error {
	return m.deleteFn(ctx, notificationID, callerID)
}

func setupNotificationRouter(svc notificationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewNotificationHandler(svc)
	h.Register(r.Group(""))
	return r
}

func TestListNotifications_Success(t *testing.T) {
	svc := &mockNotificationService{
		listByMemberFn: func(_ context.Context, memberID string) ([]domain.Notification, error) {
			return []domain.Notification{
				{ID: "n-1", MemberID: memberID, Type: domain.NotificationGeofenceExit, Message: "Alice has exited the Home zone"},
			}, nil
		},
	}

	r := setupNotificationRouter(svc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/members/member-1/notifications", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp []domain.Notification
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(resp))
	}
	if resp[0].Type != domain.NotificationGeofenceExit {
		t.Errorf("expected geofence_exit, got %s", resp[0].Type)
	}
}

func TestMarkRead_Success(t *testing.T) {
	svc := &mockNotificationService{
		markReadFn: func(_ context.Context, notificationID, callerID string) (*domain.Notification, error) {
			if callerID != "member-1" {
				t.Fatalf("unexpected caller: %s", callerID)
			}
			return &domain.Notification{ID: notificationID, MemberID: callerID, Read: true}, nil
		},
	}

	r := setupNotificationRouter(svc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/notifications/n-1/read", nil)
	req.Header.Set("X-Member-ID", "member-1")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMarkRead_MissingCaller(t *testing.T) {
	r := setupNotificationRouter(&mockNotificationService{})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/notifications/n-1/read", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestMarkRead_NotOwner(t *testing.T) {
	svc := &mockNotificationService{
		markReadFn: func(_ context.Context, _, _ string) (*domain.Notification, error) {
			return nil, service.ErrNotNotificationOwner
		},
	}

	r := setupNotificationRouter(svc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/notifications/n-1/read", nil)
	req.Header.Set("X-Member-ID", "member-2")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestDeleteNotification_Success(t *testing.T) {
	deleted := false
	svc := &mockNotificationService{
		deleteFn: func(_ context.Context, _, _ string) error {
			deleted = true
			return nil
		},
	}

	r := setupNotificationRouter(svc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/notifications/n-1", nil)
	req.Header.Set("X-Member-ID", "member-1")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if !deleted {
		t.Error("expected delete to be called")
	}
}
