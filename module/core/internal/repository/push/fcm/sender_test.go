package fcm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSend_Success(t *testing.T) {
	var gotAuth string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := NewSender(srv.URL, "secret-key")
	err := sender.Send(context.Background(), "device-token", "Geofence alert", "Alice has exited the Home zone")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "key=secret-key" {
		t.Errorf("expected key=secret-key, got %s", gotAuth)
	}

	var payload struct {
		To           string `json:"to"`
		Notification struct {
			Title string `json:"title"`
			Body  string `json:"body"`
		} `json:"notification"`
	}
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.To != "device-token" {
		t.Errorf("expected device-token, got %s", payload.To)
	}
	if payload.Notification.Body != "Alice has exited the Home zone" {
		t.Errorf("unexpected body: %s", payload.Notification.Body)
	}
}

func TestSend_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sender := NewSender(srv.URL, "secret-key")
	if err := sender.Send(context.Background(), "device-token", "t", "m"); err == nil {
		t.Fatal("expected error")
	}
}

func TestSend_UnreachableProvider(t *testing.T) {
	sender := NewSender("http://127.0.0.1:1", "secret-key")
	if err := sender.Send(context.Background(), "device-token", "t", "m"); err == nil {
		t.Fatal("expected error")
	}
}
