package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/parsa-a/HealthTrackBack/internal/middleware"
	"github.com/parsa-a/HealthTrackBack/internal/models"
	"github.com/parsa-a/HealthTrackBack/internal/repository"
	"github.com/parsa-a/HealthTrackBack/internal/services"
)

type stubSessionManager struct {
	createFn func(ctx context.Context, clientID, name, department, stage string) (*services.Session, error)
	loadFn   func(ctx context.Context, clientID, name string) (*services.Session, error)
	namesFn  func(ctx context.Context, clientID string) ([]string, error)

	lastClientID string
}

func (s *stubSessionManager) CreateOrAdopt(ctx context.Context, clientID, name, department, stage string) (*services.Session, error) {
	s.lastClientID = clientID
	return s.createFn(ctx, clientID, name, department, stage)
}

func (s *stubSessionManager) LoadByName(ctx context.Context, clientID, name string) (*services.Session, error) {
	s.lastClientID = clientID
	return s.loadFn(ctx, clientID, name)
}

func (s *stubSessionManager) Current(ctx context.Context, clientID string) (*services.Session, error) {
	s.lastClientID = clientID
	return &services.Session{State: services.StateAnonymous}, nil
}

func (s *stubSessionManager) UpdateProfile(ctx context.Context, clientID string, in repository.UpdateProfileInput) (*models.Profile, error) {
	return nil, services.ErrNoProfile
}

func (s *stubSessionManager) SignOut(ctx context.Context, clientID string) error {
	s.lastClientID = clientID
	return nil
}

func (s *stubSessionManager) RememberedNames(ctx context.Context, clientID string) ([]string, error) {
	s.lastClientID = clientID
	return s.namesFn(ctx, clientID)
}

func newSessionApp(manager *stubSessionManager) *fiber.App {
	handler := NewSessionHandler(manager)
	app := fiber.New()
	group := app.Group("/api/session", middleware.ClientRequired())
	group.Post("/", handler.Create)
	group.Post("/load", handler.Load)
	group.Get("/", handler.Current)
	group.Put("/profile", handler.UpdateProfile)
	group.Post("/signout", handler.SignOut)
	group.Get("/names", handler.RememberedNames)
	return app
}

func sessionRequest(method, path, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Client-ID", "client-1")
	return req
}

func TestCreateSession(t *testing.T) {
	manager := &stubSessionManager{
		createFn: func(ctx context.Context, clientID, name, department, stage string) (*services.Session, error) {
			return &services.Session{
				State:   services.StateAuthenticated,
				Profile: &models.Profile{ID: "p1", Username: name, Department: department, Stage: stage},
			}, nil
		},
	}
	app := newSessionApp(manager)

	resp, err := app.Test(sessionRequest(http.MethodPost, "/api/session/", `{"name":"Alice","department":"Engineering","stage":"active"}`))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if manager.lastClientID != "client-1" {
		t.Fatalf("expected client id from header, got %q", manager.lastClientID)
	}

	var body struct {
		State   string `json:"state"`
		Profile struct {
			Username string `json:"username"`
		} `json:"profile"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.State != "authenticated" {
		t.Fatalf("expected authenticated state, got %q", body.State)
	}
	if body.Profile.Username != "Alice" {
		t.Fatalf("expected Alice, got %q", body.Profile.Username)
	}
}

func TestCreateSessionValidation(t *testing.T) {
	manager := &stubSessionManager{
		createFn: func(ctx context.Context, clientID, name, department, stage string) (*services.Session, error) {
			return nil, services.ErrInvalidInput
		},
	}
	app := newSessionApp(manager)

	resp, err := app.Test(sessionRequest(http.MethodPost, "/api/session/", `{"name":""}`))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestLoadSessionNotFound(t *testing.T) {
	manager := &stubSessionManager{
		loadFn: func(ctx context.Context, clientID, name string) (*services.Session, error) {
			return nil, services.ErrNotFound
		},
	}
	app := newSessionApp(manager)

	resp, err := app.Test(sessionRequest(http.MethodPost, "/api/session/load", `{"name":"Nobody"}`))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestSessionRequiresClientID(t *testing.T) {
	app := newSessionApp(&stubSessionManager{})

	req := httptest.NewRequest(http.MethodGet, "/api/session/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without X-Client-ID, got %d", resp.StatusCode)
	}
}

func TestUpdateProfileWithoutSession(t *testing.T) {
	app := newSessionApp(&stubSessionManager{})

	resp, err := app.Test(sessionRequest(http.MethodPut, "/api/session/profile", `{"full_name":"Alice Smith"}`))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRememberedNames(t *testing.T) {
	manager := &stubSessionManager{
		namesFn: func(ctx context.Context, clientID string) ([]string, error) {
			return []string{"Bob", "Alice"}, nil
		},
	}
	app := newSessionApp(manager)

	resp, err := app.Test(sessionRequest(http.MethodGet, "/api/session/names", ""))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Names []string `json:"names"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(body.Names) != 2 || body.Names[0] != "Bob" {
		t.Fatalf("unexpected names: %v", body.Names)
	}
}

func TestRememberedNamesFailure(t *testing.T) {
	manager := &stubSessionManager{
		namesFn: func(ctx context.Context, clientID string) ([]string, error) {
			return nil, errors.New("redis down")
		},
	}
	app := newSessionApp(manager)

	resp, err := app.Test(sessionRequest(http.MethodGet, "/api/session/names", ""))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
}
