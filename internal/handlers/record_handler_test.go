package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/parsa-a/HealthTrackBack/internal/middleware"
	"github.com/parsa-a/HealthTrackBack/internal/models"
	"github.com/parsa-a/HealthTrackBack/internal/services"
)

type stubRecordManager struct {
	saveErr error
	listErr error

	gotInput services.SaveRecordInput
	gotType  models.RecordType
}

func (s *stubRecordManager) Save(ctx context.Context, clientID string, in services.SaveRecordInput) (*models.HealthRecord, error) {
	s.gotInput = in
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	return &models.HealthRecord{
		ID:          1,
		UserID:      "p1",
		RecordType:  in.RecordType,
		RecordValue: in.RecordValue,
	}, nil
}

func (s *stubRecordManager) ListOwn(ctx context.Context, clientID string, recordType models.RecordType) ([]models.HealthRecord, error) {
	s.gotType = recordType
	if s.listErr != nil {
		return nil, s.listErr
	}
	return nil, nil
}

func (s *stubRecordManager) Summary(ctx context.Context, clientID string, trendLen int) (*services.RecordSummary, error) {
	return &services.RecordSummary{
		Latest: map[models.RecordType]*models.HealthRecord{},
		Trends: map[models.RecordType][]models.HealthRecord{
			models.RecordBMI: {
				{ID: 1, RecordType: models.RecordBMI, RecordValue: 22.1},
				{ID: 2, RecordType: models.RecordBMI, RecordValue: 24.7},
			},
		},
	}, nil
}

func newRecordApp(manager *stubRecordManager) *fiber.App {
	handler := NewRecordHandler(manager)
	app := fiber.New()
	group := app.Group("/api/v1/records", middleware.ClientRequired())
	group.Post("/", handler.Save)
	group.Get("/", handler.List)
	group.Get("/summary", handler.Summary)
	return app
}

func TestSaveRecord(t *testing.T) {
	manager := &stubRecordManager{}
	app := newRecordApp(manager)

	req := sessionRequest(http.MethodPost, "/api/v1/records/", `{"record_type":"weight","record_value":82.5,"record_date":"2026-03-01"}`)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if manager.gotInput.RecordValue != 82.5 {
		t.Fatalf("expected value 82.5, got %v", manager.gotInput.RecordValue)
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !manager.gotInput.RecordDate.Equal(want) {
		t.Fatalf("expected date %v, got %v", want, manager.gotInput.RecordDate)
	}
}

func TestSaveRecordRejectsBadDate(t *testing.T) {
	app := newRecordApp(&stubRecordManager{})

	req := sessionRequest(http.MethodPost, "/api/v1/records/", `{"record_type":"weight","record_value":80,"record_date":"01/03/2026"}`)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestSaveRecordWithoutSession(t *testing.T) {
	app := newRecordApp(&stubRecordManager{saveErr: services.ErrNoProfile})

	req := sessionRequest(http.MethodPost, "/api/v1/records/", `{"record_type":"weight","record_value":80}`)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestListRecordsPassesTypeFilter(t *testing.T) {
	manager := &stubRecordManager{}
	app := newRecordApp(manager)

	req := sessionRequest(http.MethodGet, "/api/v1/records/?type=bmi", "")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if manager.gotType != models.RecordBMI {
		t.Fatalf("expected bmi filter, got %q", manager.gotType)
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(raw["records"]) == "null" {
		t.Fatal("records should encode as an empty array, not null")
	}
}

func TestListRecordsUnknownType(t *testing.T) {
	app := newRecordApp(&stubRecordManager{listErr: services.ErrInvalidInput})

	req := sessionRequest(http.MethodGet, "/api/v1/records/?type=steps", "")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestRecordSummary(t *testing.T) {
	app := newRecordApp(&stubRecordManager{})

	req := sessionRequest(http.MethodGet, "/api/v1/records/summary?n=2", "")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Trends map[string][]models.HealthRecord `json:"trends"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	trend := body.Trends["bmi"]
	if len(trend) != 2 || trend[1].RecordValue != 24.7 {
		t.Fatalf("unexpected bmi trend: %+v", trend)
	}
}

// Missing body value is rejected before reaching the service.
func TestSaveRecordRequiresValue(t *testing.T) {
	app := newRecordApp(&stubRecordManager{})

	req := sessionRequest(http.MethodPost, "/api/v1/records/", `{"record_type":"weight"}`)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
