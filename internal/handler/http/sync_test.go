package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/hraghav/tally-mirror/internal/config"
	"github.com/hraghav/tally-mirror/internal/logger"
	"github.com/hraghav/tally-mirror/internal/service"
	"github.com/hraghav/tally-mirror/internal/store"
	"github.com/hraghav/tally-mirror/internal/utils"
	"github.com/hraghav/tally-mirror/models"
)

const (
	testIssuer  = "tally-mirror"
	testSignKey = "sign-key"
)

func newTestRouter(t *testing.T) (*chi.Mux, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	l := logger.Nop()
	storages := store.NewStorages(&store.DB{DB: db}, l)

	cfg := config.App{
		PasswordHashKey: "hash-key",
		TokenSignKey:    testSignKey,
		TokenIssuer:     testIssuer,
		TokenDuration:   time.Hour,
		Version:         "1.0.0",
	}
	services, err := service.NewServices(storages, cfg, l)
	if err != nil {
		t.Fatalf("failed to create services: %v", err)
	}

	return NewHandler(services, l).Init(), mock, db
}

func bearerToken(t *testing.T) string {
	token, err := utils.GenerateJWTToken(testIssuer, 1, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return "Bearer " + token.SignedString
}

func TestSyncGroups_Unauthorized(t *testing.T) {
	router, _, db := newTestRouter(t)
	defer db.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/tenants/1/sync/groups", strings.NewReader(`[]`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestSyncGroups_Success(t *testing.T) {
	router, mock, db := newTestRouter(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, tenant_id, external_id").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO master_groups").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now))

	body := `[{"tenant_id":1,"master_id":42,"alter_id":5,"guid":"g-1","name":"Current Assets","parent":"Primary"}]`
	req := httptest.NewRequest(http.MethodPost, "/api/tenants/1/sync/groups", strings.NewReader(body))
	req.Header.Set("Authorization", bearerToken(t))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var summary models.BatchSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("failed to decode summary: %v", err)
	}
	if summary.TotalReceived != 1 || summary.TotalProcessed != 1 {
		t.Errorf("expected 1/1 summary, got %+v", summary)
	}
	if summary.FirstError != "" {
		t.Errorf("expected no error, got %s", summary.FirstError)
	}
}

func TestSyncGroups_NullRecordGetsSummary(t *testing.T) {
	router, _, db := newTestRouter(t)
	defer db.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/tenants/1/sync/groups", strings.NewReader(`[null]`))
	req.Header.Set("Authorization", bearerToken(t))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with a summary, got %d: %s", rec.Code, rec.Body.String())
	}

	var summary models.BatchSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("failed to decode summary: %v", err)
	}
	if summary.TotalReceived != 1 || summary.TotalProcessed != 0 {
		t.Errorf("expected 1 received / 0 processed, got %+v", summary)
	}
	if summary.FirstError == "" {
		t.Error("expected the null record to be reported in first_error")
	}
}

func TestSyncGroups_EmptyBatchRejected(t *testing.T) {
	router, _, db := newTestRouter(t)
	defer db.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/tenants/1/sync/groups", strings.NewReader(`[]`))
	req.Header.Set("Authorization", bearerToken(t))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty batch, got %d", rec.Code)
	}
}

func TestSyncGroups_InvalidTenantID(t *testing.T) {
	router, _, db := newTestRouter(t)
	defer db.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/tenants/abc/sync/groups", strings.NewReader(`[]`))
	req.Header.Set("Authorization", bearerToken(t))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-numeric tenant id, got %d", rec.Code)
	}
}

func TestGetLastRevision_NeverAcknowledged(t *testing.T) {
	router, mock, db := newTestRouter(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, tenant_id, last_acknowledged_revision").
		WillReturnError(sql.ErrNoRows)

	req := httptest.NewRequest(http.MethodGet, "/api/tenants/1/sync/last-revision", nil)
	req.Header.Set("Authorization", bearerToken(t))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.RevisionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Revision != 0 {
		t.Errorf("expected revision 0 for unseen tenant, got %d", resp.Revision)
	}
}

func TestAcknowledge_Success(t *testing.T) {
	router, mock, db := newTestRouter(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "tenant_id", "last_acknowledged_revision", "entity_kind", "last_sync_time", "created_at", "updated_at"}).
		AddRow(3, 1, 120, "ledger", now, now, now)
	mock.ExpectQuery("INSERT INTO sync_cursors").
		WillReturnRows(rows)

	body := `{"revision":120,"entity_kind":"ledger"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tenants/1/sync/ack", strings.NewReader(body))
	req.Header.Set("Authorization", bearerToken(t))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var cursor models.SyncCursor
	if err := json.Unmarshal(rec.Body.Bytes(), &cursor); err != nil {
		t.Fatalf("failed to decode cursor: %v", err)
	}
	if cursor.LastAcknowledgedRevision != 120 {
		t.Errorf("expected revision 120, got %d", cursor.LastAcknowledgedRevision)
	}
}

func TestAcknowledge_UnknownKind(t *testing.T) {
	router, _, db := newTestRouter(t)
	defer db.Close()

	body := `{"revision":120,"entity_kind":"voucher"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tenants/1/sync/ack", strings.NewReader(body))
	req.Header.Set("Authorization", bearerToken(t))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown entity kind, got %d", rec.Code)
	}
}

func TestVersionEndpoint(t *testing.T) {
	router, _, db := newTestRouter(t)
	defer db.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router, _, db := newTestRouter(t)
	defer db.Close()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 from metrics endpoint, got %d", rec.Code)
	}
}

func TestTraceID_EchoedBack(t *testing.T) {
	router, _, db := newTestRouter(t)
	defer db.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set("X-Trace-ID", "session-42")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Trace-ID"); got != "session-42" {
		t.Errorf("expected the client trace id to be echoed, got %q", got)
	}
}

func TestTraceID_MintedWhenAbsent(t *testing.T) {
	router, _, db := newTestRouter(t)
	defer db.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Trace-ID") == "" {
		t.Error("expected a generated trace id on the response")
	}
}

func TestRegister_IssuesToken(t *testing.T) {
	router, mock, db := newTestRouter(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "login", "password", "name", "created_at"}).
		AddRow(1, "john", "hashed", "John", now)
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	body := `{"login":"john","password":"secret","name":"John"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if auth := rec.Header().Get("Authorization"); !strings.HasPrefix(auth, "Bearer ") {
		t.Errorf("expected bearer token in Authorization header, got %q", auth)
	}
}
