package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"fairchance-board/internal/app"
	"fairchance-board/internal/config"
	"fairchance-board/internal/database"
	"fairchance-board/internal/database/migration"
	dbpostgres "fairchance-board/internal/database/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type createdResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type jobItem struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	ViewCount  int64  `json:"view_count"`
	EmployerID *int64 `json:"employer_id"`
}

func TestIntegration_JobLifecycle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	if err := migration.EnsureSchema(ctx, db.SQLDB(), zap.NewNop()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	cfg := config.Config{App: config.AppConfig{AppName: "fairchance-board-integration"}}
	c := app.NewContainer(db, zap.NewNop())
	a := app.New(cfg, zap.NewNop(), c.Registry())

	tag := uuid.NewString()[:8]

	var emp createdResponse
	status := call(t, a, http.MethodPost, "/api/employers",
		fmt.Sprintf(`{"name":"Integration Employer %s","description":"Second chance hiring"}`, tag), &emp)
	if status != http.StatusCreated || emp.ID == 0 {
		t.Fatalf("create employer: status=%d id=%d", status, emp.ID)
	}
	defer cleanup(t, db, `DELETE FROM employers WHERE id = $1`, emp.ID)

	status = call(t, a, http.MethodPost, "/api/employers",
		fmt.Sprintf(`{"name":"Integration Employer %s"}`, tag), nil)
	if status != http.StatusConflict {
		t.Fatalf("duplicate employer: expected 409, got %d", status)
	}

	var created createdResponse
	status = call(t, a, http.MethodPost, "/api/jobs", fmt.Sprintf(`{
		"title": "Integration Cook %s", "company": "Integration Employer %s",
		"location": "Austin, TX", "description": "Line cook",
		"salary": "$15 - $20 per hour", "felony_friendly": true, "employer_id": %d
	}`, tag, tag, emp.ID), &created)
	if status != http.StatusCreated || created.ID == 0 {
		t.Fatalf("create job: status=%d id=%d", status, created.ID)
	}
	defer cleanup(t, db, `DELETE FROM jobs WHERE id = $1`, created.ID)

	search := "/api/jobs?search=" + tag
	if items := listJobs(t, a, search); len(items) != 0 {
		t.Fatalf("pending job should not be listed, got %d", len(items))
	}
	if !containsJob(listJobs(t, a, "/api/admin/jobs/pending"), created.ID) {
		t.Fatalf("expected job %d in pending queue", created.ID)
	}

	if status := call(t, a, http.MethodPost, fmt.Sprintf("/api/admin/jobs/%d/approve", created.ID), "", nil); status != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d", status)
	}

	items := listJobs(t, a, search)
	if len(items) != 1 || items[0].Status != "approved" {
		t.Fatalf("expected one approved job, got %+v", items)
	}
	if items[0].EmployerID == nil || *items[0].EmployerID != emp.ID {
		t.Fatalf("expected employer %d, got %v", emp.ID, items[0].EmployerID)
	}
	if items := listJobs(t, a, search+"&min_salary=25"); len(items) != 0 {
		t.Fatalf("expected salary filter to exclude job, got %d", len(items))
	}
	if items := listJobs(t, a, search+"&max_salary=20"); len(items) != 1 {
		t.Fatalf("expected salary filter to admit job, got %d", len(items))
	}
	if items := listJobs(t, a, fmt.Sprintf("/api/employers/%d/jobs?search=%s", emp.ID, tag)); len(items) != 1 {
		t.Fatalf("expected one employer job, got %d", len(items))
	}

	for want := int64(1); want <= 2; want++ {
		var got jobItem
		if status := call(t, a, http.MethodGet, fmt.Sprintf("/api/jobs/%d", created.ID), "", &got); status != http.StatusOK {
			t.Fatalf("get job: expected 200, got %d", status)
		}
		if got.ViewCount != want {
			t.Fatalf("expected view_count %d, got %d", want, got.ViewCount)
		}
	}

	if status := call(t, a, http.MethodPut, fmt.Sprintf("/api/jobs/%d", created.ID), `{"employer_id": null}`, nil); status != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", status)
	}
	if status := call(t, a, http.MethodDelete, fmt.Sprintf("/api/jobs/%d", created.ID), "", nil); status != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", status)
	}
	if status := call(t, a, http.MethodGet, fmt.Sprintf("/api/jobs/%d", created.ID), "", nil); status != http.StatusNotFound {
		t.Fatalf("deleted job: expected 404, got %d", status)
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("FAIRCHANCE_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("FAIRCHANCE_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("FAIRCHANCE_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("FAIRCHANCE_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("FAIRCHANCE_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("FAIRCHANCE_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set FAIRCHANCE_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func stringsOrDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func cleanup(t *testing.T, db database.DB, query string, id int64) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.Exec(ctx, query, id); err != nil {
		t.Errorf("cleanup %q: %v", query, err)
	}
}

func call(t *testing.T, a *app.App, method, target, body string, out any) int {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.Fiber.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < http.StatusBadRequest {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode: %v", method, target, err)
		}
	}
	return resp.StatusCode
}

func listJobs(t *testing.T, a *app.App, target string) []jobItem {
	t.Helper()

	var items []jobItem
	if status := call(t, a, http.MethodGet, target, "", &items); status != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d", target, status)
	}
	return items
}

func containsJob(items []jobItem, id int64) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}
