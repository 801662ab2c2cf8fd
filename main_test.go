package main

import (
	"bytes"
	"context"
	"fmt"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ariebrainware/security-event-log/config"
	"github.com/ariebrainware/security-event-log/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	os.Setenv("APPENV", "test")
	os.Setenv("APPNAME", "SecLog Test")
	gin.SetMode(gin.TestMode)

	os.Exit(m.Run())
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:main_router?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, store.New(db).Migrate(context.Background()))
	return setupRouter(db, config.LoadConfig())
}

func serveJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetupRouter_Welcome(t *testing.T) {
	r := newRouter(t)

	w := serveJSON(r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Welcome to SecLog Test!"}`, w.Body.String())
}

func TestSetupRouter_LogLifecycle(t *testing.T) {
	r := newRouter(t)

	w := serveJSON(r, http.MethodPost, "/logs",
		`{"event_type":"BRUTE_FORCE","source_ip":"198.51.100.4","severity":"CRITICAL","description":"ssh dictionary attack"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var created struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.Data.ID)

	w = serveJSON(r, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		Data map[string]int64 `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, map[string]int64{"login_fail": 0, "brute_force": 1, "port_scan": 0, "malware": 0}, stats.Data)

	path := fmt.Sprintf("/logs/%d", created.Data.ID)
	w = serveJSON(r, http.MethodPatch, path, `{"severity":"LOW"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serveJSON(r, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serveJSON(r, http.MethodGet, "/logs", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(mustData(t, w)))
}

func mustData(t *testing.T, w *httptest.ResponseRecorder) json.RawMessage {
	t.Helper()
	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestSetupRouter_Preflight(t *testing.T) {
	r := newRouter(t)

	w := serveJSON(r, http.MethodOptions, "/logs", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupRouter_Swagger(t *testing.T) {
	r := newRouter(t)

	w := serveJSON(r, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/logs/{id}")
	assert.Contains(t, w.Body.String(), "SecLog Test API")
}

func TestSetupRouter_Healthz(t *testing.T) {
	r := newRouter(t)

	w := serveJSON(r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	app.Writer = &out
	t.Cleanup(func() { app.Writer = os.Stdout })

	require.NoError(t, app.Run([]string{"seclog", "version"}))
	assert.Equal(t, version+"\n", out.String())
}

func TestMigrateCommand(t *testing.T) {
	var out bytes.Buffer
	app.Writer = &out
	t.Cleanup(func() { app.Writer = os.Stdout })

	require.NoError(t, app.Run([]string{"seclog", "migrate"}))
	assert.Contains(t, out.String(), "logs table is up to date")
}

func TestGeoIPDownloadCommand_RejectsInvalidDatabase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("definitely not an mmdb file"))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "GeoLite2-City.mmdb")
	err := app.Run([]string{"seclog", "geoip", "download", "--url", server.URL, "--dest", dest})
	require.Error(t, err)

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}
