package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	dbpkg "github.com/sigc-piloto/sigc-backend/internal/data/db"
	types "github.com/sigc-piloto/sigc-backend/internal/domain"
	"github.com/sigc-piloto/sigc-backend/internal/platform/dbctx"
	"github.com/sigc-piloto/sigc-backend/internal/platform/logger"
)

func newSQLiteApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := Config{
		Port:    "0",
		LogMode: "test",
		DB: dbpkg.Config{
			Driver:       dbpkg.DriverSQLite,
			SQLitePath:   filepath.Join(t.TempDir(), "sigc.db"),
			MaxOpenConns: 1,
			AutoMigrate:  true,
		},
		CacheTTL:       time.Minute,
		MetricsEnabled: true,
	}
	a, err := New(context.Background(), logger.Nop(), cfg)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func TestAppServesWiredRoutes(t *testing.T) {
	a := newSQLiteApp(t)
	ctx := dbctx.New(context.Background())
	_, err := a.Repos.Institution.Upsert(ctx, []*types.Institution{
		{Siglas: "UTEC", NombreOficial: "Universidad de Ingenieria y Tecnologia", Ciudad: "Lima", Activa: true},
	})
	require.NoError(t, err)

	for path, want := range map[string]string{
		"/healthcheck":       "ok",
		"/db-test":           `"db":"connected"`,
		"/api/universidades": `"cat_siglas":"UTEC"`,
		"/api/registros":     "[]",
		"/metrics":           "sigc_http_requests_in_flight",
	} {
		rec := httptest.NewRecorder()
		a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.True(t, strings.Contains(rec.Body.String(), want), "%s: %s", path, rec.Body.String())
	}
}

func TestAppCreateThroughRouter(t *testing.T) {
	a := newSQLiteApp(t)
	ctx := dbctx.New(context.Background())
	_, err := a.Repos.Institution.Upsert(ctx, []*types.Institution{
		{Siglas: "UTEC", NombreOficial: "UTEC", Ciudad: "Lima", Activa: true},
	})
	require.NoError(t, err)

	body := `{"universidad_siglas":"UTEC","anio":2024,"proyectos":{"externos":[{"titulo":"X","monto_financiamiento":"1000.50"}]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/registro", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	n, err := a.Repos.Record.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := New(context.Background(), logger.Nop(), Config{DB: dbpkg.Config{Driver: "oracle"}})
	require.Error(t, err)
}
