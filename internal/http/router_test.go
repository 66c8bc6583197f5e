package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dataagg "github.com/sigc-piloto/sigc-backend/internal/data/aggregates"
	dbpkg "github.com/sigc-piloto/sigc-backend/internal/data/db"
	"github.com/sigc-piloto/sigc-backend/internal/data/repos"
	repotest "github.com/sigc-piloto/sigc-backend/internal/data/repos/testutil"
	types "github.com/sigc-piloto/sigc-backend/internal/domain"
	httpH "github.com/sigc-piloto/sigc-backend/internal/http/handlers"
	"github.com/sigc-piloto/sigc-backend/internal/observability"
	"github.com/sigc-piloto/sigc-backend/internal/platform/cache"
	"github.com/sigc-piloto/sigc-backend/internal/services"
)

type gormPinger struct{ db *gorm.DB }

func (p gormPinger) Ping(ctx context.Context) ([]int, error) { return dbpkg.Ping(ctx, p.db) }

type testServer struct {
	engine *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := repotest.DB(t)
	log := repotest.Logger(t)
	metrics := observability.NewMetrics()

	insts := repos.NewInstitutionRepo(db, log)
	records := repos.NewRecordRepo(db, log)
	units := repos.NewUnitRepo(db, log)
	projects := repos.NewProjectRepo(db, log)

	catalog := services.NewCatalogService(log, insts,
		cache.NewInMemoryManager[types.Institution]("catalog", time.Minute, time.Minute, log),
		time.Minute, metrics)
	agg := dataagg.NewRegistroAggregate(dataagg.RegistroAggregateDeps{
		Base:         dataagg.BaseDeps{DB: db, Log: log, Hooks: dataagg.NewObservabilityHooks(metrics)},
		Institutions: catalog,
		Records:      records,
		Units:        units,
		Projects:     projects,
	})
	registros := services.NewRegistroService(log, agg, insts, records, units, projects)

	engine := NewRouter(RouterConfig{
		Log:             log,
		Metrics:         metrics,
		HealthHandler:   httpH.NewHealthHandler(log, gormPinger{db}),
		CatalogHandler:  httpH.NewCatalogHandler(catalog),
		RegistroHandler: httpH.NewRegistroHandler(log, registros),
	})
	return &testServer{engine: engine, db: db}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func requireErrorEnvelope(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) string {
	t.Helper()
	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())
	env := decode(t, rec)
	errObj, ok := env["error"].(map[string]any)
	require.True(t, ok, "missing error envelope: %s", rec.Body.String())
	require.Equal(t, code, errObj["code"])
	msg, _ := errObj["message"].(string)
	return msg
}

func TestHealthEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/healthcheck", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())

	rec = s.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decode(t, rec)["status"])

	rec = s.do(t, http.MethodGet, "/db-test", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"db":"connected","result":[1]}`, rec.Body.String())
}

func TestListUniversidadesActiveOnly(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	repotest.SeedInstitution(t, ctx, s.db, "UTEC", true)
	repotest.SeedInstitution(t, ctx, s.db, "PUCP", true)
	repotest.SeedInstitution(t, ctx, s.db, "OLD", false)

	rec := s.do(t, http.MethodGet, "/api/universidades", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	require.Equal(t, "PUCP", rows[0]["cat_siglas"])
	require.Equal(t, "UTEC", rows[1]["cat_siglas"])
}

const utecPayload = `{
  "universidad_siglas": "UTEC",
  "anio": 2024,
  "fecha_corte": "2024-06-30",
  "rei": {"total_estudiantes": 500, "pct_presupuesto_inv": "3.5"},
  "unidades": [],
  "proyectos": {
    "externos": [{"titulo": "X", "monto_financiamiento": 1000.50}],
    "internos": []
  }
}`

func TestCreateAndReadUTEC(t *testing.T) {
	s := newTestServer(t)
	repotest.SeedInstitution(t, context.Background(), s.db, "UTEC", true)

	rec := s.do(t, http.MethodPost, "/api/registro", utecPayload)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	created := decode(t, rec)
	require.Equal(t, "Registro creado", created["message"])
	reiID := int64(created["rei_id"].(float64))
	require.Positive(t, reiID)

	rec = s.do(t, http.MethodGet, "/api/registro/"+itoa(reiID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode(t, rec)

	rei := detail["rei"].(map[string]any)
	require.Equal(t, "2024-06-30", rei["fecha_corte"])
	require.Equal(t, "3.50", rei["pct_presupuesto_inv"])
	require.Equal(t, float64(500), rei["total_estudiantes"])

	proyectos := detail["proyectos"].(map[string]any)
	externos := proyectos["externos"].([]any)
	require.Len(t, externos, 1)
	ext := externos[0].(map[string]any)
	require.Equal(t, "1000.50", ext["monto_financiamiento"])
	require.Equal(t, "Activo", ext["estado"])
	require.Equal(t, "externo", ext["tipo"])
	require.Empty(t, proyectos["internos"])
	require.Empty(t, detail["unidades"])
	require.Equal(t, "UTEC", detail["universidad"].(map[string]any)["cat_siglas"])

	rec = s.do(t, http.MethodGet, "/api/registros?universidad_siglas=UTEC&anio=2024", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	require.Equal(t, float64(reiID), rows[0]["rei_id"])
	require.Equal(t, "UTEC", rows[0]["universidad_siglas"])
	require.Equal(t, "2024-06-30", rows[0]["fecha_corte"])
}

func TestCreateAcceptsDecimalStrings(t *testing.T) {
	s := newTestServer(t)
	repotest.SeedInstitution(t, context.Background(), s.db, "UNI", true)

	body := `{"universidad_siglas":"UNI","anio":2023,
	  "unidades":[{"nombre":"Lab","presupuesto_anual":"12345678901234.10"}],
	  "proyectos":{"internos":[{"titulo":"Y","monto_financiamiento":"0.015"}]}}`
	rec := s.do(t, http.MethodPost, "/api/registro", body)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	reiID := int64(decode(t, rec)["rei_id"].(float64))

	rec = s.do(t, http.MethodGet, "/api/registro/"+itoa(reiID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode(t, rec)
	internos := detail["proyectos"].(map[string]any)["internos"].([]any)
	require.Equal(t, "0.02", internos[0].(map[string]any)["monto_financiamiento"])
	unidades := detail["unidades"].([]any)
	require.Len(t, unidades, 1)
	require.NotEmpty(t, unidades[0].(map[string]any)["presupuesto_anual"])
}

func TestCreateUnknownSiglas(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodPost, "/api/registro", strings.Replace(utecPayload, "UTEC", "XYZ", 1))
	msg := requireErrorEnvelope(t, rec, http.StatusNotFound, "not_found")
	require.Equal(t, "Universidad no encontrada por siglas", msg)

	var n int64
	require.NoError(t, s.db.Model(&types.InstitutionalRecord{}).Count(&n).Error)
	require.Zero(t, n)
}

func TestCreateInvalidPayload(t *testing.T) {
	s := newTestServer(t)
	cases := map[string]string{
		"malformed json":    `{"universidad_siglas":`,
		"missing siglas":    `{"anio":2024}`,
		"missing titulo":    `{"universidad_siglas":"UTEC","anio":2024,"proyectos":{"externos":[{"codigo":"A"}]}}`,
		"bad date":          `{"universidad_siglas":"UTEC","anio":2024,"fecha_corte":"30/06/2024"}`,
		"bad decimal":       `{"universidad_siglas":"UTEC","anio":2024,"rei":{"presupuesto_externo":"mucho"}}`,
		"missing unit name": `{"universidad_siglas":"UTEC","anio":2024,"unidades":[{}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/api/registro", body)
			requireErrorEnvelope(t, rec, http.StatusUnprocessableEntity, "invalid_payload")
		})
	}
}

func TestReadParamErrors(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/registros?anio=dos-mil", "")
	requireErrorEnvelope(t, rec, http.StatusBadRequest, "invalid_param")

	rec = s.do(t, http.MethodGet, "/api/registro/abc", "")
	requireErrorEnvelope(t, rec, http.StatusBadRequest, "invalid_param")

	rec = s.do(t, http.MethodGet, "/api/registro/999", "")
	msg := requireErrorEnvelope(t, rec, http.StatusNotFound, "not_found")
	require.Equal(t, "Registro no encontrado", msg)
}

func TestListEmptyIsArray(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/api/registros", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/healthcheck", "")
	s.do(t, http.MethodGet, "/api/universidades", "")

	rec := s.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `sigc_http_requests_total{method="GET",route="/api/universidades",status="200"} 1`)
	require.NotContains(t, body, `route="/healthcheck"`)
}

func itoa(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
