package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alifrahmanhakim/AOC-RBS/internal/adapters/memory"
	api "github.com/alifrahmanhakim/AOC-RBS/internal/api"
	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
	"github.com/alifrahmanhakim/AOC-RBS/internal/findings"
	"github.com/alifrahmanhakim/AOC-RBS/internal/history"
	"github.com/alifrahmanhakim/AOC-RBS/internal/metrics"
	"github.com/alifrahmanhakim/AOC-RBS/internal/ports"
	"github.com/alifrahmanhakim/AOC-RBS/internal/rbs"
	"github.com/alifrahmanhakim/AOC-RBS/internal/services/operators"
	"github.com/alifrahmanhakim/AOC-RBS/internal/services/profiles"
	"github.com/alifrahmanhakim/AOC-RBS/internal/services/recompute"
	"github.com/alifrahmanhakim/AOC-RBS/internal/workers/recomputerunner"
)

var now = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	engine := rbs.MustNewEngine(rbs.DefaultTables())
	fm, err := findings.NewManager(findings.DefaultPolicy(), clock)
	require.NoError(t, err)

	repo := memory.NewOperators()
	jobs := memory.NewJobs()
	ops := operators.New(repo, engine, fm, history.NewRecorder(clock), m, zap.NewNop(), operators.WithClock(clock))
	runner := recomputerunner.New(jobs, recomputerunner.OperatorProcessor{Operators: ops}, m, zap.NewNop())

	srv := New(Deps{
		Engine:     engine,
		Findings:   fm,
		Operators:  ops,
		Profiles:   profiles.New(repo, fm),
		Recomputes: recompute.New(repo, jobs),
		Runner:     runner,
		Gatherer:   reg,
		Log:        zap.NewNop(),
	})
	return srv.Routes()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createOperator(t *testing.T, h http.Handler) domain.Operator {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/operators", map[string]any{
		"name":             "Garuda Indonesia",
		"aocNumber":        "AOC/121-001",
		"operatorCategory": string(domain.OperatorScheduled),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[domain.Operator](t, rec)
}

func TestHealthzAndMetrics(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	createOperator(t, h)
	rec = do(t, h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rbs_recomputes_total")
	assert.Contains(t, rec.Body.String(), "rbs_risk_indicator_level")
}

func TestComputeRBS(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/rbs/compute", map[string]any{
		"complianceData": map[string]int{"ncp": 2, "ncf": 1, "totalChecklistItems": 100},
		"deviationData":  map[string]int{"totalFlightCycles": 1000},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decodeBody[domain.RbsResult](t, rec)
	assert.InDelta(t, 0.0135, res.ComplianceScore, 1e-12)
	assert.Equal(t, domain.CategoryKey("5A"), res.CategoryKey)
	assert.Equal(t, 6, res.SuggestedCycleMonths)

	t.Run("validation", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/rbs/compute", map[string]any{
			"complianceData": map[string]int{"ncp": -1, "totalChecklistItems": 0},
			"deviationData":  map[string]int{"totalFlightCycles": 1000},
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody[api.Error](t, rec)
		assert.Equal(t, "gt", body.Fields["complianceData.totalChecklistItems"])
		assert.Equal(t, "min", body.Fields["complianceData.ncp"])
	})

	t.Run("engine rejects", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/rbs/compute", map[string]any{
			"complexityFactors": map[string]int{"numAircraft": 2, "numAircraftModels": 3},
			"complianceData":    map[string]int{"totalChecklistItems": 10},
			"deviationData":     map[string]int{"totalFlightCycles": 10},
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody[api.Error](t, rec)
		assert.Equal(t, "complexityFactors.numAircraftModels", body.Field)
	})

	t.Run("empty payload", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/rbs/compute", map[string]any{"bogus": 1})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/rbs/compute", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody[api.Error](t, rec).Error, "can't decode JSON body")
	})
}

func TestCycleAndMatrix(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/rbs/cycle?level=5&exposure=A", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cycle := decodeBody[api.Cycle](t, rec)
	assert.Equal(t, "5A", cycle.CategoryKey)
	assert.Equal(t, 6, cycle.Months)
	assert.Equal(t, api.Medium, cycle.Zone)

	for _, q := range []string{"level=6&exposure=A", "level=3&exposure=Z", "exposure=A", "level=x&exposure=A"} {
		rec := do(t, h, http.MethodGet, "/rbs/cycle?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}

	rec = do(t, h, http.MethodGet, "/rbs/cycle?level=x&exposure=A", nil)
	assert.Contains(t, decodeBody[api.Error](t, rec).Error, "level")

	rec = do(t, h, http.MethodGet, "/rbs/matrix", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]rbs.MatrixEntry](t, rec), 25)
}

func TestLegacy(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/rbs/legacy", map[string]any{
		"aircraftFrequency":       3,
		"environmentalComplexity": 2,
		"occurrences":             []map[string]string{{"severity": string(domain.SeverityHigh)}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, domain.LegacyRisk{Score: 15, Level: domain.RiskMedium}, decodeBody[domain.LegacyRisk](t, rec))

	rec = do(t, h, http.MethodPost, "/rbs/legacy", map[string]any{"aircraftFrequency": 6, "environmentalComplexity": 2})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/rbs/legacy", map[string]any{
		"aircraftFrequency":       1,
		"environmentalComplexity": 1,
		"occurrences":             []map[string]string{{"severity": "Catastrophic"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTargetDateAndAreas(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/findings/target-date?dateAdded=2024-01-01&category=2", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	td := decodeBody[api.TargetDate](t, rec)
	assert.Equal(t, "2024-01-01", td.DateAdded.String())
	assert.Equal(t, 2, td.FindingCategory)
	assert.Equal(t, "2024-01-31", td.TargetCompletionDate.String())
	assert.JSONEq(t, `{"dateAdded":"2024-01-01","findingCategory":2,"targetCompletionDate":"2024-01-31"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/findings/target-date?dateAdded=2024-01-01&category=4", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, h, http.MethodGet, "/findings/target-date?dateAdded=yesterday&category=1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/surveillance-areas", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	areas := decodeBody[[]api.SurveillanceArea](t, rec)
	require.Len(t, areas, len(domain.PredefinedAreas()))
	assert.Equal(t, "airworthiness-1", areas[0].Id)
	assert.Equal(t, "Airworthiness Surveillance Area", areas[0].CategoryTitle)
	for _, a := range areas {
		assert.NotEmpty(t, a.CategoryTitle, a.Id)
	}
}

func TestOccurrenceCategories(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/occurrence-categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cats := decodeBody[[]api.OccurrenceCategory](t, rec)
	require.Len(t, cats, len(domain.OccurrenceCategories()))
	assert.Contains(t, cats, api.OccurrenceCategory{Code: "RE", Label: "Runway Excursion"})
}

func TestOperatorLifecycle(t *testing.T) {
	h := newTestServer(t)
	op := createOperator(t, h)
	base := "/operators/" + op.ID

	rec := do(t, h, http.MethodGet, "/operators", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]domain.Operator](t, rec), 1)

	rec = do(t, h, http.MethodPut, base+"/inputs", map[string]any{
		"complianceData":  map[string]int{"ncp": 5, "totalChecklistItems": 50},
		"deviationData":   map[string]int{"totalFlightCycles": 1000},
		"economicFactors": map[string]float64{"liquidity": 4, "shortTermDebt": 4, "longTermDebt": 4, "decapitalization": 4, "profitabilityAndCashFlows": 4},
		"effectiveDate":   "2024-05-01T00:00:00Z",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeBody[domain.Operator](t, rec)
	assert.InDelta(t, 0.05, updated.RBS.ComplianceScore, 1e-12)
	require.NotNil(t, updated.EconomicIndicatorScore)
	assert.InDelta(t, 2.0, *updated.EconomicIndicatorScore, 1e-12)
	assert.Equal(t, 2, updated.History.Len())

	rec = do(t, h, http.MethodPost, base+"/findings", map[string]any{
		"dateAdded":        "2024-01-01T00:00:00Z",
		"predefinedAreaId": "airworthiness-1",
		"finding":          "Quality manual out of date",
		"findingCategory":  2,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	f := decodeBody[domain.SurveillanceFinding](t, rec)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), f.TargetCompletionDate)
	assert.Equal(t, domain.AreaAirworthiness, f.AreaCategory)

	rec = do(t, h, http.MethodGet, base+"/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	prof := decodeBody[ports.Profile](t, rec)
	assert.Equal(t, 1, prof.OpenFindings)
	assert.Len(t, prof.OverdueFindings, 1)
	// the inputs update above was backdated to 2024-05-01; the profile still
	// reports the newer registration entry
	require.NotNil(t, prof.Latest)
	assert.True(t, prof.Latest.Date.After(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)), prof.Latest.Date)

	rec = do(t, h, http.MethodPost, base+"/findings/"+f.ID+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decodeBody[domain.SurveillanceFinding](t, rec).IsCompleted)

	rec = do(t, h, http.MethodPost, base+"/findings/"+f.ID+"/complete", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/findings/"+f.ID+"/reopen", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeBody[domain.SurveillanceFinding](t, rec).IsCompleted)

	rec = do(t, h, http.MethodPost, base+"/findings/missing/reopen", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPut, base+"/surveillance-logs/airworthiness-1", map[string]string{"status": "On Going"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, domain.LogOngoing, decodeBody[domain.SurveillanceLogItem](t, rec).Status)

	rec = do(t, h, http.MethodPut, base+"/surveillance-logs/airworthiness-1", map[string]string{"status": "Maybe"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, h, http.MethodPut, base+"/surveillance-logs/nowhere", map[string]string{"status": "Done"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, base+"/history?from=2024-05-15", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	entries := decodeBody[[]domain.RiskIndicatorHistoryEntry](t, rec)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.False(t, e.Date.Before(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)))
	}

	rec = do(t, h, http.MethodGet, base+"/history?from=2024-06-01&to=2024-01-01", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOperatorErrors(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/operators/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/operators", map[string]any{"aocNumber": "AOC/121-002"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "required", decodeBody[api.Error](t, rec).Fields["name"])

	rec = do(t, h, http.MethodPost, "/operators", map[string]any{"name": "X", "operatorCategory": "Balloon Rides"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	op := createOperator(t, h)
	before := do(t, h, http.MethodGet, "/operators/"+op.ID, nil).Body.String()
	rec = do(t, h, http.MethodPut, "/operators/"+op.ID+"/inputs", map[string]any{
		"improvementData": map[string]int{"correctiveActionsRootCause": 1},
		"complianceData":  map[string]int{"totalChecklistItems": 10},
		"deviationData":   map[string]int{"totalFlightCycles": 10},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	after := do(t, h, http.MethodGet, "/operators/"+op.ID, nil).Body.String()
	assert.JSONEq(t, before, after)
}

func TestRecompute(t *testing.T) {
	h := newTestServer(t)
	op := createOperator(t, h)

	rec := do(t, h, http.MethodPost, "/operators/"+op.ID+"/recompute", nil)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	accepted := decodeBody[api.JobAccepted](t, rec)
	require.NotEmpty(t, accepted.JobId)

	rec = do(t, h, http.MethodGet, "/recompute-jobs/"+accepted.JobId, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ports.JobQueued, decodeBody[ports.RecomputeJob](t, rec).Status)

	rec = do(t, h, http.MethodPost, "/operators/"+op.ID+"/recompute?wait=true&timeout=5", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	job := decodeBody[ports.RecomputeJob](t, rec)
	assert.Equal(t, ports.JobCompleted, job.Status)
	assert.Equal(t, op.ID, job.OperatorID)

	rec = do(t, h, http.MethodGet, "/operators/"+op.ID+"/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]domain.RiskIndicatorHistoryEntry](t, rec), 2)

	rec = do(t, h, http.MethodPost, "/operators/nobody/recompute", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, h, http.MethodGet, "/recompute-jobs/nothing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, h, http.MethodPost, "/operators/"+op.ID+"/recompute?wait=perhaps", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInternalErrorsAreHidden(t *testing.T) {
	srv := New(Deps{Operators: failingOperators{}, Log: zap.NewNop()})
	rec := do(t, srv.Routes(), http.MethodGet, "/operators", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}

type failingOperators struct{ ports.Operators }

func (failingOperators) List(context.Context) ([]domain.Operator, error) {
	return nil, assert.AnError
}
