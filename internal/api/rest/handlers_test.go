package rest

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fortuna/depthsheets/internal/batch"
	"github.com/fortuna/depthsheets/internal/depth"
	"github.com/fortuna/depthsheets/internal/service"
	"github.com/fortuna/depthsheets/internal/store"
	"github.com/fortuna/depthsheets/internal/teams"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSheets struct {
	games    []store.GameRecord
	offense  depth.OffenseDepth
	docs     []batch.Document
	runs     []*store.Run
	err      error
	lastReq  service.Request
	panicked bool
}

func (f *fakeSheets) Schedule(ctx context.Context, seasonType store.SeasonType, week int) ([]store.GameRecord, error) {
	if f.panicked {
		panic("boom")
	}
	return f.games, f.err
}

func (f *fakeSheets) Depth(ctx context.Context, code string) (teams.Team, depth.OffenseDepth, error) {
	team, _ := teams.Lookup(code)
	return team, f.offense, f.err
}

func (f *fakeSheets) Generate(ctx context.Context, req service.Request, reporter batch.Reporter) (*service.Result, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &service.Result{Run: &store.Run{RunID: "run-1"}, Documents: f.docs}, nil
}

func (f *fakeSheets) RecentRuns(ctx context.Context, limit int) ([]*store.Run, error) {
	return f.runs, f.err
}

func (f *fakeSheets) Run(ctx context.Context, runID string) (*store.Run, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, run := range f.runs {
		if run.RunID == runID {
			return run, nil
		}
	}
	return nil, store.ErrNotFound
}

type fakeCheck struct{ err error }

func (f fakeCheck) HealthCheck(ctx context.Context) error { return f.err }

func serve(t *testing.T, sheets Sheets, target string) *httptest.ResponseRecorder {
	t.Helper()
	return serveWithChecks(t, sheets, nil, target)
}

func serveWithChecks(t *testing.T, sheets Sheets, checks map[string]HealthChecker, target string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(NewHandler(sheets, 2025, checks))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealthCheck(t *testing.T) {
	rec := serve(t, &fakeSheets{}, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), `"healthy"`)
}

func TestHealthCheckReportsBackends(t *testing.T) {
	rec := serveWithChecks(t, &fakeSheets{}, map[string]HealthChecker{
		"database": fakeCheck{},
		"redis":    fakeCheck{},
	}, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status   string            `json:"status"`
		Backends map[string]string `json:"backends"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, map[string]string{"database": "ok", "redis": "ok"}, body.Backends)

	rec = serveWithChecks(t, &fakeSheets{}, map[string]HealthChecker{
		"database": fakeCheck{},
		"redis":    fakeCheck{err: errors.New("connection refused")},
	}, "/health")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "connection refused", body.Backends["redis"])
}

func TestGetSchedule(t *testing.T) {
	sheets := &fakeSheets{games: []store.GameRecord{{SeasonType: store.SeasonRegular, Week: 2, Away: "ARI", Home: "CAR"}}}

	rec := serve(t, sheets, "/api/v1/schedule?season_type=reg&week=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Week  int                `json:"week"`
		Games []store.GameRecord `json:"games"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Week)
	require.Len(t, body.Games, 1)
	assert.Equal(t, "CAR", body.Games[0].Home)
}

func TestGetScheduleRejectsBadQuery(t *testing.T) {
	tests := []string{
		"/api/v1/schedule?week=abc",
		"/api/v1/schedule?week=0",
		"/api/v1/schedule?season_type=mid&week=1",
	}
	for _, target := range tests {
		t.Run(target, func(t *testing.T) {
			rec := serve(t, &fakeSheets{}, target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetTeamDepth(t *testing.T) {
	sheets := &fakeSheets{offense: depth.OffenseDepth{QB: []string{"Kyler Murray"}}}

	rec := serve(t, sheets, "/api/v1/teams/ARI/depth")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Arizona Cardinals")
	assert.Contains(t, rec.Body.String(), "Kyler Murray")

	rec = serve(t, sheets, "/api/v1/teams/XYZ/depth")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTeams(t *testing.T) {
	rec := serve(t, &fakeSheets{}, "/api/v1/teams")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []teams.Team
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 32)
}

func TestDownloadSheets(t *testing.T) {
	sheets := &fakeSheets{docs: []batch.Document{
		{Name: "W02_ARI_at_CAR.txt", Body: "one"},
		{Name: "W02_KC_at_PHI.txt", Body: "two"},
	}}

	rec := serve(t, sheets, "/api/v1/sheets?season_type=reg&week=2&year=2024")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "nfl_reg_week02_txt.zip")
	assert.Equal(t, 2024, sheets.lastReq.SeasonYear)

	zr, err := zip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	f, err := zr.File[1].Open()
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestDownloadSheetsDefaultsYear(t *testing.T) {
	sheets := &fakeSheets{}
	rec := serve(t, sheets, "/api/v1/sheets?week=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2025, sheets.lastReq.SeasonYear)
	assert.Equal(t, store.SeasonRegular, sheets.lastReq.SeasonType)
}

func TestDownloadSheetsUpstreamFailure(t *testing.T) {
	rec := serve(t, &fakeSheets{err: errors.New("403")}, "/api/v1/sheets?week=1")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "403")
}

func TestGetRunsEmpty(t *testing.T) {
	rec := serve(t, &fakeSheets{}, "/api/v1/runs")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetRun(t *testing.T) {
	sheets := &fakeSheets{runs: []*store.Run{{RunID: "abc", Week: 3, Files: []string{"W03_ARI_at_CAR.txt"}}}}

	rec := serve(t, sheets, "/api/v1/runs/abc")
	require.Equal(t, http.StatusOK, rec.Code)
	var run store.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	assert.Equal(t, 3, run.Week)
	assert.Equal(t, []string{"W03_ARI_at_CAR.txt"}, run.Files)

	rec = serve(t, sheets, "/api/v1/runs/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, &fakeSheets{err: errors.New("db down")}, "/api/v1/runs/abc")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	rec := serve(t, &fakeSheets{panicked: true}, "/api/v1/schedule?week=1")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
