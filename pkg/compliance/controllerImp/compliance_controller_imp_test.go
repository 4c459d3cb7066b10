package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/compliance/service"
)

type stubSvc struct {
	weeklyWeek time.Time
	weeklyLive bool
	deleted    int64
}

func (s *stubSvc) Weekly(weekStart time.Time, phaseIDs []uint, farm string, forceLive bool) (*service.Response, error) {
	s.weeklyWeek = weekStart
	s.weeklyLive = forceLive
	if len(phaseIDs) == 0 {
		return nil, service.ErrNoPhases
	}
	return &service.Response{Entries: []service.Entry{}, Source: "live"}, nil
}

func (s *stubSvc) SaveSnapshot(weekStart time.Time, phaseIDs []uint, savedBy string) (int, error) {
	return len(phaseIDs), nil
}

func (s *stubSvc) DeleteSnapshot(weekStart time.Time) (int64, error) { return s.deleted, nil }

func (s *stubSvc) SnapshotMeta(weekStart time.Time) (*service.SnapshotMeta, error) {
	return &service.SnapshotMeta{Exists: false}, nil
}

func doGet(t *testing.T, h echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestWeekly_RequiresWeek(t *testing.T) {
	h := New(&stubSvc{})
	rec := doGet(t, h.Weekly, "/compliance?phaseIds=1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doGet(t, h.Weekly, "/compliance?week=26-01-2026&phaseIds=1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWeekly_RecoversUTCShiftedMonday(t *testing.T) {
	svc := &stubSvc{}
	h := New(svc)
	// a Sunday date, as produced by clients serializing EAT midnight via UTC
	rec := doGet(t, h.Weekly, "/compliance?week=2026-01-25&phaseIds=1,2")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC), svc.weeklyWeek)
}

func TestWeekly_MidweekDateWalksBack(t *testing.T) {
	svc := &stubSvc{}
	h := New(svc)
	rec := doGet(t, h.Weekly, "/compliance?week=2026-01-29&phaseIds=1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC), svc.weeklyWeek)
}

func TestWeekly_BadPhaseIDs(t *testing.T) {
	h := New(&stubSvc{})
	rec := doGet(t, h.Weekly, "/compliance?week=2026-01-26&phaseIds=1,x")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWeekly_MissingPhasesIs400(t *testing.T) {
	h := New(&stubSvc{})
	rec := doGet(t, h.Weekly, "/compliance?week=2026-01-26")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWeekly_LiveFlag(t *testing.T) {
	svc := &stubSvc{}
	h := New(svc)
	doGet(t, h.Weekly, "/compliance?week=2026-01-26&phaseIds=1&live=true")
	assert.True(t, svc.weeklyLive)
	doGet(t, h.Weekly, "/compliance?week=2026-01-26&phaseIds=1")
	assert.False(t, svc.weeklyLive)
}

func TestDeleteSnapshot_ZeroIsOK(t *testing.T) {
	h := New(&stubSvc{deleted: 0})
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/compliance/snapshot?week=2026-01-26", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.DeleteSnapshot(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(0), body["deleted"])
}
