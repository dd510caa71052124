package actions

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dataops-works/snowload/logger"
	"github.com/dataops-works/snowload/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerHealth(t *testing.T) {
	log := logger.NewLogger("snowload", "info", true)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	GetHandlerHealth(log)(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestHandlerPlan(t *testing.T) {
	log := logger.NewLogger("snowload", "info", true)
	getBundleFn := func() *pipeline.Bundle { return testBundle() }
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/plan", nil)
	GetHandlerPlan(log, getBundleFn)(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status string          `json:"status"`
		Plan   *PlanDefinition `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.NotNil(t, resp.Plan)
	require.Len(t, resp.Plan.Statements, 7)
	assert.Equal(t, "ORDERS", resp.Plan.Bundle.Table)
}

func TestHandlerPlanRejectsBadPattern(t *testing.T) {
	log := logger.NewLogger("snowload", "info", true)
	getBundleFn := func() *pipeline.Bundle {
		b := testBundle()
		b.CopyPattern = "((("
		return b
	}
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/plan", nil)
	GetHandlerPlan(log, getBundleFn)(w, r)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Message, "invalid load parameters")
}
