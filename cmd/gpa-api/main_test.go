package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aanand-mishra/gpa-api/internal/config"
	"github.com/aanand-mishra/gpa-api/internal/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Env: "dev",
		HTTPServer: config.HTTPServer{
			Addr:         "localhost:0",
			MaxBodyBytes: 1 << 20,
		},
	}
}

func TestNewHandler_Score(t *testing.T) {
	srv := httptest.NewServer(newHandler(testConfig()))
	t.Cleanup(srv.Close)

	body := `{"student_id":"s-9","name":"Asha","courses":[
		{"course_code":"CS101","course_name":"Intro","credits":3,"grade":"B+"},
		{"course_code":"MA101","course_name":"Calculus","credits":2,"grade":"A"}]}`

	res, err := http.Post(srv.URL+"/score", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotEmpty(t, res.Header.Get(middleware.RequestIDHeader))

	var got map[string]map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, 3.7, got["student_summary"]["gpa"])
	assert.Equal(t, float64(5), got["student_summary"]["total_credits"])
}

func TestNewHandler_UnknownRoute(t *testing.T) {
	rr := httptest.NewRecorder()
	newHandler(testConfig()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/students", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		env       string
		json      bool
		debugSeen bool
	}{
		{env: "dev", json: false, debugSeen: true},
		{env: "", json: false, debugSeen: true},
		{env: "staging", json: true, debugSeen: true},
		{env: "prod", json: true, debugSeen: false},
	}

	for _, tc := range tests {
		t.Run(tc.env, func(t *testing.T) {
			var buf bytes.Buffer
			log := setupLogger(tc.env, &buf)

			log.Debug("debug line")
			log.Info("info line", slog.String("k", "v"))

			out := buf.String()
			assert.Contains(t, out, "info line")
			assert.Equal(t, tc.debugSeen, strings.Contains(out, "debug line"))
			assert.Equal(t, tc.json, strings.HasPrefix(out, "{"))
		})
	}
}
