package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/kenny-designs/wavefront/config"
	"github.com/kenny-designs/wavefront/planner"
	"github.com/kenny-designs/wavefront/server"
)

// room is an 8×8 grid at half-meter cells with a wall across row 3 that
// leaves a gap on the right.
func room(t *testing.T) *planner.Planner {
	t.Helper()
	occ := make([]bool, 64)
	for x := 0; x < 5; x++ {
		occ[3*8+x] = true
	}
	p, err := planner.New(occ, 8)
	require.NoError(t, err)
	return p
}

// doorway is a 5×5 grid at one-meter cells with a one-cell door in row 2,
// which dilation seals.
func doorway(t *testing.T) *planner.Planner {
	t.Helper()
	occ := make([]bool, 25)
	for _, i := range []int{10, 11, 13, 14} {
		occ[i] = true
	}
	p, err := planner.New(occ, 5, planner.WithCellSize(1))
	require.NoError(t, err)
	return p
}

func newServer(t *testing.T, p *planner.Planner, mutate func(*config.Config)) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	ts := httptest.NewServer(server.New(p, cfg, zaptest.NewLogger(t)))
	t.Cleanup(ts.Close)
	return ts
}

func postPlan(t *testing.T, ts *httptest.Server, body string) (int, []byte) {
	t.Helper()
	resp, err := http.Post(ts.URL+server.URIPlan, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestPlan_OK(t *testing.T) {
	ts := newServer(t, room(t), nil)

	status, body := postPlan(t, ts, `{"start":{"x":-2,"y":-2},"goal":{"x":-2,"y":1.5}}`)
	require.Equal(t, http.StatusOK, status, string(body))

	var resp server.PlanResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, []planner.Point{{X: 1, Y: -2}, {X: 1, Y: 1.5}, {X: -2, Y: 1.5}}, resp.Waypoints)
	assert.Equal(t, 19, resp.Hops)
	assert.True(t, resp.Dilated)
	assert.Positive(t, resp.Labeled)
}

func TestPlan_Errors(t *testing.T) {
	ts := newServer(t, room(t), nil)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed", `{"start":`, http.StatusBadRequest},
		{"unknown field", `{"begin":{"x":0,"y":0}}`, http.StatusBadRequest},
		{"out of bounds", `{"start":{"x":-2,"y":-2},"goal":{"x":5,"y":5}}`, http.StatusBadRequest},
		{"goal in wall", `{"start":{"x":-2,"y":-2},"goal":{"x":-2,"y":-0.5}}`, http.StatusUnprocessableEntity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body := postPlan(t, ts, tc.body)
			assert.Equal(t, tc.status, status)
			var e struct{ Error string }
			require.NoError(t, json.Unmarshal(body, &e))
			assert.NotEmpty(t, e.Error)
		})
	}
}

func TestPlan_NoPathAndRetry(t *testing.T) {
	req := `{"start":{"x":-2.5,"y":-2.5},"goal":{"x":-2.5,"y":1.5}}`

	strict := newServer(t, doorway(t), nil)
	status, body := postPlan(t, strict, req)
	assert.Equal(t, http.StatusNotFound, status, string(body))

	status, body = postPlan(t, strict, `{"start":{"x":-2.5,"y":-2.5},"goal":{"x":-2.5,"y":1.5},"dilate":false}`)
	assert.Equal(t, http.StatusOK, status, string(body))

	lenient := newServer(t, doorway(t), func(c *config.Config) { c.Planner.RetryUndilated = true })
	status, body = postPlan(t, lenient, req)
	require.Equal(t, http.StatusOK, status, string(body))
	var resp server.PlanResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.False(t, resp.Dilated)
	assert.Equal(t, 8, resp.Hops)
}

func TestMap(t *testing.T) {
	ts := newServer(t, room(t), nil)
	// a dilated plan first; the summary still describes the raw map
	status, _ := postPlan(t, ts, `{"start":{"x":-2,"y":-2},"goal":{"x":-2,"y":1.5}}`)
	require.Equal(t, http.StatusOK, status)

	resp, err := http.Get(ts.URL + server.URIMap)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sum server.MapSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sum))
	assert.Equal(t, server.MapSummary{
		Side:             8,
		CellSize:         0.5,
		Extent:           2,
		Occupied:         5,
		Free:             59,
		Components:       1,
		LargestComponent: 59,
		DilationRadius:   1,
	}, sum)
}

func TestMetrics(t *testing.T) {
	ts := newServer(t, room(t), nil)
	postPlan(t, ts, `{"start":{"x":-2,"y":-2},"goal":{"x":-2,"y":1.5}}`)
	postPlan(t, ts, `{"start":{"x":-2,"y":-2},"goal":{"x":9,"y":0}}`)

	resp, err := http.Get(ts.URL + server.URIMetrics)
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	text := buf.String()
	assert.Contains(t, text, `wavefront_plans_total{result="ok"} 1`)
	assert.Contains(t, text, `wavefront_plans_total{result="out_of_bounds"} 1`)
	assert.Contains(t, text, "wavefront_plan_hops_sum 19")
	assert.Contains(t, text, "go_goroutines")
}

func TestUnknownRoute(t *testing.T) {
	ts := newServer(t, room(t), nil)
	resp, err := http.Get(ts.URL + "/nowhere")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// TestPlan_Concurrent issues overlapping requests against the shared
// planner; each must see a clean grid.
func TestPlan_Concurrent(t *testing.T) {
	ts := newServer(t, room(t), nil)
	bodies := []string{
		`{"start":{"x":-2,"y":-2},"goal":{"x":-2,"y":1.5}}`,
		`{"start":{"x":-2,"y":1.5},"goal":{"x":-2,"y":-2}}`,
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(body string) {
			defer wg.Done()
			resp, err := http.Post(ts.URL+server.URIPlan, "application/json", strings.NewReader(body))
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()
			var pr server.PlanResponse
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.NoError(t, json.NewDecoder(resp.Body).Decode(&pr))
			assert.Equal(t, 19, pr.Hops)
		}(bodies[i%2])
	}
	wg.Wait()
}
