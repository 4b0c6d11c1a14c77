package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/engine"
)

func newTestServer(t *testing.T, capacity int) (*Server, *httptest.Server) {
	t.Helper()
	s := New(Config{
		StoreCapacity: capacity,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	return s, ts
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, out
}

func createRun(t *testing.T, ts *httptest.Server, req engine.Request) createRunResponse {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/v1/runs", req)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var created createRunResponse
	require.NoError(t, json.Unmarshal(body, &created))

	return created
}

func TestHealthAndAlgorithms(t *testing.T) {
	_, ts := newTestServer(t, 4)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
	assert.NotEmpty(t, resp.Header.Get("Content-Type"))

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/v1/algorithms", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var infos []engine.Info
	require.NoError(t, json.Unmarshal(body, &infos))
	assert.Len(t, infos, len(engine.Algorithms()))
}

func TestRunLifecycle(t *testing.T) {
	s, ts := newTestServer(t, 4)

	created := createRun(t, ts, engine.Request{
		Algorithm: "kmp",
		Input:     "abcabc",
		Params:    engine.Params{"pattern": "bc"},
	})
	assert.Equal(t, "kmp", created.Algorithm)
	assert.Positive(t, created.Steps)
	assert.Equal(t, 1, s.Store().Len())

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/v1/runs/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var run struct {
		ID       string `json:"id"`
		Response struct {
			Result struct {
				Matches []int `json:"matches"`
			} `json:"result"`
			Steps []json.RawMessage `json:"steps"`
		} `json:"response"`
	}
	require.NoError(t, json.Unmarshal(body, &run))
	assert.Equal(t, created.ID, run.ID)
	assert.Equal(t, []int{1, 4}, run.Response.Result.Matches)
	assert.Len(t, run.Response.Steps, created.Steps)

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/v1/runs/"+created.ID+"/steps/0", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var step struct {
		Index int    `json:"index"`
		Kind  string `json:"kind"`
	}
	require.NoError(t, json.Unmarshal(body, &step))
	assert.Equal(t, 0, step.Index)
	assert.NotEmpty(t, step.Kind)

	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/v1/runs/"+created.ID+"/steps/9999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/v1/runs/"+created.ID+"/steps/x", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/v1/runs/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/v1/runs/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/v1/runs/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateRun_Errors(t *testing.T) {
	_, ts := newTestServer(t, 4)

	cases := []struct {
		name string
		body any
		want int
	}{
		{"unknown algorithm", engine.Request{Algorithm: "bogo", Input: "1"}, http.StatusNotFound},
		{"bad params", engine.Request{Algorithm: "bfs", Input: "SG", Params: engine.Params{"conn": 5}}, http.StatusBadRequest},
		{"bad input", engine.Request{Algorithm: "heap", Input: "1 two"}, http.StatusBadRequest},
		{"domain failure", engine.Request{Algorithm: "toposort", Input: "A B, B A"}, http.StatusUnprocessableEntity},
		{"unknown field", map[string]string{"algo": "kmp"}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/v1/runs", tc.body)
			assert.Equal(t, tc.want, resp.StatusCode, string(body))
			assert.Contains(t, string(body), `"error"`)
		})
	}

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/v1/runs/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/v1/runs/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateRun_OverLimits(t *testing.T) {
	s, ts := newTestServer(t, 4)

	values := make([]string, 1000)
	for i := range values {
		values[i] = strconv.Itoa(len(values) - i)
	}
	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/v1/runs",
		engine.Request{Algorithm: "bubble", Input: strings.Join(values, " ")})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))
	assert.Contains(t, string(body), "sort values")
	assert.Equal(t, 0, s.Store().Len())

	resp, body = doJSON(t, http.MethodPost, ts.URL+"/api/v1/runs", engine.Request{
		Algorithm: "hashring", Input: "k1",
		Params: engine.Params{"servers": "A", "replicas": 100000},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))

	resp, body = doJSON(t, http.MethodPost, ts.URL+"/api/v1/compare/matchers",
		compareRequest{Text: strings.Repeat("a", 5000), Pattern: "a"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))
}

func TestCreateRun_ConfiguredLimits(t *testing.T) {
	s := New(Config{
		Limits: engine.Limits{MaxSortValues: 3},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	createRun(t, ts, engine.Request{Algorithm: "bubble", Input: "3 2 1"})
	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/v1/runs", engine.Request{Algorithm: "bubble", Input: "4 3 2 1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))
}

func TestStore_EvictsOldest(t *testing.T) {
	s, ts := newTestServer(t, 2)

	first := createRun(t, ts, engine.Request{Algorithm: "bubble", Input: "2 1"})
	createRun(t, ts, engine.Request{Algorithm: "bubble", Input: "3 1"})
	createRun(t, ts, engine.Request{Algorithm: "bubble", Input: "4 1"})
	assert.Equal(t, 2, s.Store().Len())

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/v1/runs/"+first.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCompareMatchers(t *testing.T) {
	_, ts := newTestServer(t, 2)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/v1/compare/matchers",
		compareRequest{Text: "ABABDABACDABABCABCABCABCAB", Pattern: "ABABCAB"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cmp engine.Comparison
	require.NoError(t, json.Unmarshal(body, &cmp))
	assert.True(t, cmp.Agree)
	assert.Equal(t, []int{10}, cmp.Matches["rabin-karp"])
}

func TestStore_Direct(t *testing.T) {
	st := NewStore(0)
	a := &Run{}
	_, evicted := st.Put(a)
	assert.False(t, evicted)
	gone, evicted := st.Put(&Run{})
	assert.True(t, evicted)
	assert.Equal(t, a.ID, gone)
	_, ok := st.Get(a.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, st.Len())
}
