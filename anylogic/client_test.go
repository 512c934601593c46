package anylogic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, testAPIKey, WithPollInterval(time.Millisecond))
}

func TestClient_SendsAPIKey(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]Model{})
	}))

	_, err := client.Models(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testAPIKey, gotAuth)
}

func TestClient_Models(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/models", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]Model{
			{ID: "m-1", Name: "Service System Demo", Published: true},
			{ID: "m-2", Name: "Supply Chain"},
		})
	}))

	models, err := client.Models(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "Service System Demo", models[0].Name)
	assert.Equal(t, "m-2", models[1].ID)
}

func TestClient_ModelByName(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Names with spaces must arrive path-escaped.
		assert.Equal(t, "/models/name/Service%20System%20Demo", r.URL.EscapedPath())
		_ = json.NewEncoder(w).Encode(Model{ID: "m-1", Name: "Service System Demo"})
	}))

	model, err := client.ModelByName(context.Background(), "Service System Demo")
	require.NoError(t, err)
	assert.Equal(t, "m-1", model.ID)
}

func TestClient_LatestVersion(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/m-1/versions/latest", r.URL.Path)
		_ = json.NewEncoder(w).Encode(ModelVersion{
			ID:      "v-7",
			Version: 7,
			ExperimentTemplates: []ExperimentTemplate{
				{Name: "Baseline", Inputs: []InputValue{{Name: "Server capacity", Value: float64(5)}}},
			},
		})
	}))

	version, err := client.LatestVersion(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, 7, version.Version)
	require.Len(t, version.ExperimentTemplates, 1)
	assert.Equal(t, "Baseline", version.ExperimentTemplates[0].Name)
}

func TestClient_StartRun(t *testing.T) {
	var got runRequest
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/versions/v-7/runs", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(Run{ID: "run-1", Status: StatusRunning})
	}))

	version := &ModelVersion{
		ID: "v-7",
		ExperimentTemplates: []ExperimentTemplate{
			{Name: "Baseline", Inputs: []InputValue{
				{Name: "Server capacity", Value: float64(5)},
				{Name: "Arrival rate", Value: float64(1.5)},
			}},
		},
	}
	inputs, err := InputsFromExperiment(version, "Baseline")
	require.NoError(t, err)
	require.NoError(t, inputs.Set("Server capacity", 8))

	run, err := client.StartRun(context.Background(), "v-7", inputs)
	require.NoError(t, err)
	assert.Equal(t, "run-1", run.ID)

	// The posted payload carries the experiment name and the override.
	assert.Equal(t, "Baseline", got.Experiment)
	require.Len(t, got.Inputs, 2)
	assert.Equal(t, "Server capacity", got.Inputs[0].Name)
	assert.Equal(t, float64(8), got.Inputs[0].Value)
	assert.Equal(t, float64(1.5), got.Inputs[1].Value)
}

func TestClient_Outputs_WaitsForCompletion(t *testing.T) {
	var polls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/runs/run-1", r.URL.Path)
		if polls.Add(1) < 3 {
			_ = json.NewEncoder(w).Encode(Run{ID: "run-1", Status: StatusRunning})
			return
		}
		_ = json.NewEncoder(w).Encode(Run{
			ID:     "run-1",
			Status: StatusCompleted,
			Outputs: []OutputValue{
				{Name: "Mean queue size|Mean queue size", Value: 2.64},
			},
		})
	}))

	outputs, err := client.Outputs(context.Background(), "run-1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, polls.Load())

	value, err := outputs.Value("Mean queue size|Mean queue size")
	require.NoError(t, err)
	assert.Equal(t, 2.64, value)
}

func TestClient_Outputs_RunFailed(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Run{ID: "run-1", Status: StatusFailed, Message: "license expired"})
	}))

	_, err := client.Outputs(context.Background(), "run-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRunFailed)
	assert.Contains(t, err.Error(), "license expired")
}

func TestClient_Outputs_ContextCanceled(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Run{ID: "run-1", Status: StatusRunning})
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()

	_, err := client.Outputs(ctx, "run-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_APIError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "model not found"}`))
	}))

	_, err := client.ModelByName(context.Background(), "No Such Model")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "model not found", apiErr.Message)
}

func TestClient_APIError_NonJSONBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable\n"))
	}))

	_, err := client.Models(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream unavailable", apiErr.Message)
}
