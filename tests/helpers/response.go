package helpers

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

// Envelope mirrors the JSON body every API endpoint returns.
type Envelope struct {
	Status  bool                `json:"status"`
	Code    int                 `json:"code"`
	Message *string             `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

// AssertStatus verifies the HTTP status code
func AssertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("Expected status %d, got %d", expected, resp.StatusCode)
	}
}

// ParseJSON decodes the response body into the target
func ParseJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	defer resp.Body.Close()

	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("Failed to decode JSON: %v. Body: %s", err, string(body))
	}
}

// ParseEnvelope decodes the response body into an Envelope and the data
// payload into target when given.
func ParseEnvelope(t *testing.T, resp *http.Response, target interface{}) Envelope {
	t.Helper()
	var env Envelope
	ParseJSON(t, resp, &env)
	if target != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, target); err != nil {
			t.Fatalf("Failed to decode envelope data: %v. Data: %s", err, string(env.Data))
		}
	}
	return env
}
