package helpers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
)

// AcquireToken logs in with the admin credentials from the environment and
// returns the bearer token.
func AcquireToken(t *testing.T, baseURL string) string {
	t.Helper()

	payload, err := json.Marshal(map[string]string{
		"email":    os.Getenv("ADMIN_EMAIL"),
		"password": os.Getenv("ADMIN_PASSWORD"),
	})
	if err != nil {
		t.Fatalf("Failed to marshal login payload: %v", err)
	}

	resp, err := http.Post(baseURL+"/api/auth/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Failed to call login: %v", err)
	}
	AssertStatus(t, resp, http.StatusOK)

	var data struct {
		Token string `json:"token"`
	}
	ParseEnvelope(t, resp, &data)
	if data.Token == "" {
		t.Fatal("Login returned an empty token")
	}
	return data.Token
}

// AuthedRequest performs an HTTP request with the bearer token set.
func AuthedRequest(t *testing.T, method, url, token string, body []byte) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request %s %s failed: %v", method, url, err)
	}
	return resp
}
