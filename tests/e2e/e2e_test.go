package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/proforge/profilepdf/tests/helpers"
)

// TestE2EWithFullStack tests the entire service stack against a real database
// and the container image the service ships as.
func TestE2EWithFullStack(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	ctx := context.Background()

	tc, err := helpers.CreateAllTestContainers(t)
	if err != nil {
		t.Fatalf("Failed to start test containers: %v", err)
	}
	defer tc.Terminate(t)

	appHost, _ := tc.AppContainer.Host(ctx)
	appPort, _ := tc.AppContainer.MappedPort(ctx, "3000")
	baseURL := fmt.Sprintf("http://%s:%s", appHost, appPort.Port())

	// Wait a bit for everything to stabilize
	time.Sleep(5 * time.Second)

	t.Run("HealthCheck", func(t *testing.T) {
		testHealthCheck(t, baseURL)
	})

	t.Run("PrometheusMetrics", func(t *testing.T) {
		testPrometheusMetrics(t, baseURL)
	})

	t.Run("SwaggerUI", func(t *testing.T) {
		testSwaggerUI(t, baseURL)
	})

	t.Run("UnauthenticatedAccess", func(t *testing.T) {
		testUnauthenticatedAccess(t, baseURL)
	})

	token := helpers.AcquireToken(t, baseURL)

	t.Run("DocumentLifecycle", func(t *testing.T) {
		testDocumentLifecycle(t, baseURL, token)
	})

	t.Run("AttachmentLifecycle", func(t *testing.T) {
		testAttachmentLifecycle(t, baseURL, token)
	})

	t.Run("TemplateRendering", func(t *testing.T) {
		testTemplateRendering(t, baseURL, token)
	})
}

func testHealthCheck(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/api/health")
	if err != nil {
		t.Fatalf("Failed to get health: %v", err)
	}
	helpers.AssertStatus(t, resp, http.StatusOK)

	var result struct {
		Status   string `json:"status"`
		Database string `json:"database"`
		Storage  string `json:"storage"`
	}
	helpers.ParseJSON(t, resp, &result)
	if result.Status != "healthy" {
		t.Errorf("Health check failed: %+v", result)
	}
	t.Logf("Health check passed: status=%s, database=%s, storage=%s",
		result.Status, result.Database, result.Storage)
}

func testPrometheusMetrics(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/metrics")
	if err != nil {
		t.Fatalf("Failed to get metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for metrics, got %d. Body: %s", resp.StatusCode, string(body))
	}
	t.Logf("Metrics endpoint working, found %d bytes of metrics", len(body))
}

func testSwaggerUI(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/swagger/index.html")
	if err != nil {
		t.Fatalf("Failed to get Swagger UI: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for Swagger UI, got %d", resp.StatusCode)
	}
}

func testUnauthenticatedAccess(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/api/pdfs")
	if err != nil {
		t.Fatalf("Failed to access API: %v", err)
	}
	env := helpers.ParseEnvelope(t, resp, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
	if env.Status || env.Code != http.StatusUnauthorized {
		t.Errorf("Expected error envelope with code 401, got %+v", env)
	}
}

func testDocumentLifecycle(t *testing.T, baseURL, token string) {
	// Create a document
	body, _ := json.Marshal(map[string]interface{}{
		"name":  "E2E Profile",
		"cover": map[string]string{"title": "E2E"},
	})
	resp := helpers.AuthedRequest(t, http.MethodPost, baseURL+"/api/pdfs", token, body)
	helpers.AssertStatus(t, resp, http.StatusCreated)
	var doc struct {
		ID uint64 `json:"id"`
	}
	helpers.ParseEnvelope(t, resp, &doc)

	// Create two pages
	var pageIDs []uint64
	for _, title := range []string{"first", "second"} {
		body, _ = json.Marshal(map[string]interface{}{"pdf_id": doc.ID, "title": title})
		resp = helpers.AuthedRequest(t, http.MethodPost, baseURL+"/api/pages", token, body)
		helpers.AssertStatus(t, resp, http.StatusCreated)
		var page struct {
			ID uint64 `json:"id"`
		}
		helpers.ParseEnvelope(t, resp, &page)
		pageIDs = append(pageIDs, page.ID)
	}

	// Add a section to the first page
	body, _ = json.Marshal(map[string]interface{}{
		"page_id": pageIDs[0],
		"data":    map[string]string{"template": "hero", "title": "E2E"},
	})
	resp = helpers.AuthedRequest(t, http.MethodPost, baseURL+"/api/sections", token, body)
	helpers.AssertStatus(t, resp, http.StatusCreated)

	// Reorder the pages
	body, _ = json.Marshal(map[string]interface{}{
		"pdf_id": doc.ID,
		"ids":    []uint64{pageIDs[1], pageIDs[0]},
	})
	resp = helpers.AuthedRequest(t, http.MethodPost, baseURL+"/api/pages/reorder", token, body)
	helpers.AssertStatus(t, resp, http.StatusOK)

	// The document tree reflects the new order
	resp = helpers.AuthedRequest(t, http.MethodGet, baseURL+"/api/pdfs/"+strconv.FormatUint(doc.ID, 10), token, nil)
	helpers.AssertStatus(t, resp, http.StatusOK)
	var tree struct {
		Pages []struct {
			ID    uint64 `json:"id"`
			Order int    `json:"order"`
		} `json:"pages"`
	}
	helpers.ParseEnvelope(t, resp, &tree)
	if len(tree.Pages) != 2 {
		t.Fatalf("Expected 2 pages, got %d", len(tree.Pages))
	}
	if tree.Pages[0].ID != pageIDs[1] || tree.Pages[0].Order != 0 {
		t.Errorf("Expected page %d first with order 0, got %+v", pageIDs[1], tree.Pages[0])
	}

	// Delete the document; the tree goes with it
	resp = helpers.AuthedRequest(t, http.MethodDelete, baseURL+"/api/pdfs/"+strconv.FormatUint(doc.ID, 10), token, nil)
	helpers.AssertStatus(t, resp, http.StatusOK)

	resp = helpers.AuthedRequest(t, http.MethodGet, baseURL+"/api/pages/"+strconv.FormatUint(pageIDs[0], 10), token, nil)
	helpers.AssertStatus(t, resp, http.StatusNotFound)
	resp.Body.Close()
}

func testAttachmentLifecycle(t *testing.T, baseURL, token string) {
	body, _ := json.Marshal(map[string]string{"name": "With Attachment"})
	resp := helpers.AuthedRequest(t, http.MethodPost, baseURL+"/api/pdfs", token, body)
	helpers.AssertStatus(t, resp, http.StatusCreated)
	var doc struct {
		ID uint64 `json:"id"`
	}
	helpers.ParseEnvelope(t, resp, &doc)

	// Upload
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	_ = writer.WriteField("pdf_id", strconv.FormatUint(doc.ID, 10))
	part, err := writer.CreateFormFile("file", "brochure.pdf")
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte("e2e pdf bytes")); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	_ = writer.Close()

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/attachments", &buf)
	if err != nil {
		t.Fatalf("Failed to build upload request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	uploadResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	helpers.AssertStatus(t, uploadResp, http.StatusCreated)
	var attachment struct {
		ID uint64 `json:"id"`
	}
	helpers.ParseEnvelope(t, uploadResp, &attachment)

	// Download round trip
	resp = helpers.AuthedRequest(t, http.MethodGet, baseURL+"/api/attachments/"+strconv.FormatUint(attachment.ID, 10)+"/download", token, nil)
	helpers.AssertStatus(t, resp, http.StatusOK)
	content, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(content) != "e2e pdf bytes" {
		t.Errorf("Downloaded content mismatch: %q", string(content))
	}

	// Delete the attachment
	resp = helpers.AuthedRequest(t, http.MethodDelete, baseURL+"/api/attachments/"+strconv.FormatUint(attachment.ID, 10), token, nil)
	helpers.AssertStatus(t, resp, http.StatusOK)
	resp.Body.Close()
}

func testTemplateRendering(t *testing.T, baseURL, token string) {
	body, _ := json.Marshal(map[string]interface{}{
		"data": map[string]interface{}{
			"title":        "Smith & Sons",
			"show_tagline": true,
			"tagline":      "Since 1900",
		},
	})
	resp := helpers.AuthedRequest(t, http.MethodPost, baseURL+"/api/templates/hero/render", token, body)
	helpers.AssertStatus(t, resp, http.StatusOK)

	var data struct {
		HTML string `json:"html"`
	}
	helpers.ParseEnvelope(t, resp, &data)
	if data.HTML == "" {
		t.Error("Expected rendered HTML")
	}
	if os.Getenv("DEBUG_CONTAINER") == "true" {
		t.Logf("Rendered: %s", data.HTML)
	}
}
