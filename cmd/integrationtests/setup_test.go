package integrationtests

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"eth-marketplace/internal/imagestore"
	listing "eth-marketplace/internal/listingService"
	"eth-marketplace/internal/repository"
	"eth-marketplace/internal/server"
	"eth-marketplace/internal/testhelpers"
)

// SetupTestServer spins up a Postgres container, runs the migrations and
// wires the real repository, image store and router together.
func SetupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	gin.SetMode(gin.TestMode)

	db := testhelpers.NewTestDatabase(t, "../../migrations")
	t.Cleanup(db.Close)

	uploadDir := t.TempDir()
	store, err := imagestore.NewDiskStore(uploadDir)
	require.NoError(t, err)

	repo := repository.NewPostgresRepo(db.Pool)
	service := listing.NewListingService(repo, store)
	return server.SetupRouter(service, uploadDir)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// ExecuteMultipartAndParse posts a multipart form (optionally with one image
// file) the way the browser frontend submits sell and update forms.
func ExecuteMultipartAndParse(t *testing.T, router *gin.Engine, method, url string, fields map[string]string, imageName string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("itemImage", imageName)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// Data unwraps the envelope's data object on successful responses.
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", resp)
	return data
}

// decodeBody unmarshals a recorded response body into out, for endpoints
// that reply with a bare JSON array rather than the envelope.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
