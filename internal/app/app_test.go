package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/house-listing-api/internal/config"
	"github.com/iliyamo/house-listing-api/internal/session"
)

// newTestApp builds the full application against a throwaway upload
// directory and in-memory sessions, the same wiring both transports use.
func newTestApp(t *testing.T) *echo.Echo {
	t.Helper()
	cfg := config.Config{
		Env:            "test",
		Port:           "0",
		AdminUsername:  "admin",
		AdminPassword:  "admin123",
		SessionSecret:  "test-secret",
		SessionTTL:     time.Hour,
		SessionStore:   "memory",
		UploadDriver:   "fs",
		UploadDir:      t.TempDir(),
		MaxUploadFiles: 10,
		CORSOrigins:    []string{"http://localhost:3000"},
	}
	e, err := New(context.Background(), cfg)
	require.NoError(t, err)
	return e
}

// doJSON performs a request with an optional JSON body and session cookie.
func doJSON(e *echo.Echo, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

// login authenticates as the admin and returns the session cookie.
func login(t *testing.T, e *echo.Echo) *http.Cookie {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/login",
		map[string]string{"username": "admin", "password": "admin123"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("login response set no session cookie")
	return nil
}

func TestHealth(t *testing.T) {
	e := newTestApp(t)
	rec := doJSON(e, http.MethodGet, "/api/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", decode(t, rec)["status"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	e := newTestApp(t)
	rec := doJSON(e, http.MethodPost, "/api/login",
		map[string]string{"username": "admin", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())

	// A failed login must not flip the session flag.
	rec = doJSON(e, http.MethodGet, "/api/check-auth", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode(t, rec)["isAdmin"])
}

func TestCheckAuthReflectsSession(t *testing.T) {
	e := newTestApp(t)
	cookie := login(t, e)

	rec := doJSON(e, http.MethodGet, "/api/check-auth", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["isAdmin"])
}

func TestLogoutClearsSession(t *testing.T) {
	e := newTestApp(t)
	cookie := login(t, e)

	rec := doJSON(e, http.MethodPost, "/api/logout", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The old cookie no longer resolves to an admin session.
	rec = doJSON(e, http.MethodGet, "/api/check-auth", nil, cookie)
	assert.Equal(t, false, decode(t, rec)["isAdmin"])
	rec = doJSON(e, http.MethodPost, "/api/houses",
		map[string]any{"title": "T", "price": 1, "address": "A"}, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMutationsRequireAdmin(t *testing.T) {
	e := newTestApp(t)
	body := map[string]any{"title": "T", "price": 1000, "address": "A"}

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/houses"},
		{http.MethodPut, "/api/houses/1"},
		{http.MethodDelete, "/api/houses/1"},
		{http.MethodPost, "/api/houses/1/images"},
		{http.MethodDelete, "/api/houses/1/images/0"},
		{http.MethodPost, "/api/upload"},
	} {
		rec := doJSON(e, tc.method, tc.path, body, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}

	// None of the rejected calls touched the store.
	rec := doJSON(e, http.MethodGet, "/api/houses", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var houses []any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &houses))
	assert.Empty(t, houses)
}

func TestHouseCRUDFlow(t *testing.T) {
	e := newTestApp(t)
	cookie := login(t, e)

	// Create with a string price; it coerces to a number.
	rec := doJSON(e, http.MethodPost, "/api/houses",
		map[string]any{"title": "Cozy Cottage", "price": "250000", "address": "1 Main St"}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode(t, rec)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, float64(250000), created["price"])
	assert.Equal(t, "available", created["status"])
	assert.Equal(t, []any{}, created["images"])
	assert.NotEmpty(t, created["createdAt"])

	// Public read access.
	rec = doJSON(e, http.MethodGet, "/api/houses/1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cozy Cottage", decode(t, rec)["title"])

	// Zero price is ignored by the merge; a real one replaces.
	rec = doJSON(e, http.MethodPut, "/api/houses/1",
		map[string]any{"price": 0, "status": "sold"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode(t, rec)
	assert.Equal(t, float64(250000), updated["price"])
	assert.Equal(t, "sold", updated["status"])

	rec = doJSON(e, http.MethodPut, "/api/houses/1",
		map[string]any{"price": 300000}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(300000), decode(t, rec)["price"])

	// Delete, then both lookup and re-delete are 404.
	rec = doJSON(e, http.MethodDelete, "/api/houses/1", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "House deleted successfully", decode(t, rec)["message"])

	rec = doJSON(e, http.MethodGet, "/api/houses/1", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = doJSON(e, http.MethodDelete, "/api/houses/1", nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateValidation(t *testing.T) {
	e := newTestApp(t)
	cookie := login(t, e)

	rec := doJSON(e, http.MethodPost, "/api/houses",
		map[string]any{"price": 1000, "address": "A"}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Title, price, and address are required", decode(t, rec)["error"])

	// The failed create must not have consumed an id.
	rec = doJSON(e, http.MethodPost, "/api/houses",
		map[string]any{"title": "T", "price": 1000, "address": "A"}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["id"])
}

func TestImageEndpoints(t *testing.T) {
	e := newTestApp(t)
	cookie := login(t, e)

	rec := doJSON(e, http.MethodPost, "/api/houses",
		map[string]any{"title": "T", "price": 1000, "address": "A"}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/houses/1/images",
		map[string]any{"imageUrls": []string{"a.jpg", "b.jpg"}}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"a.jpg", "b.jpg"}, decode(t, rec)["images"])

	rec = doJSON(e, http.MethodDelete, "/api/houses/1/images/0", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"b.jpg"}, decode(t, rec)["images"])

	// Index 1 is out of range for the remaining 1-element list.
	rec = doJSON(e, http.MethodDelete, "/api/houses/1/images/1", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid image index", decode(t, rec)["error"])

	// Missing imageUrls field.
	rec = doJSON(e, http.MethodPost, "/api/houses/1/images",
		map[string]any{}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Image URLs array is required", decode(t, rec)["error"])

	// Unknown house.
	rec = doJSON(e, http.MethodPost, "/api/houses/99/images",
		map[string]any{"imageUrls": []string{"a.jpg"}}, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNonNumericIDIsNotFound(t *testing.T) {
	e := newTestApp(t)
	rec := doJSON(e, http.MethodGet, "/api/houses/abc", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnsupportedVerbIsMethodNotAllowed(t *testing.T) {
	e := newTestApp(t)
	rec := doJSON(e, http.MethodPatch, "/api/houses/1", nil, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// multipartUpload builds a multipart body with the given file names
// under the "images" field.
func multipartUpload(t *testing.T, names []string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for i, name := range names {
		fw, err := w.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = fmt.Fprintf(fw, "fake image bytes %d", i)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func TestUpload(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		Env: "test", AdminUsername: "admin", AdminPassword: "admin123",
		SessionSecret: "test-secret", SessionTTL: time.Hour,
		UploadDriver: "fs", UploadDir: dir, MaxUploadFiles: 10,
	}
	e, err := New(context.Background(), cfg)
	require.NoError(t, err)
	cookie := login(t, e)

	body, contentType := multipartUpload(t, []string{"front.jpg", "back.png"})
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, true, resp["success"])
	urls, ok := resp["imageUrls"].([]any)
	require.True(t, ok)
	require.Len(t, urls, 2)
	for _, u := range urls {
		url := u.(string)
		assert.True(t, strings.HasPrefix(url, "/uploads/"), "unexpected url %q", url)
		// The file actually landed in the upload directory.
		_, err := os.Stat(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
		assert.NoError(t, err)
	}
	// Extensions survive the renaming.
	assert.True(t, strings.HasSuffix(urls[0].(string), ".jpg"))
	assert.True(t, strings.HasSuffix(urls[1].(string), ".png"))
}

func TestUploadRequiresFiles(t *testing.T) {
	e := newTestApp(t)
	cookie := login(t, e)

	body, contentType := multipartUpload(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No image files provided", decode(t, rec)["error"])
}
