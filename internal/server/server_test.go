package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, recipient string) (*Server, string) {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>home</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "skills.html"), []byte("<h1>skills</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "cv.json"), []byte(`{"basics":{}}`), 0o644))
	return New(Config{Mode: gin.TestMode, Root: root}, func() string { return recipient }), root
}

func do(s *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestServer_Static(t *testing.T) {
	s, _ := newTestServer(t, "me@example.com")

	t.Run("Should serve the document without caching", func(t *testing.T) {
		w := do(s, httptest.NewRequest(http.MethodGet, "/cv.json", http.NoBody))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		assert.JSONEq(t, `{"basics":{}}`, w.Body.String())
	})

	t.Run("Should serve pages from the root", func(t *testing.T) {
		w := do(s, httptest.NewRequest(http.MethodGet, "/skills.html", http.NoBody))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "skills")

		w = do(s, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "home")
	})

	t.Run("Should 404 unknown files and other methods", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, do(s, httptest.NewRequest(http.MethodGet, "/nope.html", http.NoBody)).Code)
		assert.Equal(t, http.StatusNotFound, do(s, httptest.NewRequest(http.MethodDelete, "/index.html", http.NoBody)).Code)
	})
}

func postContact(s *Server, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(s, req)
}

func TestServer_Contact(t *testing.T) {
	form := url.Values{
		"contactName":    {"Ada"},
		"contactEmail":   {"ada@example.com"},
		"contactMessage": {"Hello there"},
	}

	t.Run("Should redirect to a mailto link", func(t *testing.T) {
		s, _ := newTestServer(t, "me@example.com")
		w := postContact(s, form)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		loc := w.Header().Get("Location")
		assert.True(t, strings.HasPrefix(loc, "mailto:me@example.com?subject=New%20message%20from%20Ada&body="), loc)
		assert.Contains(t, loc, "Hello%20there")
	})

	t.Run("Should refuse when no recipient is known", func(t *testing.T) {
		s, _ := newTestServer(t, "")
		w := postContact(s, form)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Empty(t, w.Header().Get("Location"))
	})
}

func TestVisitorLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	r := gin.New()
	r.Use(visitorLogger(log, ipHasher{salt: "salt"}))
	r.GET("/*path", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve := func(path string, dnt bool) {
		req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
		if dnt {
			req.Header.Set("DNT", "1")
		}
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	t.Run("Should log pages with a hashed client", func(t *testing.T) {
		buf.Reset()
		serve("/index.html", false)
		assert.Contains(t, buf.String(), `"path":"/index.html"`)
		assert.Contains(t, buf.String(), `"client":"`)
		assert.NotContains(t, buf.String(), "192.0.2.1")
	})

	t.Run("Should omit the client when DNT is set", func(t *testing.T) {
		buf.Reset()
		serve("/skills.html", true)
		assert.Contains(t, buf.String(), `"path":"/skills.html"`)
		assert.NotContains(t, buf.String(), `"client"`)
	})

	t.Run("Should skip assets", func(t *testing.T) {
		buf.Reset()
		serve("/Certification/AI-900.JPG", false)
		assert.Empty(t, buf.String())
	})
}

func TestIPHasher(t *testing.T) {
	h := ipHasher{salt: "s"}
	assert.Len(t, h.hash("10.0.0.1"), 16)
	assert.Equal(t, h.hash("10.0.0.1"), h.hash("10.0.0.1"))
	assert.NotEqual(t, h.hash("10.0.0.1"), h.hash("10.0.0.2"))
	assert.NotEqual(t, h.hash("10.0.0.1"), newIPHasher().hash("10.0.0.1"))
}
