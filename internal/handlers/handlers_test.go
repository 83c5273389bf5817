package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/router"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.sqlite")), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatal(err)
	}
	db.DB = gdb

	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("test_secret"))
	r.Use(sessions.Sessions("inkwell_session", store))
	r.Use(middleware.LoadUser())
	router.RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// apiClient is a thin session-carrying test client.
type apiClient struct {
	t    *testing.T
	base string
	http *http.Client
}

func newAPIClient(t *testing.T, srv *httptest.Server) *apiClient {
	jar, _ := cookiejar.New(nil)
	return &apiClient{t: t, base: srv.URL, http: &http.Client{Jar: jar}}
}

// do sends a JSON request and decodes the envelope.
func (c *apiClient) do(method, path string, body interface{}) (int, map[string]interface{}) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			c.t.Fatal(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		c.t.Fatal(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.t.Fatal(err)
	}
	defer resp.Body.Close()

	var envelope map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.t.Fatalf("decoding %s %s: %v", method, path, err)
	}
	return resp.StatusCode, envelope
}

// signup registers and leaves the session cookie on the client.
func (c *apiClient) signup(name string) uint {
	c.t.Helper()
	code, envelope := c.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":     name,
		"email":    name + "@example.com",
		"password": "hunter22",
	})
	if code != http.StatusCreated {
		c.t.Fatalf("signup %s: status %d (%v)", name, code, envelope)
	}
	data := envelope["data"].(map[string]interface{})
	return uint(data["id"].(float64))
}

// promote flips a user to admin directly in the store. LoadUser
// re-reads the record per request, so the role change is immediate.
func promote(t *testing.T, userID uint) {
	t.Helper()
	if err := db.DB.Model(&models.User{}).Where("id = ?", userID).Update("role", models.RoleAdmin).Error; err != nil {
		t.Fatal(err)
	}
}

func seedCategory(t *testing.T, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Description: "test"}
	if err := db.DB.Create(&category).Error; err != nil {
		t.Fatal(err)
	}
	return category
}
