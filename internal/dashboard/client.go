// Package dashboard is the Go service layer and state machine behind
// the admin dashboard: a typed client for the REST API plus a
// controller tracking tabs, dialogs and in-flight fetches.
package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Envelope is the {success, data, message} wrapper every endpoint
// answers with.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// APIError is a non-success envelope surfaced as an error.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Client talks to the REST API. The cookie jar carries the session.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) do(method, path string, body interface{}) (*Envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+"/api/v1"+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if !env.Success {
		return &env, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	return &env, nil
}

func get[T any](c *Client, path string) (T, error) {
	var out T
	env, err := c.do(http.MethodGet, path, nil)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(env.Data, &out)
	return out, err
}

func send[T any](c *Client, method, path string, body interface{}) (T, error) {
	var out T
	env, err := c.do(method, path, body)
	if err != nil {
		return out, err
	}
	if len(env.Data) > 0 {
		err = json.Unmarshal(env.Data, &out)
	}
	return out, err
}

// Login establishes the admin session used by everything below.
func (c *Client) Login(email, password string) (User, error) {
	return send[User](c, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

func (c *Client) GetReports() ([]Report, error) {
	return get[[]Report](c, "/reports")
}

func (c *Client) GetReportsByStatus(status string) ([]Report, error) {
	return get[[]Report](c, "/reports/status/"+status)
}

func (c *Client) UpdateReport(id uint, patch ReportPatch) (Report, error) {
	return send[Report](c, http.MethodPut, fmt.Sprintf("/reports/%d", id), patch)
}

func (c *Client) DeleteReport(id uint) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/reports/%d", id), nil)
	return err
}

func (c *Client) GetPosts() ([]Post, error) {
	page, err := get[struct {
		Posts []Post `json:"posts"`
	}](c, "/posts")
	return page.Posts, err
}

func (c *Client) CreatePost(form PostForm) (Post, error) {
	return send[Post](c, http.MethodPost, "/posts", form)
}

func (c *Client) UpdatePost(id uint, form PostForm) (Post, error) {
	return send[Post](c, http.MethodPut, fmt.Sprintf("/posts/%d", id), form)
}

func (c *Client) DeletePost(id uint) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/posts/%d", id), nil)
	return err
}

func (c *Client) GetCategories() ([]Category, error) {
	return get[[]Category](c, "/categories")
}

func (c *Client) CreateCategory(form CategoryForm) (Category, error) {
	return send[Category](c, http.MethodPost, "/categories", form)
}

func (c *Client) UpdateCategory(id uint, form CategoryForm) (Category, error) {
	return send[Category](c, http.MethodPut, fmt.Sprintf("/categories/%d", id), form)
}

func (c *Client) DeleteCategory(id uint) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil)
	return err
}

func (c *Client) GetUsers() ([]User, error) {
	return get[[]User](c, "/users")
}

func (c *Client) CreateUser(form UserForm) (User, error) {
	return send[User](c, http.MethodPost, "/users", form)
}

func (c *Client) UpdateUser(id uint, form UserForm) (User, error) {
	return send[User](c, http.MethodPut, fmt.Sprintf("/users/%d", id), form)
}

func (c *Client) DeleteUser(id uint) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/users/%d", id), nil)
	return err
}

func (c *Client) GetReportedComments() ([]ReportedComment, error) {
	return get[[]ReportedComment](c, "/admin/comments/reported")
}

func (c *Client) HandleReportedComment(id uint, action string) error {
	_, err := c.do(http.MethodPost, fmt.Sprintf("/admin/comments/%d/handle", id),
		map[string]string{"action": action})
	return err
}
