package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-talentiq-client/internal/nav"
	"go-talentiq-client/internal/session"
)

// Client is the single HTTP client every resource client goes
// through. It owns bearer injection and the centralized unauthorized
// handling; resource clients only describe requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Store
	nav        nav.Navigator
}

func New(baseURL string, timeout time.Duration, sess *session.Store, navigator nav.Navigator) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		session:    sess,
		nav:        navigator,
	}
}

// Get issues a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT. Some backend endpoints take their arguments as
// query parameters with an empty body, so both are accepted.
func (c *Client) Put(ctx context.Context, path string, query url.Values, body any, out any) error {
	return c.Do(ctx, http.MethodPut, path, query, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do performs one request/response cycle. The server's payload is
// decoded into out unchanged on success; any failure surfaces as an
// *APIError (HTTP) or a wrapped transport error (network).
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reqBody io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := c.newRequest(ctx, method, path, query, reqBody, contentType)
	if err != nil {
		return err
	}

	respBody, err := c.send(req)
	if err != nil {
		return err
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// PostMultipart uploads a file as multipart/form-data under the given
// field name.
func (c *Client) PostMultipart(ctx context.Context, path, field, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("failed to build multipart form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to read upload file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf, mw.FormDataContentType())
	if err != nil {
		return err
	}

	respBody, err := c.send(req)
	if err != nil {
		return err
	}
	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// Stream issues a GET and hands the raw body to the caller, for
// file-returning endpoints. The caller must close it.
func (c *Client) Stream(ctx context.Context, path string) (io.ReadCloser, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return nil, err
	}

	hadToken := req.Header.Get("Authorization") != ""
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		payload, _ := io.ReadAll(resp.Body)
		c.handleUnauthorized(resp.StatusCode, hadToken)
		return nil, newAPIError(resp.StatusCode, payload)
	}
	return resp.Body, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) send(req *http.Request) ([]byte, error) {
	hadToken := req.Header.Get("Authorization") != ""

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.handleUnauthorized(resp.StatusCode, hadToken)
		return nil, newAPIError(resp.StatusCode, respBody)
	}
	return respBody, nil
}

// handleUnauthorized recovers from an expired session: clear it and
// send the user to login. The exemption for auth-flow views avoids
// redirect loops while a login or registration is itself failing.
func (c *Client) handleUnauthorized(status int, hadToken bool) {
	if status != http.StatusUnauthorized {
		return
	}
	if !hadToken || nav.IsAuthView(c.nav.Current()) {
		return
	}
	c.session.Logout()
	c.nav.Redirect(nav.RouteLogin)
}
