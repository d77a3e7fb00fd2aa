package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jobtechradar/radar/internal/client/models"
	"github.com/jobtechradar/radar/internal/logging"
)

// HTTPClient implements Client against the REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. "http://localhost:8000/api"). A trailing slash is trimmed.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// errorBody mirrors the API's error payload.
type errorBody struct {
	Detail string `json:"detail"`
}

// do issues the request, logs it, and maps failures onto the package's
// error taxonomy. The response body is returned for 2xx statuses.
func (c *HTTPClient) do(req *http.Request) ([]byte, error) {
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(req.Context(), "request failed",
			"method", req.Method, "path", req.URL.Path, "request_id", reqID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	c.log.Debug(req.Context(), "request done",
		"method", req.Method, "path", req.URL.Path,
		"status", resp.StatusCode, "duration", time.Since(start), "request_id", reqID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil {
			apiErr.Detail = eb.Detail
		}
		return nil, apiErr
	}
	return body, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	body, err := c.do(req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	return nil
}

// Register creates an account via POST /auth/register (JSON body).
func (c *HTTPClient) Register(ctx context.Context, email, username, password string) (models.User, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"username": username,
		"password": password,
	})
	if err != nil {
		return models.User{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/auth/register", bytes.NewReader(payload))
	if err != nil {
		return models.User{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return models.User{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return user, nil
}

// Login exchanges credentials for a bearer token via POST /auth/login.
// The API expects a form-encoded body, not JSON.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var auth models.AuthResponse
	if err := json.Unmarshal(body, &auth); err != nil {
		return "", fmt.Errorf("json unmarshal: %w", err)
	}
	if auth.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrUnauthorized)
	}
	return auth.AccessToken, nil
}

// CurrentUser fetches the account behind the token via GET /auth/me.
func (c *HTTPClient) CurrentUser(ctx context.Context, token string) (models.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/me", nil)
	if err != nil {
		return models.User{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	body, err := c.do(req)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return models.User{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return user, nil
}

// SearchOffers queries GET /external-offers/ with the filter set encoded
// as query parameters. The server returns offers already ordered by the
// requested sort.
func (c *HTTPClient) SearchOffers(ctx context.Context, filters models.OfferFilters) ([]models.Offer, error) {
	var offers []models.Offer
	if err := c.getJSON(ctx, "/external-offers/", filters.Values(), &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// TechStats fetches GET /techs/stats.
func (c *HTTPClient) TechStats(ctx context.Context) ([]models.TechWithStats, error) {
	var stats []models.TechWithStats
	if err := c.getJSON(ctx, "/techs/stats", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// TechTrends fetches GET /techs/trends?limit=N. The server orders the
// result and caps it at limit.
func (c *HTTPClient) TechTrends(ctx context.Context, limit int) ([]models.TechTrend, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var trends []models.TechTrend
	if err := c.getJSON(ctx, "/techs/trends", q, &trends); err != nil {
		return nil, err
	}
	return trends, nil
}

// SyncAllOffers triggers POST /tech-extraction/sync-all-offers. The call
// is side-effect only; the response body carries nothing useful.
func (c *HTTPClient) SyncAllOffers(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/tech-extraction/sync-all-offers", nil)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}
