// Package api est le client REST du backend catalogue / commandes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jewelry_storefront/internal/metrics"

	log "github.com/sirupsen/logrus"
)

const defaultErrorMessage = "An error occurred"

// Error est renvoyée pour toute réponse non-2xx du backend
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend %d: %s", e.Status, e.Message)
}

func statusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

func IsNotFound(err error) bool     { return statusOf(err) == http.StatusNotFound }
func IsUnauthorized(err error) bool { return statusOf(err) == http.StatusUnauthorized }

// Client parle au backend. Il est sans état : le jeton est passé à chaque appel.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type request struct {
	method      string
	endpoint    string // nom stable pour les métriques
	path        string
	query       url.Values
	token       string
	body        any
	rawBody     io.Reader
	contentType string
}

func (c *Client) do(ctx context.Context, r request, out any) (err error) {
	started := time.Now()
	defer func() { metrics.ObserveBackendCall(r.endpoint, started, err) }()

	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	body := r.rawBody
	contentType := r.contentType
	if r.body != nil {
		buf, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encodage requête %s: %w", r.endpoint, err)
		}
		body = bytes.NewReader(buf)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return fmt.Errorf("création requête %s: %w", r.endpoint, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithFields(log.Fields{"endpoint": r.endpoint, "error": err}).Error("❌ Appel backend échoué")
		return fmt.Errorf("appel %s: %w", r.endpoint, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("lecture réponse %s: %w", r.endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode, Message: defaultErrorMessage}
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(payload, &e) == nil && e.Error != "" {
			apiErr.Message = e.Error
		}
		log.WithFields(log.Fields{"endpoint": r.endpoint, "status": resp.StatusCode}).
			Warnf("⚠️ Backend a refusé la requête: %s", apiErr.Message)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("décodage réponse %s: %w", r.endpoint, err)
	}
	return nil
}
