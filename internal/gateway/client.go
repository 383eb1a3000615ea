package gateway

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"shareit/internal/logger"
)

// Client forwards requests to the backend verbatim: same path, query,
// headers and body, and relays the backend response as-is.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a forwarding client for the given backend base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Forward relays the inbound request to the backend. body is the
// already-read request body; pass nil for bodiless requests.
func (c *Client) Forward(w http.ResponseWriter, r *http.Request, body []byte) {
	url := c.baseURL + r.URL.RequestURI()

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, bytes.NewReader(body))
	if err != nil {
		logger.Log.Errorw("failed to build backend request", "url", url, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	req.Header = r.Header.Clone()

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Log.Errorw("backend request failed", "url", url, "error", err)
		w.WriteHeader(http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for key, values := range resp.Header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		logger.Log.Errorw("failed to relay backend response", "url", url, "error", err)
	}
}
