package gymapi

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "strings"
    "time"
)

// Client talks to the gym backend.  All methods honour the context for
// cancellation, attach the caller's bearer token through the transport
// and apply a request timeout so a hung upstream cannot hang the
// calendar forever.
type Client struct {
    baseURL string
    http    *http.Client
}

// New returns a Client for the given base URL.  A timeout of zero
// falls back to ten seconds.
func New(baseURL string, timeout time.Duration) *Client {
    if timeout <= 0 {
        timeout = 10 * time.Second
    }
    return &Client{
        baseURL: strings.TrimRight(baseURL, "/"),
        http: &http.Client{
            Timeout:   timeout,
            Transport: &bearerTransport{},
        },
    }
}

// do performs one request against the backend and decodes a JSON body
// into out when out is non-nil.  Status mapping:
//   401            -> ErrUnauthorized
//   404 on reads   -> handled by callers (emptyOn404)
//   other non-2xx  -> *APIError carrying the payload's message field
func (c *Client) do(ctx context.Context, method, path string, body, out any, emptyOn404 bool) error {
    var reader io.Reader
    if body != nil {
        buf, err := json.Marshal(body)
        if err != nil {
            return fmt.Errorf("marshal request: %w", err)
        }
        reader = bytes.NewReader(buf)
    }
    req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
    if err != nil {
        return fmt.Errorf("build request: %w", err)
    }
    if body != nil {
        req.Header.Set("Content-Type", "application/json")
    }
    resp, err := c.http.Do(req)
    if err != nil {
        return fmt.Errorf("gym api %s %s: %w", method, path, err)
    }
    defer resp.Body.Close()

    switch {
    case resp.StatusCode == http.StatusUnauthorized:
        return ErrUnauthorized
    case resp.StatusCode == http.StatusNotFound && emptyOn404:
        // Read paths treat a missing resource as an empty result, not
        // a user-visible error.
        return nil
    case resp.StatusCode < 200 || resp.StatusCode > 299:
        var eb errorBody
        _ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&eb)
        return &APIError{Status: resp.StatusCode, Message: eb.text()}
    }

    if out == nil || resp.StatusCode == http.StatusNoContent {
        return nil
    }
    if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
        return fmt.Errorf("decode response: %w", err)
    }
    return nil
}
