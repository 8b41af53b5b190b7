package rendezvous

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

var (
	// ErrTimeout reports that no second party arrived within the
	// server's bounded wait. The caller should retry with a fresh id.
	ErrTimeout = errors.New("rendezvous: no second party arrived")

	// ErrBusy reports that the id was already paired by two other
	// callers.
	ErrBusy = errors.New("rendezvous: id already paired")
)

// Client calls a rendezvous [Server] over HTTP. It implements the
// barrier contract expected by the session package.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a client for the barrier at base, e.g.
// "http://localhost:3030".
func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{},
	}
}

// Await blocks until the peer arrives under id, the server's wait
// expires ([ErrTimeout]), the id is already taken ([ErrBusy]), or ctx
// is done.
func (c *Client) Await(ctx context.Context, id string) error {
	u := c.base + "/sync/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("rendezvous: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("rendezvous: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusRequestTimeout:
		return ErrTimeout
	case http.StatusConflict:
		return ErrBusy
	default:
		return fmt.Errorf("rendezvous: unexpected status %s", resp.Status)
	}
}
