package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"onlinegame/object"
)

const collection = "online-game"

// ErrStatus is wrapped by every error caused by a non-2xx response.
var ErrStatus = errors.New("unexpected status")

// Record is one entity as the remote store serves it.
type Record struct {
	X     float64   `json:"x"`
	Y     float64   `json:"y"`
	ID    object.ID `json:"id"`
	Using bool      `json:"using"`
}

// Patch holds a subset of a record's fields. Nil fields are left out of the
// request body.
type Patch struct {
	X     *float64 `json:"x,omitempty"`
	Y     *float64 `json:"y,omitempty"`
	Using *bool    `json:"using,omitempty"`
}

func Position(x, y float64) Patch {
	return Patch{X: &x, Y: &y}
}

func Using(using bool) Patch {
	return Patch{Using: &using}
}

type Client struct {
	base      string
	sessionID string
	http      *http.Client
	log       *zap.SugaredLogger
	beacons   sync.WaitGroup
}

// NewClient talks to the store rooted at base. A zero timeout means requests
// may hang forever.
func NewClient(base, sessionID string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	return &Client{
		base:      strings.TrimSuffix(base, "/"),
		sessionID: sessionID,
		http:      &http.Client{Timeout: timeout},
		log:       log,
	}
}

func (c *Client) collectionURL() string {
	return c.base + "/" + collection
}

func (c *Client) entityURL(ID object.ID) string {
	return c.collectionURL() + "/" + url.PathEscape(ID.String())
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.sessionID != "" {
		req.Header.Set("X-Session-Id", c.sessionID)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(ioutil.Discard, resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("%s %s: %w %d", req.Method, req.URL.Path, ErrStatus, resp.StatusCode)
	}
	return resp, nil
}

// List fetches every record in the collection.
func (c *Client) List(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.collectionURL(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer resp.Body.Close()

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("list: decode: %w", err)
	}
	return records, nil
}

// Update patches one record. The response body is ignored.
func (c *Client) Update(ctx context.Context, ID object.ID, p Patch) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.entityURL(ID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("update %s: %w", ID, err)
	}
	io.Copy(ioutil.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

// Beacon sends p without waiting for it. It never blocks and never panics,
// and the request may not arrive.
func (c *Client) Beacon(ID object.ID, p Patch) {
	c.beacons.Add(1)
	go func() {
		defer c.beacons.Done()
		defer func() {
			if r := recover(); r != nil {
				c.log.Debugw("beacon panicked", "id", ID, "panic", r)
			}
		}()
		if err := c.Update(context.Background(), ID, p); err != nil {
			c.log.Debugw("beacon failed", "id", ID, "err", err)
		}
	}()
}

// Flush waits up to timeout for outstanding beacons and reports whether they
// all finished.
func (c *Client) Flush(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		c.beacons.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
