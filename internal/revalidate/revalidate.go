// Package revalidate tells the public site which pages to rebuild after
// fleet changes.
package revalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/logger"
)

const (
	SecretHeader = "x-revalidate-secret"
	timeout      = 5 * time.Second
)

type Client struct {
	url    string
	secret string
	http   *http.Client
	wg     sync.WaitGroup
}

// New returns a client for the webhook at url. An empty url yields a client
// whose calls do nothing.
func New(url, secret string) *Client {
	return &Client{url: url, secret: secret, http: &http.Client{Timeout: timeout}}
}

func (c *Client) Enabled() bool {
	return c != nil && c.url != ""
}

// Notify fires the webhook in the background. Failures are logged only.
func (c *Client) Notify(paths ...string) {
	if !c.Enabled() || len(paths) == 0 {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := c.Send(ctx, paths); err != nil {
			logger.Warn("public site revalidation failed", "paths", paths, "error", err)
		}
	}()
}

// Send posts the paths and waits for the response.
func (c *Client) Send(ctx context.Context, paths []string) error {
	if !c.Enabled() {
		return nil
	}
	body, err := json.Marshal(map[string][]string{"paths": paths})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set(SecretHeader, c.secret)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("revalidate webhook returned %d", resp.StatusCode)
	}
	return nil
}

// Wait blocks until in-flight notifications finish. Called on shutdown.
func (c *Client) Wait() {
	if c != nil {
		c.wg.Wait()
	}
}
