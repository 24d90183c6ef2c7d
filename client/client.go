// Package client is a thin companion library for talking to an emberdb
// server: one method per command, each a pure send-command/read-response
// round trip over a single TCP connection.
package client

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/emberdb/emberdb/wire"
)

// Client is a connection to one emberdb server. A Client is safe for
// concurrent use: commands are serialized under an internal mutex since the
// wire protocol has no pipelining.
type Client struct {
	conn net.Conn
	mu   sync.Mutex
	r    *wire.Reader
	w    *wire.Writer
}

// Connect dials addr and returns a ready-to-use Client.
func Connect(ctx context.Context, addr string) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("client: connect %s: %w", addr, err)
	}
	return New(conn), nil
}

// New wraps an already-established connection.
func New(conn net.Conn) *Client {
	return &Client{conn: conn, r: wire.NewReader(conn), w: wire.NewWriter(conn)}
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Do sends an arbitrary command and returns the raw response. It exists
// alongside the typed per-command methods for callers that build a
// ClientCommand dynamically, such as a REPL parsing user input.
func (c *Client) Do(cmd wire.ClientCommand) (wire.ServerResponse, error) {
	return c.send(cmd)
}

// send writes cmd and reads back the matching response, translating an
// Error response into a Go error via wire.ServerResponse.AsError.
func (c *Client) send(cmd wire.ClientCommand) (wire.ServerResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.w.WriteClientCommand(cmd); err != nil {
		return wire.ServerResponse{}, fmt.Errorf("client: write %s: %w", cmd.Name(), err)
	}
	resp, err := c.r.ReadServerResponse()
	if err != nil {
		return wire.ServerResponse{}, fmt.Errorf("client: read %s response: %w", cmd.Name(), err)
	}
	if err := resp.AsError(); err != nil {
		return resp, err
	}
	return resp, nil
}
