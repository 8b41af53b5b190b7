package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// Client is one end of a relayed conversation. It sends and receives
// opaque binary payloads; the relay carries them to whoever holds the
// other end of the same id.
//
// A Client supports one concurrent sender and one concurrent receiver,
// which matches the request/response flow of a proof handshake.
type Client struct {
	conn *websocket.Conn
}

// Dial connects to a relay endpoint, e.g.
// "ws://localhost:3030/relay/some-id".
func Dial(ctx context.Context, rawURL string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("bridge: dial %s: %w", rawURL, err)
	}
	return &Client{conn: conn}, nil
}

// Send writes payload as one binary frame.
func (c *Client) Send(ctx context.Context, payload []byte) error {
	if deadline, ok := ctx.Deadline(); ok {
		c.conn.SetWriteDeadline(deadline)
	} else {
		c.conn.SetWriteDeadline(time.Time{})
	}
	if err := c.conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
		return fmt.Errorf("bridge: send: %w", err)
	}
	return nil
}

// Recv blocks for the next frame from the peer and returns its payload.
func (c *Client) Recv(ctx context.Context) ([]byte, error) {
	if deadline, ok := ctx.Deadline(); ok {
		c.conn.SetReadDeadline(deadline)
	} else {
		c.conn.SetReadDeadline(time.Time{})
	}
	_, msg, err := c.conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("bridge: recv: %w", err)
	}
	return msg, nil
}

// Close tears down the connection.
func (c *Client) Close() error {
	c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	return c.conn.Close()
}
