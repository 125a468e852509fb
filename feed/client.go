package feed

import (
	"context"
	"fmt"
	"log"

	"github.com/coder/websocket"
)

// Client subscribes to a Jetstream websocket
type Client struct {
	config *Config

	// OnSkip is called for messages that failed to decode; optional
	OnSkip func(err error)
}

// NewClient creates a client, nil config selects defaults
func NewClient(cfg *Config) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Client{config: cfg}
}

// Run implements Source
// A clean close by either side returns nil; reconnecting is left to the caller
func (c *Client) Run(ctx context.Context, deliver func(text string)) error {
	dialCtx, cancel := context.WithTimeout(ctx, c.config.DialTimeout)
	conn, _, err := websocket.Dial(dialCtx, c.config.URL, nil)
	cancel()
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.config.URL, err)
	}
	defer conn.CloseNow()

	if c.config.ReadLimit > 0 {
		conn.SetReadLimit(c.config.ReadLimit)
	}
	log.Printf("feed: connected to %s", c.config.URL)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				conn.Close(websocket.StatusNormalClosure, "")
				return nil
			}
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}

		text, ok, err := ExtractText(data)
		if err != nil {
			if c.OnSkip != nil {
				c.OnSkip(err)
			}
			continue
		}
		if ok {
			deliver(text)
		}
	}
}
