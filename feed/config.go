package feed

import "time"

// DefaultURL is the public Jetstream endpoint restricted to post records
const DefaultURL = "wss://jetstream2.us-west.bsky.network/subscribe?wantedCollections=app.bsky.feed.post"

// Config holds feed configuration
type Config struct {
	// URL of the Jetstream subscription, ws or wss
	URL string

	// DialTimeout bounds the websocket handshake
	DialTimeout time.Duration

	// ReadLimit is the maximum accepted message size in bytes
	ReadLimit int64

	// QueueSize is the capacity of the delivery channel; arrivals beyond it are shed
	QueueSize int

	// LineInterval paces line sources so a file does not arrive as one burst
	LineInterval time.Duration
}

// DefaultConfig returns production-safe defaults
func DefaultConfig() *Config {
	return &Config{
		URL:          DefaultURL,
		DialTimeout:  10 * time.Second,
		ReadLimit:    1 << 20,
		QueueSize:    64,
		LineInterval: 100 * time.Millisecond,
	}
}
