package stream

import "time"

// Config holds hub limits
type Config struct {
	// MaxClients caps concurrent viewers, further upgrades are refused
	MaxClients int

	// WriteTimeout bounds a single frame write; a client that cannot keep up is dropped
	WriteTimeout time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
}

// DefaultConfig returns limits suited to a local viewer
func DefaultConfig() Config {
	return Config{
		MaxClients:      16,
		WriteTimeout:    2 * time.Second,
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
	}
}
