package config

type NET struct {
	// Addr is the address the listener is bound to.
	Addr string
	// ReadBufferSize is the initial capacity of the per-connection read buffer. The buffer
	// grows past it only when a single partial request doesn't fit.
	ReadBufferSize int
	// WriteBufferSize is the initial capacity of the per-connection response buffer, which
	// accumulates all the responses produced from a single read before flushing them at once.
	WriteBufferSize int
}

// Config holds settings used across the server. There is no way to set them from the outside
// of the process, they exist in order to keep the magic numbers in one place.
//
// Always start from Default() and modify it, never initialize the config manually.
type Config struct {
	NET NET
}

// Default returns the default config.
func Default() *Config {
	return &Config{
		NET: NET{
			Addr:            "0.0.0.0:1337",
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}
