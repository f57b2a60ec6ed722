package server

import "github.com/raysh454/xssrisk/internal/logging"

type Config struct {
	// ListenAddr is the HTTP listen address for the API server.
	ListenAddr string

	// MaxConns caps simultaneously accepted connections; 0 means unlimited.
	MaxConns int

	// MaxBodyBytes caps request bodies and websocket messages.
	MaxBodyBytes int64

	Logger logging.Logger
}

const defaultMaxBodyBytes = 1 << 20
