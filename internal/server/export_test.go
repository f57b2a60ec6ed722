package server

import (
	"context"
	"net"
)

// ServeListener exposes serveListener so tests can bind to an ephemeral port.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	return s.serveListener(ctx, ln)
}
