package chat

import loggerpkg "github.com/codechat/codechat/pkg/logger"

// Option configures optional runtime dependencies for Client.
type Option func(*clientDeps)

type clientDeps struct {
	logger loggerpkg.Logger
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *clientDeps) {
		d.logger = l
	}
}
