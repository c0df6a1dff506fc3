// Package api provides factory implementations for dependency injection
package api

import (
	"context"

	"github.com/ssargent/wibblr/pkg/base32"
	"go.uber.org/zap"
)

// DefaultServerFactory is the default implementation of ServerFactory
type DefaultServerFactory struct{}

// NewServerFactory creates a new server factory
func NewServerFactory() ServerFactory {
	return &DefaultServerFactory{}
}

// CreateServerStarter creates a server starter
func (f *DefaultServerFactory) CreateServerStarter() ServerStarter {
	return &DefaultServerStarter{}
}

// DefaultServerStarter is the default implementation of ServerStarter
type DefaultServerStarter struct{}

// StartServer starts the API server with the given configuration
func (s *DefaultServerStarter) StartServer(ctx context.Context, config ServerConfig, logger *zap.Logger) error {
	return StartServer(ctx, config, logger)
}

// base32Codec adapts the package-level base32 functions to ICodec
type base32Codec struct{}

// NewCodec returns the ICodec backed by pkg/base32
func NewCodec() ICodec {
	return base32Codec{}
}

func (base32Codec) Encode(src []byte, ignorePartialSymbol bool) string {
	return base32.Encode(src, ignorePartialSymbol)
}

func (base32Codec) Decode(s string, ignorePartialByte bool) ([]byte, error) {
	return base32.Decode(s, ignorePartialByte)
}
