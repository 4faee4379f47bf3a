// FILE: lixenwraith/disklog/compat/builder.go
// Package compat adapts a disklog.Sink to the logger interfaces of gnet and fasthttp.
package compat

import (
	"fmt"

	"github.com/lixenwraith/disklog"
)

// Builder provides a flexible way to create configured sink adapters for gnet and fasthttp
// It can use an existing *disklog.Sink instance or create a new one from a *disklog.Config
type Builder struct {
	sink *disklog.Sink
	cfg  *disklog.Config
	err  error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithSink specifies an existing sink to use for the adapters
// If this is set WithConfig is ignored
func (b *Builder) WithSink(s *disklog.Sink) *Builder {
	if s == nil {
		b.err = fmt.Errorf("disklog/compat: provided sink cannot be nil")
		return b
	}
	b.sink = s
	return b
}

// WithConfig provides a configuration for a new sink instance
// If neither WithSink nor WithConfig is used, a default sink will be created
func (b *Builder) WithConfig(cfg *disklog.Config) *Builder {
	b.cfg = cfg
	return b
}

// getSink resolves the sink to be used, creating one if necessary
func (b *Builder) getSink() (*disklog.Sink, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.sink != nil {
		return b.sink, nil
	}

	cfg := b.cfg
	if cfg == nil {
		cfg = disklog.DefaultConfig()
	}

	s, err := disklog.New(cfg)
	if err != nil {
		return nil, err
	}

	// Cache the newly created sink for subsequent builds with this builder
	b.sink = s
	return s, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	s, err := b.getSink()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(s, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	s, err := b.getSink()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(s, opts...), nil
}

// GetSink returns the underlying *disklog.Sink instance
// If a sink has not been provided or created yet, it will be started
func (b *Builder) GetSink() (*disklog.Sink, error) {
	return b.getSink()
}

// --- Example Usage ---
//
//	sink, err := disklog.NewBuilder().Directory("/var/log/app").Build()
//	if err != nil { /* handle error */ }
//	defer sink.Shutdown()
//
//	builder := compat.NewBuilder().WithSink(sink)
//
//	gnetLogger, _ := builder.BuildGnet()
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	fasthttpLogger, _ := builder.BuildFastHTTP()
//	server := &fasthttp.Server{Handler: handler, Logger: fasthttpLogger}
//	go server.ListenAndServe(":8080")
