package sunshade

import (
	"fmt"
	"log/slog"
)

// Plugin window size expected by the panel UI.
const (
	WindowWidth  = 240
	WindowHeight = 137
)

// PluginOption configures Start.
type PluginOption func(*pluginOptions)

type pluginOptions struct {
	shadow []Option
	logger *slog.Logger
}

// WithShadowOptions passes shadow options to every recomputation.
func WithShadowOptions(opts ...Option) PluginOption {
	return func(o *pluginOptions) {
		o.shadow = append(o.shadow, opts...)
	}
}

// WithLogger overrides the package logger for one plugin session.
func WithLogger(l *slog.Logger) PluginOption {
	return func(o *pluginOptions) {
		o.logger = l
	}
}

// Plugin is one editing session: a light, a tracker and the host
// subscriptions that drive them.
type Plugin struct {
	light   *Light
	tracker *Tracker
	log     *slog.Logger

	cancelSelection func()
	cancelClose     func()
	closed          bool
}

// Start creates the light and subscribes to host selection and close
// notifications. Summaries are sent to emitter, which may be nil.
func Start(host Host, emitter Emitter, opts ...PluginOption) (*Plugin, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	o := pluginOptions{logger: Logger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}

	light, err := newLight(host, host, o.logger)
	if err != nil {
		return nil, err
	}

	p := &Plugin{
		light:   light,
		tracker: newTracker(host, light, emitter, o.logger, o.shadow),
		log:     o.logger,
	}
	p.cancelSelection = host.OnSelectionChange(p.tracker.HandleSelectionChange)
	p.cancelClose = host.OnClose(func() {
		if err := p.Close(); err != nil {
			p.log.Warn("plugin close failed", "err", err)
		}
	})

	p.log.Info("plugin started", "light", light.Shape().ID())
	return p, nil
}

// Light returns the session light.
func (p *Plugin) Light() *Light {
	return p.light
}

// Tracker returns the session selection tracker.
func (p *Plugin) Tracker() *Tracker {
	return p.tracker
}

// Closed reports whether Close has completed, light removal included.
func (p *Plugin) Closed() bool {
	return p.closed
}

// Close unsubscribes from the host and removes the light.
// Close is idempotent. If the light cannot be removed the plugin stays
// unsubscribed but not closed, and a later Close retries the removal.
func (p *Plugin) Close() error {
	if p.closed {
		return nil
	}

	if p.cancelSelection != nil {
		p.cancelSelection()
		p.cancelSelection = nil
	}
	if p.cancelClose != nil {
		p.cancelClose()
		p.cancelClose = nil
	}
	if err := p.light.Dispose(); err != nil {
		return fmt.Errorf("sunshade: close: %w", err)
	}
	p.closed = true
	p.log.Info("plugin closed")
	return nil
}
