package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/atom/internal/application/port"
	"github.com/bnema/atom/internal/infrastructure/config"
	"github.com/bnema/atom/internal/infrastructure/pagehost/chromium"
	"github.com/bnema/atom/internal/infrastructure/pagehost/headless"
	"github.com/bnema/atom/internal/logging"
)

// NewPageHost builds the page view factory named by page_host.kind.
func NewPageHost(ctx context.Context, cfg config.PageHostConfig) (port.PageViewFactory, error) {
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	log := logging.FromContext(ctx)

	switch cfg.Kind {
	case config.PageHostChromium:
		log.Info().Bool("headless", cfg.Headless).Msg("starting chromium page host")
		host, err := chromium.New(ctx, chromium.Options{
			Headless:  cfg.Headless,
			Timeout:   timeout,
			UserAgent: cfg.UserAgent,
		})
		if err != nil {
			return nil, fmt.Errorf("start chromium page host: %w", err)
		}
		return host, nil
	case config.PageHostHeadless, "":
		log.Info().Msg("starting headless page host")
		return headless.New(headless.Options{
			UserAgent: cfg.UserAgent,
			Timeout:   timeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown page host %q", cfg.Kind)
	}
}
