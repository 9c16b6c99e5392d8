package lead

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/ai-rd1/website/internal/config"
)

var Module = fx.Module("lead",
	fx.Provide(
		NewClientFromConfig,
		NewNotifier,
		NewRateLimiterFromConfig,
		newController,
	),
	fx.Invoke(registerLifecycle),
)

// NewClientFromConfig creates the call service client from LEAD_API_* settings.
func NewClientFromConfig(cfg *config.Config, log *slog.Logger) *Client {
	return NewClient(cfg.LeadAPI.BaseURL, cfg.LeadAPI.Timeout, log)
}

// NewRateLimiterFromConfig creates the per-IP limiter from LEAD_RATE_* settings.
func NewRateLimiterFromConfig(cfg *config.Config) *RateLimiter {
	return NewRateLimiter(cfg.LeadAPI.RatePerMinute, cfg.LeadAPI.RateBurst)
}

func newController(client *Client, notifier Notifier, limiter *RateLimiter, log *slog.Logger) *Controller {
	return NewController(client, notifier, limiter, log)
}

func registerLifecycle(lc fx.Lifecycle, c *Controller) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			done := make(chan struct{})
			go func() {
				c.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
