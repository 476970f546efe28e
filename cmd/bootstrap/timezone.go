package bootstrap

import (
	"time"

	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/localtime"

	"go.uber.org/fx"
)

var TimezoneModule = fx.Module("timezone",
	fx.Provide(
		NewBusinessLocation,
	),
)

// NewBusinessLocation loads the facility timezone once at startup so a
// misconfigured BOOKING_TIMEZONE fails the whole app instead of being
// silently replaced by UTC per request.
func NewBusinessLocation(cfg config.Config) (*time.Location, error) {
	return localtime.Load(cfg.Booking.TimeZone)
}
