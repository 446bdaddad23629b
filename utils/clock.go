package utils

import (
	"time"

	"github.com/Govind-619/ShopLink/config"
)

// Now returns the current instant in the configured timezone. All
// offer window comparisons go through here so the service clock can be
// pinned with the TIMEZONE setting instead of the OS default.
func Now() time.Time {
	if config.Location != nil {
		return time.Now().In(config.Location)
	}
	return time.Now()
}

// Today returns the current calendar date as YYYY-MM-DD
func Today() string {
	return Now().Format("2006-01-02")
}
