package utils

import (
	"regexp"
)

// Shop names become URL segments and filenames under the shop data
// directory, so the character set is kept strict.
var shopNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,39}$`)

// ValidateShopName checks that a lowercased shop name is usable as a
// URL segment and data filename
func ValidateShopName(shopName string) (bool, string) {
	if shopName == "" {
		return false, "Shop name is required"
	}
	if !shopNameRegex.MatchString(shopName) {
		return false, "Shop name may only contain lowercase letters, digits, hyphens and underscores (max 40 characters)"
	}
	return true, ""
}
