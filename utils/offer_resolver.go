package utils

import (
	"github.com/Govind-619/ShopLink/config"
)

// ResolveBanner returns the image reference of the shop's newest active
// offer. Midnight-spanning windows resolve with the same wrap rules the
// sweeper uses, so an offer is never simultaneously shown and eligible
// for deletion. Any lookup failure degrades to the default banner.
func ResolveBanner(shopName string) string {
	offers, err := GetOffersByShop(shopName)
	if err != nil {
		LogError("Failed to load offers for shop %s: %v", shopName, err)
		return config.AppConfig.DefaultBanner
	}

	now := Now()
	for _, offer := range offers {
		if IsOfferActive(offer.StartTime, offer.EndTime, OfferCreatedDate(offer), now) {
			return offer.ImagePath
		}
	}
	return config.AppConfig.DefaultBanner
}
