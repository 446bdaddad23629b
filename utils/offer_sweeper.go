package utils

import (
	"os"
)

// SweepExpiredOffers deletes every offer whose window has lapsed along
// with its banner image, and returns the number of rows removed. One
// bad offer never aborts the sweep, and a failed file deletion does not
// block the row deletion for that offer.
func SweepExpiredOffers() (int, error) {
	offers, err := GetAllOffers()
	if err != nil {
		return 0, err
	}

	now := Now()
	deleted := 0
	for _, offer := range offers {
		if !IsOfferExpired(offer.StartTime, offer.EndTime, OfferCreatedDate(offer), now) {
			continue
		}

		RemoveOfferImage(offer.ImagePath)

		if err := DeleteOffer(offer.ID); err != nil {
			LogError("Failed to delete offer %d: %v", offer.ID, err)
			continue
		}
		LogInfo("Deleted expired offer %d for shop %s", offer.ID, offer.ShopName)
		deleted++
	}
	return deleted, nil
}

// RemoveOfferImage best-effort deletes a banner image file. A missing
// file is normal when a request was mid-read during an earlier sweep
// and is not treated as an error.
func RemoveOfferImage(imagePath string) {
	if imagePath == "" {
		return
	}
	if _, err := os.Stat(imagePath); os.IsNotExist(err) {
		LogInfo("Offer image already gone: %s", imagePath)
		return
	}
	if err := os.Remove(imagePath); err != nil {
		LogError("Failed to delete offer image %s: %v", imagePath, err)
	}
}
