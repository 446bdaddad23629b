package utils

import (
	"strings"
	"time"

	"github.com/Govind-619/ShopLink/config"
	"github.com/Govind-619/ShopLink/models"
)

// AddOffer inserts a new offer row stamped with today's date. Time
// strings are stored as received; a bad format surfaces at read time
// where the window evaluator fails safe instead of rejecting the upload.
func AddOffer(shopName, imagePath, startTime, endTime string) (*models.Offer, error) {
	offer := models.Offer{
		ShopName:    strings.ToLower(shopName),
		ImagePath:   imagePath,
		StartTime:   startTime,
		EndTime:     endTime,
		CreatedDate: Today(),
	}
	if err := config.DB.Create(&offer).Error; err != nil {
		return nil, err
	}
	LogInfo("Added offer %d for shop %s [%s - %s]", offer.ID, offer.ShopName, startTime, endTime)
	return &offer, nil
}

// GetAllOffers returns every offer row
func GetAllOffers() ([]models.Offer, error) {
	var offers []models.Offer
	if err := config.DB.Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// GetOffersByShop returns a shop's offers, newest first
func GetOffersByShop(shopName string) ([]models.Offer, error) {
	var offers []models.Offer
	err := config.DB.Where("shop_name = ?", strings.ToLower(shopName)).
		Order("id DESC").
		Find(&offers).Error
	if err != nil {
		return nil, err
	}
	return offers, nil
}

// DeleteOffer removes a single offer row. Image files live outside the
// store and are the sweeper's responsibility.
func DeleteOffer(id uint) error {
	return config.DB.Delete(&models.Offer{}, id).Error
}

// OfferCreatedDate parses an offer's created date, defaulting to today
// when the stored value is missing or unparseable.
func OfferCreatedDate(offer models.Offer) time.Time {
	now := Now()
	created, err := time.ParseInLocation("2006-01-02", offer.CreatedDate, now.Location())
	if err != nil {
		LogDebug("Offer %d has unusable created_date %q, assuming today", offer.ID, offer.CreatedDate)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
	return created
}
