package controllers

import (
	"github.com/Govind-619/ShopLink/config"
	"github.com/Govind-619/ShopLink/models"
	"github.com/Govind-619/ShopLink/utils"
	"github.com/gin-gonic/gin"
)

// OfferView is an offer row annotated with its current activity state
type OfferView struct {
	models.Offer
	Active bool `json:"active"`
}

// UploadOffer accepts a banner image with a start/end time range and
// records it as a new offer for the shop. Time strings are stored as
// received; the window evaluator treats malformed values as never
// expired rather than rejecting the row here.
func UploadOffer(c *gin.Context) {
	shopName := c.GetString("shop_name")

	startTime := c.PostForm("start_time")
	endTime := c.PostForm("end_time")
	if startTime == "" || endTime == "" {
		utils.BadRequest(c, "Missing time range", "start_time and end_time are required")
		return
	}

	file, err := c.FormFile("offer_image")
	if err != nil {
		utils.BadRequest(c, "No file uploaded", "Please select an image file to upload")
		return
	}

	imagePath, err := utils.SaveOfferImage(file, config.AppConfig.UploadDir)
	if err != nil {
		utils.LogError("Failed to save offer image for shop %s: %v", shopName, err)
		utils.BadRequest(c, "Invalid image", err.Error())
		return
	}

	offer, err := utils.AddOffer(shopName, imagePath, startTime, endTime)
	if err != nil {
		utils.LogError("Failed to insert offer for shop %s: %v", shopName, err)
		utils.InternalServerError(c, "Failed to save offer", err.Error())
		return
	}

	utils.Created(c, "Offer updated successfully!", offer)
}

// ListShopOffers returns the shop's offers, newest first, each flagged
// with whether its window currently contains now.
func ListShopOffers(c *gin.Context) {
	shopName := c.GetString("shop_name")

	offers, err := utils.GetOffersByShop(shopName)
	if err != nil {
		utils.LogError("Failed to load offers for shop %s: %v", shopName, err)
		utils.InternalServerError(c, "Failed to load offers", err.Error())
		return
	}

	now := utils.Now()
	views := make([]OfferView, 0, len(offers))
	for _, offer := range offers {
		views = append(views, OfferView{
			Offer:  offer,
			Active: utils.IsOfferActive(offer.StartTime, offer.EndTime, utils.OfferCreatedDate(offer), now),
		})
	}

	utils.Success(c, "Offers loaded successfully", gin.H{"offers": views})
}

// SweepOffers runs an on-demand expiry sweep and reports how many
// offers were removed
func SweepOffers(c *gin.Context) {
	deleted, err := utils.SweepExpiredOffers()
	if err != nil {
		utils.LogError("On-demand sweep failed: %v", err)
		utils.InternalServerError(c, "Sweep failed", err.Error())
		return
	}
	utils.Success(c, "Sweep completed", gin.H{"deleted": deleted})
}
