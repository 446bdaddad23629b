package controllers

import (
	"strings"

	"github.com/Govind-619/ShopLink/config"
	"github.com/Govind-619/ShopLink/models"
	"github.com/Govind-619/ShopLink/utils"
	"github.com/gin-gonic/gin"
)

// ShopHome serves a shop's public landing payload: its links document
// and the banner image currently in effect.
func ShopHome(c *gin.Context) {
	shopName := strings.ToLower(c.Param("shop_name"))
	if valid, msg := utils.ValidateShopName(shopName); !valid {
		utils.BadRequest(c, "Invalid shop name", msg)
		return
	}

	links, err := utils.LoadLinks(shopName)
	if err != nil {
		// Degrade to the defaults LoadLinks already returned
		utils.LogError("Failed to load links for shop %s: %v", shopName, err)
	}
	banner := utils.ResolveBanner(shopName)

	utils.Success(c, "Shop page loaded successfully", gin.H{
		"shop":         shopName,
		"links":        links,
		"banner_image": banner,
	})
}

// ShopDashboard serves the logged-in overview for a shop
func ShopDashboard(c *gin.Context) {
	shopName := c.GetString("shop_name")

	links, err := utils.LoadLinks(shopName)
	if err != nil {
		utils.LogError("Failed to load links for shop %s: %v", shopName, err)
	}
	offers, err := utils.GetOffersByShop(shopName)
	if err != nil {
		utils.LogError("Failed to load offers for shop %s: %v", shopName, err)
		utils.InternalServerError(c, "Failed to load dashboard", err.Error())
		return
	}

	utils.Success(c, "Dashboard loaded successfully", gin.H{
		"shop":   shopName,
		"links":  links,
		"offers": offers,
	})
}

// CurrentBanner returns the most recently uploaded banner image across
// all shops, or an empty reference when nothing has been uploaded yet.
func CurrentBanner(c *gin.Context) {
	var offer models.Offer
	if err := config.DB.Order("id DESC").First(&offer).Error; err != nil {
		utils.Success(c, "No banner uploaded yet", gin.H{"banner_image": ""})
		return
	}
	utils.Success(c, "Current banner", gin.H{"banner_image": offer.ImagePath})
}
