package controllers

import (
	"github.com/Govind-619/ShopLink/utils"
	"github.com/gin-gonic/gin"
)

// UpdateLinksRequest carries a partial links update; only fields that
// are present in the body are applied.
type UpdateLinksRequest struct {
	Facebook    *string `json:"facebook"`
	Instagram   *string `json:"instagram"`
	Whatsapp    *string `json:"whatsapp"`
	DisplayName *string `json:"display_name"`
	HeaderText  *string `json:"header_text"`
	Address     *string `json:"address"`
	MapURL      *string `json:"map_url"`
}

// GetShopLinks returns the shop's links document for the admin form
func GetShopLinks(c *gin.Context) {
	shopName := c.GetString("shop_name")

	links, err := utils.LoadLinks(shopName)
	if err != nil {
		utils.LogError("Failed to load links for shop %s: %v", shopName, err)
		utils.InternalServerError(c, "Failed to load links", err.Error())
		return
	}
	utils.Success(c, "Links loaded successfully", links)
}

// UpdateShopLinks applies a partial update to the shop's links document
func UpdateShopLinks(c *gin.Context) {
	shopName := c.GetString("shop_name")

	var req UpdateLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	links, err := utils.LoadLinks(shopName)
	if err != nil {
		utils.LogError("Failed to load links for shop %s: %v", shopName, err)
		utils.InternalServerError(c, "Failed to load links", err.Error())
		return
	}

	if req.Facebook != nil {
		links.Facebook = *req.Facebook
	}
	if req.Instagram != nil {
		links.Instagram = *req.Instagram
	}
	if req.Whatsapp != nil {
		links.Whatsapp = *req.Whatsapp
	}
	if req.DisplayName != nil {
		links.DisplayName = *req.DisplayName
	}
	if req.HeaderText != nil {
		links.HeaderText = *req.HeaderText
	}
	if req.Address != nil {
		links.Address = *req.Address
	}
	if req.MapURL != nil {
		links.MapURL = *req.MapURL
	}

	if err := utils.SaveLinks(shopName, links); err != nil {
		utils.LogError("Failed to save links for shop %s: %v", shopName, err)
		utils.InternalServerError(c, "Failed to save links", err.Error())
		return
	}

	utils.LogInfo("Updated links for shop %s", shopName)
	utils.Success(c, "Links updated successfully", links)
}
