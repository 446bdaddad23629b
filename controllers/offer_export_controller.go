package controllers

import (
	"fmt"

	"github.com/Govind-619/ShopLink/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// ExportShopOffers downloads a shop's offer history as a spreadsheet
func ExportShopOffers(c *gin.Context) {
	shopName := c.GetString("shop_name")

	offers, err := utils.GetOffersByShop(shopName)
	if err != nil {
		utils.LogError("Failed to load offers for shop %s: %v", shopName, err)
		utils.InternalServerError(c, "Failed to load offers", err.Error())
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Offers")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	now := utils.Now()

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("SHOPLINK - Offer History")
	shopRow := sheet.AddRow()
	shopRow.AddCell().SetString("Shop: " + shopName)
	genRow := sheet.AddRow()
	genRow.AddCell().SetString("Generated: " + now.Format("2006-01-02 15:04"))
	sheet.AddRow() // spacing

	headers := []string{"ID", "Image", "Start", "End", "Created", "Status"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetString(h)
	}

	for _, offer := range offers {
		created := utils.OfferCreatedDate(offer)
		status := "pending"
		if utils.IsOfferActive(offer.StartTime, offer.EndTime, created, now) {
			status = "active"
		} else if utils.IsOfferExpired(offer.StartTime, offer.EndTime, created, now) {
			status = "expired"
		}

		row := sheet.AddRow()
		row.AddCell().SetInt(int(offer.ID))
		row.AddCell().SetString(offer.ImagePath)
		row.AddCell().SetString(offer.StartTime)
		row.AddCell().SetString(offer.EndTime)
		row.AddCell().SetString(offer.CreatedDate)
		row.AddCell().SetString(status)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_offers.xlsx", shopName))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
	}
}
