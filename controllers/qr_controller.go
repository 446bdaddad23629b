package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/Govind-619/ShopLink/config"
	"github.com/Govind-619/ShopLink/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

func shopPageURL(shopName string) string {
	return fmt.Sprintf("%s/%s", config.AppConfig.BaseURL, shopName)
}

// ShopQRCode returns a PNG QR code pointing at the shop's public page
func ShopQRCode(c *gin.Context) {
	shopName := strings.ToLower(c.Param("shop_name"))
	if valid, msg := utils.ValidateShopName(shopName); !valid {
		utils.BadRequest(c, "Invalid shop name", msg)
		return
	}

	png, err := qrcode.Encode(shopPageURL(shopName), qrcode.Medium, 256)
	if err != nil {
		utils.LogError("Failed to generate QR code for shop %s: %v", shopName, err)
		utils.InternalServerError(c, "Failed to generate QR code", err.Error())
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// ShopQRPoster generates a printable A4 poster with the shop's display
// name and a QR code linking to its public page
func ShopQRPoster(c *gin.Context) {
	shopName := strings.ToLower(c.Param("shop_name"))
	if valid, msg := utils.ValidateShopName(shopName); !valid {
		utils.BadRequest(c, "Invalid shop name", msg)
		return
	}

	links, err := utils.LoadLinks(shopName)
	if err != nil {
		utils.LogError("Failed to load links for shop %s: %v", shopName, err)
		links = utils.DefaultLinks(shopName)
	}

	pageURL := shopPageURL(shopName)
	png, err := qrcode.Encode(pageURL, qrcode.Medium, 512)
	if err != nil {
		utils.LogError("Failed to generate QR code for shop %s: %v", shopName, err)
		utils.InternalServerError(c, "Failed to generate QR code", err.Error())
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 26)
	pdf.CellFormat(0, 16, links.DisplayName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 13)
	pdf.CellFormat(0, 8, links.HeaderText, "", 1, "C", false, 0, "")

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("shop_qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("shop_qr", 55, 60, 100, 100, false, opts, 0, "")

	pdf.SetY(170)
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, "Scan to visit "+pageURL, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to render poster for shop %s: %v", shopName, err)
		utils.InternalServerError(c, "Failed to generate poster", err.Error())
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_qr_poster.pdf", shopName))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
