package controllers

import (
	"fmt"
	"strings"

	"github.com/Govind-619/ShopLink/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Credentials is the shop credential store, wired up in main
var Credentials *utils.CredentialStore

// LoginRequest represents the login request body
type LoginRequest struct {
	ShopName string `json:"shop_name" binding:"required"`
	Password string `json:"password"`
}

// LoginShop authenticates a shop and marks it logged in on the session.
// A shop name that has never been seen before is auto-registered with
// the default password and admitted straight away.
func LoginShop(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Login attempt failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid login request", err.Error())
		return
	}

	shopName := strings.ToLower(strings.TrimSpace(req.ShopName))
	if valid, msg := utils.ValidateShopName(shopName); !valid {
		utils.LogError("Login attempt failed - Invalid shop name: %s", req.ShopName)
		utils.BadRequest(c, "Invalid shop name", msg)
		return
	}

	ok, registered, err := Credentials.Authenticate(shopName, req.Password)
	if err != nil {
		utils.LogError("Credential store failure for shop %s: %v", shopName, err)
		utils.InternalServerError(c, "Login failed", err.Error())
		return
	}
	if !ok {
		utils.LogError("Login attempt failed - Wrong password for shop: %s", shopName)
		utils.Unauthorized(c, "Incorrect shop name or password")
		return
	}

	session := sessions.Default(c)
	session.Set(utils.ShopSessionKey(shopName), true)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save session for shop %s: %v", shopName, err)
		utils.InternalServerError(c, "Login failed", err.Error())
		return
	}

	if registered {
		utils.Success(c,
			fmt.Sprintf("Shop '%s' auto-registered. Default password: %s", shopName, Credentials.DefaultPassword()),
			gin.H{"shop_name": shopName, "registered": true})
		return
	}
	utils.Success(c, "Login successful", gin.H{"shop_name": shopName})
}

// LogoutShop clears a shop's login flag from the session
func LogoutShop(c *gin.Context) {
	shopName := strings.ToLower(c.Param("shop_name"))
	session := sessions.Default(c)
	session.Delete(utils.ShopSessionKey(shopName))
	if err := session.Save(); err != nil {
		utils.LogError("Failed to clear session for shop %s: %v", shopName, err)
	}
	utils.Success(c, "Logged out", gin.H{"shop_name": shopName})
}
