package routes

import (
	"github.com/Govind-619/ShopLink/controllers"
	"github.com/gin-gonic/gin"
)

// initPublicRoutes registers the routes that need no login
func initPublicRoutes(router *gin.Engine) {
	router.POST("/login", controllers.LoginShop)
	router.GET("/current_banner", controllers.CurrentBanner)

	router.GET("/:shop_name", controllers.ShopHome)
	router.GET("/:shop_name/qr", controllers.ShopQRCode)
	router.GET("/:shop_name/qr/poster", controllers.ShopQRPoster)
	router.GET("/:shop_name/logout", controllers.LogoutShop)
}
