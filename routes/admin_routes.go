package routes

import (
	"github.com/Govind-619/ShopLink/controllers"
	"github.com/Govind-619/ShopLink/middleware"
	"github.com/gin-gonic/gin"
)

// initShopAdminRoutes registers the session-guarded shop admin routes
// and the maintenance endpoints
func initShopAdminRoutes(router *gin.Engine) {
	shop := router.Group("/:shop_name")
	shop.Use(middleware.ShopAuthMiddleware())
	{
		shop.GET("/dashboard", controllers.ShopDashboard)

		admin := shop.Group("/admin")
		{
			admin.GET("/links", controllers.GetShopLinks)
			admin.PUT("/links", controllers.UpdateShopLinks)
			admin.GET("/offers", controllers.ListShopOffers)
			admin.POST("/offers", controllers.UploadOffer)
			admin.GET("/offers/export", controllers.ExportShopOffers)
		}
	}

	router.POST("/admin/maintenance/sweep", controllers.SweepOffers)
}
