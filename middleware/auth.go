package middleware

import (
	"strings"

	"github.com/Govind-619/ShopLink/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// ShopAuthMiddleware guards a shop's dashboard and admin routes. The
// login flag is read from the session under the shop's own key, so the
// middleware also pins the lowercased shop name into the context for
// the handlers behind it.
func ShopAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		shopName := strings.ToLower(c.Param("shop_name"))

		session := sessions.Default(c)
		loggedIn, _ := session.Get(utils.ShopSessionKey(shopName)).(bool)
		if !loggedIn {
			utils.LogError("Unauthenticated admin access attempt for shop %s", shopName)
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		c.Set("shop_name", shopName)
		c.Next()
	}
}
