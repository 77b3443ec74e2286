package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Hameed Restaurant API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account

MENU
- GET "/menu" - Get available menu items
- POST "/menu/seed" - Seed the starter catalog (no-op if already seeded)
- GET "/admin/menu" - Get all menu items (admin)
- POST "/admin/menu" - Create menu item (admin)
- PATCH "/admin/menu/{id}" - Update menu item (admin)
- DELETE "/admin/menu/{id}" - Delete menu item (admin)
- POST "/admin/menu/upload-url" - Request an image upload slot (admin)

ORDER
- POST "/orders" - Create a delivery or catering order
- GET "/orders" - Get your own orders
- GET "/admin/orders" - Get all orders (admin)
- GET "/admin/orders/open-count" - Count open orders (admin)
- PATCH "/admin/orders/{id}/status" - Update order status (admin)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
