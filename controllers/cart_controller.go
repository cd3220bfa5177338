package controllers

import (
	"errors"

	"little-lemon/models"
	"little-lemon/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartSvc *services.CartService
}

func NewCartController(cartSvc *services.CartService) *CartController {
	return &CartController{cartSvc: cartSvc}
}

// GetCart godoc
// @Summary Get cart
// @Description List the caller's cart lines with line totals
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/menu-items [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	items, err := ctrl.cartSvc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": items})
}

// AddToCart godoc
// @Summary Add to cart
// @Description Add a menu item to the caller's cart; repeat adds accumulate quantity
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CartAddRequest true "Item and quantity"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/menu-items [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "menuitem_id is required"})
		return
	}

	err := ctrl.cartSvc.Add(c.Request.Context(), userID, req.MenuItemID, req.Quantity)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to add item to cart"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Item added to cart"})
}

// ClearCart godoc
// @Summary Clear cart
// @Description Remove every line from the caller's cart
// @Tags Cart
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /cart/menu-items [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	if err := ctrl.cartSvc.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to clear cart"})
		return
	}

	c.Status(204)
}
