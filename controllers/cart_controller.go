package controllers

import (
	"net/http"
	"strconv"

	"github.com/ecomall/ecomall-backend/config"
	"github.com/ecomall/ecomall-backend/models"
	"github.com/ecomall/ecomall-backend/utils"
	"github.com/gin-gonic/gin"
)

func cartLine(cart models.Cart) gin.H {
	return gin.H{
		"cart_id":       cart.ID,
		"user_id":       cart.UserID,
		"item_id":       cart.ItemID,
		"quantity":      cart.Quantity,
		"added_at":      cart.AddedAt,
		"item_name":     cart.Item.Name,
		"image":         cart.Item.Image,
		"selling_price": cart.Item.SellingPrice,
	}
}

// GetCart lists the cart rows for a user, joined with item details
func GetCart(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		utils.BadRequest(c, "user_id is required", nil)
		return
	}

	var items []models.Cart
	if err := config.DB.Preload("Item").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		utils.LogError("Failed to fetch cart for user %s: %v", userID, err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}

	result := make([]gin.H, 0, len(items))
	for _, item := range items {
		result = append(result, cartLine(item))
	}
	utils.Success(c, "Cart retrieved successfully", gin.H{"cart": result})
}

// AddToCart creates a cart row for (user, item) or increments the existing
// quantity by the requested amount
func AddToCart(c *gin.Context) {
	var req struct {
		UserID   uint `json:"user_id" binding:"required"`
		ItemID   uint `json:"item_id" binding:"required"`
		Quantity int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid add-to-cart request: %v", err)
		utils.BadRequest(c, "user_id and item_id are required", err.Error())
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}
	utils.LogInfo("Adding item %d (qty %d) to cart for user %d", req.ItemID, req.Quantity, req.UserID)

	var cart models.Cart
	err := config.DB.Where("user_id = ? AND item_id = ?", req.UserID, req.ItemID).First(&cart).Error
	if err == nil {
		cart.Quantity += req.Quantity
		if err := config.DB.Save(&cart).Error; err != nil {
			utils.LogError("Failed to update cart quantity: %v", err)
			utils.ServiceUnavailable(c, "Database unavailable", err.Error())
			return
		}
		config.DB.Preload("Item").First(&cart, cart.ID)
		utils.Success(c, "Cart item quantity updated", cartLine(cart))
		return
	}

	cart = models.Cart{
		UserID:   req.UserID,
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	}
	if err := config.DB.Create(&cart).Error; err != nil {
		utils.LogError("Failed to add to cart: %v", err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}
	config.DB.Preload("Item").First(&cart, cart.ID)
	utils.Created(c, "Item added to cart successfully", cartLine(cart))
}

// UpdateCartItem sets the quantity of an existing cart row
func UpdateCartItem(c *gin.Context) {
	cartID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid cart ID", nil)
		return
	}

	var cart models.Cart
	if err := config.DB.First(&cart, cartID).Error; err != nil {
		utils.NotFound(c, "Cart item not found")
		return
	}

	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		utils.BadRequest(c, "quantity is required", nil)
		return
	}
	if *req.Quantity < 1 {
		utils.BadRequest(c, "quantity must be a positive integer", nil)
		return
	}

	cart.Quantity = *req.Quantity
	if err := config.DB.Save(&cart).Error; err != nil {
		utils.LogError("Failed to update cart item %d: %v", cartID, err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}

	config.DB.Preload("Item").First(&cart, cart.ID)
	utils.Success(c, "Cart item updated", cartLine(cart))
}

// RemoveCartItem deletes a cart row
func RemoveCartItem(c *gin.Context) {
	cartID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid cart ID", nil)
		return
	}

	var cart models.Cart
	if err := config.DB.First(&cart, cartID).Error; err != nil {
		utils.NotFound(c, "Cart item not found")
		return
	}

	if err := config.DB.Delete(&cart).Error; err != nil {
		utils.LogError("Failed to delete cart item %d: %v", cartID, err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
