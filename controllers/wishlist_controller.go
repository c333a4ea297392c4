package controllers

import (
	"net/http"
	"strconv"

	"github.com/ecomall/ecomall-backend/config"
	"github.com/ecomall/ecomall-backend/models"
	"github.com/ecomall/ecomall-backend/utils"
	"github.com/gin-gonic/gin"
)

func wishlistLine(w models.Wishlist) gin.H {
	return gin.H{
		"wishlist_id":   w.ID,
		"user_id":       w.UserID,
		"item_id":       w.ItemID,
		"added_at":      w.AddedAt,
		"item_name":     w.Item.Name,
		"image":         w.Item.Image,
		"selling_price": w.Item.SellingPrice,
	}
}

// GetWishlist lists the wishlist rows for a user, joined with item details
func GetWishlist(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		utils.BadRequest(c, "user_id is required", nil)
		return
	}

	var items []models.Wishlist
	if err := config.DB.Preload("Item").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		utils.LogError("Failed to fetch wishlist for user %s: %v", userID, err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}

	result := make([]gin.H, 0, len(items))
	for _, item := range items {
		result = append(result, wishlistLine(item))
	}
	utils.Success(c, "Wishlist retrieved successfully", gin.H{"wishlist": result})
}

// AddToWishlist creates a wishlist row for (user, item); an existing pair is
// returned unchanged
func AddToWishlist(c *gin.Context) {
	var req struct {
		UserID uint `json:"user_id" binding:"required"`
		ItemID uint `json:"item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid add-to-wishlist request: %v", err)
		utils.BadRequest(c, "user_id and item_id are required", err.Error())
		return
	}

	var wish models.Wishlist
	err := config.DB.Where("user_id = ? AND item_id = ?", req.UserID, req.ItemID).First(&wish).Error
	if err == nil {
		config.DB.Preload("Item").First(&wish, wish.ID)
		utils.Success(c, "Item already in wishlist", wishlistLine(wish))
		return
	}

	wish = models.Wishlist{UserID: req.UserID, ItemID: req.ItemID}
	if err := config.DB.Create(&wish).Error; err != nil {
		utils.LogError("Failed to add to wishlist: %v", err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}
	config.DB.Preload("Item").First(&wish, wish.ID)
	utils.Created(c, "Item added to wishlist successfully", wishlistLine(wish))
}

// RemoveWishlistItem deletes a wishlist row
func RemoveWishlistItem(c *gin.Context) {
	wishlistID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid wishlist ID", nil)
		return
	}

	var wish models.Wishlist
	if err := config.DB.First(&wish, wishlistID).Error; err != nil {
		utils.NotFound(c, "Wishlist item not found")
		return
	}

	if err := config.DB.Delete(&wish).Error; err != nil {
		utils.LogError("Failed to delete wishlist item %d: %v", wishlistID, err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
