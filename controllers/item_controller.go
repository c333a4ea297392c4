package controllers

import (
	"strconv"

	"github.com/ecomall/ecomall-backend/config"
	"github.com/ecomall/ecomall-backend/models"
	"github.com/ecomall/ecomall-backend/utils"
	"github.com/gin-gonic/gin"
)

func itemMinimal(item models.Item) gin.H {
	return gin.H{
		"item_id":         item.ID,
		"item_name":       item.Name,
		"selling_price":   item.SellingPrice,
		"category_id":     item.CategoryID,
		"sub_category_id": item.SubCategoryID,
		"image":           item.Image,
	}
}

func listItemsByFlag(c *gin.Context, column, message string) {
	var items []models.Item
	if err := config.DB.Where(column+" = ?", true).Order("item_name").Find(&items).Error; err != nil {
		utils.LogError("Failed to fetch items by %s: %v", column, err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}

	result := make([]gin.H, 0, len(items))
	for _, item := range items {
		result = append(result, itemMinimal(item))
	}
	utils.Success(c, message, gin.H{"items": result})
}

// GetBestSaleItems lists items flagged as best sellers
func GetBestSaleItems(c *gin.Context) {
	listItemsByFlag(c, "best_sale", "Best sale items retrieved successfully")
}

// GetNewArrivalItems lists items flagged as new arrivals
func GetNewArrivalItems(c *gin.Context) {
	listItemsByFlag(c, "is_new", "New arrivals retrieved successfully")
}

// GetTrendingItems lists items flagged as trending
func GetTrendingItems(c *gin.Context) {
	listItemsByFlag(c, "is_trending", "Trending items retrieved successfully")
}

// GetItemDetails returns the full detail of a single item
func GetItemDetails(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid item ID", nil)
		return
	}

	var item models.Item
	if err := config.DB.Preload("Category").Preload("SubCategory").First(&item, itemID).Error; err != nil {
		utils.LogError("Item not found: %d", itemID)
		utils.NotFound(c, "Item not found")
		return
	}

	utils.Success(c, "Item retrieved successfully", gin.H{"item": item})
}
