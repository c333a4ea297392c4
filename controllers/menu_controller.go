package controllers

import (
	"strconv"

	"github.com/ecomall/ecomall-backend/config"
	"github.com/ecomall/ecomall-backend/models"
	"github.com/ecomall/ecomall-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetMenuTree returns all main categories with nested categories and
// subcategories, ordered by name at every level
func GetMenuTree(c *gin.Context) {
	var mains []models.MainCategory
	err := config.DB.
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("category_name") }).
		Preload("Categories.SubCategories", func(db *gorm.DB) *gorm.DB { return db.Order("sub_category_name") }).
		Order("main_category_name").
		Find(&mains).Error
	if err != nil {
		utils.LogError("Failed to fetch menu tree: %v", err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}

	tree := make([]gin.H, 0, len(mains))
	for _, main := range mains {
		categories := make([]gin.H, 0, len(main.Categories))
		for _, cat := range main.Categories {
			subs := make([]gin.H, 0, len(cat.SubCategories))
			for _, sub := range cat.SubCategories {
				subs = append(subs, gin.H{
					"sub_category_id":   sub.ID,
					"sub_category_name": sub.Name,
				})
			}
			categories = append(categories, gin.H{
				"category_id":    cat.ID,
				"category_name":  cat.Name,
				"sub_categories": subs,
			})
		}
		tree = append(tree, gin.H{
			"main_category_id":   main.ID,
			"main_category_name": main.Name,
			"categories":         categories,
		})
	}

	utils.Success(c, "Menu tree retrieved successfully", gin.H{"menu": tree})
}

// GetItemsBySubCategory lists all items under a subcategory
func GetItemsBySubCategory(c *gin.Context) {
	subCategoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid subcategory ID", nil)
		return
	}

	var items []models.Item
	if err := config.DB.Where("sub_category_id = ?", subCategoryID).Order("item_name").Find(&items).Error; err != nil {
		utils.LogError("Failed to fetch items for subcategory %d: %v", subCategoryID, err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}

	result := make([]gin.H, 0, len(items))
	for _, item := range items {
		result = append(result, gin.H{
			"item_id":       item.ID,
			"item_name":     item.Name,
			"selling_price": item.SellingPrice,
			"image":         item.Image,
		})
	}
	utils.Success(c, "Items retrieved successfully", gin.H{"items": result})
}
