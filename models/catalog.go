package models

import (
	"time"
)

// MainCategory is the top level of the three-level menu tree
type MainCategory struct {
	ID          uint       `gorm:"primaryKey" json:"main_category_id"`
	Name        string     `gorm:"column:main_category_name" json:"main_category_name"`
	Description string     `json:"description,omitempty"`
	Image       string     `json:"image,omitempty"`
	Categories  []Category `gorm:"foreignKey:MainCategoryID" json:"categories,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Category struct {
	ID             uint          `gorm:"primaryKey" json:"category_id"`
	MainCategoryID *uint         `json:"main_category_id,omitempty"`
	Name           string        `gorm:"column:category_name" json:"category_name"`
	Description    string        `json:"description,omitempty"`
	Image          string        `json:"image,omitempty"`
	SubCategories  []SubCategory `gorm:"foreignKey:CategoryID" json:"sub_categories,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type SubCategory struct {
	ID          uint      `gorm:"primaryKey" json:"sub_category_id"`
	CategoryID  uint      `json:"category_id"`
	Name        string    `gorm:"column:sub_category_name" json:"sub_category_name"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Item represents a sellable product.
//
// The legacy store encoded is_new/is_trending/best_sale as inverted integer
// flags (0 meaning true). These are normalized to real booleans here; legacy
// databases need a one-off migration before this schema can be pointed at them.
type Item struct {
	ID                 uint         `gorm:"primaryKey" json:"item_id"`
	CategoryID         uint         `json:"category_id"`
	Category           Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubCategoryID      *uint        `json:"sub_category_id,omitempty"`
	SubCategory        *SubCategory `gorm:"foreignKey:SubCategoryID" json:"sub_category,omitempty"`
	Name               string       `gorm:"column:item_name" json:"item_name"`
	Description        string       `json:"description,omitempty"`
	ActualPrice        float64      `json:"actual_price"`
	SellingPrice       float64      `json:"selling_price"`
	StockQuantity      int          `gorm:"default:0" json:"stock_quantity"`
	Image              string       `json:"image,omitempty"`
	IsNew              bool         `gorm:"column:is_new;default:false" json:"is_new"`
	IsTrending         bool         `gorm:"column:is_trending;default:false" json:"is_trending"`
	BestSale           bool         `gorm:"column:best_sale;default:false" json:"best_sale"`
	DiscountPercentage float64      `gorm:"default:0" json:"discount_percentage"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}
