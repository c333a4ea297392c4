package models

import (
	"time"
)

// Cart holds one (user, item) line; quantity is always >= 1
type Cart struct {
	ID       uint      `gorm:"primaryKey" json:"cart_id"`
	UserID   uint      `gorm:"uniqueIndex:idx_cart_user_item" json:"user_id"`
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	ItemID   uint      `gorm:"uniqueIndex:idx_cart_user_item" json:"item_id"`
	Item     Item      `gorm:"foreignKey:ItemID" json:"-"`
	Quantity int       `gorm:"default:1" json:"quantity"`
	AddedAt  time.Time `gorm:"autoCreateTime" json:"added_at"`
}

// Wishlist holds one (user, item) bookmark; duplicates are ignored on create
type Wishlist struct {
	ID      uint      `gorm:"primaryKey" json:"wishlist_id"`
	UserID  uint      `gorm:"uniqueIndex:idx_wishlist_user_item" json:"user_id"`
	User    User      `gorm:"foreignKey:UserID" json:"-"`
	ItemID  uint      `gorm:"uniqueIndex:idx_wishlist_user_item" json:"item_id"`
	Item    Item      `gorm:"foreignKey:ItemID" json:"-"`
	AddedAt time.Time `gorm:"autoCreateTime" json:"added_at"`
}
