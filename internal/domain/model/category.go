package model

import "time"

type Category struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"category_id"`
	CategoryName string `gorm:"type:varchar(100);uniqueIndex;not null" json:"category_name"`
	Description  string `gorm:"type:text" json:"description"`
	ImageURL     string `gorm:"type:varchar(500)" json:"image_url"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
