package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MenuCategories is the closed set of categories a menu item can belong to.
var MenuCategories = []string{"burger", "liver", "sausage", "kofta", "drinks", "desserts", "lasagna"}

func ValidMenuCategory(category string) bool {
	for _, c := range MenuCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Customization struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type MenuItem struct {
	gorm.Model
	Name           string                             `json:"name"`
	Category       string                             `json:"category"`
	Description    string                             `json:"description"`
	BasePrice      float64                            `json:"basePrice"`
	Available      bool                               `json:"available"`
	Customizations datatypes.JSONSlice[Customization] `json:"customizations"`
	ImageKey       string                             `json:"-"`
	ImageURL       string                             `json:"imageUrl" gorm:"-"`
}
