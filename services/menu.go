package services

import (
	"errors"

	"github.com/mazin-goub/Hameed/models"
	"github.com/mazin-goub/Hameed/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

type CreateMenuItemInput struct {
	Name           string                 `json:"name"`
	Category       string                 `json:"category"`
	Description    string                 `json:"description"`
	BasePrice      float64                `json:"basePrice"`
	Customizations []models.Customization `json:"customizations"`
	ImageKey       string                 `json:"imageKey"`
}

type UpdateMenuItemInput struct {
	Name           *string                 `json:"name"`
	Category       *string                 `json:"category"`
	Description    *string                 `json:"description"`
	BasePrice      *float64                `json:"basePrice"`
	Available      *bool                   `json:"available"`
	Customizations *[]models.Customization `json:"customizations"`
	ImageKey       *string                 `json:"imageKey"`
}

// ListAvailable returns the customer-facing catalog: available items only,
// with resolved image URLs.
func (s *MenuService) ListAvailable() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.DB.Where("available = ?", true).Find(&items).Error; err != nil {
		return nil, err
	}
	resolveImageURLs(items)
	return items, nil
}

// ListAll returns every item regardless of availability, newest first.
func (s *MenuService) ListAll(actor models.Actor) ([]models.MenuItem, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	var items []models.MenuItem
	if err := s.DB.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	resolveImageURLs(items)
	return items, nil
}

func (s *MenuService) Create(actor models.Actor, input CreateMenuItemInput) (uint, error) {
	if !actor.IsAdmin() {
		return 0, ErrForbidden
	}
	if input.Name == "" || input.Description == "" {
		return 0, ErrValidation
	}
	if !models.ValidMenuCategory(input.Category) {
		return 0, ErrValidation
	}
	if input.BasePrice <= 0 {
		return 0, ErrValidation
	}

	item := models.MenuItem{
		Name:           input.Name,
		Category:       input.Category,
		Description:    input.Description,
		BasePrice:      input.BasePrice,
		Available:      true,
		Customizations: datatypes.NewJSONSlice(input.Customizations),
		ImageKey:       input.ImageKey,
	}
	if err := s.DB.Create(&item).Error; err != nil {
		return 0, err
	}
	return item.ID, nil
}

// Update applies a partial patch: fields absent from the input are left
// unchanged.
func (s *MenuService) Update(actor models.Actor, id uint, input UpdateMenuItemInput) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	var item models.MenuItem
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	fields := map[string]any{}
	if input.Name != nil {
		if *input.Name == "" {
			return ErrValidation
		}
		fields["name"] = *input.Name
	}
	if input.Category != nil {
		if !models.ValidMenuCategory(*input.Category) {
			return ErrValidation
		}
		fields["category"] = *input.Category
	}
	if input.Description != nil {
		if *input.Description == "" {
			return ErrValidation
		}
		fields["description"] = *input.Description
	}
	if input.BasePrice != nil {
		if *input.BasePrice <= 0 {
			return ErrValidation
		}
		fields["base_price"] = *input.BasePrice
	}
	if input.Available != nil {
		fields["available"] = *input.Available
	}
	if input.Customizations != nil {
		fields["customizations"] = datatypes.NewJSONSlice(*input.Customizations)
	}
	if input.ImageKey != nil {
		fields["image_key"] = *input.ImageKey
	}
	if len(fields) == 0 {
		return nil
	}

	return s.DB.Model(&models.MenuItem{}).Where("id = ?", id).Updates(fields).Error
}

func (s *MenuService) Delete(actor models.Actor, id uint) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	result := s.DB.Unscoped().Delete(&models.MenuItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SeedIfEmpty inserts the starter catalog only when the table is empty.
// Idempotent by the emptiness check, not by per-item dedup.
func (s *MenuService) SeedIfEmpty() (string, error) {
	var count int64
	if err := s.DB.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "Menu already seeded", nil
	}

	for _, item := range starterCatalog() {
		if err := s.DB.Create(&item).Error; err != nil {
			return "", err
		}
	}
	return "Menu seeded successfully", nil
}

func resolveImageURLs(items []models.MenuItem) {
	for i := range items {
		items[i].ImageURL = utils.AssetURL(items[i].ImageKey)
	}
}

func starterCatalog() []models.MenuItem {
	return []models.MenuItem{
		{
			Name:        "UFO Burger",
			Category:    "burger",
			Description: "Premium beef patty with sauce, sealed in our signature UFO style",
			BasePrice:   25,
			Available:   true,
			Customizations: datatypes.NewJSONSlice([]models.Customization{
				{Name: "Extra Lettuce", Price: 2},
				{Name: "Extra Cheese", Price: 3},
				{Name: "No Onions", Price: 0},
				{Name: "Extra Sauce", Price: 1.5},
			}),
		},
		{
			Name:        "Golden Liver Sandwich",
			Category:    "liver",
			Description: "Tender liver with golden spices, wrapped in vintage style",
			BasePrice:   20,
			Available:   true,
			Customizations: datatypes.NewJSONSlice([]models.Customization{
				{Name: "Extra Lettuce", Price: 2},
				{Name: "Spicy Sauce", Price: 1},
				{Name: "No Onions", Price: 0},
				{Name: "Extra Pickles", Price: 1.5},
			}),
		},
		{
			Name:        "Classic Sausage UFO",
			Category:    "sausage",
			Description: "Premium sausage with classic herbs, UFO-sealed for freshness",
			BasePrice:   22,
			Available:   true,
			Customizations: datatypes.NewJSONSlice([]models.Customization{
				{Name: "Extra Lettuce", Price: 2},
				{Name: "Mustard Sauce", Price: 1},
				{Name: "No Onions", Price: 0},
				{Name: "Extra Tomatoes", Price: 2},
			}),
		},
		{
			Name:        "Kofta Delight",
			Category:    "kofta",
			Description: "Hand-crafted kofta with spices, sealed to perfection",
			BasePrice:   28,
			Available:   true,
			Customizations: datatypes.NewJSONSlice([]models.Customization{
				{Name: "Extra Lettuce", Price: 2},
				{Name: "Tahini Sauce", Price: 2},
				{Name: "No Onions", Price: 0},
				{Name: "Extra Sauce", Price: 1.5},
			}),
		},
	}
}
