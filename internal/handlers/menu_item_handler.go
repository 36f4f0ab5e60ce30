package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/cache"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/httpresp"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/middleware"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/models"
)

type MenuItemHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewMenuItemHandler(db *gorm.DB, cch *cache.Cache) *MenuItemHandler {
	return &MenuItemHandler{db: db, cache: cch}
}

// --------- Requests ---------

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category"`
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Active      *bool    `json:"active,omitempty"`
	Category    *string  `json:"category,omitempty"`
}

// --------- Handlers ---------

func (h *MenuItemHandler) List(c *gin.Context) {
	truckIDVal, _ := c.Get(middleware.ContextFoodTruckID)
	truckID := truckIDVal.(uint)

	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	activeStr := strings.TrimSpace(c.Query("active")) // "true", "false" ou vazio
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("food_truck_id = ?", truckID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if activeStr != "" {
		if activeStr == "true" {
			q = q.Where("active = ?", true)
		} else if activeStr == "false" {
			q = q.Where("active = ?", false)
		}
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var items []models.MenuItem
	if err := q.
		Order("id ASC").
		Find(&items).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_menu_items"})
		return
	}

	httpresp.List(c, items)
}

func (h *MenuItemHandler) Create(c *gin.Context) {
	truckIDVal, _ := c.Get(middleware.ContextFoodTruckID)
	truckID := truckIDVal.(uint)

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	item := models.MenuItem{
		FoodTruckID: truckID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Active:      true,
		Category:    strings.ToLower(req.Category),
	}

	if err := h.db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_menu_item"})
		return
	}

	h.invalidate(c, truckID)

	c.JSON(http.StatusCreated, item)
}

func (h *MenuItemHandler) Update(c *gin.Context) {
	truckIDVal, _ := c.Get(middleware.ContextFoodTruckID)
	truckID := truckIDVal.(uint)

	id := c.Param("id")

	var item models.MenuItem
	if err := h.db.
		Where("id = ? AND food_truck_id = ?", id, truckID).
		First(&item).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu_item_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_menu_item"})
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Active != nil {
		item.Active = *req.Active
	}
	if req.Category != nil {
		item.Category = strings.ToLower(*req.Category)
	}

	if err := h.db.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_menu_item"})
		return
	}

	h.invalidate(c, truckID)

	c.JSON(http.StatusOK, item)
}

func (h *MenuItemHandler) invalidate(c *gin.Context, truckID uint) {
	var truck models.FoodTruck
	if err := h.db.Select("slug").First(&truck, truckID).Error; err == nil {
		h.cache.InvalidateStorefront(c.Request.Context(), truck.Slug)
	}
}
