package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/cache"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/httperr"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/middleware"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/models"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/timezone"
)

type FoodTruckHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewFoodTruckHandler(db *gorm.DB, cch *cache.Cache) *FoodTruckHandler {
	return &FoodTruckHandler{db: db, cache: cch}
}

type UpdateFoodTruckRequest struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Description *string `json:"description,omitempty"`

	// Fuso principal: fallback de todos os dias da agenda.
	Timezone *string `json:"timezone,omitempty"`

	ScheduleTitle       *string `json:"schedule_title,omitempty"`
	ScheduleDescription *string `json:"schedule_description,omitempty"`
}

func (h *FoodTruckHandler) GetMeTruck(c *gin.Context) {
	truckIDVal, _ := c.Get(middleware.ContextFoodTruckID)
	truckID := truckIDVal.(uint)

	var truck models.FoodTruck
	if err := h.db.First(&truck, truckID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "truck_not_found", "Food truck não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_truck", "Erro ao buscar dados do food truck.")
		return
	}

	c.JSON(http.StatusOK, truck)
}

func (h *FoodTruckHandler) UpdateMeTruck(c *gin.Context) {
	truckIDVal, _ := c.Get(middleware.ContextFoodTruckID)
	truckID := truckIDVal.(uint)

	var truck models.FoodTruck
	if err := h.db.First(&truck, truckID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "truck_not_found", "Food truck não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_truck", "Erro ao buscar dados do food truck.")
		return
	}

	var req UpdateFoodTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		truck.Name = *req.Name
	}
	if req.Phone != nil {
		truck.Phone = *req.Phone
	}
	if req.Description != nil {
		truck.Description = *req.Description
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido (use identificador IANA).")
			return
		}
		truck.Timezone = *req.Timezone
	}
	if req.ScheduleTitle != nil {
		truck.ScheduleTitle = *req.ScheduleTitle
	}
	if req.ScheduleDescription != nil {
		truck.ScheduleDescription = *req.ScheduleDescription
	}

	if err := h.db.Save(&truck).Error; err != nil {
		httperr.Internal(c, "failed_to_update_truck", "Erro ao salvar as configurações do food truck.")
		return
	}

	// Fuso ou textos mudaram: a vitrine pública precisa refletir já.
	h.cache.InvalidateStorefront(c.Request.Context(), truck.Slug)

	c.JSON(http.StatusOK, truck)
}
