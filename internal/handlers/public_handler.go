package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/cache"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/dto"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/httperr"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/models"
	ucSchedule "github.com/BruksfildServices01/foodtruck-storefront/internal/usecase/schedule"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db     *gorm.DB
	cache  *cache.Cache
	status *ucSchedule.StorefrontStatus
}

func NewPublicHandler(
	db *gorm.DB,
	cch *cache.Cache,
	statusUC *ucSchedule.StorefrontStatus,
) *PublicHandler {
	return &PublicHandler{
		db:     db,
		cache:  cch,
		status: statusUC,
	}
}

////////////////////////////////////////////////////////
// VITRINE (verdict + agenda agrupada + cardápio)
////////////////////////////////////////////////////////

func (h *PublicHandler) Storefront(c *gin.Context) {
	slug := c.Param("slug")
	ctx := c.Request.Context()

	if payload, ok := h.cache.GetStorefront(ctx, slug); ok {
		c.Data(http.StatusOK, "application/json", payload)
		return
	}

	// now capturado uma única vez para a requisição inteira.
	out, err := h.status.Execute(ctx, slug, time.Now())
	if err != nil {
		if httperr.IsBusiness(err, "truck_not_found") {
			httperr.NotFound(c, "truck_not_found", "Food truck não encontrado.")
			return
		}
		httperr.Internal(c, "storefront_failed", "Erro ao montar a vitrine.")
		return
	}

	var items []models.MenuItem
	if err := h.db.
		Where("food_truck_id = ? AND active = true", out.Truck.ID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_menu", "Erro ao listar o cardápio.")
		return
	}

	menu := make([]dto.PublicMenuItemDTO, 0, len(items))
	for _, it := range items {
		menu = append(menu, dto.PublicMenuItemDTO{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Category:    it.Category,
			PhotoURL:    it.PhotoURL,
		})
	}

	resp := dto.StorefrontDTO{
		Truck: dto.PublicTruckDTO{
			Name:        out.Truck.Name,
			Slug:        out.Truck.Slug,
			Phone:       out.Truck.Phone,
			Description: out.Truck.Description,
			LogoURL:     out.Truck.LogoURL,
			Timezone:    out.Truck.Timezone,
		},
		Availability: out.Availability,
		Schedule:     out.Groups,
		Menu:         menu,
	}

	if payload, err := json.Marshal(resp); err == nil {
		h.cache.SetStorefront(ctx, slug, payload)
		c.Data(http.StatusOK, "application/json", payload)
		return
	}

	c.JSON(http.StatusOK, resp)
}

////////////////////////////////////////////////////////
// DISPONIBILIDADE (verdict isolado, para polling leve)
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")

	out, err := h.status.Execute(c.Request.Context(), slug, time.Now())
	if err != nil {
		if httperr.IsBusiness(err, "truck_not_found") {
			httperr.NotFound(c, "truck_not_found", "Food truck não encontrado.")
			return
		}
		httperr.Internal(c, "availability_failed", "Erro ao calcular a disponibilidade.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"availability": out.Availability,
		"schedule":     out.Groups,
	})
}

////////////////////////////////////////////////////////
// CARDÁPIO (com filtros de categoria e busca)
////////////////////////////////////////////////////////

func (h *PublicHandler) ListMenu(c *gin.Context) {
	slug := c.Param("slug")

	var truck models.FoodTruck
	if err := h.db.Where("slug = ?", slug).First(&truck).Error; err != nil {
		httperr.NotFound(c, "truck_not_found", "Food truck não encontrado.")
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Where("food_truck_id = ? AND active = true", truck.ID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var items []models.MenuItem
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_menu", "Erro ao listar o cardápio.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"truck": gin.H{
			"name": truck.Name,
			"slug": truck.Slug,
		},
		"menu": items,
	})
}
