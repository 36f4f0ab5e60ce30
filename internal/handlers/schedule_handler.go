package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/cache"
	domain "github.com/BruksfildServices01/foodtruck-storefront/internal/domain/schedule"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/httperr"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/httpresp"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/middleware"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/models"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/timezone"
	ucSchedule "github.com/BruksfildServices01/foodtruck-storefront/internal/usecase/schedule"
)

type ScheduleHandler struct {
	db      *gorm.DB
	cache   *cache.Cache
	repo    domain.Repository
	replace *ucSchedule.ReplaceWeek
	close   *ucSchedule.CloseToday
	reopen  *ucSchedule.ReopenToday
	status  *ucSchedule.StorefrontStatus
}

func NewScheduleHandler(
	db *gorm.DB,
	cch *cache.Cache,
	repo domain.Repository,
	replaceUC *ucSchedule.ReplaceWeek,
	closeUC *ucSchedule.CloseToday,
	reopenUC *ucSchedule.ReopenToday,
	statusUC *ucSchedule.StorefrontStatus,
) *ScheduleHandler {
	return &ScheduleHandler{
		db:      db,
		cache:   cch,
		repo:    repo,
		replace: replaceUC,
		close:   closeUC,
		reopen:  reopenUC,
		status:  statusUC,
	}
}

// --------- Requests ---------

type ScheduleDayConfig struct {
	Day       string   `json:"day" binding:"required"`
	Location  string   `json:"location"`
	Address   string   `json:"address"`
	OpenTime  string   `json:"open_time"`
	CloseTime string   `json:"close_time"`
	IsClosed  bool     `json:"is_closed"`
	Timezone  string   `json:"timezone"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
}

type ScheduleUpdateRequest struct {
	Days []ScheduleDayConfig `json:"days" binding:"required"`
}

// --------- Editor semanal ---------

func (h *ScheduleHandler) Get(c *gin.Context) {
	truckID := c.MustGet(middleware.ContextFoodTruckID).(uint)

	truck, err := h.repo.GetTruckByID(c.Request.Context(), truckID)
	if err != nil {
		httperr.NotFound(c, "truck_not_found", "Food truck não encontrado.")
		return
	}

	week, err := h.repo.LoadWeek(c.Request.Context(), truck)
	if err != nil {
		httperr.Internal(c, "failed_to_get_schedule", "Erro ao buscar a agenda.")
		return
	}

	httpresp.OK(c, week)
}

// Update troca a semana inteira. O editor não mexe em carimbo de
// "fechar hoje": recriar o dia descarta qualquer carimbo antigo.
func (h *ScheduleHandler) Update(c *gin.Context) {
	truckID := c.MustGet(middleware.ContextFoodTruckID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	seen := map[string]bool{}
	days := make([]domain.Day, 0, len(req.Days))

	for _, d := range req.Days {
		wd := domain.Weekday(d.Day)
		if wd.Index() < 0 {
			httperr.BadRequest(c, "invalid_day", "Dia da semana inválido: "+d.Day)
			return
		}
		if seen[d.Day] {
			httperr.BadRequest(c, "duplicate_day", "Dia repetido na agenda: "+d.Day)
			return
		}
		seen[d.Day] = true

		if d.Timezone != "" && !timezone.IsValid(d.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido em "+d.Day)
			return
		}

		day := domain.Day{
			Day:       wd,
			Location:  d.Location,
			Address:   d.Address,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
			IsClosed:  d.IsClosed,
			Timezone:  d.Timezone,
		}

		if d.Lat != nil && d.Lng != nil {
			day.Coordinates = &domain.Coordinates{Lat: *d.Lat, Lng: *d.Lng}
		}

		days = append(days, day)
	}

	if _, err := h.replace.Execute(c.Request.Context(), truckID, userID, domain.Week{Days: days}); err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "Erro ao salvar a agenda.")
		return
	}

	h.invalidate(c, truckID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- "Fechar hoje" / reabrir ---------

func (h *ScheduleHandler) CloseToday(c *gin.Context) {
	truckID := c.MustGet(middleware.ContextFoodTruckID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	day, err := h.close.Execute(c.Request.Context(), truckID, userID, time.Now())
	if err != nil {
		h.mapToggleErrors(c, err)
		return
	}

	h.invalidate(c, truckID)

	c.JSON(http.StatusOK, day)
}

func (h *ScheduleHandler) ReopenToday(c *gin.Context) {
	truckID := c.MustGet(middleware.ContextFoodTruckID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	day, err := h.reopen.Execute(c.Request.Context(), truckID, userID, time.Now())
	if err != nil {
		h.mapToggleErrors(c, err)
		return
	}

	h.invalidate(c, truckID)

	c.JSON(http.StatusOK, day)
}

// --------- Prévia do dono (mesmo leitor da vitrine) ---------

func (h *ScheduleHandler) Status(c *gin.Context) {
	truckID := c.MustGet(middleware.ContextFoodTruckID).(uint)

	truck, err := h.repo.GetTruckByID(c.Request.Context(), truckID)
	if err != nil {
		httperr.NotFound(c, "truck_not_found", "Food truck não encontrado.")
		return
	}

	out, err := h.status.Execute(c.Request.Context(), truck.Slug, time.Now())
	if err != nil {
		httperr.Internal(c, "status_failed", "Erro ao calcular a disponibilidade.")
		return
	}

	c.JSON(http.StatusOK, out)
}

// --------- Helpers ---------

func (h *ScheduleHandler) mapToggleErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "no_schedule_today"):
		httperr.BadRequest(c, "no_schedule_today", "Hoje não tem registro na agenda semanal.")
	case httperr.IsBusiness(err, "truck_not_found"):
		httperr.NotFound(c, "truck_not_found", "Food truck não encontrado.")
	default:
		httperr.Internal(c, "schedule_toggle_failed", "Erro ao atualizar o dia de hoje.")
	}
}

func (h *ScheduleHandler) invalidate(c *gin.Context, truckID uint) {
	var truck models.FoodTruck
	if err := h.db.Select("slug").First(&truck, truckID).Error; err == nil {
		h.cache.InvalidateStorefront(c.Request.Context(), truck.Slug)
	}
}
