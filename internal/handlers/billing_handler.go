package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/billing"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/httperr"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/middleware"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/models"
)

// Assinatura da plataforma (dono do truck). Pedido/pagamento do
// cliente final não existe aqui.

type BillingHandler struct {
	db *gorm.DB
	mp *billing.Client
}

func NewBillingHandler(db *gorm.DB, mp *billing.Client) *BillingHandler {
	return &BillingHandler{db: db, mp: mp}
}

// CreateCheckout devolve a URL de redirecionamento do Mercado Pago.
func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	truckID := c.MustGet(middleware.ContextFoodTruckID).(uint)

	var truck models.FoodTruck
	if err := h.db.First(&truck, truckID).Error; err != nil {
		httperr.NotFound(c, "truck_not_found", "Food truck não encontrado.")
		return
	}

	url, err := h.mp.CreateSubscriptionCheckout(c.Request.Context(), &truck)
	if err != nil {
		if httperr.IsBusiness(err, "billing_unavailable") {
			httperr.Internal(c, "billing_unavailable", "Pagamento indisponível no momento.")
			return
		}
		httperr.Internal(c, "checkout_failed", "Erro ao criar o checkout.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkout_url": url})
}

type WebhookRequest struct {
	Action            string `json:"action"`
	ExternalReference string `json:"external_reference"`
	PaymentID         string `json:"payment_id"`
}

// Webhook marca a assinatura como ativa quando o pagamento aprova.
// A referência externa é "truck-<id>", gravada na criação da preferência.
func (h *BillingHandler) Webhook(c *gin.Context) {
	var req WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Payload inválido.")
		return
	}

	if req.Action != "payment.approved" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	ref := strings.TrimPrefix(req.ExternalReference, "truck-")
	if ref == "" || ref == req.ExternalReference {
		httperr.BadRequest(c, "invalid_reference", "Referência externa inválida.")
		return
	}

	now := time.Now()

	res := h.db.
		Model(&models.FoodTruck{}).
		Where("id = ?", ref).
		Updates(map[string]any{
			"subscription_status": "active",
			"subscription_ref":    req.PaymentID,
			"subscribed_at":       &now,
		})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_subscription", "Erro ao ativar a assinatura.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "truck_not_found", "Food truck não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
