package billing

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/config"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/httperr"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/models"
)

// Client cria o checkout de assinatura mensal da plataforma no
// Mercado Pago. Pagamento de pedido do cliente final não passa por
// aqui — a vitrine não vende, só mostra.
type Client struct {
	prefs     preference.Client
	planPrice float64
}

func New(cfg *config.Config) (*Client, error) {
	if cfg.MPAccessToken == "" {
		// Sem token a API sobe normalmente; só o checkout fica fora.
		return &Client{planPrice: cfg.PlanPrice}, nil
	}

	mpCfg, err := mpconfig.New(cfg.MPAccessToken)
	if err != nil {
		return nil, err
	}

	return &Client{
		prefs:     preference.NewClient(mpCfg),
		planPrice: cfg.PlanPrice,
	}, nil
}

// CreateSubscriptionCheckout devolve a URL de redirecionamento do
// checkout da assinatura do truck.
func (c *Client) CreateSubscriptionCheckout(
	ctx context.Context,
	truck *models.FoodTruck,
) (string, error) {

	if c.prefs == nil {
		return "", httperr.ErrBusiness("billing_unavailable")
	}

	resp, err := c.prefs.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:          fmt.Sprintf("plan-%d", truck.ID),
				Title:       "Assinatura mensal - vitrine do food truck",
				Description: truck.Name,
				Quantity:    1,
				UnitPrice:   c.planPrice,
			},
		},
		ExternalReference: fmt.Sprintf("truck-%d", truck.ID),
	})
	if err != nil {
		return "", err
	}

	return resp.InitPoint, nil
}
