package schedule

import (
	"context"
	"log"
	"time"

	domain "github.com/BruksfildServices01/foodtruck-storefront/internal/domain/schedule"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/httperr"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/models"
)

// ======================================================
// OUTPUT
// ======================================================

type StorefrontStatusOutput struct {
	Truck        *models.FoodTruck   `json:"truck"`
	Availability domain.Availability `json:"availability"`
	Week         domain.Week         `json:"week"`
	Groups       []domain.DayGroup   `json:"groups"`
}

// ======================================================
// USE CASE
// ======================================================

// StorefrontStatus é o leitor único de disponibilidade: vitrine
// pública e painel do dono passam pelo mesmo caminho para não haver
// duas implementações de "está aberto?" divergindo.
type StorefrontStatus struct {
	repo domain.Repository
}

func NewStorefrontStatus(repo domain.Repository) *StorefrontStatus {
	return &StorefrontStatus{repo: repo}
}

// Execute carrega a semana, reconcilia fechamentos vencidos, persiste
// o resultado quando mudou e responde verdict + grupos de exibição.
// now é capturado uma vez pelo chamador e vale para a operação inteira.
func (uc *StorefrontStatus) Execute(
	ctx context.Context,
	slug string,
	now time.Time,
) (*StorefrontStatusOutput, error) {

	truck, err := uc.repo.GetTruckBySlug(ctx, slug)
	if err != nil {
		return nil, httperr.ErrBusiness("truck_not_found")
	}

	week, err := uc.repo.LoadWeek(ctx, truck)
	if err != nil {
		return nil, err
	}

	week, changed := domain.Reconcile(week, now)
	if changed {
		// Write-back idempotente: duas requisições concorrentes gravam
		// o mesmo estado final. Falha aqui não impede responder; a
		// próxima leitura reconcilia de novo.
		if err := uc.repo.SaveClosureState(ctx, truck.ID, week); err != nil {
			log.Printf("schedule: falha ao persistir reconciliação do truck %d: %v", truck.ID, err)
		}
	}

	return &StorefrontStatusOutput{
		Truck:        truck,
		Availability: domain.Resolve(week, now, truck.Timezone),
		Week:         week,
		Groups:       domain.Group(week),
	}, nil
}
