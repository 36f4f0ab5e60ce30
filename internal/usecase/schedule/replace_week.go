package schedule

import (
	"context"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/audit"
	domain "github.com/BruksfildServices01/foodtruck-storefront/internal/domain/schedule"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/httperr"
)

// ======================================================
// USE CASE — editor semanal
// ======================================================

// ReplaceWeek troca a semana inteira do truck pelo que veio do editor.
// O editor nunca carrega carimbo de "fechar hoje": recriar a semana
// descarta qualquer carimbo antigo que estivesse gravado.
type ReplaceWeek struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReplaceWeek(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ReplaceWeek {
	return &ReplaceWeek{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ReplaceWeek) Execute(
	ctx context.Context,
	truckID uint,
	userID uint,
	week domain.Week,
) (domain.Week, error) {

	if _, err := uc.repo.GetTruckByID(ctx, truckID); err != nil {
		return domain.Week{}, httperr.ErrBusiness("truck_not_found")
	}

	clean := week.Clone()
	for i := range clean.Days {
		clean.Days[i].ClosureTimestamp = nil
	}

	if err := uc.repo.ReplaceWeek(ctx, truckID, clean); err != nil {
		return domain.Week{}, err
	}

	uc.audit.Dispatch(audit.Event{
		FoodTruckID: truckID,
		UserID:      &userID,
		Action:      "schedule_replaced",
		Entity:      "schedule_day",
		Metadata:    map[string]any{"days": len(clean.Days)},
	})

	return clean, nil
}
