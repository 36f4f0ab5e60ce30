package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/audit"
	domain "github.com/BruksfildServices01/foodtruck-storefront/internal/domain/schedule"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/httperr"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/timezone"
)

// ReopenToday desfaz o "fechar hoje": limpa o par fechado/carimbo do
// dia atual. Também reabre um dia fechado pelo editor semanal — o
// operador está dizendo "hoje estou aberto, sim".
type ReopenToday struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReopenToday(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ReopenToday {
	return &ReopenToday{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ReopenToday) Execute(
	ctx context.Context,
	truckID uint,
	userID uint,
	now time.Time,
) (domain.Day, error) {

	truck, err := uc.repo.GetTruckByID(ctx, truckID)
	if err != nil {
		return domain.Day{}, httperr.ErrBusiness("truck_not_found")
	}

	week, err := uc.repo.LoadWeek(ctx, truck)
	if err != nil {
		return domain.Day{}, err
	}

	today := domain.WeekdayOf(now, timezone.Location(truck.Timezone))

	updated := week.Clone()
	idx := -1
	for i := range updated.Days {
		if updated.Days[i].Day == today {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Day{}, httperr.ErrBusiness("no_schedule_today")
	}

	// Reabrir nunca deixa carimbo para trás.
	updated.Days[idx].IsClosed = false
	updated.Days[idx].ClosureTimestamp = nil

	if err := uc.repo.SaveClosureState(ctx, truckID, updated); err != nil {
		return domain.Day{}, err
	}

	uc.audit.Dispatch(audit.Event{
		FoodTruckID: truckID,
		UserID:      &userID,
		Action:      "storefront_reopened_today",
		Entity:      "schedule_day",
		Metadata:    map[string]any{"day": string(today)},
	})

	return updated.Days[idx], nil
}
