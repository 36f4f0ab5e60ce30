package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/audit"
	domain "github.com/BruksfildServices01/foodtruck-storefront/internal/domain/schedule"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/httperr"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/timezone"
)

// ======================================================
// USE CASE — "fechar hoje"
// ======================================================

// CloseToday fecha o truck só pelo dia de hoje: marca o dia atual como
// fechado e carimba o instante, para a reconciliação reabrir sozinha
// na virada do dia.
type CloseToday struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCloseToday(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CloseToday {
	return &CloseToday{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CloseToday) Execute(
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

	// "Hoje" sempre no fuso principal do truck, igual ao Resolve.
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

	stamp := now
	updated.Days[idx].IsClosed = true
	updated.Days[idx].ClosureTimestamp = &stamp

	if err := uc.repo.SaveClosureState(ctx, truckID, updated); err != nil {
		return domain.Day{}, err
	}

	uc.audit.Dispatch(audit.Event{
		FoodTruckID: truckID,
		UserID:      &userID,
		Action:      "storefront_closed_today",
		Entity:      "schedule_day",
		Metadata:    map[string]any{"day": string(today)},
	})

	return updated.Days[idx], nil
}
