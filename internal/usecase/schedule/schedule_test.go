package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/audit"
	domain "github.com/BruksfildServices01/foodtruck-storefront/internal/domain/schedule"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/httperr"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/models"
)

// fakeRepo guarda um truck e sua semana em memória.
type fakeRepo struct {
	truck      models.FoodTruck
	week       domain.Week
	saveCalls  int
	lastClosed domain.Week
}

func (f *fakeRepo) GetTruckByID(ctx context.Context, id uint) (*models.FoodTruck, error) {
	if id != f.truck.ID {
		return nil, errors.New("record not found")
	}
	t := f.truck
	return &t, nil
}

func (f *fakeRepo) GetTruckBySlug(ctx context.Context, slug string) (*models.FoodTruck, error) {
	if slug != f.truck.Slug {
		return nil, errors.New("record not found")
	}
	t := f.truck
	return &t, nil
}

func (f *fakeRepo) LoadWeek(ctx context.Context, truck *models.FoodTruck) (domain.Week, error) {
	return f.week.Clone(), nil
}

func (f *fakeRepo) SaveClosureState(ctx context.Context, truckID uint, week domain.Week) error {
	f.saveCalls++
	f.lastClosed = week
	// Grava só o par fechado/carimbo, como o adapter real.
	for _, d := range week.Days {
		for i := range f.week.Days {
			if f.week.Days[i].Day == d.Day {
				f.week.Days[i].IsClosed = d.IsClosed
				f.week.Days[i].ClosureTimestamp = d.ClosureTimestamp
			}
		}
	}
	return nil
}

func (f *fakeRepo) ReplaceWeek(ctx context.Context, truckID uint, week domain.Week) error {
	f.week = week.Clone()
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		truck: models.FoodTruck{
			ID:       1,
			Name:     "Truck do Zé",
			Slug:     "truck-do-ze",
			Timezone: "America/New_York",
		},
		week: domain.Week{
			PrimaryTimezone: "America/New_York",
			Days: []domain.Day{{
				Day:       domain.Monday,
				Location:  "Bryant Park",
				OpenTime:  "11:00",
				CloseTime: "14:00",
			}},
		},
	}
}

func nyTime(t *testing.T, day, hour int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return time.Date(2024, 1, day, hour, 0, 0, 0, loc)
}

func TestCloseTodayThenStatusThenNextDay(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	dispatcher := audit.NewDispatcher(nil)

	status := NewStorefrontStatus(repo)
	closeToday := NewCloseToday(repo, dispatcher)

	// Segunda 12:00: aberto.
	monday := nyTime(t, 15, 12)
	out, err := status.Execute(ctx, "truck-do-ze", monday)
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictOpenNow, out.Availability.Verdict)

	// Operador fecha pelo dia.
	day, err := closeToday.Execute(ctx, 1, 7, monday)
	require.NoError(t, err)
	assert.True(t, day.IsClosed)
	require.NotNil(t, day.ClosureTimestamp)
	assert.Equal(t, monday, *day.ClosureTimestamp)

	out, err = status.Execute(ctx, "truck-do-ze", monday.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictClosedManual, out.Availability.Verdict)
	assert.True(t, out.Availability.ManualClosureExpires())

	// Semana seguinte: a leitura reconcilia, persiste e responde aberto.
	saves := repo.saveCalls
	nextMonday := nyTime(t, 22, 12)
	out, err = status.Execute(ctx, "truck-do-ze", nextMonday)
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictOpenNow, out.Availability.Verdict)
	assert.Equal(t, saves+1, repo.saveCalls)
	assert.False(t, repo.week.Days[0].IsClosed)
	assert.Nil(t, repo.week.Days[0].ClosureTimestamp)

	// Leitura seguinte não grava de novo (reconciliação idempotente).
	_, err = status.Execute(ctx, "truck-do-ze", nextMonday.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, saves+1, repo.saveCalls)
}

func TestReplaceWeek_DropsOldClosureStamp(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	dispatcher := audit.NewDispatcher(nil)

	// Segunda está "fechada hoje", com carimbo gravado.
	stamp := nyTime(t, 15, 9)
	repo.week.Days[0].IsClosed = true
	repo.week.Days[0].ClosureTimestamp = &stamp

	replace := NewReplaceWeek(repo, dispatcher)

	// O dono regrava a semana pelo editor; segunda volta como dia
	// normal de funcionamento.
	rewritten := domain.Week{
		PrimaryTimezone: "America/New_York",
		Days: []domain.Day{{
			Day:       domain.Monday,
			Location:  "Bryant Park",
			OpenTime:  "11:00",
			CloseTime: "14:00",
		}},
	}

	saved, err := replace.Execute(ctx, 1, 7, rewritten)
	require.NoError(t, err)
	require.Len(t, saved.Days, 1)
	assert.Nil(t, saved.Days[0].ClosureTimestamp)
	assert.Nil(t, repo.week.Days[0].ClosureTimestamp)
	assert.False(t, repo.week.Days[0].IsClosed)

	// Mesmo que um carimbo escape no payload, a regravação descarta.
	rewritten.Days[0].IsClosed = true
	rewritten.Days[0].ClosureTimestamp = &stamp

	saved, err = replace.Execute(ctx, 1, 7, rewritten)
	require.NoError(t, err)
	assert.True(t, saved.Days[0].IsClosed)
	assert.Nil(t, saved.Days[0].ClosureTimestamp)
	assert.Nil(t, repo.week.Days[0].ClosureTimestamp)

	// A vitrine lê a semana regravada sem resquício do "fechar hoje".
	status := NewStorefrontStatus(repo)
	out, err := status.Execute(ctx, "truck-do-ze", nyTime(t, 15, 12))
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictClosedManual, out.Availability.Verdict)
	assert.False(t, out.Availability.ManualClosureExpires())
	assert.Nil(t, out.Availability.ClosedAt)
}

func TestReplaceWeek_TruckNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	dispatcher := audit.NewDispatcher(nil)

	replace := NewReplaceWeek(repo, dispatcher)

	_, err := replace.Execute(ctx, 99, 7, domain.Week{})
	assert.True(t, httperr.IsBusiness(err, "truck_not_found"))
}

func TestReopenToday(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	dispatcher := audit.NewDispatcher(nil)

	stamp := nyTime(t, 15, 9)
	repo.week.Days[0].IsClosed = true
	repo.week.Days[0].ClosureTimestamp = &stamp

	reopen := NewReopenToday(repo, dispatcher)

	day, err := reopen.Execute(ctx, 1, 7, nyTime(t, 15, 12))
	require.NoError(t, err)
	assert.False(t, day.IsClosed)
	assert.Nil(t, day.ClosureTimestamp)
	assert.False(t, repo.week.Days[0].IsClosed)
}

func TestCloseToday_NoScheduleForToday(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	dispatcher := audit.NewDispatcher(nil)

	closeToday := NewCloseToday(repo, dispatcher)

	// Terça não tem registro na semana do fake.
	_, err := closeToday.Execute(ctx, 1, 7, nyTime(t, 16, 12))
	assert.True(t, httperr.IsBusiness(err, "no_schedule_today"))
}

func TestStorefrontStatus_TruckNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()

	status := NewStorefrontStatus(repo)

	_, err := status.Execute(ctx, "nao-existe", nyTime(t, 15, 12))
	assert.True(t, httperr.IsBusiness(err, "truck_not_found"))
}
