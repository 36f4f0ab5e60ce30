package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_ClearsExpiredClosure(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// Fechado ontem 23:59; qualquer instante de hoje limpa.
	yesterdayStamp := time.Date(2024, 1, 14, 23, 59, 0, 0, loc)
	now := time.Date(2024, 1, 15, 0, 5, 0, 0, loc)

	week := Week{
		PrimaryTimezone: "America/Sao_Paulo",
		Days: []Day{{
			Day:              Monday,
			OpenTime:         "11:00",
			CloseTime:        "14:00",
			IsClosed:         true,
			ClosureTimestamp: &yesterdayStamp,
		}},
	}

	got, changed := Reconcile(week, now)

	assert.True(t, changed)
	assert.False(t, got.Days[0].IsClosed)
	assert.Nil(t, got.Days[0].ClosureTimestamp)

	// O argumento não é mutado: o chamador troca o snapshot inteiro.
	assert.True(t, week.Days[0].IsClosed)
	assert.NotNil(t, week.Days[0].ClosureTimestamp)
}

func TestReconcile_KeepsTodayClosure(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// Fechado hoje 00:01; mais tarde no mesmo dia continua fechado.
	todayStamp := time.Date(2024, 1, 15, 0, 1, 0, 0, loc)
	now := time.Date(2024, 1, 15, 18, 0, 0, 0, loc)

	week := Week{
		PrimaryTimezone: "America/Sao_Paulo",
		Days: []Day{{
			Day:              Monday,
			IsClosed:         true,
			ClosureTimestamp: &todayStamp,
		}},
	}

	got, changed := Reconcile(week, now)

	assert.False(t, changed)
	assert.True(t, got.Days[0].IsClosed)
	assert.NotNil(t, got.Days[0].ClosureTimestamp)
}

func TestReconcile_NeverTouchesWeeklyClosure(t *testing.T) {
	// Fechamento do editor semanal: sem carimbo, não expira nunca.
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

	week := Week{
		PrimaryTimezone: "UTC",
		Days: []Day{
			{Day: Monday, IsClosed: true},
			{Day: Tuesday, OpenTime: "09:00", CloseTime: "17:00"},
		},
	}

	got, changed := Reconcile(week, now)

	assert.False(t, changed)
	assert.True(t, got.Days[0].IsClosed)
}

func TestReconcile_Idempotent(t *testing.T) {
	staleStamp := time.Date(2024, 1, 10, 22, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	week := Week{
		PrimaryTimezone: "UTC",
		Days: []Day{
			{Day: Monday, IsClosed: true, ClosureTimestamp: &staleStamp},
			{Day: Friday, OpenTime: "10:00", CloseTime: "22:00"},
		},
	}

	first, changed := Reconcile(week, now)
	assert.True(t, changed)

	second, changed := Reconcile(first, now)
	assert.False(t, changed)
	assert.Equal(t, first, second)
}

func TestReconcile_SkipsBrokenZone(t *testing.T) {
	stale := time.Date(2024, 1, 10, 22, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	week := Week{
		PrimaryTimezone: "UTC",
		Days: []Day{
			// Fuso quebrado: dia fica como está, sem derrubar o resto.
			{Day: Monday, IsClosed: true, ClosureTimestamp: &stale, Timezone: "Not/AZone"},
			{Day: Tuesday, IsClosed: true, ClosureTimestamp: &stale},
		},
	}

	got, changed := Reconcile(week, now)

	assert.True(t, changed)
	assert.True(t, got.Days[0].IsClosed)
	assert.NotNil(t, got.Days[0].ClosureTimestamp)
	assert.False(t, got.Days[1].IsClosed)
	assert.Nil(t, got.Days[1].ClosureTimestamp)
}

func TestReconcile_UsesDayZoneForMidnight(t *testing.T) {
	// 03:00 UTC de 15/01 ainda é 14/01 em Los Angeles: o fechamento
	// carimbado de manhã (hora de LA) ainda não venceu lá.
	laLoc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	stamp := time.Date(2024, 1, 14, 10, 0, 0, 0, laLoc)
	now := time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC)

	week := Week{
		PrimaryTimezone: "UTC",
		Days: []Day{{
			Day:              Sunday,
			IsClosed:         true,
			ClosureTimestamp: &stamp,
			Timezone:         "America/Los_Angeles",
		}},
	}

	got, changed := Reconcile(week, now)
	assert.False(t, changed)
	assert.True(t, got.Days[0].IsClosed)

	// No dia seguinte (hora de LA) o fechamento vence.
	later := time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC) // 09:00 em LA
	got, changed = Reconcile(week, later)
	assert.True(t, changed)
	assert.False(t, got.Days[0].IsClosed)
}
