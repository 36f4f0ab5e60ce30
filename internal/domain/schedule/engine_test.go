package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ciclo completo do "fechar hoje": aberto → fechado manualmente →
// reconciliado na virada do dia → aberto de novo.
func TestCloseTodayLifecycle(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	week := Week{
		PrimaryTimezone: "America/New_York",
		Days: []Day{{
			Day:       Monday,
			Location:  "Bryant Park",
			OpenTime:  "11:00",
			CloseTime: "14:00",
		}},
	}

	// Segunda 12:00 locais: dentro da janela.
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, loc)
	assert.Equal(t, VerdictOpenNow, Resolve(week, now, week.PrimaryTimezone).Verdict)

	// Operador aciona o "fechar hoje".
	closed := week.Clone()
	stamp := now
	closed.Days[0].IsClosed = true
	closed.Days[0].ClosureTimestamp = &stamp

	got := Resolve(closed, now, week.PrimaryTimezone)
	assert.Equal(t, VerdictClosedManual, got.Verdict)
	assert.True(t, got.ManualClosureExpires())

	// Ainda hoje: a reconciliação não mexe.
	sameDay, changed := Reconcile(closed, now.Add(4*time.Hour))
	assert.False(t, changed)
	assert.True(t, sameDay.Days[0].IsClosed)

	// Uma semana depois, segunda 12:00: o fechamento venceu.
	nextMonday := now.AddDate(0, 0, 7)
	reopened, changed := Reconcile(closed, nextMonday)
	assert.True(t, changed)

	got = Resolve(reopened, nextMonday, week.PrimaryTimezone)
	assert.Equal(t, VerdictOpenNow, got.Verdict)

	// A exibição acompanha o estado reconciliado.
	groups := Group(reopened)
	require.Len(t, groups, 1)
	assert.Equal(t, "Monday", groups[0].DayRange)
	assert.False(t, groups[0].Days[0].IsClosed)
}
