package schedule

import (
	"time"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/timezone"
)

// Resolve responde "o truck está aberto agora?" para a semana dada.
//
// A identidade de "hoje" usa o fuso principal do tenant (tenantZone)
// para que todos os dias do truck concordem sobre qual é o dia de hoje;
// a checagem da janela usa o fuso efetivo do próprio dia.
//
// Função total: dado malformado degrada para o motivo de fechamento
// mais específico, nunca erro. Capture now uma vez por requisição e
// repasse o mesmo valor para Resolve/Reconcile/Group.
func Resolve(week Week, now time.Time, tenantZone string) Availability {
	today := WeekdayOf(now, timezone.Location(tenantZone))

	day, ok := week.DayFor(today)
	if !ok {
		return Availability{Verdict: VerdictNoScheduleToday}
	}

	if day.IsClosed {
		return Availability{
			Verdict:  VerdictClosedManual,
			ClosedAt: day.ClosureTimestamp,
		}
	}

	if !day.HoursSet() {
		return Availability{Verdict: VerdictClosedNoHoursSet}
	}

	tz := week.EffectiveTimezone(day)
	if tz == "" {
		tz = tenantZone
	}

	open, err := IsWithinWindow(now, day.OpenTime, day.CloseTime, tz)
	if err != nil {
		// Fuso ou horário quebrado num dia não derruba o verdict.
		return Availability{Verdict: VerdictClosedNoHoursSet}
	}

	if open {
		return Availability{Verdict: VerdictOpenNow}
	}
	return Availability{Verdict: VerdictClosedOutsideHours}
}
