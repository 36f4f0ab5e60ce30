package schedule

import (
	"log"
	"time"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/timezone"
)

// Reconcile limpa os "fechar hoje" que já venceram: um fechamento com
// carimbo anterior à meia-noite de hoje (no fuso efetivo do dia) volta
// a aberto. Idempotente; seguro para rodar em toda leitura.
//
// Fechamentos sem carimbo vieram do editor semanal e não expiram —
// nunca são tocados. O reconciler só vira isClosed de true para false.
//
// A função não persiste nada: devolve uma semana nova e changed=true
// quando houve limpeza; gravar de volta é responsabilidade do chamador
// (e só quando changed, para evitar escrita à toa).
func Reconcile(week Week, now time.Time) (Week, bool) {
	out := week.Clone()
	changed := false

	for i := range out.Days {
		d := out.Days[i]
		if !d.IsClosed || d.ClosureTimestamp == nil {
			continue
		}

		tz := out.EffectiveTimezone(d)
		loc, err := timezone.Resolve(tz)
		if err != nil {
			// Um registro com fuso quebrado não pode travar o resto
			// da semana.
			log.Printf("schedule: fuso inválido %q em %s, dia ignorado na reconciliação", tz, d.Day)
			continue
		}

		local := now.In(loc)
		startOfToday := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

		if d.ClosureTimestamp.Before(startOfToday) {
			out.Days[i].IsClosed = false
			out.Days[i].ClosureTimestamp = nil
			changed = true
		}
	}

	return out, changed
}
