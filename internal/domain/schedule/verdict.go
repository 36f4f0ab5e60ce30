package schedule

import "time"

// ===============================
// Availability Verdict
// ===============================

type Verdict string

const (
	// Nenhum registro para o dia de hoje.
	VerdictNoScheduleToday Verdict = "no_schedule_today"

	// Fechado pelo operador (editor semanal ou "fechar hoje").
	VerdictClosedManual Verdict = "closed_manual"

	// Fora da janela de funcionamento de hoje.
	VerdictClosedOutsideHours Verdict = "closed_outside_hours"

	// Dia existe mas não tem horário configurado.
	VerdictClosedNoHoursSet Verdict = "closed_no_hours_set"

	VerdictOpenNow Verdict = "open_now"
)

// Availability é o resultado de Resolve: sempre um dos verdicts acima,
// nunca vazio.
type Availability struct {
	Verdict Verdict `json:"verdict"`

	// Carimbo do "fechar hoje". Presente apenas em closed_manual
	// quando o fechamento expira sozinho na virada do dia.
	ClosedAt *time.Time `json:"closedAt,omitempty"`
}

func (a Availability) Open() bool {
	return a.Verdict == VerdictOpenNow
}

// ManualClosureExpires separa o "fechar hoje" (com carimbo) do
// fechamento fixo do editor semanal.
func (a Availability) ManualClosureExpires() bool {
	return a.Verdict == VerdictClosedManual && a.ClosedAt != nil
}
