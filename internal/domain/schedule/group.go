package schedule

import "sort"

// DayGroup é uma sequência máxima de dias consecutivos com a mesma
// configuração visível, usada só para compactar a exibição.
type DayGroup struct {
	DayRange string `json:"dayRange"`
	Days     []Day  `json:"days"`
}

// sameDisplay compara os campos que decidem se dois dias podem dividir
// uma linha na vitrine.
func sameDisplay(a, b Day) bool {
	return a.Location == b.Location &&
		a.Address == b.Address &&
		a.OpenTime == b.OpenTime &&
		a.CloseTime == b.CloseTime &&
		a.IsClosed == b.IsClosed &&
		a.Timezone == b.Timezone
}

// Group ordena os dias (segunda primeiro) e funde vizinhos idênticos.
//
// Adjacência é distância 1 no índice ordenado: domingo e segunda nunca
// se fundem, mesmo sendo vizinhos no calendário. Dias ausentes da
// semana simplesmente não aparecem; nada é sintetizado. Função pura —
// a mesma semana produz sempre os mesmos grupos.
func Group(week Week) []DayGroup {
	days := append([]Day(nil), week.Days...)
	sort.Slice(days, func(i, j int) bool {
		return days[i].Day.Index() < days[j].Day.Index()
	})

	var groups []DayGroup

	for _, d := range days {
		if d.Day.Index() < 0 {
			// Nome de dia desconhecido não quebra a exibição.
			continue
		}

		if len(groups) > 0 {
			last := &groups[len(groups)-1]
			prev := last.Days[len(last.Days)-1]

			if d.Day.Index() == prev.Day.Index()+1 && sameDisplay(prev, d) {
				last.Days = append(last.Days, d)
				continue
			}
		}

		groups = append(groups, DayGroup{Days: []Day{d}})
	}

	for i := range groups {
		g := &groups[i]
		first := g.Days[0].Day
		last := g.Days[len(g.Days)-1].Day

		if first == last {
			g.DayRange = string(first)
		} else {
			g.DayRange = string(first) + " - " + string(last)
		}
	}

	return groups
}
