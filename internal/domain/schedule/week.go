package schedule

import (
	"time"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/timezone"
)

// ===============================
// Value types
// ===============================

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Ordem fixa de exibição: segunda primeiro.
var WeekOrder = [7]Weekday{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

// Index retorna a posição na semana (segunda = 0) ou -1 para nome
// desconhecido.
func (w Weekday) Index() int {
	for i, d := range WeekOrder {
		if d == w {
			return i
		}
	}
	return -1
}

// WeekdayOf deriva o dia da semana de um instante no fuso informado.
func WeekdayOf(now time.Time, loc *time.Location) Weekday {
	return Weekday(now.In(loc).Weekday().String())
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Day é imutável do ponto de vista do motor: nenhuma operação aqui
// altera um Day recebido; sempre devolvemos cópias.
type Day struct {
	Day              Weekday      `json:"day"`
	Location         string       `json:"location,omitempty"`
	Address          string       `json:"address,omitempty"`
	OpenTime         string       `json:"openTime,omitempty"`
	CloseTime        string       `json:"closeTime,omitempty"`
	IsClosed         bool         `json:"isClosed"`
	ClosureTimestamp *time.Time   `json:"closureTimestamp,omitempty"`
	Timezone         string       `json:"timezone,omitempty"`
	Coordinates      *Coordinates `json:"coordinates,omitempty"`
}

// HoursSet indica se o dia tem janela de funcionamento configurada.
func (d Day) HoursSet() bool {
	return d.OpenTime != "" && d.CloseTime != ""
}

type Week struct {
	Title           string `json:"title,omitempty"`
	Description     string `json:"description,omitempty"`
	PrimaryTimezone string `json:"primaryTimezone,omitempty"`
	Days            []Day  `json:"days"`
}

// DayFor busca o registro do dia; no máximo um por dia da semana.
func (w Week) DayFor(d Weekday) (Day, bool) {
	for _, day := range w.Days {
		if day.Day == d {
			return day, true
		}
	}
	return Day{}, false
}

// Clone copia a semana para que operações do motor devolvam valores
// novos em vez de mutar o argumento.
func (w Week) Clone() Week {
	out := w
	out.Days = append([]Day(nil), w.Days...)
	return out
}

// EffectiveTimezone resolve a cadeia de fallback do dia:
// fuso do dia → fuso principal do truck → fuso padrão da plataforma.
func (w Week) EffectiveTimezone(d Day) string {
	if d.Timezone != "" {
		return d.Timezone
	}
	if w.PrimaryTimezone != "" {
		return w.PrimaryTimezone
	}
	return timezone.DefaultTimezone
}
