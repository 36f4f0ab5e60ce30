package schedule

import (
	"time"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/httperr"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/timezone"
)

// parseClock converte "HH:MM" em minutos desde a meia-noite.
func parseClock(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, httperr.ErrBusiness("malformed_time")
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsWithinWindow verifica se now cai dentro da janela openTime/closeTime
// interpretada no fuso tz. Abertura inclusiva, fechamento exclusivo.
//
// Quando closeTime <= openTime a janela cruza a meia-noite (ex.: truck
// das 23:00 às 02:00) e vale: t >= openTime OU t < closeTime.
//
// O chamador resolve a cadeia de fallback de fuso antes de chamar;
// aqui um fuso não resolvível é erro (invalid_timezone).
func IsWithinWindow(now time.Time, openTime, closeTime, tz string) (bool, error) {
	loc, err := timezone.Resolve(tz)
	if err != nil {
		return false, httperr.ErrBusiness("invalid_timezone")
	}

	open, err := parseClock(openTime)
	if err != nil {
		return false, err
	}

	close, err := parseClock(closeTime)
	if err != nil {
		return false, err
	}

	local := now.In(loc)
	cur := local.Hour()*60 + local.Minute()

	if close > open {
		return cur >= open && cur < close, nil
	}

	return cur >= open || cur < close, nil
}
