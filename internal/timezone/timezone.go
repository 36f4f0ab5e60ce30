package timezone

import "time"

// Fuso padrão da plataforma; último degrau da cadeia de fallback.
const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Resolve carrega o fuso sem fallback; o chamador decide o que fazer
// com um identificador inválido.
func Resolve(tz string) (*time.Location, error) {
	return time.LoadLocation(tz)
}

// Location resolve tz com fallback para o fuso padrão.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
