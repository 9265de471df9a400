package vaccinations

import "time"

// Urgency clasifica un registro respecto a "hoy". Nunca se persiste:
// se recalcula en cada consulta.
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyUpcoming Urgency = "upcoming"
	UrgencyUpToDate Urgency = "completed"
)

const upcomingWindow = 7 * 24 * time.Hour

// NextDue deriva la próxima fecha de vacunación a partir del tipo y la
// fecha administrada/planificada. Aritmética de calendario (AddDate) y
// resultado normalizado a fecha sin hora.
//
//	complex, rabies, other  +1 año
//	parasites               +3 meses
//	diseases                +6 meses
//	tipo desconocido        +1 año (fallback)
func NextDue(t Type, vaccinationDate time.Time) time.Time {
	d := DateOnly(vaccinationDate)
	switch t {
	case TypeParasites:
		return d.AddDate(0, 3, 0)
	case TypeDiseases:
		return d.AddDate(0, 6, 0)
	default:
		return d.AddDate(1, 0, 0)
	}
}

// Classify es una función pura de (hoy, registro):
//   - sin próxima fecha            => al día
//   - próxima fecha < hoy          => overdue
//   - próxima fecha a <= 7 días    => upcoming
//   - resto                        => al día (cómodamente agendado)
func Classify(today time.Time, v Vaccination) Urgency {
	if v.NextVaccinationDate == nil {
		return UrgencyUpToDate
	}

	d := DateOnly(today)
	next := DateOnly(*v.NextVaccinationDate)

	if next.Before(d) {
		return UrgencyOverdue
	}
	if next.Sub(d) <= upcomingWindow {
		return UrgencyUpcoming
	}
	return UrgencyUpToDate
}

// DateOnly descarta la hora y normaliza a medianoche UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
