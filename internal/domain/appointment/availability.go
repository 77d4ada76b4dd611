package appointment

import (
	"time"

	"github.com/luxepet-health/clinic-api/internal/models"
	"github.com/luxepet-health/clinic-api/internal/timezone"
)

// La clínica atiende 9 bloques fijos de una hora, de las 9 a las 17.
const (
	OpenHour  = 9
	CloseHour = 17
)

type Availability struct {
	Fecha            string `json:"fecha"`
	HorasDisponibles []int  `json:"horasDisponibles"`
}

// OccupiedHours extrae la hora local de la clínica de cada cita del día.
// Varias citas en la misma hora cuentan como una sola hora ocupada.
func OccupiedHours(citas []models.Appointment) map[int]bool {
	loc := timezone.Location()
	occupied := make(map[int]bool, len(citas))
	for _, cita := range citas {
		occupied[cita.ScheduledAt.In(loc).Hour()] = true
	}
	return occupied
}

// FreeHours es {9..17} menos las horas ocupadas, en orden ascendente.
// Es solo informativo: el agendado no lo vuelve a validar.
func FreeHours(citas []models.Appointment) []int {
	occupied := OccupiedHours(citas)

	free := make([]int, 0, CloseHour-OpenHour+1)
	for h := OpenHour; h <= CloseHour; h++ {
		if !occupied[h] {
			free = append(free, h)
		}
	}
	return free
}

// DayBounds delimita [00:00, 24h) del día en hora local de la clínica.
func DayBounds(date time.Time) (time.Time, time.Time) {
	loc := timezone.Location()
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return start, start.Add(24 * time.Hour)
}
