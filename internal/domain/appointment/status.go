package appointment

// ===============================
// Appointment Status
// ===============================

// Los valores son los que viajan por la API y se guardan en la base,
// en español, como los espera el frontend de la clínica.
type Status string

const (
	// Estado inicial de toda cita agendada por un cliente.
	StatusAwaiting Status = "en espera de atención"

	StatusInAttention Status = "en proceso de atención"
	StatusAttended    Status = "atendida"

	// Estado terminal de las citas derivadas de un plan de cuidado;
	// solo se crea directo o vía el plan, nunca por transición normal.
	StatusVisit Status = "visita"
)

func InitialStatus() Status {
	return StatusAwaiting
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusAwaiting, StatusInAttention, StatusAttended, StatusVisit:
		return true
	}
	return false
}
