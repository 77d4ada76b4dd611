package models

import "time"

// ServiceItem es una línea del carrito de servicios de una cita.
// El orden de inserción define el recibo, por eso la lista completa
// se guarda como JSONB en vez de una tabla aparte.
type ServiceItem struct {
	Nombre string  `json:"nombre"`
	Precio float64 `json:"precio"`
	Fijo   bool    `json:"fijo"`
}

type ServiceItems []ServiceItem

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Referencia débil: puede quedar en null si el nombre de la mascota
	// no resuelve, y no hay FK que la haga cumplir.
	PetID *string `gorm:"size:36;index" json:"idMascota"`

	ClientName   string `gorm:"size:100;not null" json:"cliente"`
	ContactEmail string `gorm:"size:100;not null" json:"correo"`

	// Interpretado en la zona de la clínica, persistido en UTC.
	ScheduledAt time.Time `gorm:"index;not null" json:"fechaHora"`

	Note string `gorm:"size:500" json:"comentario"`

	Status string `gorm:"size:40;default:'en espera de atención'" json:"estado"`

	Services ServiceItems `gorm:"type:jsonb;serializer:json" json:"servicios"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
