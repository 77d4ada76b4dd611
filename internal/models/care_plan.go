package models

import "time"

// PlanVisit es la proyección {fecha, descripcion} de una cita con estado
// "visita". La lista embebida del plan debe reflejar las citas-visita
// vivas de la mascota al momento de la última escritura del plan.
type PlanVisit struct {
	Fecha       time.Time `json:"fecha"`
	Descripcion string    `json:"descripcion"`
}

type PlanVisits []PlanVisit

type CarePlan struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// A lo más un plan activo por mascota; se hace cumplir por
	// buscar-y-reemplazar, no por índice único.
	PetID string `gorm:"size:36;index;not null" json:"idMascota"`

	Diet     string `gorm:"size:500;not null" json:"dieta"`
	Exercise string `gorm:"size:500;not null" json:"ejercicio"`

	Visits PlanVisits `gorm:"type:jsonb;serializer:json" json:"visitas"`

	// Copias desnormalizadas; no se sincronizan con la mascota.
	OwnerEmail string `gorm:"size:100;not null" json:"correoDueno"`
	OwnerName  string `gorm:"size:100;not null" json:"nombreDueno"`
	PetName    string `gorm:"size:100;not null" json:"nombreMascota"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
