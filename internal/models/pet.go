package models

import "time"

type PetAllergies struct {
	Existe        bool   `json:"existe"`
	Observaciones string `json:"observaciones"`
}

type PetFeeding struct {
	Estado        string `json:"estado"`
	Observaciones string `json:"observaciones"`
}

type RelatedPerson struct {
	Nombre   string `json:"nombre"`
	Relacion string `json:"relacion"`
}

type RelatedPersons []RelatedPerson

type Veterinarian struct {
	Nombre  string `json:"nombre"`
	Clinica string `json:"clinica"`
}

type PetService struct {
	Nombre string  `json:"nombre"`
	Precio float64 `json:"precio"`
}

type PetServices []PetService

type Pet struct {
	ID string `gorm:"primaryKey;size:36" json:"idMascota"`

	// Folio único, asignado en orden de alta por un contador atómico.
	FolioNumber int64 `gorm:"uniqueIndex;not null" json:"numeroFolio"`

	Name    string  `gorm:"size:100;not null;index" json:"nombreMascota"`
	Species string  `gorm:"size:50;not null" json:"especie"`
	Breed   string  `gorm:"size:100;not null" json:"raza"`
	Age     int     `gorm:"not null" json:"edad"`
	Sex     string  `gorm:"size:20;not null" json:"sexo"`
	WeightK float64 `gorm:"column:peso_kg;not null" json:"pesoKg"`

	AdmittedAt time.Time `json:"fechaIngreso"`
	BornAt     time.Time `json:"fechaNacimiento"`

	Services       PetServices    `gorm:"type:jsonb;serializer:json" json:"servicios"`
	Allergies      PetAllergies   `gorm:"type:jsonb;serializer:json" json:"alergias"`
	Feeding        PetFeeding     `gorm:"type:jsonb;serializer:json" json:"alimentacion"`
	RelatedPersons RelatedPersons `gorm:"type:jsonb;serializer:json" json:"personasRelacionadas"`
	Veterinarian   Veterinarian   `gorm:"type:jsonb;serializer:json" json:"veterinario"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FolioCounter tiene una sola fila (id = 1); el siguiente folio se toma
// con UPDATE ... RETURNING para que dos altas concurrentes nunca
// compartan número.
type FolioCounter struct {
	ID    int   `gorm:"primaryKey"`
	Value int64 `gorm:"not null"`
}
