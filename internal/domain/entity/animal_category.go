package entity

import "time"

// AnimalCategory clasifica la media res comprada (vaquillona, novillo, overo).
// Identidad por nombre; inmutable una vez referenciada por plantillas, solo se desactiva.
type AnimalCategory struct {
	ID          string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
}
