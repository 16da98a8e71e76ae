package entity

import "time"

// Roles de un corte. Reemplazan la convención de buscar "hueso"/"grasa" en el nombre:
// el rol es un atributo modelado, no una subcadena.
const (
	CutRoleSellable = "sellable" // corte vendible (lomo, asado, nalga...)
	CutRoleBone     = "bone"     // hueso
	CutRoleFat      = "fat"      // grasa y recortes grasos
	CutRoleTrim     = "trim"     // recortes no vendibles
)

// Cut un corte o subproducto del desposte. Identidad por nombre (único).
type Cut struct {
	ID           string
	Name         string
	Description  string
	Role         string // sellable | bone | fat | trim
	DisplayOrder int
	CreatedAt    time.Time
}

// IsSellable informa si el corte se vende al público.
func (c Cut) IsSellable() bool {
	return c.Role == CutRoleSellable
}

// ValidCutRole valida el enum de rol.
func ValidCutRole(role string) bool {
	switch role {
	case CutRoleSellable, CutRoleBone, CutRoleFat, CutRoleTrim:
		return true
	}
	return false
}
