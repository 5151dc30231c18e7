package people

import (
	"errors"
	"strings"
	"time"
)

// Person es el registro que mueve el ledger.
// Nombre/puesto/foto los gestiona afuera el perfil; acá solo se leen.
type Person struct {
	ID       string
	Name     string
	Position string
	PhotoURL string

	ApplauseCount int
	FoodBrought   int
	PendingFood   bool

	// LastApplauseAt: último grant/revoke efectivo. nil si nunca hubo.
	LastApplauseAt *time.Time
}

var errInvalidRecord = errors.New("invalid person record")

// Validate se usa en el borde del store (decode/encode).
// Las reglas de negocio viven en el ledger.
func (p Person) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.Join(errInvalidRecord, errors.New("id required"))
	}
	if p.ApplauseCount < 0 || p.FoodBrought < 0 {
		return errors.Join(errInvalidRecord, errors.New("counters must be non-negative"))
	}
	return nil
}
