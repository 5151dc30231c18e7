package people

import (
	"context"
	"errors"
)

// NameOf expone el nombre de una persona para el historial "dado".
// Se usa para evitar el import people <-> history.
func (s *Service) NameOf(ctx context.Context, personID string) (string, bool, error) {
	p, err := s.GetByID(ctx, personID)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
			return "", false, nil
		}
		return "", false, err
	}
	return p.Name, true, nil
}
