package appointment

import "errors"

// ConflictError nomeia a janela existente que colide com o horário
// proposto. É o único erro que este núcleo distingue ativamente.
type ConflictError struct {
	Window string
}

func (e ConflictError) Error() string {
	return "time_conflict: " + e.Window
}

func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}
