package httperr

import "errors"

// BusinessError señala una regla de negocio del taller violada,
// identificada por su código (p.ej. "propietario_requerido"). El
// usecase solo marca la regla; el handler decide el código HTTP.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reporta si err es la regla de negocio con ese código.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
