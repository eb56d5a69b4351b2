package zoo

import "errors"

// Errores del dominio. Las violaciones de unicidad e integridad referencial
// las detecta la capa de persistencia al escribir; acá solo se tipifican
// para que el caller pueda hacer errors.Is sin importar el adapter.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrDuplicateName = errors.New("duplicate name")
	ErrForeignKey    = errors.New("referenced row does not exist or is still referenced")
)
