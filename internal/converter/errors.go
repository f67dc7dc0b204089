package converter

import "errors"

var (
	ErrInvalidLanguage = errors.New("converter: invalid language identifier")
	ErrSameLanguage    = errors.New("converter: source and target languages must differ")
)
