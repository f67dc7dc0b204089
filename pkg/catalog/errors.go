package catalog

import "errors"

var (
	ErrNotFound          = errors.New("catalog: file not found")
	ErrParse             = errors.New("catalog: invalid catalog document")
	ErrUnsupportedFormat = errors.New("catalog: unsupported file format")
	ErrInvalidEncoding   = errors.New("catalog: document is not valid UTF-8")
	ErrMissingSection    = errors.New("catalog: language section is missing")
	ErrInvalidSection    = errors.New("catalog: language section is not a mapping")
	ErrKeyCollision      = errors.New("catalog: duplicate key")
)
