package gallery

import "errors"

var (
	ErrEmptyDocument     = errors.New("gallery: catalog document is empty")
	ErrFailedToParseYAML = errors.New("gallery: failed to parse catalog YAML")
	ErrFailedToReadFile  = errors.New("gallery: failed to read catalog file")
	ErrMissingFullImage  = errors.New("gallery: item has no full-size image")
	ErrMissingID         = errors.New("gallery: item id cannot be derived")
	ErrDuplicateID       = errors.New("gallery: duplicate item id")
	ErrItemNotFound      = errors.New("gallery: item not found")
)
