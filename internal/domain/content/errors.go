package content

import "errors"

var (
	ErrSectionNotFound = errors.New("section content not found")
	ErrUnknownSection  = errors.New("unknown section")
)
