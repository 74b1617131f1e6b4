package matches

import "errors"

var ErrMatchNotFound = errors.New("match not found")
