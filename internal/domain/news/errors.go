package news

import "errors"

var ErrNewsNotFound = errors.New("news item not found")
