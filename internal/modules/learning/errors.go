package learning

import "errors"

var ErrNotFound = errors.New("module not found")
