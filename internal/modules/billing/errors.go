package billing

import "errors"

var ErrNotFound = errors.New("billing record not found")
