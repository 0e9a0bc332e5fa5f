package task

import "errors"

var (
	ErrNotFound        = errors.New("task not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrEmptyPatch      = errors.New("empty patch")
)
