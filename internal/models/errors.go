package models

import "errors"

// ErrUnknownCategory is returned when a category name does not match any bucket
var ErrUnknownCategory = errors.New("unknown category (must be: ghosted, postponed, inprogress, completed)")
