package service

import "errors"

// ErrNotFound marks domain lookups that missed, either because the row does
// not exist or because it was soft-deleted. Controllers map it to 404.
var ErrNotFound = errors.New("record not found")
