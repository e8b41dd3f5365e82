package domain

import "errors"

var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidRange  = errors.New("period start date is after end date")
	ErrInvalidPeriod = errors.New("malformed period selector")
	ErrUpstreamFetch = errors.New("transaction fetch failed")
)
