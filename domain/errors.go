package domain

import "errors"

var (
	// ErrNotFound is returned when a catalog record does not exist
	ErrNotFound = errors.New("not found")

	// ErrLocationRequired is returned when a search radius is set without a requester location
	ErrLocationRequired = errors.New("location is required when locationRadius is set")

	// ErrCatalogUnavailable is returned when the catalog snapshot cannot be fetched
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrInvalidID is returned when an identifier cannot be parsed
	ErrInvalidID = errors.New("invalid id")
)

// ErrCacheMiss is returned when a snapshot is not in the cache
var ErrCacheMiss = errors.New("cache miss")
