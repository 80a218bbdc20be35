package dataset

import "errors"

var (
	// ErrFetchFailed wraps any failure to download the default dataset
	ErrFetchFailed = errors.New("failed to fetch default dataset")

	// ErrNoDefaultURL is returned when a default load is requested but no URL is configured
	ErrNoDefaultURL = errors.New("no default dataset URL configured")
)
