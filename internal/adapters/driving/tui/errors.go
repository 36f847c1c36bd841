package tui

import "errors"

// ErrMissingOverviewService is returned when the overview service is not provided.
var ErrMissingOverviewService = errors.New("tui: overview service is required")

// ErrMissingLogService is returned when the log service is not provided.
var ErrMissingLogService = errors.New("tui: log service is required")
