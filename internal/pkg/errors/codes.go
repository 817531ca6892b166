package errors

import "net/http"

var (
	ErrInvalidFilter = New(
		"INVALID_FILTER",
		"Invalid filter parameters",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrUpstreamRequestFailed = New(
		"REQUEST_FAILED",
		"Trip API request failed",
		http.StatusBadGateway,
	)

	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Dashboard session not found",
		http.StatusNotFound,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
