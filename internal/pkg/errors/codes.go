package errors

import "net/http"

const (
	CodeUpstreamError    = "UPSTREAM_ERROR"
	CodeLocationNotFound = "LOCATION_NOT_FOUND"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInternalServer   = "INTERNAL_SERVER_ERROR"
)

var (
	ErrLocationNotFound = New(
		CodeLocationNotFound,
		"No location found for the given coordinates",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		CodeInvalidRequest,
		"Invalid request parameters",
		http.StatusUnprocessableEntity,
	)

	ErrInternalServer = New(
		CodeInternalServer,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
