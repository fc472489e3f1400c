package errors

import "net/http"

const (
	CodeFetch         = "FETCH_ERROR"
	CodeNotFound      = "MOSQUE_NOT_FOUND"
	CodeMapInit       = "MAP_INIT_ERROR"
	CodeInvalidInput  = "INVALID_REQUEST"
	CodeUnknownMarker = "UNKNOWN_MARKER"
	CodeInternal      = "INTERNAL_SERVER_ERROR"
)

var (
	// ErrFetch - transport failure, non-success status or an unusable payload from the upstream
	ErrFetch = New(
		CodeFetch,
		"Failed to fetch data",
		http.StatusBadGateway,
	)

	// ErrNotFound - the upstream reports the mosque as absent
	ErrNotFound = New(
		CodeNotFound,
		"Mosque not found",
		http.StatusNotFound,
	)

	// ErrMapInit - the map widget could not be constructed
	ErrMapInit = New(
		CodeMapInit,
		"Failed to initialize map",
		http.StatusInternalServerError,
	)

	ErrUnknownMarker = New(
		CodeUnknownMarker,
		"No marker for this mosque on the map",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		CodeInvalidInput,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		CodeInternal,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
