package errors

import "net/http"

var (
	ErrNoLocation = New(
		"NO_LOCATION",
		"No registered location",
		http.StatusNotFound,
	)

	ErrNoStopsAvailable = New(
		"NO_STOPS_AVAILABLE",
		"No stops available",
		http.StatusNotFound,
	)

	ErrNoActivePlan = New(
		"NO_ACTIVE_PLAN",
		"No active plan",
		http.StatusNotFound,
	)

	ErrNotFound = New(
		"NOT_FOUND",
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidUpload = New(
		"INVALID_UPLOAD",
		"Uploaded file could not be processed",
		http.StatusBadRequest,
	)

	ErrMissingFile = New(
		"MISSING_FILE",
		"No file",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Forbidden",
		http.StatusForbidden,
	)

	ErrConflict = New(
		"CONFLICT",
		"Resource already exists",
		http.StatusConflict,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
