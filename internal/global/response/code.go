package response

import "net/http"

var (
	ErrValidation       = newError(http.StatusBadRequest, "validation errors")
	ErrCamperNotFound   = newError(http.StatusNotFound, "Camper not found")
	ErrActivityNotFound = newError(http.StatusNotFound, "Activity not found")
	ErrServerInternal   = newError(http.StatusInternalServerError, "internal server error")
)
