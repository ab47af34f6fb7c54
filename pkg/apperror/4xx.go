package apperror

import (
	"net/http"
)

const (
	BindingCode        = "400001"
	ValidationCode     = "400002"
	EntityNotFoundCode = "404003"
	ConflictCode       = "409004"
)

// 400 Bad Request
func ErrInvalidRequest(err error) Error {
	return NewError(err, http.StatusBadRequest, BindingCode, "Invalid request")
}

func ErrInvalidParam(err error) Error {
	return NewError(err, http.StatusBadRequest, ValidationCode, "Invalid param")
}

// 404 Not Found
func ErrEntityNotFound(err error) Error {
	return NewError(err, http.StatusNotFound, EntityNotFoundCode, "No such account")
}

// 409 Conflict
func ErrAlreadyExists(err error) Error {
	return NewError(err, http.StatusConflict, ConflictCode, "Already exists")
}

func ErrConflict(err error) Error {
	return NewError(err, http.StatusConflict, ConflictCode, "Conflict")
}
