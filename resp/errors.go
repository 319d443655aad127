package resp

import "net/http"

func newResponse(status int, message string, errs ...any) *Exception {
	r := &Exception{Status: status, Message: message}
	if len(errs) > 0 {
		r.Errors = errs[0]
	}
	return r
}

// UnAuthorized indicates that the request is unauthorized.
func UnAuthorized(message string) *Exception {
	return newResponse(http.StatusUnauthorized, message)
}

// BadRequest indicates a bad request, errs carries per-field details.
func BadRequest(message string, errs ...any) *Exception {
	return newResponse(http.StatusBadRequest, message, errs...)
}

// NotFound indicates that the requested resource is not found.
func NotFound(message string) *Exception {
	return newResponse(http.StatusNotFound, message)
}

// InternalServer indicates a server error.
func InternalServer(message string) *Exception {
	return newResponse(http.StatusInternalServerError, message)
}
