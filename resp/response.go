package resp

import (
	"encoding/json"
	"net/http"
)

// Exception represents the response structure.
type Exception struct {
	Status  int    `json:"-"`                 // HTTP status
	Message string `json:"message,omitempty"` // Message
	Errors  any    `json:"errors,omitempty"`  // Validation errors
	Data    any    `json:"-"`                 // Response data
}

// Success writes data as the JSON body with status 200.
func Success(w http.ResponseWriter, data any, status ...int) {
	code := http.StatusOK
	if len(status) > 0 && status[0] != 0 {
		code = status[0]
	}
	if data == nil {
		data = map[string]any{"ok": true}
	}
	write(w, code, data)
}

// Fail writes the failure response.
func Fail(w http.ResponseWriter, r *Exception) {
	status, result := fail(r)
	write(w, status, result)
}

// fail builds the failure response.
func fail(r *Exception) (int, *Exception) {
	if r == nil {
		r = &Exception{}
	}
	status := http.StatusBadRequest
	if r.Status != 0 {
		status = r.Status
	}
	message := r.Message
	if message == "" {
		message = http.StatusText(status)
	}
	return status, &Exception{
		Status:  status,
		Message: message,
		Errors:  r.Errors,
	}
}

// write writes res as JSON with the given status code.
func write(w http.ResponseWriter, code int, res any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(res)
}
