// Package httpx holds the JSON response helpers and middleware shared by the
// gateway's handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"Atelier/internal/fault"
)

// maxRequestBody bounds JSON request bodies.
const maxRequestBody = 8 << 20

type ErrorBody struct {
	Code    int    `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[api] encode response: %v", err)
	}
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, ErrorBody{Code: status, Error: code, Message: message})
}

// WriteFault maps a classified error to its HTTP status.
func WriteFault(w http.ResponseWriter, err error) {
	kind := fault.KindOf(err)
	WriteError(w, fault.HTTPStatus(kind), string(kind), err.Error())
}

// ReadJSON decodes the body into target. An empty body leaves target untouched.
func ReadJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(target)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fault.Wrap(fault.KindValidation, err, "invalid request payload")
	}
	return nil
}

// ReadObject decodes the body as a JSON object. An empty body is an empty object.
func ReadObject(r *http.Request) (map[string]any, error) {
	body := map[string]any{}
	if err := ReadJSON(r, &body); err != nil {
		return nil, err
	}
	if body == nil {
		body = map[string]any{}
	}
	return body, nil
}
