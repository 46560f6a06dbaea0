// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Every handler in this application sends JSON back to the client.
// Rather than repeating the same three lines (set header, set status,
// encode JSON) in every handler, we centralise them here.
//
// Consistent response shapes also make life easier for API consumers:
// they always know what error responses look like.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ─────────────────────────────────────────────────────────────────────────────
// Response is the standard envelope returned for error cases.
//
// Success responses carry their own shape ({"student_summary": {...}}).
// Error responses always look like:
//
//	{ "status": "error", "error": "Total credits cannot be zero" }
//
// Validation failures also list every offending field:
//
//	{
//	  "status": "error",
//	  "error":  "field courses[0].grade has invalid grade \"X\"",
//	  "fields": [ { "field": "courses[0].grade", "tag": "grade", "value": "X" } ]
//	}
//
// ─────────────────────────────────────────────────────────────────────────────
type Response struct {
	Status string       `json:"status"`           // "ok" or "error"
	Error  string       `json:"error"`            // human-readable error detail
	Fields []FieldError `json:"fields,omitempty"` // only set for validation and type failures
}

// FieldError names one field that failed validation.
type FieldError struct {
	Field string `json:"field"` // JSON path, e.g. "courses[0].grade"
	Tag   string `json:"tag"`   // rule that failed, e.g. "grade", "required"
	Value any    `json:"value"` // the value the client sent
}

// Status string constants, so a typo is caught by the compiler rather
// than silently sending "eroor".
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ─────────────────────────────────────────────────────────────────────────────
// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
// ─────────────────────────────────────────────────────────────────────────────
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into our standard Response shape.
// Use this for decode errors, domain errors and anything unexpected.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// ValidationError converts a slice of validator.FieldError values into
// a single Response.
//
// Each FieldError becomes a plain English sentence (joined with ", " into
// Error) and a structured FieldError entry naming the JSON path and the
// rejected value.
// ─────────────────────────────────────────────────────────────────────────────
func ValidationError(errs validator.ValidationErrors) Response {
	var (
		errMessages []string
		fields      []FieldError
	)

	for _, e := range errs {
		path := fieldPath(e)

		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", path))
		case "grade":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s has invalid grade %q", path, fmt.Sprint(fieldValue(e))))
		case "min":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be at least %s", path, e.Param()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", path))
		}

		fields = append(fields, FieldError{
			Field: path,
			Tag:   e.ActualTag(),
			Value: fieldValue(e),
		})
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMessages, ", "),
		Fields: fields,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// TypeError reports a JSON value whose type does not match the field it
// was sent for, e.g. "credits": "3" or "credits": 3.5.
//
// The decoder only names the path of JSON keys (no slice indexes), so the
// field reads "courses.credits" rather than "courses[0].credits".
// ─────────────────────────────────────────────────────────────────────────────
func TypeError(err *json.UnmarshalTypeError) Response {
	field := err.Field
	if field == "" {
		field = "body"
	}

	return Response{
		Status: StatusError,
		Error:  fmt.Sprintf("field %s must be %s, got %s", field, err.Type, err.Value),
		Fields: []FieldError{{
			Field: field,
			Tag:   "type",
			Value: err.Value,
		}},
	}
}

// fieldValue unwraps pointer fields so a client sees -2 rather than an
// address, and null for a field that was never sent.
func fieldValue(e validator.FieldError) any {
	v := reflect.ValueOf(e.Value())
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}

// fieldPath drops the root struct name from the namespace:
// "StudentRequest.courses[0].grade" becomes "courses[0].grade".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
