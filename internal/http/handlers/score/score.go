// Package score contains the HTTP handler for the GPA calculation endpoint.
//
// HANDLER PATTERN USED HERE: THE CLOSURE / FACTORY PATTERN
// ─────────────────────────────────────────────────────────
// The router expects func(http.ResponseWriter, *http.Request). New takes
// the dependencies (the shared validator and the body size limit) once at
// startup and returns a handler that closes over them:
//
//	router.HandleFunc("POST /score", score.New(v, cfg.MaxBodyBytes))
package score

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/gpa-api/internal/gpa"
	"github.com/aanand-mishra/gpa-api/internal/http/middleware"
	"github.com/aanand-mishra/gpa-api/internal/types"
	"github.com/aanand-mishra/gpa-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /score
// Computes the credit-weighted GPA for one student.
//
// Request body (JSON):
//
//	{
//	  "student_id": "s-001",
//	  "name": "Rakesh",
//	  "courses": [
//	    { "course_code": "CS101", "course_name": "Intro", "credits": 3, "grade": "B+" },
//	    { "course_code": "MA101", "course_name": "Calculus", "credits": 2, "grade": "A" }
//	  ]
//	}
//
// Success response (200 OK):
//
//	{ "student_summary": { "student_id": "s-001", "name": "Rakesh", "gpa": 3.7, "total_credits": 5 } }
//
// Error responses:
//
//	400 Bad Request           empty body, malformed JSON, or zero total credits
//	413 Request Entity Too Large  body exceeds maxBodyBytes
//	422 Unprocessable Entity  failed validation (unknown grade, missing or negative
//	                          credits, missing fields, wrong JSON types, credit
//	                          total too large for an int)
//
// ─────────────────────────────────────────────────────────────────────────────
func New(v *validator.Validate, maxBodyBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqID := middleware.GetRequestID(r.Context())
		slog.Info("calculating score", slog.String("request_id", reqID))

		// ── Step 1: Decode JSON body into a StudentRequest ────────────────
		if maxBodyBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}

		var req types.StudentRequest
		err := json.NewDecoder(r.Body).Decode(&req)

		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.WriteJSON(w, http.StatusRequestEntityTooLarge,
				response.GeneralError(errors.New("request body is too large")))
			return
		}

		// Wrong value types ("credits": "3", "credits": 3.5) are schema
		// failures and get the validator's 422.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			response.WriteJSON(w, http.StatusUnprocessableEntity, response.TypeError(typeErr))
			return
		}

		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// ── Step 2: Validate before any arithmetic runs ───────────────────
		if err := v.Struct(req); err != nil {
			var validateErrs validator.ValidationErrors
			if !errors.As(err, &validateErrs) {
				response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
				return
			}
			slog.Debug("score request failed validation",
				slog.String("request_id", reqID),
				slog.Int("errors", len(validateErrs)))
			response.WriteJSON(w, http.StatusUnprocessableEntity,
				response.ValidationError(validateErrs))
			return
		}

		// ── Step 3: Aggregate ─────────────────────────────────────────────
		summary, err := gpa.Calculate(req)
		if err != nil {
			status := statusFor(err)
			if status == http.StatusInternalServerError {
				slog.Error("error calculating score",
					slog.String("request_id", reqID),
					slog.String("error", err.Error()))
			}
			response.WriteJSON(w, status, response.GeneralError(err))
			return
		}

		slog.Info("score calculated",
			slog.String("request_id", reqID),
			slog.String("student_id", summary.StudentID),
			slog.Int("total_credits", summary.TotalCredits))

		response.WriteJSON(w, http.StatusOK, types.ScoreResponse{StudentSummary: summary})
	}
}

// statusFor maps a gpa.Calculate error to its HTTP status code.
func statusFor(err error) int {
	var (
		gradeErr    *gpa.InvalidGradeError
		creditsErr  *gpa.InvalidCreditsError
		overflowErr *gpa.CreditsOverflowError
	)

	switch {
	case errors.Is(err, gpa.ErrZeroCredits):
		return http.StatusBadRequest
	case errors.As(err, &gradeErr), errors.As(err, &creditsErr), errors.As(err, &overflowErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
