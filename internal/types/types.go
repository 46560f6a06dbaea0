// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles:
// handlers, the gpa calculator, and utils can all import types without
// depending on each other.
package types

// Course is one entry of a student's course list.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  controls how the field appears in the request body.
//
//  2. validate:"..." holds the rules checked by the go-playground/validator
//     package. "grade" is a custom tag registered in internal/validate;
//     it accepts only the nine letter grades of the weight table.
//
// Credits is a pointer so a missing "credits" key (nil) can be told apart
// from an explicit 0: "required" rejects nil, "min=0" then checks the value.
type Course struct {
	CourseCode string `json:"course_code" validate:"required"`
	CourseName string `json:"course_name" validate:"required"`
	Credits    *int   `json:"credits"     validate:"required,min=0"`
	Grade      string `json:"grade"       validate:"grade"`
}

// StudentRequest is the body of POST /score.
//
// Courses may be an empty list, but the key itself must be present:
// "dive" makes the validator check every Course in the slice.
type StudentRequest struct {
	StudentID string   `json:"student_id" validate:"required"`
	Name      string   `json:"name"       validate:"required"`
	Courses   []Course `json:"courses"    validate:"required,dive"`
}

// StudentSummary is the computed result for one student.
// GPA is already rounded to two decimal places.
type StudentSummary struct {
	StudentID    string  `json:"student_id"`
	Name         string  `json:"name"`
	GPA          float64 `json:"gpa"`
	TotalCredits int     `json:"total_credits"`
}

// ScoreResponse is the success envelope of POST /score.
type ScoreResponse struct {
	StudentSummary StudentSummary `json:"student_summary"`
}
