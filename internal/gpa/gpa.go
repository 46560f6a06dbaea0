package gpa

import (
	"errors"
	"fmt"
	"math"

	"github.com/aanand-mishra/gpa-api/internal/types"
)

// RoundingBias is added to the raw average before rounding so that .xx5
// boundaries round up, including ones whose float64 form sits just below
// the midpoint (2.675 is stored as 2.67499999...).
const RoundingBias = 1e-8

// ErrZeroCredits is returned when the course list carries no credits at all.
// The message is part of the public API response and must not change.
var ErrZeroCredits = errors.New("Total credits cannot be zero")

// InvalidCreditsError reports a course whose credit count is missing or
// negative.
type InvalidCreditsError struct {
	CourseCode string
	Credits    int
	Missing    bool
}

func (e *InvalidCreditsError) Error() string {
	if e.Missing {
		return fmt.Sprintf("course %s: credits are required", e.CourseCode)
	}
	return fmt.Sprintf("course %s: credits must be non-negative, got %d", e.CourseCode, e.Credits)
}

// CreditsOverflowError reports a course list whose credit total does not
// fit in an int.
type CreditsOverflowError struct {
	CourseCode string
}

func (e *CreditsOverflowError) Error() string {
	return fmt.Sprintf("course %s: total credits exceed %d", e.CourseCode, math.MaxInt)
}

// Calculate reduces req.Courses into a StudentSummary.
//
// Every course contributes weight(grade) * credits to the weighted score
// and credits to the credit total. The GPA is the biased, rounded ratio of
// the two. StudentID and Name are copied through untouched.
//
// Errors:
//   - *InvalidGradeError when a course grade is outside the grade set
//   - *InvalidCreditsError when a course has missing or negative credits
//   - *CreditsOverflowError when the credit total would overflow int
//   - ErrZeroCredits when the credit total is zero
func Calculate(req types.StudentRequest) (types.StudentSummary, error) {
	var (
		totalScore   float64
		totalCredits int
	)

	for i, course := range req.Courses {
		grade, err := ParseGrade(course.Grade)
		if err != nil {
			return types.StudentSummary{}, fmt.Errorf("course %d: %w", i, err)
		}
		if course.Credits == nil {
			return types.StudentSummary{}, &InvalidCreditsError{
				CourseCode: course.CourseCode,
				Missing:    true,
			}
		}

		credits := *course.Credits
		if credits < 0 {
			return types.StudentSummary{}, &InvalidCreditsError{
				CourseCode: course.CourseCode,
				Credits:    credits,
			}
		}
		// totalCredits is never negative here, so the subtraction is safe.
		if credits > math.MaxInt-totalCredits {
			return types.StudentSummary{}, &CreditsOverflowError{CourseCode: course.CourseCode}
		}

		w, _ := grade.Weight()
		totalScore += w * float64(credits)
		totalCredits += credits
	}

	if totalCredits == 0 {
		return types.StudentSummary{}, ErrZeroCredits
	}

	return types.StudentSummary{
		StudentID:    req.StudentID,
		Name:         req.Name,
		GPA:          Round2(totalScore/float64(totalCredits) + RoundingBias),
		TotalCredits: totalCredits,
	}, nil
}

// Round2 rounds v to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
