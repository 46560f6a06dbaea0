// Package gpa computes a credit-weighted grade-point average from a
// student's course list.
//
// The package is pure: no I/O, no shared mutable state. The grade weight
// table is built once at package init and only ever read, so Calculate is
// safe to call from any number of goroutines at the same time.
package gpa

import "fmt"

// Grade is a letter grade from the closed set of the weight table.
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeCPlus Grade = "C+"
	GradeC     Grade = "C"
	GradeDPlus Grade = "D+"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// weights maps every valid grade to its numeric value on the 0.0-4.5 scale.
// Never mutated after init.
var weights = map[Grade]float64{
	GradeAPlus: 4.5,
	GradeA:     4.0,
	GradeBPlus: 3.5,
	GradeB:     3.0,
	GradeCPlus: 2.5,
	GradeC:     2.0,
	GradeDPlus: 1.5,
	GradeD:     1.0,
	GradeF:     0.0,
}

// Grades returns every valid grade, highest first.
func Grades() []Grade {
	return []Grade{
		GradeAPlus, GradeA, GradeBPlus, GradeB,
		GradeCPlus, GradeC, GradeDPlus, GradeD, GradeF,
	}
}

// Weight returns the numeric value of g. ok is false when g is not a
// member of the grade set.
func (g Grade) Weight() (w float64, ok bool) {
	w, ok = weights[g]
	return w, ok
}

func (g Grade) String() string { return string(g) }

// InvalidGradeError reports a grade string outside the grade set.
type InvalidGradeError struct {
	Value string
}

func (e *InvalidGradeError) Error() string {
	return fmt.Sprintf("invalid grade %q", e.Value)
}

// ParseGrade checks value against the grade set. The match is exact:
// "a", " A" and "" are all rejected.
func ParseGrade(value string) (Grade, error) {
	g := Grade(value)
	if _, ok := weights[g]; !ok {
		return "", &InvalidGradeError{Value: value}
	}
	return g, nil
}

// IsValidGrade reports whether value is a member of the grade set.
func IsValidGrade(value string) bool {
	_, ok := weights[Grade(value)]
	return ok
}
