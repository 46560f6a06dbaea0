package validate

import (
	"testing"

	"github.com/aanand-mishra/gpa-api/internal/gpa"
	"github.com/aanand-mishra/gpa-api/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func credits(n int) *int { return &n }

func validRequest() types.StudentRequest {
	return types.StudentRequest{
		StudentID: "s-001",
		Name:      "Priya",
		Courses: []types.Course{
			{CourseCode: "CS101", CourseName: "Intro", Credits: credits(3), Grade: "A"},
		},
	}
}

func fieldErrors(t *testing.T, err error) validator.ValidationErrors {
	t.Helper()
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	return verrs
}

func TestNew_AcceptsEveryGrade(t *testing.T) {
	v := New()
	for _, g := range gpa.Grades() {
		req := validRequest()
		req.Courses[0].Grade = string(g)
		assert.NoError(t, v.Struct(req), g)
	}
}

func TestNew_RejectsUnknownGrade(t *testing.T) {
	v := New()
	for _, g := range []string{"X", "", "a", " A", "A-"} {
		req := validRequest()
		req.Courses[0].Grade = g

		verrs := fieldErrors(t, v.Struct(req))
		require.Len(t, verrs, 1, g)
		assert.Equal(t, GradeTag, verrs[0].Tag())
		assert.Equal(t, "grade", verrs[0].Field())
		assert.Equal(t, "StudentRequest.courses[0].grade", verrs[0].Namespace())
		assert.Equal(t, g, verrs[0].Value())
	}
}

func TestNew_EmptyCourseListIsValid(t *testing.T) {
	req := validRequest()
	req.Courses = []types.Course{}
	assert.NoError(t, New().Struct(req))
}

func TestNew_MissingCourses(t *testing.T) {
	req := validRequest()
	req.Courses = nil

	verrs := fieldErrors(t, New().Struct(req))
	assert.Equal(t, "courses", verrs[0].Field())
	assert.Equal(t, "required", verrs[0].Tag())
}

func TestNew_NegativeCredits(t *testing.T) {
	req := validRequest()
	req.Courses[0].Credits = credits(-1)

	verrs := fieldErrors(t, New().Struct(req))
	assert.Equal(t, "credits", verrs[0].Field())
	assert.Equal(t, "min", verrs[0].Tag())
}

func TestNew_MissingCredits(t *testing.T) {
	req := validRequest()
	req.Courses[0].Credits = nil

	verrs := fieldErrors(t, New().Struct(req))
	require.Len(t, verrs, 1)
	assert.Equal(t, "StudentRequest.courses[0].credits", verrs[0].Namespace())
	assert.Equal(t, "required", verrs[0].Tag())
}

func TestNew_EmptyCourseIdentity(t *testing.T) {
	req := validRequest()
	req.Courses[0].CourseCode = ""
	req.Courses[0].CourseName = ""

	verrs := fieldErrors(t, New().Struct(req))

	var fields []string
	for _, e := range verrs {
		assert.Equal(t, "required", e.Tag())
		fields = append(fields, e.Field())
	}
	assert.ElementsMatch(t, []string{"course_code", "course_name"}, fields)
}

func TestNew_ZeroCreditsPassValidation(t *testing.T) {
	req := validRequest()
	req.Courses[0].Credits = credits(0)
	assert.NoError(t, New().Struct(req))
}

func TestNew_RequiredIdentity(t *testing.T) {
	verrs := fieldErrors(t, New().Struct(types.StudentRequest{Courses: []types.Course{}}))

	var fields []string
	for _, e := range verrs {
		fields = append(fields, e.Field())
	}
	assert.ElementsMatch(t, []string{"student_id", "name"}, fields)
}
