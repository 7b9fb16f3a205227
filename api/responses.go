package api

import "github.com/jupiterp/jupiterp-go/catalog"

// Response wraps an API call outcome: the HTTP status, and either the
// parsed records or the raw error body. It is constructed once per call and
// never mutated afterward.
type Response[T any] struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// StatusMessage is the HTTP status text of the response.
	StatusMessage string

	// Data holds the parsed records, or nil if the request failed. A
	// request that succeeded with zero results has a non-nil empty Data.
	Data []T

	// ErrorBody is the raw response body of a failed request, preserved
	// verbatim for caller inspection.
	ErrorBody string
}

// Ok reports whether the response status code indicates success (2xx).
func (r *Response[T]) Ok() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// CoursesResponse is a response to a basic courses request (no sections).
type CoursesResponse = Response[catalog.CourseBasic]

// CoursesMinifiedResponse is a response to a minified courses request.
type CoursesMinifiedResponse = Response[catalog.CourseMinified]

// CoursesWithSectionsResponse is a response to a full courses request.
type CoursesWithSectionsResponse = Response[catalog.Course]

// SectionsResponse is a response to a sections request.
type SectionsResponse = Response[catalog.Section]

// InstructorsResponse is a response to an instructors request.
type InstructorsResponse = Response[catalog.Instructor]

// DepartmentsResponse is a response to a department list request; each entry
// is a department code.
type DepartmentsResponse = Response[string]
