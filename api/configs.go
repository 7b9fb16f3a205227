package api

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jupiterp/jupiterp-go/catalog"
	appErrors "github.com/jupiterp/jupiterp-go/pkg/errors"
)

var validate = validator.New()

// CoursesConfig configures a request to any of the courses endpoints.
//
// CourseCodes and Prefix are mutually exclusive ways of selecting courses;
// setting both fails validation.
type CoursesConfig struct {
	// CourseCodes selects an exact set of courses, e.g. {"CMSC131"}.
	CourseCodes []string `validate:"excluded_with=Prefix"`

	// Prefix selects every course whose code starts with the given string,
	// e.g. "CMSC".
	Prefix string `validate:"excluded_with=CourseCodes"`

	// GenEds restricts results to courses satisfying the given gen-eds.
	GenEds []catalog.GenEd

	// CreditFilters restricts results by number of credits.
	CreditFilters *Filter

	Limit  *int
	Offset *int
	SortBy *SortBy
}

// Validate enforces the mutual-exclusivity contract between CourseCodes and
// Prefix.
func (c *CoursesConfig) Validate() error {
	if c == nil {
		return nil
	}
	if err := validate.Struct(c); err != nil {
		return appErrors.Wrap(err, appErrors.ErrConflictingConfig.Code, "courseCodes and prefix are mutually exclusive")
	}
	return nil
}

// EncodeQuery serialises the configuration into its canonical query string.
// Parameter order is fixed regardless of how the config was populated, so
// identical configs always encode to byte-identical strings.
func (c *CoursesConfig) EncodeQuery() string {
	q := &queryParams{}
	if c == nil {
		return q.Encode()
	}

	if len(c.CourseCodes) > 0 {
		q.add("courseCodes", strings.Join(c.CourseCodes, ","))
	}
	if c.Prefix != "" {
		q.add("prefix", c.Prefix)
	}
	if len(c.GenEds) > 0 {
		codes := make([]string, 0, len(c.GenEds))
		for _, g := range c.GenEds {
			codes = append(codes, g.Code)
		}
		q.add("genEds", strings.Join(codes, ","))
	}
	addIntParam(q, "limit", c.Limit)
	addIntParam(q, "offset", c.Offset)
	addFilterParams(q, "creditFilters", c.CreditFilters)
	addSortParam(q, c.SortBy)

	return q.Encode()
}

// SectionsConfig configures a request to the sections endpoint.
//
// CourseCodes and Prefix are mutually exclusive; setting both fails
// validation.
type SectionsConfig struct {
	CourseCodes []string `validate:"excluded_with=Prefix"`
	Prefix      string   `validate:"excluded_with=CourseCodes"`

	Limit  *int
	Offset *int
	SortBy *SortBy
}

// Validate enforces the mutual-exclusivity contract between CourseCodes and
// Prefix.
func (c *SectionsConfig) Validate() error {
	if c == nil {
		return nil
	}
	if err := validate.Struct(c); err != nil {
		return appErrors.Wrap(err, appErrors.ErrConflictingConfig.Code, "courseCodes and prefix are mutually exclusive")
	}
	return nil
}

// EncodeQuery serialises the configuration into its canonical query string.
func (c *SectionsConfig) EncodeQuery() string {
	q := &queryParams{}
	if c == nil {
		return q.Encode()
	}

	if len(c.CourseCodes) > 0 {
		q.add("courseCodes", strings.Join(c.CourseCodes, ","))
	}
	if c.Prefix != "" {
		q.add("prefix", c.Prefix)
	}
	addIntParam(q, "limit", c.Limit)
	addIntParam(q, "offset", c.Offset)
	addSortParam(q, c.SortBy)

	return q.Encode()
}

// InstructorsConfig configures a request to the instructors endpoints.
//
// InstructorNames and InstructorSlugs are mutually exclusive; setting both
// fails validation.
type InstructorsConfig struct {
	// InstructorNames selects instructors by display name.
	InstructorNames []string `validate:"excluded_with=InstructorSlugs"`

	// InstructorSlugs selects instructors by their stable slug.
	InstructorSlugs []string `validate:"excluded_with=InstructorNames"`

	// Ratings restricts results by average rating.
	Ratings *Filter

	Limit  *int
	Offset *int
	SortBy *SortBy
}

// Validate enforces the mutual-exclusivity contract between InstructorNames
// and InstructorSlugs.
func (c *InstructorsConfig) Validate() error {
	if c == nil {
		return nil
	}
	if err := validate.Struct(c); err != nil {
		return appErrors.Wrap(err, appErrors.ErrConflictingConfig.Code, "instructorNames and instructorSlugs are mutually exclusive")
	}
	return nil
}

// EncodeQuery serialises the configuration into its canonical query string.
func (c *InstructorsConfig) EncodeQuery() string {
	q := &queryParams{}
	if c == nil {
		return q.Encode()
	}

	if len(c.InstructorNames) > 0 {
		q.add("instructorNames", strings.Join(c.InstructorNames, ","))
	}
	if len(c.InstructorSlugs) > 0 {
		q.add("instructorSlugs", strings.Join(c.InstructorSlugs, ","))
	}
	addIntParam(q, "limit", c.Limit)
	addIntParam(q, "offset", c.Offset)
	addFilterParams(q, "ratings", c.Ratings)
	addSortParam(q, c.SortBy)

	return q.Encode()
}

// addIntParam includes the parameter whenever the value is present, zero
// included; only a nil value is omitted.
func addIntParam(q *queryParams, key string, value *int) {
	if value == nil {
		return
	}
	q.add(key, strconv.Itoa(*value))
}

// addFilterParams emits one parameter occurrence per filter token. Unlike
// the set-valued parameters, filter tokens are never comma-joined.
func addFilterParams(q *queryParams, key string, filter *Filter) {
	for _, arg := range filter.Args() {
		q.add(key, arg)
	}
}

func addSortParam(q *queryParams, sortBy *SortBy) {
	if sortBy.Len() == 0 {
		return
	}
	q.add("sortBy", strings.Join(sortBy.Args(), ","))
}
