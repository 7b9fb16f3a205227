package api

import "strconv"

// Filter accumulates comparison operations against a single named column,
// rendered as "{op}.{value}" tokens in insertion order.
//
// Nothing enforces that accumulated operations make sense together: a
// filter built with EqualTo(3).NotEqualTo(3) is accepted and simply never
// matches anything server-side.
type Filter struct {
	column string
	args   []string
}

// NewCreditFilter builds a filter on the number of credits in a course.
// Usable in a CoursesConfig.
func NewCreditFilter() *Filter {
	return &Filter{column: "credits"}
}

// NewRatingFilter builds a filter on the average rating of an instructor.
// Usable in an InstructorsConfig.
func NewRatingFilter() *Filter {
	return &Filter{column: "ratings"}
}

// Column returns the column this filter applies to.
func (f *Filter) Column() string {
	return f.column
}

// Args returns the accumulated filter tokens in insertion order.
func (f *Filter) Args() []string {
	if f == nil {
		return nil
	}
	return f.args
}

func (f *Filter) push(op string, value float64) *Filter {
	f.args = append(f.args, op+"."+formatValue(value))
	return f
}

// EqualTo appends an eq comparison.
func (f *Filter) EqualTo(value float64) *Filter {
	return f.push("eq", value)
}

// NotEqualTo appends a neq comparison.
func (f *Filter) NotEqualTo(value float64) *Filter {
	return f.push("neq", value)
}

// LessThan appends an lt comparison.
func (f *Filter) LessThan(value float64) *Filter {
	return f.push("lt", value)
}

// LessThanOrEqualTo appends an lte comparison.
func (f *Filter) LessThanOrEqualTo(value float64) *Filter {
	return f.push("lte", value)
}

// GreaterThan appends a gt comparison.
func (f *Filter) GreaterThan(value float64) *Filter {
	return f.push("gt", value)
}

// GreaterThanOrEqualTo appends a gte comparison.
func (f *Filter) GreaterThanOrEqualTo(value float64) *Filter {
	return f.push("gte", value)
}

// formatValue renders a filter value in its shortest decimal form: 3 stays
// "3", 3.5 stays "3.5".
func formatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
