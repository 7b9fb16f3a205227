package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreditFilterTokenOrder(t *testing.T) {
	filter := NewCreditFilter().EqualTo(3).LessThan(5).GreaterThan(2)
	assert.Equal(t, []string{"eq.3", "lt.5", "gt.2"}, filter.Args())
	assert.Equal(t, "credits", filter.Column())
}

func TestRatingFilterValueFormatting(t *testing.T) {
	filter := NewRatingFilter().GreaterThanOrEqualTo(4).LessThan(4.5)
	assert.Equal(t, []string{"gte.4", "lt.4.5"}, filter.Args())
	assert.Equal(t, "ratings", filter.Column())
}

func TestFilterKeepsContradictions(t *testing.T) {
	filter := NewCreditFilter().EqualTo(3).NotEqualTo(3)
	assert.Equal(t, []string{"eq.3", "neq.3"}, filter.Args())
}

func TestFilterAllOperators(t *testing.T) {
	filter := NewCreditFilter().
		EqualTo(1).
		NotEqualTo(2).
		LessThan(3).
		LessThanOrEqualTo(4).
		GreaterThan(5).
		GreaterThanOrEqualTo(6)
	assert.Equal(t, []string{"eq.1", "neq.2", "lt.3", "lte.4", "gt.5", "gte.6"}, filter.Args())
}

func TestNilFilterHasNoArgs(t *testing.T) {
	var filter *Filter
	assert.Empty(t, filter.Args())
}
