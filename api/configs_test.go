package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jupiterp/jupiterp-go/catalog"
	appErrors "github.com/jupiterp/jupiterp-go/pkg/errors"
)

func intPtr(v int) *int { return &v }

func TestCoursesConfigEncodeQueryFixedOrder(t *testing.T) {
	cfg := &CoursesConfig{
		// Populated out of wire order on purpose; encoding order is fixed.
		SortBy:      new(SortBy).Ascending("course_code"),
		Offset:      intPtr(0),
		Limit:       intPtr(10),
		CourseCodes: []string{"CMSC131", "MATH140"},
	}
	assert.Equal(t,
		"courseCodes=CMSC131%2CMATH140&limit=10&offset=0&sortBy=course_code.asc",
		cfg.EncodeQuery(),
	)
}

func TestCoursesConfigEncodeQueryDeterminism(t *testing.T) {
	cfg := &CoursesConfig{
		Prefix:        "CMSC",
		GenEds:        []catalog.GenEd{catalog.GenEdDSNS, catalog.GenEdDSNL},
		CreditFilters: NewCreditFilter().GreaterThanOrEqualTo(2).LessThanOrEqualTo(4),
		Limit:         intPtr(25),
		SortBy:        new(SortBy).Descending("min_credits"),
	}
	first := cfg.EncodeQuery()
	second := cfg.EncodeQuery()
	assert.Equal(t, first, second)
	assert.Equal(t,
		"prefix=CMSC&genEds=DSNS%2CDSNL&limit=25&creditFilters=gte.2&creditFilters=lte.4&sortBy=min_credits.desc",
		first,
	)
}

func TestCoursesConfigFilterTokensAreSeparateOccurrences(t *testing.T) {
	cfg := &CoursesConfig{
		CreditFilters: NewCreditFilter().GreaterThan(1).LessThan(4),
	}
	assert.Equal(t, "creditFilters=gt.1&creditFilters=lt.4", cfg.EncodeQuery())
}

func TestCoursesConfigZeroLimitIsIncluded(t *testing.T) {
	cfg := &CoursesConfig{Limit: intPtr(0), Offset: intPtr(0)}
	assert.Equal(t, "limit=0&offset=0", cfg.EncodeQuery())
}

func TestCoursesConfigAbsentFieldsContributeNothing(t *testing.T) {
	assert.Empty(t, (&CoursesConfig{}).EncodeQuery())
	assert.Empty(t, (*CoursesConfig)(nil).EncodeQuery())

	cfg := &CoursesConfig{
		CourseCodes: []string{},
		GenEds:      []catalog.GenEd{},
		SortBy:      &SortBy{},
	}
	assert.Empty(t, cfg.EncodeQuery())
}

func TestCoursesConfigValidateRejectsCodesWithPrefix(t *testing.T) {
	cfg := &CoursesConfig{
		CourseCodes: []string{"CMSC131"},
		Prefix:      "CMSC",
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflictingConfig.Code, appErrors.FromError(err).Code)

	require.NoError(t, (&CoursesConfig{CourseCodes: []string{"CMSC131"}}).Validate())
	require.NoError(t, (&CoursesConfig{Prefix: "CMSC"}).Validate())
	require.NoError(t, (*CoursesConfig)(nil).Validate())
}

func TestSectionsConfigEncodeQuery(t *testing.T) {
	cfg := &SectionsConfig{
		Prefix: "MATH",
		Limit:  intPtr(5),
		SortBy: new(SortBy).Ascending("sec_code"),
	}
	assert.Equal(t, "prefix=MATH&limit=5&sortBy=sec_code.asc", cfg.EncodeQuery())
}

func TestSectionsConfigValidateRejectsCodesWithPrefix(t *testing.T) {
	cfg := &SectionsConfig{CourseCodes: []string{"MATH140"}, Prefix: "MATH"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflictingConfig.Code, appErrors.FromError(err).Code)
}

func TestInstructorsConfigEncodeQuery(t *testing.T) {
	cfg := &InstructorsConfig{
		InstructorSlugs: []string{"smith_j", "doe_a"},
		Ratings:         NewRatingFilter().GreaterThanOrEqualTo(4),
		Offset:          intPtr(20),
		SortBy:          new(SortBy).Descending("average_rating"),
	}
	assert.Equal(t,
		"instructorSlugs=smith_j%2Cdoe_a&offset=20&ratings=gte.4&sortBy=average_rating.desc",
		cfg.EncodeQuery(),
	)
}

func TestInstructorsConfigValidateRejectsNamesWithSlugs(t *testing.T) {
	cfg := &InstructorsConfig{
		InstructorNames: []string{"Jane Smith"},
		InstructorSlugs: []string{"smith_j"},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflictingConfig.Code, appErrors.FromError(err).Code)
}

func TestQueryEncodingEscapesReservedCharacters(t *testing.T) {
	cfg := &InstructorsConfig{InstructorNames: []string{"Jane Smith", "John Doe"}}
	assert.Equal(t, "instructorNames=Jane+Smith%2CJohn+Doe", cfg.EncodeQuery())
}
