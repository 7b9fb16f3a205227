package catalog

import (
	"strconv"
	"strings"

	"github.com/jupiterp/jupiterp-go/pkg/export"
)

// CoursesDataset builds a tabular dataset from a course listing for CSV or
// PDF export.
func CoursesDataset(courses []CourseBasic) export.Dataset {
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		credits := strconv.Itoa(c.MinCredits)
		if c.MaxCredits != nil {
			credits += "-" + strconv.Itoa(*c.MaxCredits)
		}

		codes := make([]string, 0, len(c.GenEds))
		for _, g := range c.GenEds {
			codes = append(codes, g.Code)
		}

		rows = append(rows, []string{c.CourseCode, c.Name, credits, strings.Join(codes, ",")})
	}

	return export.Dataset{
		Title:   "Courses",
		Headers: []string{"Course", "Name", "Credits", "Gen-Eds"},
		Rows:    rows,
	}
}

// SectionsDataset builds a tabular dataset from a section listing.
func SectionsDataset(sections []Section) export.Dataset {
	rows := make([][]string, 0, len(sections))
	for _, s := range sections {
		meetings := make([]string, 0, len(s.Meetings))
		for _, m := range s.Meetings {
			meetings = append(meetings, m.String())
		}

		seats := strconv.Itoa(s.OpenSeats) + "/" + strconv.Itoa(s.TotalSeats)

		rows = append(rows, []string{
			s.CourseCode,
			s.SectionCode,
			strings.Join(s.Instructors, ", "),
			strings.Join(meetings, "; "),
			seats,
			strconv.Itoa(s.Waitlist),
		})
	}

	return export.Dataset{
		Title:   "Sections",
		Headers: []string{"Course", "Section", "Instructors", "Meetings", "Seats", "Waitlist"},
		Rows:    rows,
	}
}
