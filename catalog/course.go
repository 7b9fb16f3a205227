package catalog

// CourseBasicRaw is the wire shape of a course without sections.
type CourseBasicRaw struct {
	CourseCode  string   `json:"course_code"`
	Name        string   `json:"name"`
	MinCredits  int      `json:"min_credits"`
	MaxCredits  *int     `json:"max_credits"`
	GenEds      []string `json:"gen_eds"`
	Conditions  []string `json:"conditions"`
	Description *string  `json:"description"`
}

// CourseBasic is a course with all course info, but no sections.
type CourseBasic struct {
	// CourseCode is the course code, e.g. "CMSC131".
	CourseCode string

	// Name is the course name, e.g. "Object-Oriented Programming I".
	Name string

	// MinCredits is the minimum number of credits for the course. For most
	// courses this is the only number of credits available.
	MinCredits int

	// MaxCredits is nil when the course has a single credit option.
	// Otherwise it is the highest number of credits available; a course
	// listed at 1-3 credits has MinCredits 1 and MaxCredits 3.
	MaxCredits *int

	// GenEds lists the gen-eds this course satisfies, or nil if none.
	GenEds []GenEd

	// Conditions lists special enrollment conditions ("Prerequisite",
	// "Corequisite", "Credit only granted for", ...), or nil if none.
	Conditions []string

	Description *string
}

// ParseCourseBasic converts a raw course into its domain form, resolving
// gen-ed codes through the fixed table.
func ParseCourseBasic(raw CourseBasicRaw) (CourseBasic, error) {
	genEds, err := parseGenEds(raw.GenEds)
	if err != nil {
		return CourseBasic{}, err
	}
	return CourseBasic{
		CourseCode:  raw.CourseCode,
		Name:        raw.Name,
		MinCredits:  raw.MinCredits,
		MaxCredits:  raw.MaxCredits,
		GenEds:      genEds,
		Conditions:  raw.Conditions,
		Description: raw.Description,
	}, nil
}

// CourseMinifiedRaw is the wire shape of a minified course.
type CourseMinifiedRaw struct {
	CourseCode string `json:"course_code"`
	Name       string `json:"name"`
}

// CourseMinified carries only the course code and name.
type CourseMinified struct {
	CourseCode string
	Name       string
}

// ParseCourseMinified converts a raw minified course into its domain form.
func ParseCourseMinified(raw CourseMinifiedRaw) (CourseMinified, error) {
	return CourseMinified{
		CourseCode: raw.CourseCode,
		Name:       raw.Name,
	}, nil
}

// CourseRaw is the wire shape of a course with nested sections.
type CourseRaw struct {
	CourseCode  string       `json:"course_code"`
	Name        string       `json:"name"`
	MinCredits  int          `json:"min_credits"`
	MaxCredits  *int         `json:"max_credits"`
	GenEds      []string     `json:"gen_eds"`
	Conditions  []string     `json:"conditions"`
	Description *string      `json:"description"`
	Sections    []SectionRaw `json:"sections"`
}

// Course is a course with all course info, including sections.
type Course struct {
	CourseCode  string
	Name        string
	MinCredits  int
	MaxCredits  *int
	GenEds      []GenEd
	Conditions  []string
	Description *string

	// Sections lists the sections of this course in the order the API
	// returned them, or nil if none were found.
	Sections []Section
}

// ParseCourse converts a raw course with sections into its domain form.
func ParseCourse(raw CourseRaw) (Course, error) {
	genEds, err := parseGenEds(raw.GenEds)
	if err != nil {
		return Course{}, err
	}

	var sections []Section
	if raw.Sections != nil {
		sections = make([]Section, 0, len(raw.Sections))
		for _, s := range raw.Sections {
			section, err := ParseSection(s)
			if err != nil {
				return Course{}, err
			}
			sections = append(sections, section)
		}
	}

	return Course{
		CourseCode:  raw.CourseCode,
		Name:        raw.Name,
		MinCredits:  raw.MinCredits,
		MaxCredits:  raw.MaxCredits,
		GenEds:      genEds,
		Conditions:  raw.Conditions,
		Description: raw.Description,
		Sections:    sections,
	}, nil
}

// parseGenEds resolves a raw code list. A nil input stays nil; it never
// becomes an empty slice.
func parseGenEds(codes []string) ([]GenEd, error) {
	if codes == nil {
		return nil, nil
	}
	out := make([]GenEd, 0, len(codes))
	for _, code := range codes {
		g, err := GenEdFromCode(code)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}
