package catalog

// InstructorRaw is the wire shape of an instructor record.
type InstructorRaw struct {
	Slug          string  `json:"slug"`
	Name          string  `json:"name"`
	AverageRating *string `json:"average_rating"`
}

// Instructor is an instructor with their PlanetTerp rating data.
type Instructor struct {
	// Slug is the stable identifier unique to this instructor, distinct
	// from their display name.
	Slug string

	// Name is the instructor's name as listed on PlanetTerp.
	Name string

	// AverageRating is the average review rating, or nil if the instructor
	// has no reviews.
	AverageRating *string
}

// ParseInstructor converts a raw instructor into its domain form.
func ParseInstructor(raw InstructorRaw) (Instructor, error) {
	return Instructor{
		Slug:          raw.Slug,
		Name:          raw.Name,
		AverageRating: raw.AverageRating,
	}, nil
}
