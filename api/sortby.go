package api

// SortBy accumulates an ordered list of sort keys. The server applies them
// as a compound sort key in insertion order; repeated columns are kept, not
// deduplicated.
//
//	sortBy := new(api.SortBy).Ascending("name").Descending("min_credits")
type SortBy struct {
	keys []string
}

// Ascending appends an ascending sort on the given column.
func (s *SortBy) Ascending(column string) *SortBy {
	s.keys = append(s.keys, column+".asc")
	return s
}

// Descending appends a descending sort on the given column.
func (s *SortBy) Descending(column string) *SortBy {
	s.keys = append(s.keys, column+".desc")
	return s
}

// Len returns the number of accumulated sort keys.
func (s *SortBy) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Args returns the accumulated sort tokens in insertion order.
func (s *SortBy) Args() []string {
	if s == nil {
		return nil
	}
	return s.keys
}
