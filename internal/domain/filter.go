package domain

import "strings"

// MosqueFilter - the search/filter state: free-text query plus an optional city.
type MosqueFilter struct {
	Query  string `json:"query"`
	CityID *int   `json:"city_id,omitempty"`
}

// WithQuery returns the filter with a new (trimmed) query.
func (f MosqueFilter) WithQuery(q string) MosqueFilter {
	f.Query = strings.TrimSpace(q)
	return f
}

// ToggleCity selects id, or clears the city when id is already selected.
func (f MosqueFilter) ToggleCity(id int) MosqueFilter {
	if f.CityID != nil && *f.CityID == id {
		f.CityID = nil
		return f
	}
	f.CityID = &id
	return f
}

// WithCity sets or clears the city without toggle semantics.
func (f MosqueFilter) WithCity(id *int) MosqueFilter {
	if id == nil {
		f.CityID = nil
		return f
	}
	v := *id
	f.CityID = &v
	return f
}

// Cleared drops both the query and the city.
func (f MosqueFilter) Cleared() MosqueFilter {
	return MosqueFilter{}
}

func (f MosqueFilter) IsEmpty() bool {
	return f.Query == "" && f.CityID == nil
}

func (f MosqueFilter) Equal(o MosqueFilter) bool {
	if f.Query != o.Query {
		return false
	}
	if f.CityID == nil || o.CityID == nil {
		return f.CityID == nil && o.CityID == nil
	}
	return *f.CityID == *o.CityID
}

// Matches applies the filter locally, for upstreams that return the full collection.
// An unknown city id matches nothing.
func (f MosqueFilter) Matches(m Mosque) bool {
	if f.CityID != nil {
		city, ok := CityByID(*f.CityID)
		if !ok || strings.TrimSpace(m.City) != city.Name {
			return false
		}
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(m.Name), q) ||
		strings.Contains(strings.ToLower(m.Description), q)
}
