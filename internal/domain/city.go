package domain

// City - entry of the city filter catalog
type City struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

var cities = []City{
	{ID: 0, Name: "حلب"},
	{ID: 1, Name: "دمشق"},
	{ID: 2, Name: "حمص"},
}

// Cities returns the filterable cities in display order.
func Cities() []City {
	out := make([]City, len(cities))
	copy(out, cities)
	return out
}

// CityByID looks up a city of the catalog.
func CityByID(id int) (City, bool) {
	for _, c := range cities {
		if c.ID == id {
			return c, true
		}
	}
	return City{}, false
}
