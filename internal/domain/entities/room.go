package entities

// Room represents an entry in the static room catalog. Rooms are loaded at
// build time and never mutated at runtime.
type Room struct {
	ID          int      `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Features    []string `json:"features"`
	Available   bool     `json:"available"`
}

// HasFeature reports whether the room advertises the given feature.
func (r *Room) HasFeature(feature string) bool {
	for _, f := range r.Features {
		if f == feature {
			return true
		}
	}
	return false
}
