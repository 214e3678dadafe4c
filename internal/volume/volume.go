package volume

// Lookup resolves the volume of a drink from its type and the venue
// category the party was logged under. The stats aggregator consumes
// this as a collaborator so alternate tables can be swapped in.
type Lookup interface {
	// Volume returns the volume in centilitres for a quantity of drinks
	Volume(drinkType, category string, quantity int) float64
}

// fallbackType is used for drink types not in the table.
const fallbackType = "other"

// typeVolumes holds per-serving centilitres for one drink type. Venues
// pour differently: a beer is a pint at a bar but a can at home.
type typeVolumes struct {
	public  float64
	private float64
}

// Table is the built-in serving-size table.
type Table struct {
	volumes        map[string]typeVolumes
	privateContext map[string]bool
}

// NewTable creates the default volume table.
func NewTable() *Table {
	return &Table{
		volumes: map[string]typeVolumes{
			"beer":      {public: 50, private: 33},
			"spirits":   {public: 3, private: 5},
			"wine":      {public: 12, private: 15},
			"champagne": {public: 10, private: 12},
			"cocktail":  {public: 15, private: 20},
			"shot":      {public: 4, private: 4},
			fallbackType: {public: 25, private: 25},
		},
		privateContext: map[string]bool{
			"house":         true,
			"birthday":      true,
			"friends_night": true,
			"wedding":       true,
			"new_year":      true,
			"other":         true,
		},
	}
}

// Volume returns the total centilitres for a quantity of one drink
// type. Unknown types use the fallback volume; non-positive quantities
// count as zero.
func (t *Table) Volume(drinkType, category string, quantity int) float64 {
	if quantity <= 0 {
		return 0
	}

	v, ok := t.volumes[drinkType]
	if !ok {
		v = t.volumes[fallbackType]
	}

	per := v.public
	if t.privateContext[category] {
		per = v.private
	}

	return per * float64(quantity)
}
