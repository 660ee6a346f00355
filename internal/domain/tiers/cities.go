package tiers

// Cities the compliance rule set currently covers. Property creation
// rejects anything outside this list.
var SupportedCities = []string{
	"London",
	"Manchester",
	"Birmingham",
	"Leeds",
	"Bristol",
	"Edinburgh",
	"Glasgow",
}

func CitySupported(city string) bool {
	for _, c := range SupportedCities {
		if c == city {
			return true
		}
	}
	return false
}
