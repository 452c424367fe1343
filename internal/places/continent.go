package places

import "strings"

// UnknownContinent is reported for a missing or unmapped country.
const UnknownContinent = "Unknown"

const (
	africa       = "Africa"
	asia         = "Asia"
	europe       = "Europe"
	northAmerica = "North America"
	southAmerica = "South America"
	oceania      = "Oceania"
)

// Keys are lower-case country names and ISO 3166-1 alpha-2 codes.
var continentByCountry = map[string]string{
	"france": europe, "fr": europe,
	"italy": europe, "it": europe,
	"spain": europe, "es": europe,
	"greece": europe, "gr": europe,
	"germany": europe, "de": europe,
	"united kingdom": europe, "uk": europe, "gb": europe,
	"norway": europe, "no": europe,
	"portugal": europe, "pt": europe,
	"netherlands": europe, "nl": europe,
	"switzerland": europe, "ch": europe,
	"austria": europe, "at": europe,
	"ireland": europe, "ie": europe,
	"poland": europe, "pl": europe,
	"czech republic": europe, "cz": europe,
	"sweden": europe, "se": europe,
	"iceland": europe, "is": europe,
	"russia": europe, "ru": europe,
	"turkey": asia, "tr": asia,

	"japan": asia, "jp": asia,
	"china": asia, "cn": asia,
	"india": asia, "in": asia,
	"cambodia": asia, "kh": asia,
	"jordan": asia, "jo": asia,
	"thailand": asia, "th": asia,
	"vietnam": asia, "vn": asia,
	"indonesia": asia, "id": asia,
	"south korea": asia, "kr": asia,
	"singapore": asia, "sg": asia,
	"united arab emirates": asia, "ae": asia,
	"nepal": asia, "np": asia,

	"united states": northAmerica, "usa": northAmerica, "us": northAmerica,
	"canada": northAmerica, "ca": northAmerica,
	"mexico": northAmerica, "mx": northAmerica,
	"cuba": northAmerica, "cu": northAmerica,

	"peru": southAmerica, "pe": southAmerica,
	"brazil": southAmerica, "br": southAmerica,
	"argentina": southAmerica, "ar": southAmerica,
	"chile": southAmerica, "cl": southAmerica,
	"colombia": southAmerica, "co": southAmerica,

	"egypt": africa, "eg": africa,
	"tanzania": africa, "tz": africa,
	"kenya": africa, "ke": africa,
	"morocco": africa, "ma": africa,
	"south africa": africa, "za": africa,

	"australia": oceania, "au": oceania,
	"new zealand": oceania, "nz": oceania,
	"french polynesia": oceania, "pf": oceania,
	"fiji": oceania, "fj": oceania,
}

// ContinentOf returns the continent for a country name or code.
func ContinentOf(country string) string {
	key := strings.ToLower(strings.TrimSpace(country))
	if key == "" {
		return UnknownContinent
	}
	if c, ok := continentByCountry[key]; ok {
		return c
	}
	return UnknownContinent
}
