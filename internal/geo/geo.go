package geo

import (
	"math"
	"regexp"

	"github.com/pricecart/pricecart/internal/model"
)

const (
	// MaxRadiusMiles is the store-inclusion cutoff for an active zipcode.
	MaxRadiusMiles = 15.0

	earthRadiusMiles = 3959.0

	// UnknownZipcode is the sentinel used when location resolution fails
	// or was denied; it disables distance filtering entirely.
	UnknownZipcode = "------"

	// DefaultZipcode anchors lookups for unrecognized postal codes.
	DefaultZipcode = "48335"
)

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StoreInfo describes one of the fixed set of reference stores.
type StoreInfo struct {
	Name               string      `json:"name"`
	DisplayName        string      `json:"display_name"`
	Address            string      `json:"address"`
	Zipcode            string      `json:"zipcode"`
	Phone              string      `json:"phone"`
	Rating             float64     `json:"rating"`
	MembershipRequired bool        `json:"membership_required"`
	Website            string      `json:"website"`
	Coordinates        Coordinates `json:"coordinates"`
}

// Stores is the fixed reference store table, in display order.
var Stores = []StoreInfo{
	{
		Name:               "Walmart",
		DisplayName:        "Walmart",
		Address:            "26090 Ingersol Dr, Novi, MI 48375",
		Zipcode:            "48375",
		Phone:              "+1 890 700 2343",
		Rating:             4.3,
		MembershipRequired: false,
		Website:            "https://www.walmart.com",
		Coordinates:        Coordinates{Lat: 42.4806, Lng: -83.4756},
	},
	{
		Name:               "Kroger",
		DisplayName:        "Kroger",
		Address:            "37550 W 12 Mile Rd, Farmington Hills, MI 48331",
		Zipcode:            "48331",
		Phone:              "+1 890 700 2346",
		Rating:             4.2,
		MembershipRequired: false,
		Website:            "https://www.kroger.com",
		Coordinates:        Coordinates{Lat: 42.5036, Lng: -83.3528},
	},
	{
		Name:               "Aldi",
		DisplayName:        "Aldi",
		Address:            "30790 Orchard Lake Rd, Farmington Hills, MI 48334",
		Zipcode:            "48334",
		Phone:              "+1 890 700 2344",
		Rating:             4.5,
		MembershipRequired: false,
		Website:            "https://www.aldi.us",
		Coordinates:        Coordinates{Lat: 42.5281, Lng: -83.3775},
	},
	{
		Name:               "Busch's",
		DisplayName:        "Busch's",
		Address:            "24445 Drake Rd, Farmington Hills, MI 48335",
		Zipcode:            "48335",
		Phone:              "+1 890 700 2347",
		Rating:             4.1,
		MembershipRequired: false,
		Website:            "https://www.buschs.com",
		Coordinates:        Coordinates{Lat: 42.4853, Lng: -83.3764},
	},
	{
		Name:               "Meijer's",
		DisplayName:        "Meijer's",
		Address:            "20401 Haggerty Rd, Northville, MI 48167",
		Zipcode:            "48167",
		Phone:              "+1 890 700 2345",
		Rating:             4.4,
		MembershipRequired: false,
		Website:            "https://www.meijer.com",
		Coordinates:        Coordinates{Lat: 42.4311, Lng: -83.4831},
	},
	{
		Name:               "Costco",
		DisplayName:        "Costco Wholesale",
		Address:            "20000 Haggerty Rd, Livonia, MI 48152",
		Zipcode:            "48152",
		Phone:              "+1 890 700 2342",
		Rating:             4.7,
		MembershipRequired: true,
		Website:            "https://www.costco.com",
		Coordinates:        Coordinates{Lat: 42.3964, Lng: -83.3523},
	},
}

// zipcodeCoords maps known postal codes to coordinates (Michigan area).
var zipcodeCoords = map[string]Coordinates{
	"48335": {Lat: 42.4853, Lng: -83.3764}, // Farmington Hills (default)
	"48152": {Lat: 42.3964, Lng: -83.3523}, // Livonia
	"48375": {Lat: 42.4806, Lng: -83.4756}, // Novi
	"48334": {Lat: 42.5281, Lng: -83.3775}, // Farmington Hills
	"48167": {Lat: 42.4311, Lng: -83.4831}, // Northville
	"48331": {Lat: 42.5036, Lng: -83.3528}, // Farmington Hills
	"48322": {Lat: 42.5689, Lng: -83.3775}, // West Bloomfield
}

var zipcodeRegexp = regexp.MustCompile(`^[0-9]{5,6}$`)

// StoreByName returns the reference store entry for the given name,
// or nil when the name is not in the fixed store set.
func StoreByName(name string) *StoreInfo {
	for i := range Stores {
		if Stores[i].Name == name {
			return &Stores[i]
		}
	}
	return nil
}

// StoreNames returns the fixed store-name set in display order.
func StoreNames() []string {
	names := make([]string, len(Stores))
	for i, s := range Stores {
		names[i] = s.Name
	}
	return names
}

// ValidZipcode reports whether s is an acceptable manual zipcode entry:
// 5 or 6 digits, nothing else.
func ValidZipcode(s string) bool {
	return zipcodeRegexp.MatchString(s)
}

// ZipcodeCoordinates resolves a postal code to coordinates using the fixed
// table, falling back to the default entry for unrecognized codes.
func ZipcodeCoordinates(zipcode string) Coordinates {
	if c, ok := zipcodeCoords[zipcode]; ok {
		return c
	}
	return zipcodeCoords[DefaultZipcode]
}

// Distance returns the great-circle distance between two coordinates in
// miles, via the haversine formula.
func Distance(a, b Coordinates) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusMiles * c
}

func toRad(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// StoreDistances computes the distance from the zipcode's coordinates to
// each reference store, rounded to 0.1 mi. Distance for inclusion and
// distance for display come from the same computation.
func StoreDistances(zipcode string) map[string]float64 {
	origin := ZipcodeCoordinates(zipcode)
	distances := make(map[string]float64, len(Stores))
	for _, s := range Stores {
		d := Distance(origin, s.Coordinates)
		distances[s.Name] = math.Round(d*10) / 10
	}
	return distances
}

// ApplyZipcode rewrites per-store distances from the zipcode's coordinates,
// drops store prices beyond MaxRadiusMiles, and recomputes each product's
// price as the minimum surviving store price. A product whose store list
// empties keeps its prior price. An empty or sentinel zipcode returns the
// items unchanged. The input slice is not modified.
func ApplyZipcode(items []model.Product, zipcode string) []model.Product {
	out := make([]model.Product, len(items))
	copy(out, items)

	if zipcode == "" || zipcode == UnknownZipcode {
		return out
	}

	distances := StoreDistances(zipcode)

	for i := range out {
		var kept []model.StorePrice
		for _, sp := range out[i].StorePrices {
			d, ok := distances[sp.Store]
			if !ok {
				// Not in the reference table; keep as-is.
				kept = append(kept, sp)
				continue
			}
			if d > MaxRadiusMiles {
				continue
			}
			sp.Distance = d
			kept = append(kept, sp)
		}
		out[i].StorePrices = kept

		if len(kept) > 0 {
			min := kept[0].Price
			for _, sp := range kept[1:] {
				if sp.Price < min {
					min = sp.Price
				}
			}
			out[i].Price = min
		}
	}

	return out
}
