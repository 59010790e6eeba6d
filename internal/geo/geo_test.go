package geo

import (
	"math"
	"testing"

	"github.com/pricecart/pricecart/internal/model"
)

func TestValidZipcode(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"48335", true},
		{"483350", true},
		{"4833", false},
		{"4833501", false},
		{"48a35", false},
		{"", false},
		{" 48335", false},
		{"------", false},
	}

	for _, tt := range tests {
		if got := ValidZipcode(tt.input); got != tt.want {
			t.Errorf("ValidZipcode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestZipcodeCoordinatesFallback(t *testing.T) {
	known := ZipcodeCoordinates("48152")
	if known.Lat != 42.3964 || known.Lng != -83.3523 {
		t.Errorf("unexpected coordinates for 48152: %+v", known)
	}

	fallback := ZipcodeCoordinates("99999")
	def := ZipcodeCoordinates(DefaultZipcode)
	if fallback != def {
		t.Errorf("unknown zipcode = %+v, want default %+v", fallback, def)
	}
}

func TestDistanceZero(t *testing.T) {
	c := Coordinates{Lat: 42.4853, Lng: -83.3764}
	if d := Distance(c, c); d != 0 {
		t.Errorf("distance to self = %v, want 0", d)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := Coordinates{Lat: 42.4853, Lng: -83.3764}
	b := Coordinates{Lat: 42.3964, Lng: -83.3523}

	d1 := Distance(a, b)
	d2 := Distance(b, a)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", d1, d2)
	}
	if d1 <= 0 || d1 > 20 {
		t.Errorf("implausible distance between nearby zipcodes: %v", d1)
	}
}

func TestStoreDistancesCoversAllStores(t *testing.T) {
	distances := StoreDistances("48335")
	if len(distances) != len(Stores) {
		t.Fatalf("got %d distances, want %d", len(distances), len(Stores))
	}
	for name, d := range distances {
		if d < 0 {
			t.Errorf("store %s has negative distance %v", name, d)
		}
		// Rounded to 0.1 mi.
		if math.Abs(d*10-math.Round(d*10)) > 1e-9 {
			t.Errorf("store %s distance %v not rounded to 0.1", name, d)
		}
	}
	// Busch's shares coordinates with the 48335 lookup entry.
	if distances["Busch's"] != 0 {
		t.Errorf("Busch's distance from 48335 = %v, want 0", distances["Busch's"])
	}
}

func testProducts() []model.Product {
	return []model.Product{
		{
			ID:    1,
			Name:  "Fresh Red Apples",
			Price: 2.74,
			StorePrices: []model.StorePrice{
				{Store: "Costco", Price: 2.74, Distance: 1.4},
				{Store: "Walmart", Price: 2.94, Distance: 2.5},
				{Store: "Aldi", Price: 3.49, Distance: 4.4},
			},
		},
	}
}

func TestApplyZipcodeSentinelNoOp(t *testing.T) {
	items := testProducts()

	for _, zip := range []string{"", UnknownZipcode} {
		out := ApplyZipcode(items, zip)
		if len(out) != 1 || len(out[0].StorePrices) != 3 {
			t.Fatalf("zipcode %q: expected unchanged items, got %+v", zip, out)
		}
		if out[0].StorePrices[0].Distance != 1.4 {
			t.Errorf("zipcode %q: distance rewritten to %v", zip, out[0].StorePrices[0].Distance)
		}
	}
}

func TestApplyZipcodeRewritesDistances(t *testing.T) {
	items := testProducts()
	out := ApplyZipcode(items, "48335")

	distances := StoreDistances("48335")
	for _, sp := range out[0].StorePrices {
		if sp.Distance != distances[sp.Store] {
			t.Errorf("store %s distance = %v, want %v", sp.Store, sp.Distance, distances[sp.Store])
		}
	}

	// Input must be untouched.
	if items[0].StorePrices[0].Distance != 1.4 {
		t.Errorf("input slice modified: %+v", items[0].StorePrices[0])
	}
}

func TestApplyZipcodeRecomputesMinPrice(t *testing.T) {
	items := []model.Product{
		{
			ID:    4,
			Name:  "Artisan Sourdough Bread",
			Price: 2.19,
			StorePrices: []model.StorePrice{
				{Store: "Costco", Price: 5.19},
				{Store: "Walmart", Price: 2.19},
				{Store: "Kroger", Price: 3.79},
			},
		},
	}

	out := ApplyZipcode(items, "48335")
	if len(out[0].StorePrices) == 0 {
		t.Fatal("expected surviving store prices inside 15 miles")
	}
	min := out[0].StorePrices[0].Price
	for _, sp := range out[0].StorePrices[1:] {
		if sp.Price < min {
			min = sp.Price
		}
	}
	if out[0].Price != min {
		t.Errorf("price = %v, want recomputed min %v", out[0].Price, min)
	}
}

func TestApplyZipcodeKeepsPriceWhenAllStoresDropped(t *testing.T) {
	items := []model.Product{
		{
			ID:    99,
			Name:  "Far Away Only",
			Price: 9.99,
			StorePrices: []model.StorePrice{
				{Store: "Costco", Price: 9.99},
			},
		},
	}

	// Force the single store beyond the radius by giving it an absurd
	// distance via a zipcode far from the store table.
	saved := zipcodeCoords["48335"]
	zipcodeCoords["48335"] = Coordinates{Lat: 40.0, Lng: -90.0}
	defer func() { zipcodeCoords["48335"] = saved }()

	out := ApplyZipcode(items, "48335")
	if len(out[0].StorePrices) != 0 {
		t.Fatalf("expected all stores dropped, got %+v", out[0].StorePrices)
	}
	if out[0].Price != 9.99 {
		t.Errorf("price = %v, want prior price 9.99", out[0].Price)
	}
}

func TestStoreByName(t *testing.T) {
	s := StoreByName("Costco")
	if s == nil {
		t.Fatal("expected Costco in store table")
	}
	if !s.MembershipRequired {
		t.Error("Costco should require membership")
	}
	if s.DisplayName != "Costco Wholesale" {
		t.Errorf("display name = %q", s.DisplayName)
	}

	if StoreByName("Whole Foods") != nil {
		t.Error("Whole Foods should not be in the store set")
	}
}
