package market

import (
	"strings"
	"testing"

	"github.com/millionaire-tycoon/tycoon/assets"
)

func TestLoadEmbeddedDefs(t *testing.T) {
	data, err := assets.Markets.ReadFile("markets/markets.json")
	if err != nil {
		t.Fatalf("read embedded defs: %v", err)
	}
	d, err := Load(data)
	if err != nil {
		t.Fatalf("load defs: %v", err)
	}
	if len(d.Regions) < 2 {
		t.Errorf("expected at least 2 regions, got %d", len(d.Regions))
	}
	if len(d.Items) != 5 {
		t.Errorf("expected 5 item tiers, got %d", len(d.Items))
	}
	if d.DefaultLocation() != d.Locations[0].Name {
		t.Errorf("default location should be the first defined")
	}
}

func TestLoadRejectsBadDefs(t *testing.T) {
	cases := []struct {
		name string
		json string
		want string
	}{
		{
			"no regions",
			`{"items":[{"name":"x","min_price":1,"max_price":2}],"locations":[{"name":"a"}]}`,
			"no regions",
		},
		{
			"duplicate symbol",
			`{"regions":[{"name":"A","symbols":["XX"]},{"name":"B","symbols":["XX"]}],
			  "items":[{"name":"x","min_price":1,"max_price":2}],"locations":[{"name":"a"}]}`,
			"more than one region",
		},
		{
			"inverted tier",
			`{"regions":[{"name":"A","symbols":["XX"]}],
			  "items":[{"name":"x","min_price":10,"max_price":2}],"locations":[{"name":"a"}]}`,
			"bad price tier",
		},
		{
			"unknown modifier item",
			`{"regions":[{"name":"A","symbols":["XX"]}],
			  "items":[{"name":"x","min_price":1,"max_price":2}],"locations":[{"name":"a"}],
			  "modifiers":[{"item":"y","location":"a","min":0.5,"max":0.8}]}`,
			"unknown item",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestModifierLookup(t *testing.T) {
	d := &Defs{
		Regions:   []RegionDef{{Name: "A", Symbols: []string{"XX"}}},
		Items:     []ItemDef{{Name: "x", MinPrice: 1, MaxPrice: 2}},
		Locations: []LocationDef{{Name: "a"}, {Name: "b"}},
		Modifiers: []ModifierDef{{Item: "x", Location: "b", Min: 0.5, Max: 0.8}},
	}
	if m := d.Modifier("x", "a"); m != nil {
		t.Errorf("expected no modifier at base location, got %+v", m)
	}
	if m := d.Modifier("x", "b"); m == nil || m.Min != 0.5 {
		t.Errorf("expected band [0.5, 0.8], got %+v", m)
	}
	if d.Location("c") != nil {
		t.Error("unknown location should return nil")
	}
	if d.Item("x") == nil {
		t.Error("known item lookup failed")
	}
}
