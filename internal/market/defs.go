// Package market holds the static definitions the economy runs on:
// stock regions and symbols, contraband items and their price tiers,
// black-market locations, and location-specific price modifier bands.
package market

import (
	"encoding/json"
	"fmt"
)

// RegionDef is a named group of stock symbols traded together.
type RegionDef struct {
	Name    string   `json:"name"`
	Symbols []string `json:"symbols"`
}

// ItemDef is a contraband item with its base price tier.
type ItemDef struct {
	Name     string  `json:"name"`
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
}

// LocationDef is a black-market location and its fixed travel cost.
type LocationDef struct {
	Name       string  `json:"name"`
	TravelCost float64 `json:"travel_cost"`
}

// ModifierDef is a multiplier band applied to an item's base price at
// one location, before the volatility swing.
type ModifierDef struct {
	Item     string  `json:"item"`
	Location string  `json:"location"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// Defs is the JSON-serializable definition of every market in the game.
type Defs struct {
	Regions   []RegionDef   `json:"regions"`
	Items     []ItemDef     `json:"items"`
	Locations []LocationDef `json:"locations"`
	Modifiers []ModifierDef `json:"modifiers"`
}

// Load parses market definitions from JSON bytes and validates them.
func Load(data []byte) (*Defs, error) {
	var d Defs
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse market defs: %w", err)
	}
	if err := d.validate(); err != nil {
		return nil, fmt.Errorf("invalid market defs: %w", err)
	}
	return &d, nil
}

func (d *Defs) validate() error {
	if len(d.Regions) == 0 {
		return fmt.Errorf("no regions defined")
	}
	if len(d.Items) == 0 {
		return fmt.Errorf("no items defined")
	}
	if len(d.Locations) == 0 {
		return fmt.Errorf("no locations defined")
	}

	symbols := map[string]bool{}
	for _, r := range d.Regions {
		if len(r.Symbols) == 0 {
			return fmt.Errorf("region %q has no symbols", r.Name)
		}
		for _, s := range r.Symbols {
			if symbols[s] {
				return fmt.Errorf("symbol %q appears in more than one region", s)
			}
			symbols[s] = true
		}
	}

	items := map[string]bool{}
	for _, it := range d.Items {
		if it.MinPrice <= 0 || it.MaxPrice < it.MinPrice {
			return fmt.Errorf("item %q has bad price tier [%v, %v]", it.Name, it.MinPrice, it.MaxPrice)
		}
		items[it.Name] = true
	}

	locs := map[string]bool{}
	for _, l := range d.Locations {
		if l.TravelCost < 0 {
			return fmt.Errorf("location %q has negative travel cost", l.Name)
		}
		locs[l.Name] = true
	}

	for _, m := range d.Modifiers {
		if !items[m.Item] {
			return fmt.Errorf("modifier references unknown item %q", m.Item)
		}
		if !locs[m.Location] {
			return fmt.Errorf("modifier references unknown location %q", m.Location)
		}
		if m.Min <= 0 || m.Max < m.Min {
			return fmt.Errorf("modifier for %q at %q has bad band [%v, %v]", m.Item, m.Location, m.Min, m.Max)
		}
	}
	return nil
}

// DefaultLocation returns the starting black-market location.
func (d *Defs) DefaultLocation() string {
	return d.Locations[0].Name
}

// Location returns the definition for a named location, or nil.
func (d *Defs) Location(name string) *LocationDef {
	for i := range d.Locations {
		if d.Locations[i].Name == name {
			return &d.Locations[i]
		}
	}
	return nil
}

// Item returns the definition for a named item, or nil.
func (d *Defs) Item(name string) *ItemDef {
	for i := range d.Items {
		if d.Items[i].Name == name {
			return &d.Items[i]
		}
	}
	return nil
}

// Modifier returns the band for an (item, location) pair, or nil when the
// pair trades at its base tier.
func (d *Defs) Modifier(item, location string) *ModifierDef {
	for i := range d.Modifiers {
		if d.Modifiers[i].Item == item && d.Modifiers[i].Location == location {
			return &d.Modifiers[i]
		}
	}
	return nil
}
