// Package connectors holds the static catalog of standard connector cutout
// profiles. Measurements are in millimeters and include a small printability
// tolerance (0.3mm).
package connectors

import (
	"fmt"
	"sort"
	"strings"
)

// TypeCustom is the reserved connector type whose dimensions come from the
// cutout request rather than the catalog.
const TypeCustom = "custom"

// Profile describes the wall opening for one connector family.
type Profile struct {
	Width    float64
	Height   float64
	IsRound  bool
	Diameter float64 // only meaningful when IsRound
	Label    string
}

var catalog = map[string]Profile{
	"usb_a":       {Width: 13.0, Height: 6.5, Label: "USB Type-A"},
	"usb_c":       {Width: 9.3, Height: 3.8, Label: "USB Type-C"},
	"micro_usb":   {Width: 8.0, Height: 3.5, Label: "Micro USB"},
	"mini_usb":    {Width: 8.5, Height: 4.5, Label: "Mini USB"},
	"hdmi":        {Width: 16.0, Height: 7.5, Label: "HDMI (full)"},
	"mini_hdmi":   {Width: 11.5, Height: 5.5, Label: "Mini HDMI"},
	"jack_3_5":    {Width: 6.5, Height: 6.5, IsRound: true, Diameter: 6.5, Label: "3.5mm Jack (round)"},
	"barrel_jack": {Width: 8.5, Height: 8.5, IsRound: true, Diameter: 8.5, Label: "Barrel Jack 5.5mm"},
	"rj45":        {Width: 16.5, Height: 13.5, Label: "RJ45 (Ethernet)"},
}

// UnknownTypeError reports a catalog miss along with the valid names.
type UnknownTypeError struct {
	Name  string
	Valid []string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown connector type %q, available: %s",
		e.Name, strings.Join(e.Valid, ", "))
}

// Lookup returns the profile for a named connector type.
// The "custom" type is not in the catalog; callers must handle it before
// consulting the catalog.
func Lookup(name string) (Profile, error) {
	p, ok := catalog[name]
	if !ok {
		return Profile{}, &UnknownTypeError{Name: name, Valid: Names()}
	}
	return p, nil
}

// Names returns the catalog's connector type names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for k := range catalog {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// List returns type/label pairs for every cataloged connector, sorted by
// type name. Used by front-end surfaces to present the available choices.
func List() []struct{ Type, Label string } {
	out := make([]struct{ Type, Label string }, 0, len(catalog))
	for _, name := range Names() {
		out = append(out, struct{ Type, Label string }{Type: name, Label: catalog[name].Label})
	}
	return out
}
