package config

// Default and bound constants for request fields. Bounds match the service
// API schema the request mirrors.
const (
	DefaultPadding        = 3.0
	DefaultWallThickness  = 2.5
	DefaultFloorThickness = 2.5
	DefaultLidThickness   = 2.0
	DefaultScrewDiameter  = 3.0 // M3
	DefaultScrewLength    = 8.0
	DefaultBossDiameter   = 7.0
	DefaultSnapDepth      = 1.5
	DefaultSnapWidth      = 8.0
	DefaultFilletRadius   = 1.5
	DefaultTrayThickness  = 2.0
	DefaultBracketHoleDia = 4.0

	MinThickness = 1.0
	MaxThickness = 10.0
	MaxFillet    = 5.0
	MinScrew     = 2.0
	MaxScrew     = 5.0
)

// Defaults returns a request populated with the standard settings: a classic
// rectangular enclosure with a screwed-on lid.
func Defaults() Request {
	return Request{
		PaddingX:       DefaultPadding,
		PaddingY:       DefaultPadding,
		PaddingZ:       DefaultPadding,
		WallThickness:  DefaultWallThickness,
		FloorThickness: DefaultFloorThickness,
		LidThickness:   DefaultLidThickness,
		LidStyle:       LidScrews,
		ScrewDiameter:  DefaultScrewDiameter,
		ScrewLength:    DefaultScrewLength,
		BossDiameter:   DefaultBossDiameter,
		SnapDepth:      DefaultSnapDepth,
		SnapWidth:      DefaultSnapWidth,
		FilletRadius:   DefaultFilletRadius,
		EnclosureStyle: StyleClassic,
	}
}

// ApplyDefaults fills zero-valued global fields on a decoded request.
// Explicit zeros that are meaningful (padding, fillet radius) are kept:
// only fields whose zero value is never a legal setting are defaulted.
func (r *Request) ApplyDefaults() {
	if r.WallThickness == 0 {
		r.WallThickness = DefaultWallThickness
	}
	if r.FloorThickness == 0 {
		r.FloorThickness = DefaultFloorThickness
	}
	if r.LidThickness == 0 {
		r.LidThickness = DefaultLidThickness
	}
	if r.LidStyle == "" {
		r.LidStyle = LidScrews
	}
	if r.ScrewDiameter == 0 {
		r.ScrewDiameter = DefaultScrewDiameter
	}
	if r.ScrewLength == 0 {
		r.ScrewLength = DefaultScrewLength
	}
	if r.BossDiameter == 0 {
		r.BossDiameter = DefaultBossDiameter
	}
	if r.SnapDepth == 0 {
		r.SnapDepth = DefaultSnapDepth
	}
	if r.SnapWidth == 0 {
		r.SnapWidth = DefaultSnapWidth
	}
	if r.EnclosureStyle == "" {
		r.EnclosureStyle = StyleClassic
	}
	for i := range r.Components {
		if r.Components[i].IsPCB && r.Components[i].PCBScrewDiameter == 0 {
			r.Components[i].PCBScrewDiameter = DefaultScrewDiameter
		}
	}
}
