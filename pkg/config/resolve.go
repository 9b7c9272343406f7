package config

// Effective wall thickness forced by the minimal style.
const minimalWallThickness = 1.8

// Effective fillet radius forced by the rounded style.
const roundedFilletRadius = 3.0

// PartSettings is a fully-resolved configuration for one part. Construction
// code only ever reads PartSettings, never the raw request, so every
// fallback decision happens here in one place.
type PartSettings struct {
	Name          string
	Enabled       bool
	Style         string
	WallThickness float64
	FilletRadius  float64
	EdgeStyle     string
	ChamferSize   float64

	LidHoleStyle string

	TrayZ         float64
	TrayThickness float64

	BracketHoleDiameter float64
}

// ResolvedParts holds the per-part settings in construction order.
type ResolvedParts struct {
	Base    PartSettings
	Lid     PartSettings
	Tray    PartSettings
	Bracket PartSettings
}

// ResolveParts merges each part's overrides with the global configuration.
// Zero/unset part fields fall back to globals; the minimal and rounded
// styles then force their overrides regardless of the merged values.
func (r *Request) ResolveParts() ResolvedParts {
	return ResolvedParts{
		Base:    r.resolvePart(PartBase, r.Parts.Base),
		Lid:     r.resolvePart(PartLid, r.Parts.Lid),
		Tray:    r.resolvePart(PartTray, r.Parts.Tray),
		Bracket: r.resolvePart(PartBracket, r.Parts.Bracket),
	}
}

func (r *Request) resolvePart(name string, pc PartConfig) PartSettings {
	s := PartSettings{
		Name:          name,
		Style:         pc.Style,
		WallThickness: pc.WallThickness,
		FilletRadius:  pc.FilletRadius,
		EdgeStyle:     pc.EdgeStyle,
		ChamferSize:   pc.ChamferSize,
		LidHoleStyle:  pc.LidHoleStyle,
		TrayZ:         pc.TrayZ,
		TrayThickness: pc.TrayThickness,

		BracketHoleDiameter: pc.BracketHoleDiameter,
	}

	if s.Style == "" {
		s.Style = r.EnclosureStyle
	}
	if s.Style == "" {
		s.Style = StyleClassic
	}
	if s.WallThickness == 0 {
		s.WallThickness = r.WallThickness
	}
	if s.FilletRadius == 0 {
		s.FilletRadius = r.FilletRadius
	}
	if s.EdgeStyle == "" {
		if s.FilletRadius > 0 {
			s.EdgeStyle = EdgeFillet
		} else {
			s.EdgeStyle = EdgeNone
		}
	}
	if s.EdgeStyle == EdgeChamfer && s.ChamferSize == 0 {
		s.ChamferSize = 1.0
	}

	// Style-forced overrides win over everything merged above.
	switch s.Style {
	case StyleMinimal:
		s.WallThickness = minimalWallThickness
		s.EdgeStyle = EdgeNone
		s.FilletRadius = 0
		s.ChamferSize = 0
	case StyleRounded:
		s.FilletRadius = roundedFilletRadius
		if s.EdgeStyle == EdgeNone {
			s.EdgeStyle = EdgeFillet
		}
	}

	switch name {
	case PartBase:
		s.Enabled = true
	case PartLid:
		s.Enabled = r.LidStyle != LidNone
		if s.LidHoleStyle == "" {
			s.LidHoleStyle = LidHoleThrough
		}
	case PartTray:
		s.Enabled = pc.Enabled
		if s.TrayThickness == 0 {
			s.TrayThickness = DefaultTrayThickness
		}
	case PartBracket:
		s.Enabled = pc.Enabled
		if s.BracketHoleDiameter == 0 {
			s.BracketHoleDiameter = DefaultBracketHoleDia
		}
	}
	return s
}
