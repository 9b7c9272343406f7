package config

import "fmt"

// ValidationError is a single pre-pipeline validation failure.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Validation error codes.
const (
	CodeEmptyInput       = "EMPTY_INPUT"
	CodeInvalidDimension = "INVALID_DIMENSION"
	CodeInvalidSetting   = "INVALID_SETTING"
)

// Validate checks the request before any geometry runs. An empty slice means
// the request is acceptable. All failures here are fatal: the pipeline never
// starts on an invalid request.
func (r *Request) Validate() []ValidationError {
	var errs []ValidationError

	if len(r.Components) == 0 {
		errs = append(errs, ValidationError{
			Code:    CodeEmptyInput,
			Field:   "components",
			Message: "at least one component is required",
		})
	}

	for i, c := range r.Components {
		field := fmt.Sprintf("components[%d]", i)
		if c.Width <= 0 || c.Depth <= 0 || c.Height <= 0 {
			errs = append(errs, ValidationError{
				Code:    CodeInvalidDimension,
				Field:   field,
				Message: fmt.Sprintf("dimensions must be positive, got %gx%gx%g", c.Width, c.Depth, c.Height),
			})
		}
		if c.GroundZ < 0 {
			errs = append(errs, ValidationError{
				Code:    CodeInvalidDimension,
				Field:   field + ".ground_z",
				Message: "ground clearance cannot be negative",
			})
		}
	}

	errs = append(errs, r.validateBounds()...)
	errs = append(errs, r.validateSettings()...)
	return errs
}

func (r *Request) validateBounds() []ValidationError {
	var errs []ValidationError

	check := func(field string, v, min, max float64) {
		if v < min || v > max {
			errs = append(errs, ValidationError{
				Code:    CodeInvalidDimension,
				Field:   field,
				Message: fmt.Sprintf("%g outside allowed range [%g, %g]", v, min, max),
			})
		}
	}

	if r.PaddingX < 0 || r.PaddingY < 0 || r.PaddingZ < 0 {
		errs = append(errs, ValidationError{
			Code:    CodeInvalidDimension,
			Field:   "padding",
			Message: "padding cannot be negative",
		})
	}
	check("wall_thickness", r.WallThickness, MinThickness, MaxThickness)
	check("floor_thickness", r.FloorThickness, MinThickness, MaxThickness)
	check("lid_thickness", r.LidThickness, MinThickness, MaxThickness)
	check("fillet_radius", r.FilletRadius, 0, MaxFillet)
	check("screw_diameter", r.ScrewDiameter, MinScrew, MaxScrew)

	// Part-level wall overrides obey the same bounds as the global wall.
	for _, p := range []struct {
		name string
		cfg  PartConfig
	}{
		{PartBase, r.Parts.Base},
		{PartLid, r.Parts.Lid},
		{PartTray, r.Parts.Tray},
		{PartBracket, r.Parts.Bracket},
	} {
		if p.cfg.WallThickness != 0 {
			check("parts."+p.name+".wall_thickness", p.cfg.WallThickness, MinThickness, MaxThickness)
		}
		if p.cfg.FilletRadius != 0 {
			check("parts."+p.name+".fillet_radius", p.cfg.FilletRadius, 0, MaxFillet)
		}
	}
	return errs
}

func (r *Request) validateSettings() []ValidationError {
	var errs []ValidationError

	switch r.LidStyle {
	case LidScrews, LidSnap, LidNone:
	default:
		errs = append(errs, ValidationError{
			Code:    CodeInvalidSetting,
			Field:   "lid_style",
			Message: fmt.Sprintf("unknown lid style %q", r.LidStyle),
		})
	}

	switch r.EnclosureStyle {
	case StyleClassic, StyleVented, StyleRounded, StyleRibbed, StyleMinimal, "":
	default:
		errs = append(errs, ValidationError{
			Code:    CodeInvalidSetting,
			Field:   "enclosure_style",
			Message: fmt.Sprintf("unknown enclosure style %q", r.EnclosureStyle),
		})
	}

	if r.WrapperMode && r.Footprint != nil {
		errs = append(errs, ValidationError{
			Code:    CodeInvalidSetting,
			Field:   "footprint",
			Message: "wrapper mode and a fixed footprint shape are mutually exclusive",
		})
	}
	return errs
}
