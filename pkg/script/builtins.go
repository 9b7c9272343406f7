package script

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/shellforge/pkg/config"
	"github.com/chazu/shellforge/pkg/spatial"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms enclosure Lisp source code before passing it
// to zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: custom-cutout -> custom_cutout
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus
		// operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec3 wraps a spatial.Point3 produced by the vec3 builtin.
type sexpVec3 struct {
	vec spatial.Point3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %.1f %.1f %.1f)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpOffset wraps a config.Offset2 produced by the xy builtin.
type sexpOffset struct {
	off config.Offset2
}

func (o *sexpOffset) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(xy %.1f %.1f)", o.off.X, o.off.Y)
}
func (o *sexpOffset) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toBool extracts a bool from a Sexp.
func toBool(s zygo.Sexp) (bool, error) {
	if b, ok := s.(*zygo.SexpBool); ok {
		return b.Val, nil
	}
	return false, fmt.Errorf("expected bool, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_snap) and plain strings ("snap").
// Underscores written as hyphens in source survive because keywords are
// not identifier-rewritten; hyphens are normalized here.
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	name := str.S
	if strings.HasPrefix(name, kwPrefix) {
		name = name[len(kwPrefix):]
	}
	return strings.ReplaceAll(name, "-", "_"), nil
}

// toFace converts a keyword or string to a config.Face.
func toFace(s zygo.Sexp) (config.Face, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return "", fmt.Errorf("expected face keyword: %w", err)
	}
	f := config.Face(name)
	if !f.Valid() {
		return "", fmt.Errorf("invalid face %q, expected top/bottom/left/right/front/back", name)
	}
	return f, nil
}

// toVec3 extracts a Point3 from a sexpVec3.
func toVec3(s zygo.Sexp) (spatial.Point3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return spatial.Point3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// kwFloat assigns a numeric keyword argument to dst if present.
func kwFloat(pa kwArgs, name, ctx string, dst *float64) error {
	v, ok := pa.kw[name]
	if !ok {
		return nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", ctx, name, err)
	}
	*dst = f
	return nil
}

// kwName assigns a keyword-or-string argument to dst if present.
func kwName(pa kwArgs, name, ctx string, dst *string) error {
	v, ok := pa.kw[name]
	if !ok {
		return nil
	}
	s, err := toKeywordString(v)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", ctx, name, err)
	}
	*dst = s
	return nil
}

// kwBool assigns a boolean keyword argument to dst if present.
func kwBool(pa kwArgs, name, ctx string, dst *bool) error {
	v, ok := pa.kw[name]
	if !ok {
		return nil
	}
	b, err := toBool(v)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", ctx, name, err)
	}
	*dst = b
	return nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the enclosure DSL builtins into a zygomys
// environment. The builtins mutate the provided request during evaluation.
//
// Source code must be preprocessed with preprocessSource() before evaluation
// so that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, req *config.Request) {

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: y: %w", err)
		}
		z, err := toFloat64(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: z: %w", err)
		}
		return &sexpVec3{vec: spatial.Point3{X: x, Y: y, Z: z}}, nil
	})

	// -----------------------------------------------------------------------
	// (xy -12.5 22)
	// -----------------------------------------------------------------------
	env.AddFunction("xy", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("xy requires exactly 2 arguments, got %d", len(args))
		}
		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("xy: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("xy: y: %w", err)
		}
		return &sexpOffset{off: config.Offset2{X: x, Y: y}}, nil
	})

	// -----------------------------------------------------------------------
	// (component "esp32" :width 28 :depth 52 :height 13
	//            :at (vec3 0 0 0) :rot 90
	//            :pcb true :screw-diameter 2.5 :ground-z 3
	//            :standoffs (list (xy -11 -23) (xy 11 23)))
	// -----------------------------------------------------------------------
	env.AddFunction("component", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		c := config.Component{}

		if len(pa.positional) > 0 {
			cn, err := toString(pa.positional[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("component: name: %w", err)
			}
			c.Name = cn
		}

		if err := kwFloat(pa, "width", "component", &c.Width); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "depth", "component", &c.Depth); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "height", "component", &c.Height); err != nil {
			return zygo.SexpNull, err
		}
		if v, ok := pa.kw["at"]; ok {
			vec, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("component: at: %w", err)
			}
			c.X, c.Y, c.Z = vec.X, vec.Y, vec.Z
		}
		if err := kwFloat(pa, "x", "component", &c.X); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "y", "component", &c.Y); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "z", "component", &c.Z); err != nil {
			return zygo.SexpNull, err
		}
		// :rot is the plan rotation about the vertical axis.
		if err := kwFloat(pa, "rot", "component", &c.RotY); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "rot-x", "component", &c.RotX); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "rot-y", "component", &c.RotY); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "rot-z", "component", &c.RotZ); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwBool(pa, "pcb", "component", &c.IsPCB); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "screw-diameter", "component", &c.PCBScrewDiameter); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "ground-z", "component", &c.GroundZ); err != nil {
			return zygo.SexpNull, err
		}
		if v, ok := pa.kw["standoffs"]; ok {
			items, err := sexpListToSlice(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("component: standoffs: %w", err)
			}
			for _, item := range items {
				o, ok := item.(*sexpOffset)
				if !ok {
					return zygo.SexpNull, fmt.Errorf("component: standoffs entry: expected xy, got %T", item)
				}
				c.StandoffPositions = append(c.StandoffPositions, o.off)
			}
		}

		req.Components = append(req.Components, c)
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (cutout :type :usb_c :face :left :offset-x 5 :offset-y 0)
	// (cutout :type :custom :face :front :width 12 :height 8)
	// -----------------------------------------------------------------------
	env.AddFunction("cutout", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		cc := config.ConnectorCutout{}

		if err := kwName(pa, "type", "cutout", &cc.ConnectorType); err != nil {
			return zygo.SexpNull, err
		}
		if cc.ConnectorType == "" {
			return zygo.SexpNull, fmt.Errorf("cutout: type is required")
		}
		if v, ok := pa.kw["face"]; ok {
			f, err := toFace(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("cutout: face: %w", err)
			}
			cc.Face = f
		}
		if err := kwFloat(pa, "offset-x", "cutout", &cc.OffsetX); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "offset-y", "cutout", &cc.OffsetY); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "width", "cutout", &cc.CustomWidth); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "height", "cutout", &cc.CustomHeight); err != nil {
			return zygo.SexpNull, err
		}

		req.Cutouts = append(req.Cutouts, cc)
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (custom-cutout :shape :hexagon :face :top :width 20 :height 20
	//                :offset-x 0 :offset-y 0 :rotation 30 :depth 5)
	//
	// Note: registered as "custom_cutout" because zygomys does not support
	// hyphens in identifiers. The preprocessor converts custom-cutout to
	// custom_cutout in the source.
	// -----------------------------------------------------------------------
	env.AddFunction("custom_cutout", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		cc := config.CustomCutout{}

		if err := kwName(pa, "shape", "custom-cutout", &cc.Shape); err != nil {
			return zygo.SexpNull, err
		}
		if cc.Shape == "" {
			return zygo.SexpNull, fmt.Errorf("custom-cutout: shape is required")
		}
		if v, ok := pa.kw["face"]; ok {
			f, err := toFace(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("custom-cutout: face: %w", err)
			}
			cc.Face = f
		}
		if err := kwFloat(pa, "width", "custom-cutout", &cc.Width); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "height", "custom-cutout", &cc.Height); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "depth", "custom-cutout", &cc.Depth); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "offset-x", "custom-cutout", &cc.OffsetX); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "offset-y", "custom-cutout", &cc.OffsetY); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "rotation", "custom-cutout", &cc.Rotation); err != nil {
			return zygo.SexpNull, err
		}

		req.CustomCutouts = append(req.CustomCutouts, cc)
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (enclosure :padding 3 :wall 2.5 :floor 2.5
	//            :lid-style :snap :style :vented :fillet 3
	//            :wrapper true :pcb-standoffs true)
	// -----------------------------------------------------------------------
	env.AddFunction("enclosure", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		if v, ok := pa.kw["padding"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("enclosure: padding: %w", err)
			}
			req.PaddingX, req.PaddingY, req.PaddingZ = f, f, f
		}
		if err := kwFloat(pa, "padding-x", "enclosure", &req.PaddingX); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "padding-y", "enclosure", &req.PaddingY); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "padding-z", "enclosure", &req.PaddingZ); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "wall", "enclosure", &req.WallThickness); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "floor", "enclosure", &req.FloorThickness); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "lid-thickness", "enclosure", &req.LidThickness); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwName(pa, "lid-style", "enclosure", &req.LidStyle); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "screw-diameter", "enclosure", &req.ScrewDiameter); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "screw-length", "enclosure", &req.ScrewLength); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "boss-diameter", "enclosure", &req.BossDiameter); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "snap-depth", "enclosure", &req.SnapDepth); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "snap-width", "enclosure", &req.SnapWidth); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "fillet", "enclosure", &req.FilletRadius); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwName(pa, "style", "enclosure", &req.EnclosureStyle); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwBool(pa, "wrapper", "enclosure", &req.WrapperMode); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwBool(pa, "pcb-standoffs", "enclosure", &req.PCBStandoffsEnabled); err != nil {
			return zygo.SexpNull, err
		}

		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (footprint :shape :l_shape :notch-width 20 :notch-depth 15
	//            :corner :front_left)
	// -----------------------------------------------------------------------
	env.AddFunction("footprint", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		fc := config.FootprintConfig{}

		if err := kwName(pa, "shape", "footprint", &fc.Shape); err != nil {
			return zygo.SexpNull, err
		}
		if fc.Shape == "" {
			return zygo.SexpNull, fmt.Errorf("footprint: shape is required")
		}
		if err := kwFloat(pa, "notch-width", "footprint", &fc.NotchWidth); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "notch-depth", "footprint", &fc.NotchDepth); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "tab-width", "footprint", &fc.TabWidth); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "tab-depth", "footprint", &fc.TabDepth); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "arm-width", "footprint", &fc.ArmWidth); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "arm-depth", "footprint", &fc.ArmDepth); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwName(pa, "corner", "footprint", &fc.Corner); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwName(pa, "side", "footprint", &fc.Side); err != nil {
			return zygo.SexpNull, err
		}

		req.Footprint = &fc
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (base :edge-style :chamfer :chamfer 1.2)
	// (lid :hole-style :countersunk)
	// (tray :enabled true :z 12 :thickness 2)
	// (bracket :enabled true :hole-diameter 4.5)
	// -----------------------------------------------------------------------
	partBuiltin := func(partName string, pc *config.PartConfig) {
		env.AddFunction(partName, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)

			if err := kwBool(pa, "enabled", partName, &pc.Enabled); err != nil {
				return zygo.SexpNull, err
			}
			if err := kwName(pa, "style", partName, &pc.Style); err != nil {
				return zygo.SexpNull, err
			}
			if err := kwFloat(pa, "fillet", partName, &pc.FilletRadius); err != nil {
				return zygo.SexpNull, err
			}
			if err := kwFloat(pa, "wall", partName, &pc.WallThickness); err != nil {
				return zygo.SexpNull, err
			}
			if err := kwName(pa, "edge-style", partName, &pc.EdgeStyle); err != nil {
				return zygo.SexpNull, err
			}
			if err := kwFloat(pa, "chamfer", partName, &pc.ChamferSize); err != nil {
				return zygo.SexpNull, err
			}
			if err := kwName(pa, "hole-style", partName, &pc.LidHoleStyle); err != nil {
				return zygo.SexpNull, err
			}
			if err := kwFloat(pa, "z", partName, &pc.TrayZ); err != nil {
				return zygo.SexpNull, err
			}
			if err := kwFloat(pa, "thickness", partName, &pc.TrayThickness); err != nil {
				return zygo.SexpNull, err
			}
			if err := kwFloat(pa, "hole-diameter", partName, &pc.BracketHoleDiameter); err != nil {
				return zygo.SexpNull, err
			}

			return zygo.SexpNull, nil
		})
	}
	partBuiltin(config.PartBase, &req.Parts.Base)
	partBuiltin(config.PartLid, &req.Parts.Lid)
	partBuiltin(config.PartTray, &req.Parts.Tray)
	partBuiltin(config.PartBracket, &req.Parts.Bracket)
}
