package script

import (
	"strings"
	"testing"

	"github.com/chazu/shellforge/pkg/config"
)

// ---------------------------------------------------------------------------
// Preprocessing tests
// ---------------------------------------------------------------------------

func TestPreprocessKeywords(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "simple keyword",
			input:  `(cutout :type "usb_c")`,
			expect: `(cutout "__kw_type" "usb_c")`,
		},
		{
			name:   "multiple keywords",
			input:  `(component :width 30 :depth 60)`,
			expect: `(component "__kw_width" 30 "__kw_depth" 60)`,
		},
		{
			name:   "keyword in string preserved",
			input:  `"thing with :keyword inside"`,
			expect: `"thing with :keyword inside"`,
		},
		{
			name:   "assignment operator preserved",
			input:  `(def x := 10)`,
			expect: `(def x := 10)`,
		},
		{
			name:   "kebab-case identifier",
			input:  `(custom-cutout :offset-x 5)`,
			expect: `(custom_cutout "__kw_offset-x" 5)`,
		},
		{
			name:   "minus operator preserved",
			input:  `(- 10 5)`,
			expect: `(- 10 5)`,
		},
		{
			name:   "comment converted to // style",
			input:  `;; comment with :keyword`,
			expect: `// comment with :keyword`,
		},
		{
			name:   "single semicolon comment",
			input:  `; simple comment`,
			expect: `// simple comment`,
		},
		{
			name:   "hyphen in keyword preserved",
			input:  `:lid-style`,
			expect: `"__kw_lid-style"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocessSource(tt.input)
			if got != tt.expect {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Builtin tests
// ---------------------------------------------------------------------------

func evalOK(t *testing.T, source string) *config.Request {
	t.Helper()
	req, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	if req == nil {
		t.Fatal("expected non-nil request")
	}
	return req
}

func evalFails(t *testing.T, source, wantMsg string) {
	t.Helper()
	req, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if req != nil {
		t.Fatal("expected nil request on eval error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected eval errors")
	}
	if !strings.Contains(evalErrs[0].Message, wantMsg) {
		t.Errorf("error = %q, want containing %q", evalErrs[0].Message, wantMsg)
	}
}

func TestComponentBuiltin(t *testing.T) {
	req := evalOK(t, `
(component "esp32"
  :width 28 :depth 52 :height 13
  :at (vec3 0 5 0) :rot 90)
`)

	if len(req.Components) != 1 {
		t.Fatalf("expected 1 component, got %d", len(req.Components))
	}
	c := req.Components[0]
	if c.Name != "esp32" {
		t.Errorf("name = %q, want esp32", c.Name)
	}
	if c.Width != 28 || c.Depth != 52 || c.Height != 13 {
		t.Errorf("dims = %v %v %v, want 28 52 13", c.Width, c.Depth, c.Height)
	}
	if c.X != 0 || c.Y != 5 || c.Z != 0 {
		t.Errorf("position = %v %v %v, want 0 5 0", c.X, c.Y, c.Z)
	}
	if c.RotY != 90 {
		t.Errorf("plan rotation = %v, want 90", c.RotY)
	}
}

func TestComponentPCBStandoffs(t *testing.T) {
	req := evalOK(t, `
(component "pcb"
  :width 40 :depth 60 :height 12
  :pcb true :screw-diameter 2.5 :ground-z 4
  :standoffs (list (xy -15 -25) (xy 15 25)))
`)

	c := req.Components[0]
	if !c.IsPCB {
		t.Fatal("expected IsPCB")
	}
	if c.PCBScrewDiameter != 2.5 {
		t.Errorf("screw diameter = %v, want 2.5", c.PCBScrewDiameter)
	}
	if c.GroundZ != 4 {
		t.Errorf("ground z = %v, want 4", c.GroundZ)
	}
	if len(c.StandoffPositions) != 2 {
		t.Fatalf("expected 2 standoff positions, got %d", len(c.StandoffPositions))
	}
	if c.StandoffPositions[0].X != -15 || c.StandoffPositions[0].Y != -25 {
		t.Errorf("first standoff = %v, want (-15,-25)", c.StandoffPositions[0])
	}
}

func TestCutoutBuiltin(t *testing.T) {
	req := evalOK(t, `
(cutout :type :usb-c :face :left :offset-x 5 :offset-y -2)
(cutout :type :custom :face :front :width 12 :height 8)
`)

	if len(req.Cutouts) != 2 {
		t.Fatalf("expected 2 cutouts, got %d", len(req.Cutouts))
	}
	if req.Cutouts[0].ConnectorType != "usb_c" {
		t.Errorf("type = %q, want usb_c", req.Cutouts[0].ConnectorType)
	}
	if req.Cutouts[0].Face != config.FaceLeft {
		t.Errorf("face = %q, want left", req.Cutouts[0].Face)
	}
	if req.Cutouts[0].OffsetX != 5 || req.Cutouts[0].OffsetY != -2 {
		t.Errorf("offsets = %v %v, want 5 -2", req.Cutouts[0].OffsetX, req.Cutouts[0].OffsetY)
	}
	if req.Cutouts[1].CustomWidth != 12 || req.Cutouts[1].CustomHeight != 8 {
		t.Errorf("custom dims = %v %v, want 12 8", req.Cutouts[1].CustomWidth, req.Cutouts[1].CustomHeight)
	}
}

func TestCustomCutoutBuiltin(t *testing.T) {
	req := evalOK(t, `
(custom-cutout :shape :hexagon :face :top
  :width 20 :height 20 :rotation 30 :depth 5 :offset-x 3)
`)

	if len(req.CustomCutouts) != 1 {
		t.Fatalf("expected 1 custom cutout, got %d", len(req.CustomCutouts))
	}
	cc := req.CustomCutouts[0]
	if cc.Shape != config.ShapeHexagon {
		t.Errorf("shape = %q, want hexagon", cc.Shape)
	}
	if cc.Face != config.FaceTop {
		t.Errorf("face = %q, want top", cc.Face)
	}
	if cc.Rotation != 30 || cc.Depth != 5 || cc.OffsetX != 3 {
		t.Errorf("rotation/depth/offset = %v %v %v", cc.Rotation, cc.Depth, cc.OffsetX)
	}
}

func TestEnclosureBuiltin(t *testing.T) {
	req := evalOK(t, `
(enclosure :padding 4 :padding-z 2
  :wall 3 :floor 2 :lid-thickness 2.4
  :lid-style :snap :style :vented :fillet 3
  :wrapper true :pcb-standoffs true)
`)

	if req.PaddingX != 4 || req.PaddingY != 4 {
		t.Errorf("padding x/y = %v %v, want 4 4", req.PaddingX, req.PaddingY)
	}
	if req.PaddingZ != 2 {
		t.Errorf("padding z = %v, want 2 (override after :padding)", req.PaddingZ)
	}
	if req.WallThickness != 3 || req.FloorThickness != 2 || req.LidThickness != 2.4 {
		t.Errorf("thicknesses = %v %v %v", req.WallThickness, req.FloorThickness, req.LidThickness)
	}
	if req.LidStyle != config.LidSnap {
		t.Errorf("lid style = %q, want snap", req.LidStyle)
	}
	if req.EnclosureStyle != config.StyleVented {
		t.Errorf("style = %q, want vented", req.EnclosureStyle)
	}
	if req.FilletRadius != 3 {
		t.Errorf("fillet = %v, want 3", req.FilletRadius)
	}
	if !req.WrapperMode || !req.PCBStandoffsEnabled {
		t.Error("expected wrapper mode and pcb standoffs enabled")
	}
}

func TestEnclosureStringValues(t *testing.T) {
	// Plain strings are accepted wherever keywords are.
	req := evalOK(t, `(enclosure :lid-style "screws" :style "ribbed")`)
	if req.LidStyle != config.LidScrews {
		t.Errorf("lid style = %q, want screws", req.LidStyle)
	}
	if req.EnclosureStyle != config.StyleRibbed {
		t.Errorf("style = %q, want ribbed", req.EnclosureStyle)
	}
}

func TestFootprintBuiltin(t *testing.T) {
	req := evalOK(t, `
(footprint :shape :l-shape :notch-width 20 :notch-depth 15 :corner :front-left)
`)

	if req.Footprint == nil {
		t.Fatal("expected footprint config")
	}
	if req.Footprint.Shape != config.FootLShape {
		t.Errorf("shape = %q, want l_shape", req.Footprint.Shape)
	}
	if req.Footprint.NotchWidth != 20 || req.Footprint.NotchDepth != 15 {
		t.Errorf("notch = %v %v, want 20 15", req.Footprint.NotchWidth, req.Footprint.NotchDepth)
	}
	if req.Footprint.Corner != "front_left" {
		t.Errorf("corner = %q, want front_left", req.Footprint.Corner)
	}
}

func TestPartBuiltins(t *testing.T) {
	req := evalOK(t, `
(base :edge-style :chamfer :chamfer 1.2)
(lid :hole-style :countersunk)
(tray :enabled true :z 12 :thickness 2.5)
(bracket :enabled true :hole-diameter 4.5)
`)

	if req.Parts.Base.EdgeStyle != config.EdgeChamfer || req.Parts.Base.ChamferSize != 1.2 {
		t.Errorf("base = %+v", req.Parts.Base)
	}
	if req.Parts.Lid.LidHoleStyle != config.LidHoleCountersunk {
		t.Errorf("lid hole style = %q, want countersunk", req.Parts.Lid.LidHoleStyle)
	}
	if !req.Parts.Tray.Enabled || req.Parts.Tray.TrayZ != 12 || req.Parts.Tray.TrayThickness != 2.5 {
		t.Errorf("tray = %+v", req.Parts.Tray)
	}
	if !req.Parts.Bracket.Enabled || req.Parts.Bracket.BracketHoleDiameter != 4.5 {
		t.Errorf("bracket = %+v", req.Parts.Bracket)
	}
}

func TestBuiltinErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantMsg string
	}{
		{
			name:    "cutout missing type",
			source:  `(cutout :face :left)`,
			wantMsg: "type is required",
		},
		{
			name:    "invalid face",
			source:  `(cutout :type :usb_c :face :diagonal)`,
			wantMsg: "invalid face",
		},
		{
			name:    "custom cutout missing shape",
			source:  `(custom-cutout :face :top :width 10 :height 10)`,
			wantMsg: "shape is required",
		},
		{
			name:    "footprint missing shape",
			source:  `(footprint :notch-width 10)`,
			wantMsg: "shape is required",
		},
		{
			name:    "non-numeric dimension",
			source:  `(component "x" :width "wide")`,
			wantMsg: "expected number",
		},
		{
			name:    "vec3 arity",
			source:  `(component "x" :at (vec3 1 2))`,
			wantMsg: "vec3 requires exactly 3 arguments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evalFails(t, tt.source, tt.wantMsg)
		})
	}
}

func TestFullProgram(t *testing.T) {
	req := evalOK(t, `
;; two-board stack with a vented shell
(enclosure :padding 3 :wall 2.5 :lid-style :screws :style :vented
           :pcb-standoffs true)

(component "controller"
  :width 30 :depth 60 :height 15
  :pcb true :ground-z 3)

(component "battery"
  :width 25 :depth 50 :height 8
  :at (vec3 0 0 16))

(cutout :type :usb-c :face :front)
(custom-cutout :shape :circle :face :top :width 8 :height 8)
(tray :enabled true :z 16)
`)

	if len(req.Components) != 2 {
		t.Fatalf("expected 2 components, got %d", len(req.Components))
	}
	if req.Components[1].Z != 16 {
		t.Errorf("battery z = %v, want 16", req.Components[1].Z)
	}
	if len(req.Cutouts) != 1 || len(req.CustomCutouts) != 1 {
		t.Fatalf("cutouts = %d/%d, want 1/1", len(req.Cutouts), len(req.CustomCutouts))
	}
	if !req.Parts.Tray.Enabled {
		t.Error("expected tray enabled")
	}

	// The evaluated request passes validation as-is.
	req.ApplyDefaults()
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
}
