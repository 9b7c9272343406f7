package config

import (
	"encoding/json"
	"strings"
	"testing"
)

func validRequest() Request {
	r := Defaults()
	r.Components = []Component{
		{Name: "esp32", Width: 28, Depth: 55, Height: 12},
	}
	return r
}

func TestValidateAcceptsDefaults(t *testing.T) {
	r := validRequest()
	if errs := r.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestValidateEmptyComponents(t *testing.T) {
	r := Defaults()
	errs := r.Validate()
	if len(errs) == 0 {
		t.Fatal("Validate() accepted empty component list")
	}
	if errs[0].Code != CodeEmptyInput {
		t.Errorf("code = %s, want %s", errs[0].Code, CodeEmptyInput)
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		code   string
	}{
		{"zero width", func(r *Request) { r.Components[0].Width = 0 }, CodeInvalidDimension},
		{"negative height", func(r *Request) { r.Components[0].Height = -4 }, CodeInvalidDimension},
		{"wall too thin", func(r *Request) { r.WallThickness = 0.5 }, CodeInvalidDimension},
		{"wall too thick", func(r *Request) { r.WallThickness = 12 }, CodeInvalidDimension},
		{"negative padding", func(r *Request) { r.PaddingY = -1 }, CodeInvalidDimension},
		{"fillet too large", func(r *Request) { r.FilletRadius = 9 }, CodeInvalidDimension},
		{"bad lid style", func(r *Request) { r.LidStyle = "bolted" }, CodeInvalidSetting},
		{"bad enclosure style", func(r *Request) { r.EnclosureStyle = "brutalist" }, CodeInvalidSetting},
		{"wrapper plus footprint", func(r *Request) {
			r.WrapperMode = true
			r.Footprint = &FootprintConfig{Shape: FootLShape}
		}, CodeInvalidSetting},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRequest()
			tt.mutate(&r)
			errs := r.Validate()
			if len(errs) == 0 {
				t.Fatal("Validate() accepted invalid request")
			}
			found := false
			for _, e := range errs {
				if e.Code == tt.code {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %v missing code %s", errs, tt.code)
			}
		})
	}
}

func TestApplyDefaultsFillsUnset(t *testing.T) {
	var r Request
	if err := json.Unmarshal([]byte(`{"components":[{"name":"a","width":10,"depth":10,"height":5,"is_pcb":true,"ground_z":4}]}`), &r); err != nil {
		t.Fatal(err)
	}
	r.ApplyDefaults()
	if r.WallThickness != DefaultWallThickness {
		t.Errorf("wall = %v, want %v", r.WallThickness, DefaultWallThickness)
	}
	if r.LidStyle != LidScrews {
		t.Errorf("lid style = %q, want screws", r.LidStyle)
	}
	if r.Components[0].PCBScrewDiameter != DefaultScrewDiameter {
		t.Errorf("pcb screw = %v, want default", r.Components[0].PCBScrewDiameter)
	}
}

func TestApplyDefaultsKeepsExplicitZeros(t *testing.T) {
	r := validRequest()
	r.PaddingX = 0
	r.FilletRadius = 0
	r.ApplyDefaults()
	if r.PaddingX != 0 {
		t.Errorf("explicit zero padding overwritten to %v", r.PaddingX)
	}
	if r.FilletRadius != 0 {
		t.Errorf("explicit zero fillet overwritten to %v", r.FilletRadius)
	}
}

func TestResolvePartsFallbacks(t *testing.T) {
	r := validRequest()
	r.WallThickness = 3
	r.FilletRadius = 2
	r.Parts.Lid.WallThickness = 1.5

	parts := r.ResolveParts()
	if parts.Base.WallThickness != 3 {
		t.Errorf("base wall = %v, want global 3", parts.Base.WallThickness)
	}
	if parts.Lid.WallThickness != 1.5 {
		t.Errorf("lid wall = %v, want override 1.5", parts.Lid.WallThickness)
	}
	if parts.Base.FilletRadius != 2 {
		t.Errorf("base fillet = %v, want global 2", parts.Base.FilletRadius)
	}
	if parts.Base.EdgeStyle != EdgeFillet {
		t.Errorf("base edge = %q, want fillet (derived from radius)", parts.Base.EdgeStyle)
	}
}

func TestResolvePartsStyleOverrides(t *testing.T) {
	t.Run("minimal forces wall and sharp edges", func(t *testing.T) {
		r := validRequest()
		r.EnclosureStyle = StyleMinimal
		r.WallThickness = 4
		r.FilletRadius = 2
		base := r.ResolveParts().Base
		if base.WallThickness != 1.8 {
			t.Errorf("minimal wall = %v, want 1.8", base.WallThickness)
		}
		if base.EdgeStyle != EdgeNone || base.FilletRadius != 0 {
			t.Errorf("minimal edge = %q fillet = %v, want none/0", base.EdgeStyle, base.FilletRadius)
		}
	})
	t.Run("rounded forces fillet radius", func(t *testing.T) {
		r := validRequest()
		r.EnclosureStyle = StyleRounded
		r.FilletRadius = 0.5
		base := r.ResolveParts().Base
		if base.FilletRadius != 3 {
			t.Errorf("rounded fillet = %v, want 3", base.FilletRadius)
		}
	})
	t.Run("part style wins over global", func(t *testing.T) {
		r := validRequest()
		r.EnclosureStyle = StyleVented
		r.Parts.Base.Style = StyleClassic
		if got := r.ResolveParts().Base.Style; got != StyleClassic {
			t.Errorf("base style = %q, want classic", got)
		}
	})
}

func TestResolvePartsEnablement(t *testing.T) {
	r := validRequest()
	parts := r.ResolveParts()
	if !parts.Base.Enabled {
		t.Error("base must always be enabled")
	}
	if !parts.Lid.Enabled {
		t.Error("lid should be enabled for screws style")
	}
	if parts.Tray.Enabled || parts.Bracket.Enabled {
		t.Error("tray/bracket must default to disabled")
	}

	r.LidStyle = LidNone
	r.Parts.Tray.Enabled = true
	parts = r.ResolveParts()
	if parts.Lid.Enabled {
		t.Error("lid should be disabled for lid_style none")
	}
	if !parts.Tray.Enabled {
		t.Error("tray should honor enabled flag")
	}
	if parts.Tray.TrayThickness != DefaultTrayThickness {
		t.Errorf("tray thickness = %v, want default", parts.Tray.TrayThickness)
	}
}

func TestFaceValid(t *testing.T) {
	for _, f := range []Face{FaceFront, FaceBack, FaceLeft, FaceRight, FaceTop, FaceBottom} {
		if !f.Valid() {
			t.Errorf("Face(%q).Valid() = false", f)
		}
	}
	if Face("diagonal").Valid() {
		t.Error(`Face("diagonal").Valid() = true`)
	}
}

func TestRequestJSONRoundTrip(t *testing.T) {
	r := validRequest()
	r.Cutouts = []ConnectorCutout{{ConnectorType: "usb_c", Face: FaceFront, OffsetY: -2}}
	blob, err := json.Marshal(&r)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(blob), `"connector_type":"usb_c"`) {
		t.Errorf("marshal missing snake_case key: %s", blob)
	}
	var back Request
	if err := json.Unmarshal(blob, &back); err != nil {
		t.Fatal(err)
	}
	if back.Cutouts[0].Face != FaceFront {
		t.Errorf("face after round trip = %q", back.Cutouts[0].Face)
	}
}
