package pressure

import (
	"math"
	"reflect"
	"testing"
)

var base = Input{YoungsModulus: 2e6, PoissonRatio: 0.3, HeightCm: 175, WeightKg: 70, Posture: "sitting"}

func TestComputeShape(t *testing.T) {
	field, _ := Compute(base, 50)
	if len(field.Samples) != 2500 {
		t.Fatalf("got %d samples, want 2500", len(field.Samples))
	}
	first, last := field.Samples[0], field.Samples[len(field.Samples)-1]
	if first.X != -1 || first.Y != -1 || last.X != 1 || last.Y != 1 {
		t.Errorf("corners = %+v / %+v", first, last)
	}
	// j is the inner index, so the second sample moves along y.
	if field.Samples[1].X != -1 || field.Samples[1].Y <= -1 {
		t.Errorf("unexpected ordering: %+v", field.Samples[1])
	}
	for _, s := range field.Samples {
		if s.Value < 0 {
			t.Fatalf("negative value at %+v", s)
		}
		if math.Hypot(s.X, s.Y) > 1 && s.Value != 0 {
			t.Fatalf("value outside unit disk at %+v", s)
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	a, da := Compute(base, 20)
	b, db := Compute(base, 20)
	if !reflect.DeepEqual(a, b) || da != db {
		t.Fatal("Compute is not deterministic")
	}
}

func TestDerivedValues(t *testing.T) {
	d := Derive(base)
	bsa := 0.007184 * math.Pow(70, 0.425) * math.Pow(1.75, 0.725)
	if math.Abs(d.BodySurfaceM2-bsa) > 1e-12 {
		t.Errorf("bsa = %v, want %v", d.BodySurfaceM2, bsa)
	}
	if math.Abs(d.ContactAreaM2-bsa*0.15) > 1e-12 {
		t.Errorf("contact area = %v", d.ContactAreaM2)
	}
	if math.Abs(d.BasePressurePa-70*9.81/(bsa*0.15)) > 1e-9 {
		t.Errorf("base pressure = %v", d.BasePressurePa)
	}
}

func TestCenterValue(t *testing.T) {
	// odd n puts a sample exactly at the origin
	field, d := Compute(base, 11)
	center := field.Samples[5*11+5]
	if center.X != 0 || center.Y != 0 {
		t.Fatalf("expected origin, got %+v", center)
	}
	want := d.BasePressurePa * 1.2 * 1.5 * (2e6 / (1 - 0.09) / 1e9)
	if math.Abs(center.Value-want) > 1e-9*want {
		t.Errorf("center = %v, want %v", center.Value, want)
	}
}

func TestPostureComparison(t *testing.T) {
	walking := base
	walking.Posture = "walking"
	lying := base
	lying.Posture = "lying"

	fw, _ := Compute(walking, 21)
	fl, _ := Compute(lying, 21)
	if peak(fw) <= peak(fl) {
		t.Errorf("walking peak %v should exceed lying peak %v", peak(fw), peak(fl))
	}

	dw, dl := Derive(walking), Derive(lying)
	if dw.ContactAreaM2 >= dl.ContactAreaM2 {
		t.Errorf("walking contact area %v should be smaller than lying %v", dw.ContactAreaM2, dl.ContactAreaM2)
	}
	if dw.BasePressurePa <= dl.BasePressurePa {
		t.Errorf("walking base pressure %v should exceed lying %v", dw.BasePressurePa, dl.BasePressurePa)
	}
}

func TestUnknownPostureFallsBackToSitting(t *testing.T) {
	odd := base
	odd.Posture = "crouching"
	a, da := Compute(odd, 15)
	b, db := Compute(base, 15)
	if !reflect.DeepEqual(a, b) || da != db {
		t.Fatal("unknown posture should match sitting")
	}
	if _, ok := LookupPosture("crouching"); ok {
		t.Error("crouching should not be reported as known")
	}
	if p, ok := LookupPosture(" Lying "); !ok || p.Key != "lying" {
		t.Errorf("lookup should normalize case and spaces, got %+v %v", p, ok)
	}
}

func TestSingleCellGrid(t *testing.T) {
	field, _ := Compute(base, 1)
	if len(field.Samples) != 1 {
		t.Fatalf("got %d samples", len(field.Samples))
	}
	if s := field.Samples[0]; s.X != 0 || s.Y != 0 || s.Value <= 0 {
		t.Errorf("single sample = %+v", s)
	}
	if empty, _ := Compute(base, 0); len(empty.Samples) != 0 {
		t.Error("n=0 should produce no samples")
	}
}

func peak(f Field) float64 {
	m := 0.0
	for _, v := range f.Values() {
		m = math.Max(m, v)
	}
	return m
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Input)
		wantErr bool
	}{
		{"valid", func(in *Input) {}, false},
		{"poisson at upper bound", func(in *Input) { in.PoissonRatio = 0.5 }, false},
		{"modulus too low", func(in *Input) { in.YoungsModulus = 10 }, true},
		{"poisson too high", func(in *Input) { in.PoissonRatio = 0.6 }, true},
		{"height too short", func(in *Input) { in.HeightCm = 90 }, true},
		{"weight too heavy", func(in *Input) { in.WeightKg = 400 }, true},
		{"nan weight", func(in *Input) { in.WeightKg = math.NaN() }, true},
		{"odd posture", func(in *Input) { in.Posture = "crouching" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			if err := in.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
