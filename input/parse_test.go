package input

import (
	"errors"
	"math"
	"testing"
)

func TestParseAtom(t *testing.T) {
	tests := []struct {
		spec string
		want Atom
	}{
		{"enter", NewKeyAtom(KeyEnter)},
		{"Enter", NewKeyAtom(KeyEnter)},
		{"CTRL", NewKeyAtom(KeyCtrl)},
		{"j", NewKeyAtom(KeyJ)},
		{"f5", NewKeyAtom(KeyF5)},
		{" space ", NewKeyAtom(KeySpace)},
		{"mouse:left", NewMouseAtom(MouseLeft)},
		{"Mouse:Middle", NewMouseAtom(MouseMiddle)},
		{"pad0:south", NewPadButtonAtom(0, PadSouth)},
		{"pad3:start", NewPadButtonAtom(3, PadStart)},
		{"pad0:leftx+", NewPadAxisAtom(0, AxisLeftX, Positive)},
		{"pad0:lefty-", NewPadAxisAtom(0, AxisLeftY, Negative)},
		{"pad1:rightx+@0.25", NewPadAxisAtomThreshold(1, AxisRightX, Positive, 0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseAtom(tt.spec)
			if err != nil {
				t.Fatalf("ParseAtom(%q) error = %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("ParseAtom(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseAtomErrors(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want error
	}{
		{"empty", "", ErrEmptySpec},
		{"whitespace only", "   ", ErrEmptySpec},
		{"unknown key", "hyperdrive", ErrInvalidSpec},
		{"unknown mouse button", "mouse:side", ErrInvalidSpec},
		{"missing pad colon", "pad0south", ErrInvalidSpec},
		{"bad pad number", "padx:south", ErrInvalidSpec},
		{"pad number overflow", "pad300:south", ErrInvalidSpec},
		{"unknown pad input", "pad0:turbo", ErrInvalidSpec},
		{"axis without sign", "pad0:leftx@0.5", ErrInvalidSpec},
		{"bad threshold", "pad0:leftx+@high", ErrInvalidSpec},
		{"threshold out of range", "pad0:leftx+@1.5", ErrInvalidSpec},
		{"empty pad input", "pad0:", ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAtom(tt.spec)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseAtom(%q) error = %v, want %v", tt.spec, err, tt.want)
			}
		})
	}
}

func TestParseAtomDefaultThreshold(t *testing.T) {
	a, err := ParseAtom("pad0:leftx+")
	if err != nil {
		t.Fatalf("ParseAtom error = %v", err)
	}
	if math.Abs(a.Threshold()-DefaultAxisThreshold) > 0.0002 {
		t.Errorf("Threshold() = %v, want %v", a.Threshold(), DefaultAxisThreshold)
	}
}

func TestMustParseAtomPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseAtom should panic on invalid spec")
		}
	}()
	MustParseAtom("not a real atom")
}

func TestAtomSpecRoundTrip(t *testing.T) {
	specs := []string{
		"enter",
		"ctrl",
		"mouse:right",
		"pad0:south",
		"pad2:dpadup",
		"pad0:leftx+",
		"pad1:righty-@0.25",
	}

	for _, spec := range specs {
		a, err := ParseAtom(spec)
		if err != nil {
			t.Fatalf("ParseAtom(%q) error = %v", spec, err)
		}
		got, err := ParseAtom(a.String())
		if err != nil {
			t.Fatalf("reparsing %q error = %v", a.String(), err)
		}
		if got != a {
			t.Errorf("round trip of %q changed atom: %v != %v", spec, got, a)
		}
	}
}

func TestNormalizeSpec(t *testing.T) {
	got, err := NormalizeSpec("  Mouse:LEFT ")
	if err != nil {
		t.Fatalf("NormalizeSpec error = %v", err)
	}
	if got != "mouse:left" {
		t.Errorf("NormalizeSpec = %q, want %q", got, "mouse:left")
	}

	if _, err := NormalizeSpec("nope"); err == nil {
		t.Error("NormalizeSpec should propagate parse errors")
	}
}
