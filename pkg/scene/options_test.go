package scene

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestParseBackground(t *testing.T) {
	tests := []struct {
		input       string
		expected    core.Vec3
		expectError bool
	}{
		{"black", core.Zero, false},
		{"White", core.One, false},
		{"0.2,0.7,0.8", core.NewVec3(0.2, 0.7, 0.8), false},
		{" 1, 0 ,0.5 ", core.NewVec3(1, 0, 0.5), false},
		{"notacolor", core.Vec3{}, true},
		{"1,2", core.Vec3{}, true},
		{"1,x,2", core.Vec3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBackground(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestParseShadowMode(t *testing.T) {
	for _, mode := range []ShadowMode{ShadowsUnbounded, ShadowsBoundedByLight} {
		parsed, err := ParseShadowMode(mode.String())
		if err != nil || parsed != mode {
			t.Errorf("ParseShadowMode(%q) = %v, %v", mode.String(), parsed, err)
		}
	}
	if _, err := ParseShadowMode("soft"); err == nil {
		t.Error("Expected error for unknown shadow mode")
	}
}
