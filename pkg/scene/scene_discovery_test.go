package scene

import (
	"errors"
	"math"
	"testing"
)

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != len(presets) {
		t.Fatalf("Expected %d scenes, got %d", len(presets), len(scenes))
	}

	for i := 1; i < len(scenes); i++ {
		if scenes[i-1].DisplayName > scenes[i].DisplayName {
			t.Errorf("Scenes not sorted: %q before %q", scenes[i-1].DisplayName, scenes[i].DisplayName)
		}
	}
}

func TestLookupPreset(t *testing.T) {
	tests := []struct {
		name        string
		expectError bool
	}{
		{"default", false},
		{"single-sphere", false},
		{"checkerboard", false},
		{"glass", false},
		{"cornell", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preset, err := LookupPreset(tt.name)
			if tt.expectError {
				if !errors.Is(err, ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene for %q, got %v", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.name, err)
			}
			if preset.Info.ID != tt.name {
				t.Errorf("Expected ID %q, got %q", tt.name, preset.Info.ID)
			}
		})
	}
}

func TestPresets_Build(t *testing.T) {
	for name, preset := range presets {
		t.Run(name, func(t *testing.T) {
			cfg := preset.Info.Config
			// Small resolution keeps the smoke render fast
			cfg.Width, cfg.Height = 16, 9
			s := preset.Build(cfg)

			if s.GetPrimitiveCount() == 0 {
				t.Error("Scene should contain objects")
			}
			if s.GetLightCount() == 0 {
				t.Error("Scene should contain lights")
			}
			if s.MaxDepth() != cfg.MaxDepth {
				t.Errorf("Expected depth %d, got %d", cfg.MaxDepth, s.MaxDepth())
			}

			for row := 0; row < cfg.Height; row++ {
				for col := 0; col < cfg.Width; col++ {
					c := s.ColorOfPixel(col, row)
					for _, v := range []float64{c.X, c.Y, c.Z} {
						if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
							t.Fatalf("Pixel (%d, %d) has invalid color %v", col, row, c)
						}
					}
				}
			}
		})
	}
}

func TestDefaultScene_Contents(t *testing.T) {
	s := NewDefaultScene(DefaultConfig())

	if len(s.balls) != 4 {
		t.Errorf("Expected 4 balls, got %d", len(s.balls))
	}
	if len(s.checkerboards) != 2 {
		t.Errorf("Expected 2 checkerboard fragments, got %d", len(s.checkerboards))
	}
	if s.checkerboards[0].Even == s.checkerboards[1].Even {
		t.Error("Checkerboard fragments should have opposite parity")
	}
	if s.Camera().Cols() != 1920 || s.Camera().Rows() != 1080 {
		t.Errorf("Unexpected resolution %dx%d", s.Camera().Cols(), s.Camera().Rows())
	}
}
