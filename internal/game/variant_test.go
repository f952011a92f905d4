package game

import "testing"

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"classic", Classic, false},
		{"extended", Extended, false},
		{"fire-water", FireWater, false},
		{"firewater", FireWater, false},
		{"spock", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseVariant(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVariant(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVariant(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestVariantStringRoundTrip(t *testing.T) {
	for _, v := range Variants {
		got, err := ParseVariant(v.String())
		if err != nil {
			t.Errorf("ParseVariant(%q): %v", v.String(), err)
			continue
		}
		if got != v {
			t.Errorf("ParseVariant(%q) = %s, want %s", v.String(), got, v)
		}
	}
}
