package core

import "testing"

func TestParseRGB(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#ffffff", RGBWhite, false},
		{"00ff00", RGBGreen, false},
		{"Blue", RGBBlue, false},
		{" yellow ", RGBYellow, false},
		{"#12345", RGB{}, true},
		{"#zzzzzz", RGB{}, true},
	}

	for _, tt := range tests {
		got, err := ParseRGB(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRGB(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseRGB(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestRGBHexRoundTrip(t *testing.T) {
	c := RGB{R: 0x12, G: 0xab, B: 0x07}
	got, err := ParseRGB(c.Hex())
	if err != nil {
		t.Fatalf("ParseRGB(%q) failed: %v", c.Hex(), err)
	}
	if got != c {
		t.Errorf("Expected %+v, got %+v", c, got)
	}
}
