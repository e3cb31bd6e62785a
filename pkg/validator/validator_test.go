package validator

import "testing"

type point struct {
	Lat  float64 `validate:"lat"`
	Lng  float64 `validate:"lng"`
	Name string  `validate:"notblank"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		in      point
		wantErr bool
	}{
		{"ok", point{Lat: -34.98, Lng: -71.23, Name: "x"}, false},
		{"lat out of range", point{Lat: 91, Lng: 0, Name: "x"}, true},
		{"lng out of range", point{Lat: 0, Lng: -181, Name: "x"}, true},
		{"blank name", point{Lat: 0, Lng: 0, Name: "   "}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("wantErr=%v got %v", tt.wantErr, err)
			}
		})
	}
}
