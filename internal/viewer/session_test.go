package viewer

import "testing"

func TestLoadingTitle(t *testing.T) {
	tests := []struct {
		frac float64
		want string
	}{
		{0, "Showroom - loading 0%"},
		{0.5, "Showroom - loading 50%"},
		{1, "Showroom - loading 100%"},
		{-0.2, "Showroom - loading 0%"},
		{1.7, "Showroom - loading 100%"},
	}
	for _, tt := range tests {
		if got := loadingTitle(tt.frac); got != tt.want {
			t.Errorf("loadingTitle(%v) = %q, want %q", tt.frac, got, tt.want)
		}
	}
}

func TestFramedTitle(t *testing.T) {
	if got := framedTitle("sphere"); got != "Showroom - sphere" {
		t.Errorf("framedTitle = %q", got)
	}
}
