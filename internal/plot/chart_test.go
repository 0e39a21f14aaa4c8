package plot

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
	"time"

	"github.com/gitrdm/gochange/internal/bench"
)

func twoPointReport() *bench.Report {
	return &bench.Report{
		Denominations: []int{1, 3, 4},
		Amounts:       []int{0, 100},
		Repeats:       1,
		Series: []bench.Series{
			{Solver: "greedy", PerCall: []time.Duration{0, 10 * time.Microsecond}},
			{Solver: "exact", PerCall: []time.Duration{0, 20 * time.Microsecond}},
		},
	}
}

func TestRender_DrawsSeries(t *testing.T) {
	img, err := Render(twoPointReport(), Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if b := img.Bounds(); b.Dx() != DefaultOptions.Width || b.Dy() != DefaultOptions.Height {
		t.Fatalf("bounds = %v", b)
	}

	// The greedy line runs from (80,430) to (780,235); its midpoint pixel
	// carries the first palette colour.
	c := img.RGBAAt(430, 332)
	if c.R < 150 || c.G > 120 || c.B > 120 {
		t.Errorf("pixel on greedy line = %v, want red", c)
	}

	// The far corner of the plot area stays background.
	if c := img.RGBAAt(DefaultOptions.Width-marginRight-5, DefaultOptions.Height-marginBottom-5); c != background {
		t.Errorf("empty area pixel = %v, want background", c)
	}
}

func TestRender_SinglePoint(t *testing.T) {
	r := &bench.Report{
		Amounts: []int{42},
		Series:  []bench.Series{{Solver: "exact", PerCall: []time.Duration{time.Millisecond}}},
	}
	if _, err := Render(r, Options{Width: 300, Height: 200}); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestRender_Errors(t *testing.T) {
	if _, err := Render(nil, Options{}); !errors.Is(err, ErrEmptyReport) {
		t.Errorf("nil report: err = %v", err)
	}
	if _, err := Render(&bench.Report{}, Options{}); !errors.Is(err, ErrEmptyReport) {
		t.Errorf("empty report: err = %v", err)
	}
	if _, err := Render(twoPointReport(), Options{Width: 50, Height: 50}); err == nil {
		t.Error("canvas smaller than margins accepted")
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, twoPointReport(), Options{Width: 640, Height: 360}); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 360 {
		t.Fatalf("decoded bounds = %v", b)
	}
}

func TestRoundingFor(t *testing.T) {
	tests := []struct {
		top  time.Duration
		want time.Duration
	}{
		{2 * time.Second, time.Millisecond},
		{5 * time.Millisecond, time.Microsecond},
		{3 * time.Microsecond, 10 * time.Nanosecond},
		{500, time.Nanosecond},
	}
	for _, tt := range tests {
		if got := roundingFor(tt.top); got != tt.want {
			t.Errorf("roundingFor(%v) = %v, want %v", tt.top, got, tt.want)
		}
	}
}
