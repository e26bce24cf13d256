package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
	"github.com/google/go-cmp/cmp"
)

func sampleSeries() Series {
	return Series{
		Title:  "sinus",
		XLabel: "time (s)",
		YLabel: "amplitude",
		X:      []float64{0, 0.5, 1},
		Y:      []float64{0, 1, -0.25},
	}
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{"": FormatCSV, "CSV": FormatCSV, "json": FormatJSON, "png": FormatPNG, " html ": FormatHTML} {
		got, err := ParseFormat(name)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseFormat("svg"); !errors.Is(err, core.ErrUnsupportedVariant) {
		t.Fatalf("err = %v, want ErrUnsupportedVariant", err)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleSeries(), FormatCSV); err != nil {
		t.Fatal(err)
	}
	want := "time (s),amplitude\n0,0\n0.5,1\n1,-0.25\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("csv mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	s := sampleSeries()
	s.Summary = map[string]float64{"rms": 0.5}
	if err := Write(&buf, s, FormatJSON); err != nil {
		t.Fatal(err)
	}

	var got struct {
		Title   string             `json:"title"`
		X       []float64          `json:"x"`
		Y       []float64          `json:"y"`
		Summary map[string]float64 `json:"summary"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Title != "sinus" || got.Summary["rms"] != 0.5 {
		t.Fatalf("unexpected json %+v", got)
	}
	if diff := cmp.Diff(s.Y, got.Y); diff != "" {
		t.Fatalf("y mismatch:\n%s", diff)
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleSeries(), FormatPNG); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatal("output is not a PNG")
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleSeries(), FormatHTML); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "<html") || !strings.Contains(out, "amplitude") {
		t.Fatalf("unexpected html %.200q", out)
	}
}

func TestWriteMismatch(t *testing.T) {
	s := sampleSeries()
	s.Y = s.Y[:1]
	if err := Write(&bytes.Buffer{}, s, FormatCSV); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
}
