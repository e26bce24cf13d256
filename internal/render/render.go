// Package render encodes an x/y series as CSV, JSON, a PNG line plot or an
// interactive HTML chart.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
)

// Format is an output encoding.
type Format int

const (
	FormatCSV Format = iota
	FormatJSON
	FormatPNG
	FormatHTML
)

// ParseFormat resolves "csv", "json", "png" or "html".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "png":
		return FormatPNG, nil
	case "html":
		return FormatHTML, nil
	default:
		return 0, fmt.Errorf("%w: unknown output format %q", core.ErrUnsupportedVariant, name)
	}
}

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	case FormatPNG:
		return "png"
	case FormatHTML:
		return "html"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// Binary reports whether the format is not plain text.
func (f Format) Binary() bool { return f == FormatPNG }

// Series is one rendered result.
type Series struct {
	Title   string    `json:"title"`
	XLabel  string    `json:"x_label"`
	YLabel  string    `json:"y_label"`
	X       []float64 `json:"x"`
	Y       []float64 `json:"y"`
	Summary any       `json:"summary,omitempty"`
	Extra   any       `json:"extra,omitempty"`
}

func (s Series) validate() error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("%w: render x and y length mismatch: %d != %d", core.ErrInvalidParameter, len(s.X), len(s.Y))
	}
	return nil
}

// Write encodes s to w in format f.
func Write(w io.Writer, s Series, f Format) error {
	if err := s.validate(); err != nil {
		return err
	}

	switch f {
	case FormatCSV:
		return writeCSV(w, s)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case FormatPNG:
		return writePNG(w, s)
	case FormatHTML:
		return writeHTML(w, s)
	default:
		return fmt.Errorf("%w: output format %d", core.ErrUnsupportedVariant, int(f))
	}
}

func writeCSV(w io.Writer, s Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{header(s.XLabel, "x"), header(s.YLabel, "y")}); err != nil {
		return err
	}
	for i := range s.X {
		rec := []string{
			strconv.FormatFloat(s.X[i], 'g', -1, 64),
			strconv.FormatFloat(s.Y[i], 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func header(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
