// Command export writes test case definitions to JSON for external
// reference generators.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/arc/testcases"
	"seehuhn.de/go/geom/path"
)

func main() {
	output := flag.String("o", "testdata/testcases.json", "output file")
	flag.Parse()

	if err := export(*output); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string        `json:"name"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Center    []float64     `json:"center"`
	Radius    float64       `json:"radius"`
	MinAngle  float64       `json:"min_angle"`
	MaxAngle  float64       `json:"max_angle"`
	Sweep     float64       `json:"sweep"`
	Antialias bool          `json:"antialias"`
	Path      []jsonSegment `json:"path"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func export(fname string) (err error) {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("export %s: %w", fname, err)
	}
	return nil
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	_, sweep := tc.Sweep()
	return jsonTestCase{
		Name:      category + "_" + tc.Name,
		Width:     tc.Width,
		Height:    tc.Height,
		Center:    []float64{tc.Center.X, tc.Center.Y},
		Radius:    tc.Radius,
		MinAngle:  tc.MinAngle,
		MaxAngle:  tc.MaxAngle,
		Sweep:     sweep,
		Antialias: tc.Antialias,
		Path:      pathToJSON(tc.Path().Iter()),
	}
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
