package dataset

import (
	"embed"
	"encoding/csv"
	"io"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/JCGoran/data-morph/pkg/errors"
	"github.com/JCGoran/data-morph/pkg/geometry"
)

//go:embed data/*.csv
var builtinFS embed.FS

// Source identifies where a start shape comes from: a built-in name or
// a path to a CSV file. Resolution happens once, in Load.
type Source struct {
	Builtin string // built-in dataset name
	Path    string // CSV file path
}

// ParseSource classifies a start-shape argument. Anything that matches
// a built-in name is a builtin; everything else is treated as a file
// path.
func ParseSource(arg string) Source {
	name := strings.ToLower(arg)
	for _, b := range Builtins() {
		if b == name {
			return Source{Builtin: name}
		}
	}
	return Source{Path: arg}
}

// Builtins returns the sorted names of the embedded start shapes.
func Builtins() []string {
	entries, err := builtinFS.ReadDir("data")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Load resolves a start-shape argument into a Dataset. xBounds and
// yBounds override the derived morph bounds when non-nil; passing only
// symmetric bounds is expressed by giving the same pair for both axes.
func Load(arg string, xBounds, yBounds *[2]float64) (*Dataset, error) {
	src := ParseSource(arg)

	var (
		r    io.Reader
		name string
	)
	switch {
	case src.Builtin != "":
		f, err := builtinFS.Open("data/" + src.Builtin + ".csv")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeDatasetLoad, err, "open built-in dataset %q", src.Builtin)
		}
		defer f.Close()
		r = f
		name = src.Builtin
	default:
		f, err := os.Open(src.Path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeDatasetLoad, err, "open dataset file %q", src.Path)
		}
		defer f.Close()
		r = f
		name = strings.TrimSuffix(path.Base(src.Path), path.Ext(src.Path))
	}

	points, err := readPoints(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDatasetLoad, err, "read dataset %q", name)
	}

	var bounds geometry.Bounds
	if xBounds != nil && yBounds != nil {
		bounds = geometry.NewBounds(xBounds[0], xBounds[1], yBounds[0], yBounds[1])
	}
	return New(name, points, bounds)
}

// readPoints parses x,y records, skipping a header row if present.
func readPoints(r io.Reader) ([]geometry.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var points []geometry.Point
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return points, nil
		}
		if err != nil {
			return nil, err
		}
		x, errX := strconv.ParseFloat(record[0], 64)
		y, errY := strconv.ParseFloat(record[1], 64)
		if errX != nil || errY != nil {
			if len(points) == 0 {
				continue // header row
			}
			return nil, errors.New(errors.ErrCodeDatasetLoad, "malformed record %v", record)
		}
		points = append(points, geometry.Point{X: x, Y: y})
	}
}
