package route

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"waypoint-locator/internal/common"
)

// ReadPoints parses an ordered waypoint list from CSV "x,y" records. Lines
// starting with '#' are comments.
func ReadPoints(r io.Reader) ([]common.Vec2, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("route: read waypoints: %w", err)
	}

	points := make([]common.Vec2, 0, len(records))
	for i, rec := range records {
		x, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, fmt.Errorf("route: record %d: bad x %q: %w", i+1, rec[0], err)
		}
		y, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("route: record %d: bad y %q: %w", i+1, rec[1], err)
		}
		points = append(points, common.Vec2{X: x, Y: y})
	}
	return points, nil
}

// WritePoints writes points as CSV "x,y" records.
func WritePoints(w io.Writer, points []common.Vec2) error {
	cw := csv.NewWriter(w)
	for _, p := range points {
		rec := []string{
			strconv.FormatFloat(p.X, 'f', -1, 64),
			strconv.FormatFloat(p.Y, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("route: write waypoints: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// LoadCSV reads a waypoint list from a CSV file.
func LoadCSV(path string) ([]common.Vec2, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPoints(f)
}

// SaveCSV writes a waypoint list to a CSV file.
func SaveCSV(path string, points []common.Vec2) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePoints(f, points); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
