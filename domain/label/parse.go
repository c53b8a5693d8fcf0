package label

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads label records from r. Lines with fewer than FieldCount fields are
// skipped. A malformed numeric field fails the whole parse.
func Parse(r io.Reader) ([]BoundingBox, error) {
	boxes := make([]BoundingBox, 0)
	counts := make(map[string]int)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		parts := strings.Fields(sc.Text())
		if len(parts) < FieldCount {
			continue
		}
		b, err := parseFields(parts)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrLabelParse, lineNo, err)
		}
		counts[b.Type]++
		b.Ordinal = counts[b.Type]
		boxes = append(boxes, b)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLabelParse, err)
	}
	return boxes, nil
}

func parseFields(p []string) (BoundingBox, error) {
	var (
		b   BoundingBox
		err error
	)
	b.Type = p[0]
	if b.Truncated, err = parseInt("truncated", p[1]); err != nil {
		return b, err
	}
	if b.Occluded, err = parseInt("occluded", p[2]); err != nil {
		return b, err
	}
	if b.ObservationAngle, err = parseFloat("angle", p[3]); err != nil {
		return b, err
	}
	for i := range b.BBox2D {
		if b.BBox2D[i], err = parseFloat("bbox2d", p[4+i]); err != nil {
			return b, err
		}
	}
	for i := range b.Dimensions {
		if b.Dimensions[i], err = parseFloat("dimensions", p[8+i]); err != nil {
			return b, err
		}
	}
	for i := range b.Position {
		if b.Position[i], err = parseFloat("position", p[11+i]); err != nil {
			return b, err
		}
	}
	if b.RotationY, err = parseFloat("rotation_y", p[14]); err != nil {
		return b, err
	}
	return b, nil
}

func parseInt(field, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("field %s: %q is not an integer", field, s)
	}
	return v, nil
}

func parseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("field %s: %q is not a number", field, s)
	}
	return v, nil
}

// Format serializes b as a single record line without trailing newline, using
// the same field order Parse expects.
func Format(b BoundingBox) string {
	fields := make([]string, 0, FieldCount)
	fields = append(fields,
		b.Type,
		strconv.Itoa(b.Truncated),
		strconv.Itoa(b.Occluded),
		formatFloat(b.ObservationAngle),
	)
	for _, v := range b.BBox2D {
		fields = append(fields, formatFloat(v))
	}
	for _, v := range b.Dimensions {
		fields = append(fields, formatFloat(v))
	}
	for _, v := range b.Position {
		fields = append(fields, formatFloat(v))
	}
	fields = append(fields, formatFloat(b.RotationY))
	return strings.Join(fields, " ")
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
