package domain

import "math"

// DefaultProximityDegrees is the half-width of the area around a department
// in which reports and alerts are considered nearby.
const DefaultProximityDegrees = 0.1

// Point is a WGS84 coordinate pair in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Validate checks that the point is a finite coordinate within range.
// Field names are prefixed with prefix (e.g. "" or "location.").
func (p Point) Validate(prefix string) []FieldError {
	var errs []FieldError

	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || p.Lat < -90 || p.Lat > 90 {
		errs = append(errs, FieldError{Field: prefix + "latitude", Message: "must be between -90 and 90"})
	}
	if math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) || p.Lon < -180 || p.Lon > 180 {
		errs = append(errs, FieldError{Field: prefix + "longitude", Message: "must be between -180 and 180"})
	}

	return errs
}

// BoundingBox is an axis-aligned latitude/longitude rectangle. Bounds are
// inclusive. It is a coarse proximity approximation, not a geodesic distance.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// BoxAround returns the box spanning ±degrees latitude and longitude around p.
func BoxAround(p Point, degrees float64) BoundingBox {
	return BoundingBox{
		MinLat: p.Lat - degrees,
		MaxLat: p.Lat + degrees,
		MinLon: p.Lon - degrees,
		MaxLon: p.Lon + degrees,
	}
}

// Contains reports whether p lies inside the box (edges included).
func (b BoundingBox) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}
