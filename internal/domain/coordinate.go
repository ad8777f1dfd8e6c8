// Package domain contains the core data types for the place directory:
// geo primitives, directory entries, ratings, users, and the relation graph.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import (
	"math"
	"strconv"
	"strings"
)

// Coordinate is a WGS84 latitude/longitude pair.
// Values may be non-finite (NaN or ±Inf); such coordinates are invalid but
// must never crash a comparison; callers treat them as "matches nothing".
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsFinite reports whether both components are finite numbers.
func (c Coordinate) IsFinite() bool {
	return isFinite(c.Lat) && isFinite(c.Lng)
}

// BoundingBox is a rectangular map region spanned by its south-west and
// north-east corners. The expected orientation (SouthWest ≤ NorthEast in
// both axes) is not enforced at construction; Contains is robust against
// malformed boxes.
type BoundingBox struct {
	SouthWest Coordinate `json:"south_west"`
	NorthEast Coordinate `json:"north_east"`
}

// earthRadiusKm is the mean earth radius used for great-circle distances.
const earthRadiusKm = 6371.0

// Distance returns the great-circle distance between a and b in kilometers
// (haversine formula). The result is finite for finite inputs.
func Distance(a, b Coordinate) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Contains reports whether the point (lat, lng) lies within the box.
// Returns false if the point or any box corner is non-finite.
func (b BoundingBox) Contains(lat, lng float64) bool {
	if !isFinite(lat) || !isFinite(lng) || !b.SouthWest.IsFinite() || !b.NorthEast.IsFinite() {
		return false
	}
	return lat >= b.SouthWest.Lat && lng >= b.SouthWest.Lng &&
		lat <= b.NorthEast.Lat && lng <= b.NorthEast.Lng
}

// Center returns the midpoint of the box as a simple component average.
// Good enough for the small viewports this service deals with.
func (b BoundingBox) Center() Coordinate {
	return Coordinate{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
}

// Extend returns a copy of the box inflated by dLat degrees of latitude and
// dLng degrees of longitude on each side.
func (b BoundingBox) Extend(dLat, dLng float64) BoundingBox {
	return BoundingBox{
		SouthWest: Coordinate{Lat: b.SouthWest.Lat - dLat, Lng: b.SouthWest.Lng - dLng},
		NorthEast: Coordinate{Lat: b.NorthEast.Lat + dLat, Lng: b.NorthEast.Lng + dLng},
	}
}

// ParseBBox parses the wire format "lat,lng,lat,lng" (south-west corner
// first, then north-east) into a BoundingBox.
// Returns ErrBBox on any other field count or a non-numeric field.
func ParseBBox(s string) (BoundingBox, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return BoundingBox{}, ErrBBox
	}
	vals := make([]float64, 4)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return BoundingBox{}, ErrBBox
		}
		vals[i] = v
	}
	return BoundingBox{
		SouthWest: Coordinate{Lat: vals[0], Lng: vals[1]},
		NorthEast: Coordinate{Lat: vals[2], Lng: vals[3]},
	}, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
