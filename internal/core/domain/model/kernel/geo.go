package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/tokendad/ApexPlow/internal/pkg/errs"
	"github.com/tokendad/ApexPlow/internal/pkg/guard"
)

// earthRadiusMiles is the mean Earth radius used by the haversine formula.
const earthRadiusMiles = 3958.8

const (
	// MinLatitude is the southernmost valid latitude in degrees.
	MinLatitude = -90.0
	// MaxLatitude is the northernmost valid latitude in degrees.
	MaxLatitude = 90.0
	// MinLongitude is the westernmost valid longitude in degrees.
	MinLongitude = -180.0
	// MaxLongitude is the easternmost valid longitude in degrees.
	MaxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when validating a GeoPoint that was
// not created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object representing a coordinate on Earth.
// Latitude and longitude are validated at construction, so every constructed
// GeoPoint is usable in distance math without further checks.
//
// Example:
//
//	boston, err := kernel.NewGeoPoint(42.3601, -71.0589)
//	if err != nil {
//	    // handle validation error
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given coordinates in degrees.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
func NewGeoPoint(lat float64, lng float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLat(lat), p.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate checks the GeoPoint was created through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// String implements fmt.Stringer for logging and debugging.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.7f,%.7f)", p.lat, p.lng)
}

// IsEqual compares two points for coordinate equality.
// Both points must be properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lng == other.lng, nil
}

// DistanceMiles computes the great-circle distance to another point using the
// haversine formula with an Earth radius of 3958.8 miles. The distance is
// symmetric and zero for identical coordinates.
func (p GeoPoint) DistanceMiles(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := toRadians(other.lat - p.lat)
	dLng := toRadians(other.lng - p.lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	a := sinLat*sinLat + math.Cos(toRadians(p.lat))*math.Cos(toRadians(other.lat))*sinLng*sinLng

	return earthRadiusMiles * 2 * math.Asin(math.Sqrt(a)), nil
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("lat", lat, MinLatitude, MaxLatitude)
	}

	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if lng < MinLongitude || lng > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("lng", lng, MinLongitude, MaxLongitude)
	}

	p.lng = lng
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ErrServiceAreaIsNotConstructed is returned when validating a ServiceArea
// that was not created via NewServiceArea.
var ErrServiceAreaIsNotConstructed = errs.NewValueIsRequiredError(
	"service area must be created via NewServiceArea constructor")

// ServiceArea is a circle around the operator's home base within which job
// requests are accepted. The boundary is inclusive: a point exactly
// radiusMiles from the center is inside the area.
type ServiceArea struct { //nolint:recvcheck //using for validation
	center      GeoPoint
	radiusMiles float64
	guard       guard.ConstructorGuard
}

// NewServiceArea creates a ServiceArea with the given center and radius.
// The radius must be greater than zero.
func NewServiceArea(center GeoPoint, radiusMiles float64) (ServiceArea, error) {
	if err := center.Validate(); err != nil {
		return ServiceArea{}, err
	}

	if radiusMiles <= 0 {
		return ServiceArea{}, errs.NewValueIsInvalidErrorWithCause(
			"radiusMiles", fmt.Errorf("%f is not greater than 0", radiusMiles))
	}

	return ServiceArea{
		center:      center,
		radiusMiles: radiusMiles,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the ServiceArea was created through NewServiceArea.
func (a ServiceArea) Validate() error {
	return a.guard.Validate(ErrServiceAreaIsNotConstructed)
}

// Center returns the area's center point.
func (a ServiceArea) Center() GeoPoint {
	return a.center
}

// RadiusMiles returns the area's radius in miles.
func (a ServiceArea) RadiusMiles() float64 {
	return a.radiusMiles
}

// Contains reports whether the point lies within the service area.
// Points exactly on the boundary are considered inside.
func (a ServiceArea) Contains(point GeoPoint) (bool, error) {
	if err := a.Validate(); err != nil {
		return false, err
	}

	distance, err := a.center.DistanceMiles(point)
	if err != nil {
		return false, err
	}

	return distance <= a.radiusMiles, nil
}
