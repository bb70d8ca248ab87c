// Package kernel contains shared value objects used across the dispatch
// domain: validated UUIDs for aggregate identity and geographic primitives
// (GeoPoint, ServiceArea) used for the service-area admission check.
//
// All types in this package are immutable value objects created through
// validating constructors; the zero value of each type fails Validate.
package kernel
