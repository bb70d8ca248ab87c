// Package services provides domain services that implement business logic
// spanning more than one aggregate in the dispatch system.
//
// The package includes:
//   - CancellationPolicy: computes the charge owed when a job is cancelled
//     from the configured cancellation rule table
//
// Domain services stay pure: they take everything they need as arguments and
// never reach into storage or ambient configuration themselves.
package services
