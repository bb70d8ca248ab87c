// Package pricing holds the externally configured pricing value objects:
// driveway tiers, which freeze a job's quoted price at creation, and
// cancellation rules, which parameterize the cancellation charge policy.
package pricing
