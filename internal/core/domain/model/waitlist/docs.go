// Package waitlist contains the Entry aggregate: a parked job request that an
// operator can promote into a live job. Promotion is a one-shot operation and
// the aggregate rejects a second attempt so concurrent promoters cannot create
// two jobs for the same entry.
package waitlist
