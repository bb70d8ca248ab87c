// Package job contains the Job aggregate and its lifecycle state machine.
//
// The transition table is static data: each status maps to the set of
// statuses reachable from it, and each target status maps to the timestamp it
// stamps. Completed, cancelled and rejected are terminal. Every successful
// transition queues an immutable StatusChange record that the persistence
// layer writes atomically with the job row.
package job
