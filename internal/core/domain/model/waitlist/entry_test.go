package waitlist_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/waitlist"
)

func mustGeoPoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	location, err := kernel.NewGeoPoint(42.3601, -71.0589)
	require.NoError(t, err)
	return location
}

func newWaitingEntry(t *testing.T) *waitlist.Entry {
	t.Helper()
	entry, err := waitlist.NewEntry(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"12 Birch Ln",
		mustGeoPoint(t),
		nil, nil, nil, nil,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return entry
}

func Test_NewEntry(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	location := mustGeoPoint(t)
	createdAt := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	tierID := 2
	notes := "steep driveway"

	entry, err := waitlist.NewEntry(id, customerID, "12 Birch Ln", location,
		&tierID, &notes, nil, nil, createdAt)

	require.NoError(t, err)
	assert.Equal(t, id, entry.ID())
	assert.Equal(t, customerID, entry.CustomerID())
	assert.Equal(t, "12 Birch Ln", entry.Address())
	assert.Equal(t, location, entry.Location())
	assert.Equal(t, &tierID, entry.TierID())
	assert.Equal(t, &notes, entry.Notes())
	assert.Equal(t, waitlist.Waiting, entry.Status())
	assert.Nil(t, entry.PromotedJobID())
	assert.Nil(t, entry.PromotedAt())
	assert.Equal(t, createdAt, entry.CreatedAt())
}

func Test_NewEntry_Invalid(t *testing.T) {
	location := mustGeoPoint(t)

	tests := []struct {
		name       string
		id         kernel.UUID
		customerID kernel.UUID
		address    string
	}{
		{"empty id", kernel.UUID{}, kernel.NewUUID(), "12 Birch Ln"},
		{"empty customer id", kernel.NewUUID(), kernel.UUID{}, "12 Birch Ln"},
		{"empty address", kernel.NewUUID(), kernel.NewUUID(), ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := waitlist.NewEntry(test.id, test.customerID, test.address,
				location, nil, nil, nil, nil, time.Now().UTC())
			assert.Error(t, err)
		})
	}
}

func Test_Entry_Promote(t *testing.T) {
	entry := newWaitingEntry(t)
	jobID := kernel.NewUUID()
	now := time.Now().UTC()

	err := entry.Promote(jobID, now)

	require.NoError(t, err)
	assert.Equal(t, waitlist.Promoted, entry.Status())
	require.NotNil(t, entry.PromotedJobID())
	assert.Equal(t, jobID, *entry.PromotedJobID())
	require.NotNil(t, entry.PromotedAt())
	assert.Equal(t, now, *entry.PromotedAt())
}

func Test_Entry_Promote_Twice(t *testing.T) {
	entry := newWaitingEntry(t)
	firstJobID := kernel.NewUUID()
	require.NoError(t, entry.Promote(firstJobID, time.Now().UTC()))

	err := entry.Promote(kernel.NewUUID(), time.Now().UTC())

	require.Error(t, err)
	assert.ErrorIs(t, err, waitlist.ErrAlreadyPromoted)

	var alreadyPromoted *waitlist.AlreadyPromotedError
	require.ErrorAs(t, err, &alreadyPromoted)
	assert.Equal(t, entry.ID(), alreadyPromoted.EntryID)

	// The failed attempt must not rewrite the link to the first job.
	assert.Equal(t, firstJobID, *entry.PromotedJobID())
}

func Test_Entry_Promote_NonWaiting(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, entry *waitlist.Entry)
	}{
		{"cancelled", func(t *testing.T, entry *waitlist.Entry) {
			require.NoError(t, entry.Cancel())
		}},
		{"expired", func(t *testing.T, entry *waitlist.Entry) {
			require.NoError(t, entry.Expire())
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			entry := newWaitingEntry(t)
			test.prepare(t, entry)

			err := entry.Promote(kernel.NewUUID(), time.Now().UTC())

			assert.ErrorIs(t, err, waitlist.ErrAlreadyPromoted)
			assert.Nil(t, entry.PromotedJobID())
		})
	}
}

func Test_Entry_Cancel(t *testing.T) {
	entry := newWaitingEntry(t)

	err := entry.Cancel()

	require.NoError(t, err)
	assert.Equal(t, waitlist.Cancelled, entry.Status())
}

func Test_Entry_Cancel_Idempotent(t *testing.T) {
	entry := newWaitingEntry(t)
	require.NoError(t, entry.Cancel())

	err := entry.Cancel()

	require.NoError(t, err)
	assert.Equal(t, waitlist.Cancelled, entry.Status())
}

func Test_Entry_Cancel_PromotedIsNoOp(t *testing.T) {
	entry := newWaitingEntry(t)
	require.NoError(t, entry.Promote(kernel.NewUUID(), time.Now().UTC()))

	err := entry.Cancel()

	require.NoError(t, err)
	assert.Equal(t, waitlist.Promoted, entry.Status())
	assert.NotNil(t, entry.PromotedJobID())
}

func Test_Entry_Expire(t *testing.T) {
	entry := newWaitingEntry(t)

	err := entry.Expire()

	require.NoError(t, err)
	assert.Equal(t, waitlist.Expired, entry.Status())
}

func Test_Entry_Expire_NonWaiting(t *testing.T) {
	entry := newWaitingEntry(t)
	require.NoError(t, entry.Promote(kernel.NewUUID(), time.Now().UTC()))

	err := entry.Expire()

	assert.ErrorIs(t, err, waitlist.ErrEntryNotWaiting)
	assert.Equal(t, waitlist.Promoted, entry.Status())
}

func Test_RestoreEntry(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	jobID := kernel.NewUUID()
	promotedAt := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	createdAt := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)

	entry, err := waitlist.RestoreEntry(id, customerID, "12 Birch Ln",
		mustGeoPoint(t), nil, nil, nil, nil,
		waitlist.Promoted, &jobID, &promotedAt, createdAt)

	require.NoError(t, err)
	assert.Equal(t, waitlist.Promoted, entry.Status())
	assert.Equal(t, jobID, *entry.PromotedJobID())
	assert.Equal(t, promotedAt, *entry.PromotedAt())
}

func Test_RestoreEntry_PromotedJobIDInvariant(t *testing.T) {
	jobID := kernel.NewUUID()

	tests := []struct {
		name          string
		status        waitlist.EntryStatus
		promotedJobID *kernel.UUID
	}{
		{"promoted without job id", waitlist.Promoted, nil},
		{"waiting with job id", waitlist.Waiting, &jobID},
		{"expired with job id", waitlist.Expired, &jobID},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := waitlist.RestoreEntry(kernel.NewUUID(), kernel.NewUUID(),
				"12 Birch Ln", mustGeoPoint(t), nil, nil, nil, nil,
				test.status, test.promotedJobID, nil, time.Now().UTC())
			assert.Error(t, err)
		})
	}
}

func Test_Entry_NotConstructed(t *testing.T) {
	var entry waitlist.Entry

	assert.ErrorIs(t, entry.Validate(), waitlist.ErrEntryIsNotConstructed)
	assert.ErrorIs(t, entry.Cancel(), waitlist.ErrEntryIsNotConstructed)
	assert.ErrorIs(t, entry.Promote(kernel.NewUUID(), time.Now().UTC()),
		waitlist.ErrEntryIsNotConstructed)
}

func Test_EntryStatusFromString(t *testing.T) {
	for _, status := range []waitlist.EntryStatus{
		waitlist.Waiting, waitlist.Promoted, waitlist.Expired, waitlist.Cancelled,
	} {
		parsed, err := waitlist.EntryStatusFromString(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := waitlist.EntryStatusFromString("bogus")
	assert.Error(t, err)

	var unknown waitlist.EntryStatus
	assert.Error(t, unknown.Validate())
	assert.Equal(t, "unknown", unknown.String())
}
