package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/apperrors"
	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition_FullMatrix(t *testing.T) {
	allowed := map[domain.JournalEntryStatus][]domain.JournalEntryStatus{
		domain.StatusDraft:           {domain.StatusPendingApproval, domain.StatusCancelled},
		domain.StatusPendingApproval: {domain.StatusApproved, domain.StatusDraft, domain.StatusCancelled},
		domain.StatusApproved:        {domain.StatusPosted, domain.StatusCancelled},
		domain.StatusPosted:          {},
		domain.StatusCancelled:       {},
	}

	for _, from := range domain.AllJournalEntryStatuses {
		for _, to := range domain.AllJournalEntryStatuses {
			want := false
			for _, s := range allowed[from] {
				if s == to {
					want = true
				}
			}
			assert.Equal(t, want, domain.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, domain.StatusPosted.IsTerminal())
	assert.True(t, domain.StatusCancelled.IsTerminal())
	assert.False(t, domain.StatusDraft.IsTerminal())
	assert.Empty(t, domain.AllowedTransitions(domain.StatusPosted))
	assert.Equal(t,
		[]domain.JournalEntryStatus{domain.StatusApproved, domain.StatusCancelled, domain.StatusDraft},
		domain.AllowedTransitions(domain.StatusPendingApproval))
}

func TestParseJournalEntryStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.JournalEntryStatus
		wantErr bool
	}{
		{name: "exact", input: "POSTED", want: domain.StatusPosted},
		{name: "lower case with spaces", input: " pending_approval ", want: domain.StatusPendingApproval},
		{name: "unknown", input: "REVERSED", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseJournalEntryStatus(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransitionTo_LifecycleSideEffects(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	entry := &domain.JournalEntry{ID: "je-1", Status: domain.StatusDraft}

	require.NoError(t, entry.TransitionTo(domain.StatusPendingApproval, "u-1", now))
	require.NoError(t, entry.TransitionTo(domain.StatusApproved, "u-2", now))
	require.NotNil(t, entry.ApprovedBy)
	assert.Equal(t, "u-2", *entry.ApprovedBy)
	assert.Equal(t, now, *entry.ApprovedAt)
	assert.False(t, entry.IsPosted)

	require.NoError(t, entry.TransitionTo(domain.StatusPosted, "u-3", now))
	assert.True(t, entry.IsPosted)
	assert.Equal(t, domain.StatusPosted, entry.Status)
	assert.Equal(t, "u-3", *entry.PostedBy)
	assert.Equal(t, "u-3", entry.UpdatedBy)
}

func TestTransitionTo_RejectionClearsApproval(t *testing.T) {
	now := time.Now().UTC()
	approver := "u-2"
	entry := &domain.JournalEntry{Status: domain.StatusPendingApproval, ApprovedBy: &approver, ApprovedAt: &now}

	require.NoError(t, entry.TransitionTo(domain.StatusDraft, "u-2", now))
	assert.Equal(t, domain.StatusDraft, entry.Status)
	assert.Nil(t, entry.ApprovedBy)
	assert.Nil(t, entry.ApprovedAt)
}

func TestTransitionTo_Cancel(t *testing.T) {
	now := time.Now().UTC()
	entry := &domain.JournalEntry{Status: domain.StatusApproved}

	require.NoError(t, entry.TransitionTo(domain.StatusCancelled, "u-9", now))
	assert.Equal(t, domain.StatusCancelled, entry.Status)
	assert.Equal(t, "u-9", *entry.CancelledBy)
	assert.False(t, entry.IsPosted)
}

func TestTransitionTo_PostedIsIrreversible(t *testing.T) {
	now := time.Now().UTC()
	for _, to := range domain.AllJournalEntryStatuses {
		entry := &domain.JournalEntry{Status: domain.StatusPosted, IsPosted: true}
		err := entry.TransitionTo(to, "u-1", now)

		var statusErr apperrors.InvalidStatusError
		require.True(t, errors.As(err, &statusErr), "POSTED -> %s", to)
		assert.Equal(t, "POSTED", statusErr.From)
		assert.Equal(t, string(to), statusErr.To)
		assert.Equal(t, domain.StatusPosted, entry.Status)
		assert.True(t, entry.IsPosted)
	}
}

func TestTransitionTo_DraftToPostedLeavesEntryUnchanged(t *testing.T) {
	entry := &domain.JournalEntry{Status: domain.StatusDraft, AuditFields: domain.AuditFields{UpdatedBy: "creator"}}

	err := entry.TransitionTo(domain.StatusPosted, "u-1", time.Now())

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, domain.StatusDraft, entry.Status)
	assert.False(t, entry.IsPosted)
	assert.Nil(t, entry.PostedBy)
	assert.Equal(t, "creator", entry.UpdatedBy)
}

func TestEnsureDeletable(t *testing.T) {
	for _, s := range domain.AllJournalEntryStatuses {
		entry := &domain.JournalEntry{ID: "je-1", Status: s, IsPosted: s == domain.StatusPosted}
		err := entry.EnsureDeletable()
		if s == domain.StatusDraft {
			assert.NoError(t, err)
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrConflict, "status %s", s)
	}
}
