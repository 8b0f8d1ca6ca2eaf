package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/apperrors"
)

// JournalEntryStatus indicates the lifecycle state of a journal entry.
type JournalEntryStatus string

const (
	StatusDraft           JournalEntryStatus = "DRAFT"
	StatusPendingApproval JournalEntryStatus = "PENDING_APPROVAL"
	StatusApproved        JournalEntryStatus = "APPROVED"
	StatusPosted          JournalEntryStatus = "POSTED"
	StatusCancelled       JournalEntryStatus = "CANCELLED"
)

// AllJournalEntryStatuses lists every status in lifecycle order.
var AllJournalEntryStatuses = []JournalEntryStatus{
	StatusDraft,
	StatusPendingApproval,
	StatusApproved,
	StatusPosted,
	StatusCancelled,
}

// IsValid reports whether s is a known status.
func (s JournalEntryStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether no transition leaves s.
func (s JournalEntryStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// ParseJournalEntryStatus converts caller input into a status.
// Matching ignores case and surrounding whitespace; unknown values are a validation error.
func ParseJournalEntryStatus(raw string) (JournalEntryStatus, error) {
	s := JournalEntryStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: unknown journal entry status %q", apperrors.ErrValidation, raw)
	}
	return s, nil
}

// transitionEffect applies the field changes that accompany a status edge.
type transitionEffect func(e *JournalEntry, userID string, at time.Time)

func noEffect(*JournalEntry, string, time.Time) {}

func approve(e *JournalEntry, userID string, at time.Time) {
	e.ApprovedBy = &userID
	e.ApprovedAt = &at
}

func reject(e *JournalEntry, _ string, _ time.Time) {
	e.ApprovedBy = nil
	e.ApprovedAt = nil
}

func post(e *JournalEntry, userID string, at time.Time) {
	e.IsPosted = true
	e.PostedBy = &userID
	e.PostedAt = &at
}

func cancel(e *JournalEntry, userID string, at time.Time) {
	e.CancelledBy = &userID
	e.CancelledAt = &at
}

// transitions is the complete lifecycle. A pair missing from the table is not allowed.
var transitions = map[JournalEntryStatus]map[JournalEntryStatus]transitionEffect{
	StatusDraft: {
		StatusPendingApproval: noEffect,
		StatusCancelled:       cancel,
	},
	StatusPendingApproval: {
		StatusApproved:  approve,
		StatusDraft:     reject,
		StatusCancelled: cancel,
	},
	StatusApproved: {
		StatusPosted:    post,
		StatusCancelled: cancel,
	},
	StatusPosted:    {},
	StatusCancelled: {},
}

// CanTransition reports whether the lifecycle allows moving from one status to another.
func CanTransition(from, to JournalEntryStatus) bool {
	_, ok := transitions[from][to]
	return ok
}

// AllowedTransitions returns the statuses reachable from s, sorted.
func AllowedTransitions(s JournalEntryStatus) []JournalEntryStatus {
	next := make([]JournalEntryStatus, 0, len(transitions[s]))
	for to := range transitions[s] {
		next = append(next, to)
	}
	sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
	return next
}

// TransitionTo moves the entry to the target status and applies the edge's side effects.
// On a disallowed edge the entry is left untouched and an InvalidStatusError is returned.
func (e *JournalEntry) TransitionTo(to JournalEntryStatus, userID string, at time.Time) error {
	effect, ok := transitions[e.Status][to]
	if !ok || e.IsPosted {
		return apperrors.InvalidStatusError{From: string(e.Status), To: string(to)}
	}
	effect(e, userID, at)
	e.Status = to
	e.UpdatedAt = at
	e.UpdatedBy = userID
	return nil
}
