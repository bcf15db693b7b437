package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allStatuses() []Status {
	return []Status{
		StatusApplied, StatusUnderReview, StatusKYCPending, StatusKYCSubmitted,
		StatusKYCVerified, StatusApproved, StatusActive, StatusSuspended, StatusRejected,
	}
}

func TestStatusCanTransitionTo(t *testing.T) {
	allowed := map[Status][]Status{
		StatusApplied:      {StatusUnderReview, StatusRejected},
		StatusUnderReview:  {StatusKYCPending, StatusRejected},
		StatusKYCPending:   {StatusKYCSubmitted},
		StatusKYCSubmitted: {StatusKYCVerified, StatusKYCPending},
		StatusKYCVerified:  {StatusApproved, StatusKYCPending},
		StatusApproved:     {StatusActive, StatusSuspended},
		StatusActive:       {StatusSuspended},
		StatusSuspended:    {StatusActive, StatusApproved},
		StatusRejected:     {},
	}

	// Exhaustive: every (from, to) pair must agree with the table.
	for _, from := range allStatuses() {
		allowedSet := map[Status]bool{}
		for _, to := range allowed[from] {
			allowedSet[to] = true
		}
		for _, to := range allStatuses() {
			got := from.CanTransitionTo(to)
			assert.Equal(t, allowedSet[to], got, "%s -> %s", from, to)
		}
	}
}

func TestStatusRejectedIsTerminal(t *testing.T) {
	for _, to := range allStatuses() {
		assert.False(t, StatusRejected.CanTransitionTo(to), "rejected -> %s must be blocked", to)
	}
}

func TestStatusNoSelfTransitions(t *testing.T) {
	for _, s := range allStatuses() {
		assert.False(t, s.CanTransitionTo(s), "%s -> %s", s, s)
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range allStatuses() {
		assert.True(t, s.IsValid(), "%s", s)
	}
	assert.False(t, Status("archived").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatusUnknownTransitionsBlocked(t *testing.T) {
	unknown := Status("archived")
	assert.False(t, unknown.CanTransitionTo(StatusApplied))
	assert.False(t, StatusApplied.CanTransitionTo(unknown))
}
