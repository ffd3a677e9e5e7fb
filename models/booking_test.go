package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusEnumeration(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusDispatched, StatusInProgress, StatusCompleted, StatusCancelled} {
		assert.True(t, IsValidStatus(s), "%s", s)
	}
	assert.False(t, IsValidStatus("SHIPPED"))
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("pending")) // case-sensitive
}

func TestTransitionTableIsForwardOnly(t *testing.T) {
	allowed := map[[2]BookingStatus]bool{
		{StatusPending, StatusDispatched}:    true,
		{StatusPending, StatusCancelled}:     true,
		{StatusDispatched, StatusInProgress}: true,
		{StatusDispatched, StatusCompleted}:  true,
		{StatusDispatched, StatusCancelled}:  true,
		{StatusInProgress, StatusCompleted}:  true,
		{StatusInProgress, StatusCancelled}:  true,
	}

	all := []BookingStatus{StatusPending, StatusDispatched, StatusInProgress, StatusCompleted, StatusCancelled}
	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]BookingStatus{from, to}], CanTransition(from, to),
				"%s -> %s", from, to)
		}
	}
}

func TestTerminalStatesAdmitNothing(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusDispatched.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
}

func TestServiceCatalogue(t *testing.T) {
	assert.Equal(t, 499, ServicePrice("home-visit"))
	assert.Equal(t, 199, ServicePrice("teleconsult"))
	assert.Equal(t, 499, ServicePrice("nursing"))
	assert.Equal(t, 299, ServicePrice("lab"))
	assert.Equal(t, 0, ServicePrice("massage"))

	assert.Equal(t, "Doctor Home Visit", ServiceLabel("home-visit"))
	assert.Equal(t, "unknown-thing", ServiceLabel("unknown-thing"))

	assert.True(t, IsValidService("teleconsult"))
	assert.False(t, IsValidService(""))

	services := AvailableServices()
	assert.Len(t, services, 4)
	assert.Equal(t, "home-visit", services[0].Category)
}
