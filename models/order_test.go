package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownStatus(t *testing.T) {
	for _, status := range []string{StatusProcessing, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled} {
		assert.True(t, KnownStatus(status), status)
	}
	assert.False(t, KnownStatus("Pending"))
	assert.False(t, KnownStatus("Shipped"))
	assert.False(t, KnownStatus(""))
}

func TestCanTransition(t *testing.T) {
	allowed := [][2]string{
		{StatusProcessing, StatusPreparing},
		{StatusPreparing, StatusReady},
		{StatusReady, StatusCompleted},
		{StatusProcessing, StatusCancelled},
		{StatusPreparing, StatusCancelled},
		{StatusReady, StatusCancelled},
	}
	for _, pair := range allowed {
		assert.True(t, CanTransition(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}

	denied := [][2]string{
		{StatusProcessing, StatusReady},
		{StatusProcessing, StatusCompleted},
		{StatusPreparing, StatusProcessing},
		{StatusReady, StatusPreparing},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusProcessing},
		{StatusCompleted, StatusProcessing},
	}
	for _, pair := range denied {
		assert.False(t, CanTransition(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}
}
