package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_InitialisesInstruments(t *testing.T) {
	m := Get()

	assert.NotNil(t, m.NavMountsTotal)
	assert.NotNil(t, m.NavRenderDuration)
	assert.Same(t, m, Get())
	assert.NotPanics(t, func() {
		m.NavUserMenuToggles.Add(context.Background(), 1)
		m.NavRenderDuration.Record(context.Background(), 0.001)
	})
}
