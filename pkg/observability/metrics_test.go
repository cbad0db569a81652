package observability

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aretw0/piratemap/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, OutcomeOK},
		{fmt.Errorf("load: %w", &domain.ParseError{Reason: "x"}), OutcomeParseError},
		{&domain.IndeterminateError{Matches: 0}, OutcomeIndeterminate},
		{fmt.Errorf("%w: (9, 9)", domain.ErrOutOfCanvas), OutcomeOutOfCanvas},
		{errors.New("disk on fire"), OutcomeError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Outcome(tt.err))
	}
}

func TestMetrics_Register(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveDecode(time.Now(), nil)
	m.ObserveDecode(time.Now(), &domain.IndeterminateError{Matches: 3})
	m.ObserveDecode(time.Now(), nil)
	m.ObserveCache(true)
	m.ObserveCache(false)
	m.ObservePath(13)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Decodes.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Decodes.WithLabelValues(OutcomeIndeterminate)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheMisses))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 5)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveDecode(time.Now(), nil)
		m.ObserveCache(true)
		m.ObservePath(1)
	})
}
