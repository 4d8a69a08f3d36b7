package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Estimates.WithLabelValues("swap", "ok").Inc()
	m.PoolReads.WithLabelValues("rpc").Add(2)
	m.RPCLatency.Observe(0.01)

	require.Equal(t, 1.0, testutil.ToFloat64(m.Estimates.WithLabelValues("swap", "ok")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.PoolReads.WithLabelValues("rpc")))

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 3)
}

func TestNewWithoutRegistry(t *testing.T) {
	m := New(nil)
	m.Estimates.WithLabelValues("quote", "invalid").Inc()
	require.Equal(t, 1.0, testutil.ToFloat64(m.Estimates.WithLabelValues("quote", "invalid")))
}
