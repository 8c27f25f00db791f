package quote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackend(t *testing.T) {
	yahoo, err := NewBackend(BackendYahoo, "http://localhost", time.Second, nil)
	require.NoError(t, err)
	assert.IsType(t, &service{}, yahoo)

	fin, err := NewBackend(BackendFinance, "", time.Second, nil)
	require.NoError(t, err)
	assert.IsType(t, &financeService{}, fin)

	static, err := NewBackend(BackendStatic, "", 0, map[string]float64{"EURUSD=X": 1.1})
	require.NoError(t, err)
	q, err := static.LatestPrice(context.Background(), "EURUSD=X")
	require.NoError(t, err)
	assert.True(t, q.Usable())

	_, err = NewBackend("bloomberg", "", 0, nil)
	assert.Error(t, err)
}
