package sentry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type coded int32

func (c coded) Error() string  { return "coded" }
func (c coded) GetCode() int32 { return int32(c) }

func TestShouldReport(t *testing.T) {
	require.True(t, shouldReport(coded(500)))
	require.True(t, shouldReport(coded(503)))
	require.False(t, shouldReport(coded(400)))
	require.False(t, shouldReport(coded(404)))
	require.True(t, shouldReport(errors.New("plain")))
}
