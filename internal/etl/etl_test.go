package etl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	err := New(KindConfig, "missing credentials")
	assert.True(t, IsKind(err, KindConfig))
	assert.False(t, IsKind(err, KindSource))
	assert.Equal(t, "config: missing credentials", err.Error())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, KindSource, "fetching %s", "http://example.com")

	assert.True(t, IsKind(err, KindSource))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Contains(t, err.Error(), "http://example.com")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, KindLoad, "whatever"))
}

func TestKindOfThroughWrapping(t *testing.T) {
	inner := New(KindLoad, "insert failed")
	outer := fmt.Errorf("run games: %w", inner)
	assert.Equal(t, KindLoad, KindOf(outer))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}

func TestBuilder(t *testing.T) {
	b := NewBuilder(3)
	require.NoError(t, b.Append("a", 1, true))
	require.NoError(t, b.Append("b", 2, false))

	assert.Equal(t, 2, b.Len())
	assert.Equal(t, Record{"a", 1, true}, b.Records()[0])
	assert.Equal(t, Record{"b", 2, false}, b.Records()[1])
}

func TestBuilderArityMismatch(t *testing.T) {
	b := NewBuilder(2)
	err := b.Append("only one")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindSource))
	assert.Equal(t, 0, b.Len())
}
