package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTagSet(t *testing.T) {
	set := ParseTagSet(" Fragile ,  Packed-2024-01-01,, Priority ")
	require.Equal(t, []string{"Fragile", "Packed-2024-01-01", "Priority"}, set.Tags())
	require.Equal(t, "Fragile, Packed-2024-01-01, Priority", set.String())
}

func TestParseTagSet_Empty(t *testing.T) {
	set := ParseTagSet("")
	require.Empty(t, set.Tags())
	require.Equal(t, "", set.String())
}

func TestAppend_Idempotent(t *testing.T) {
	set := ParseTagSet("Fragile")
	require.True(t, set.Append("Packed-2024-06-01"))
	require.False(t, set.Append("Packed-2024-06-01"))
	require.Equal(t, "Fragile, Packed-2024-06-01", set.String())
}

func TestAppend_PreservesOrder(t *testing.T) {
	set := ParseTagSet("B, A")
	set.Append("C")
	require.Equal(t, []string{"B", "A", "C"}, set.Tags())
}

func TestPackedTag(t *testing.T) {
	at := time.Date(2024, time.June, 1, 23, 30, 0, 0, time.UTC)
	require.Equal(t, "Packed-2024-06-01", PackedTag(at))
}
