package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		page, size     int
		wantFrom, want int
	}{
		{1, 10, 0, 10},
		{3, 10, 20, 10},
		{0, 10, 0, 10},
		{-5, 10, 0, 10},
		{2, 0, 12, DefaultPageSize},
		{1, 101, 0, DefaultPageSize},
		{1, 100, 0, 100},
	}
	for _, tc := range cases {
		from, limit := Calculate(tc.page, tc.size)
		require.Equal(t, tc.wantFrom, from, "page=%d size=%d", tc.page, tc.size)
		require.Equal(t, tc.want, limit, "page=%d size=%d", tc.page, tc.size)
	}
}

func TestParseIntDefault(t *testing.T) {
	require.Equal(t, 7, ParseIntDefault("7", 1))
	require.Equal(t, 1, ParseIntDefault("", 1))
	require.Equal(t, 1, ParseIntDefault("abc", 1))
	require.EqualValues(t, 2999, ParseInt64Default("2999", 0))
	require.EqualValues(t, 0, ParseInt64Default("x", 0))
}

func TestTotalPages(t *testing.T) {
	require.EqualValues(t, 0, TotalPages(10, 0))
	require.EqualValues(t, 1, TotalPages(10, 10))
	require.EqualValues(t, 2, TotalPages(11, 10))
	require.EqualValues(t, 0, TotalPages(0, 10))
}
