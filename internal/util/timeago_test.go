package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSecondsToAgoBuckets(t *testing.T) {
	cases := []struct {
		seconds int64
		want    string
	}{
		{0, "just now"},
		{1, "a second ago"},
		{2, "2 seconds ago"},
		{45, "45 seconds ago"},
		{59, "59 seconds ago"},
		{60, "a minute ago"},
		{90, "a minute ago"},
		{119, "a minute ago"},
		{120, "2 minutes ago"},
		{3540, "59 minutes ago"},
		{3541, "an hour ago"},
		{4000, "an hour ago"},
		{7100, "an hour ago"},
		{7101, "2 hours ago"},
		{82800, "23 hours ago"},
		{82801, "a day ago"},
		{172000, "a day ago"},
		{172001, "2 days ago"},
		{518400, "6 days ago"},
		{518401, "a week ago"},
		{1036800, "a week ago"},
		{1036801, "2 weeks ago"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, SecondsToAgo(tc.seconds), "seconds=%d", tc.seconds)
	}
}

func TestSecondsToAgoClampsNegative(t *testing.T) {
	require.Equal(t, "just now", SecondsToAgo(-5))
}

func TestSecondsToAgoMonotonicPhrasing(t *testing.T) {
	// Within a formatted bucket the printed count never decreases.
	prev := int64(0)
	for a := int64(120); a <= 3540; a += 60 {
		n := a / 60
		require.GreaterOrEqual(t, n, prev)
		prev = n
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "45 seconds ago", TimeAgo(now.Add(-45*time.Second), now))
	require.Equal(t, "a minute ago", TimeAgo(now.Add(-90*time.Second), now))
}
