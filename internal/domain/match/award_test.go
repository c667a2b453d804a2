//go:build unit

package match_test

import (
	"strings"
	"testing"

	"courtside/internal/domain/match"

	"github.com/stretchr/testify/assert"
)

func TestNewAwardKind(t *testing.T) {
	testCases := []struct {
		in      string
		want    match.AwardKind
		wantErr bool
	}{
		{in: "man_of_match", want: match.AwardManOfMatch},
		{in: " BEST_GOAL ", want: match.AwardBestGoal},
		{in: "", wantErr: true},
		{in: "mvp", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := match.NewAwardKind(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, match.ErrInvalidAwardKind)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeWinnerRef(t *testing.T) {
	got, err := match.NormalizeWinnerRef("  player-7 ")
	assert.NoError(t, err)
	assert.Equal(t, "player-7", got)

	for _, bad := range []string{"", "   ", strings.Repeat("x", 256)} {
		_, err := match.NormalizeWinnerRef(bad)
		assert.ErrorIs(t, err, match.ErrInvalidWinnerRef)
	}
}
