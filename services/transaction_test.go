package services

import (
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holiday-planner/utils"
)

func discardLogger() *utils.Logger {
	return utils.NewLogger(io.Discard, utils.LevelError)
}

// sequence replays nums in order, wrapping around, and counts draws.
func sequence(draws *int, nums ...int64) CandidateSource {
	return func() int64 {
		n := nums[*draws%len(nums)]
		*draws++
		return n
	}
}

func TestGenerateSkipsExistingNumbers(t *testing.T) {
	var draws int
	g := NewTransactionNumberGenerator(sequence(&draws, 1111111111, 2222222222, 3333333333), 10, discardLogger())

	number, err := g.Generate(utils.NewIDSet("1111111111", "2222222222"))
	require.NoError(t, err)
	assert.Equal(t, "3333333333", number)
	assert.Equal(t, 3, draws)
}

func TestGenerateRejectsOutOfRangeCandidates(t *testing.T) {
	var draws int
	g := NewTransactionNumberGenerator(sequence(&draws, 999999999, 10000000000, 1000000000), 5, discardLogger())

	number, err := g.Generate(utils.NewIDSet())
	require.NoError(t, err)
	assert.Equal(t, "1000000000", number)
}

func TestGenerateIsBounded(t *testing.T) {
	var draws int
	g := NewTransactionNumberGenerator(sequence(&draws, 5555555555), 7, discardLogger())

	_, err := g.Generate(utils.NewIDSet("5555555555"))
	assert.ErrorIs(t, err, ErrNumberSpaceExhausted)
	assert.Equal(t, 7, draws)
}

func TestRandomCandidatesAreTenDigits(t *testing.T) {
	g := NewTransactionNumberGenerator(RandomCandidates(rand.New(rand.NewSource(42))), 10, discardLogger())
	seen := utils.NewIDSet()

	for i := 0; i < 500; i++ {
		number, err := g.Generate(seen)
		require.NoError(t, err)
		assert.Len(t, number, 10)
		assert.Regexp(t, `^[1-9][0-9]{9}$`, number)
		assert.True(t, seen.Add(number), "generated duplicate %s", number)
	}
}
