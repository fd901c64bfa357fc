package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"holiday-planner/utils"
)

const (
	minTransactionNumber int64 = 1_000_000_000
	maxTransactionNumber int64 = 9_999_999_999

	// numberSpace is how many distinct 10-digit numbers exist.
	numberSpace = maxTransactionNumber - minTransactionNumber + 1
)

var (
	ErrNumberSpaceExhausted = errors.New("no unused transaction number available")
	errNumberTaken          = errors.New("transaction number already recorded")
)

// CandidateSource yields candidate transaction numbers in
// [1000000000, 9999999999].
type CandidateSource func() int64

// RandomCandidates draws uniformly from the 10-digit range.
func RandomCandidates(rng *rand.Rand) CandidateSource {
	return func() int64 {
		return minTransactionNumber + rng.Int63n(numberSpace)
	}
}

// TransactionNumberGenerator draws candidates until one is not already used.
type TransactionNumberGenerator struct {
	next  CandidateSource
	retry *utils.RetryConfig
}

// NewTransactionNumberGenerator bounds the search to maxAttempts draws.
// A nil source uses a time-seeded random source.
func NewTransactionNumberGenerator(source CandidateSource, maxAttempts int, logger *utils.Logger) *TransactionNumberGenerator {
	if source == nil {
		source = RandomCandidates(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	return &TransactionNumberGenerator{
		next: source,
		retry: &utils.RetryConfig{
			MaxAttempts: maxAttempts,
			Logger:      logger,
		},
	}
}

// Generate returns a 10-digit number absent from existing.
func (g *TransactionNumberGenerator) Generate(existing *utils.IDSet) (string, error) {
	if int64(existing.Size()) >= numberSpace {
		return "", ErrNumberSpaceExhausted
	}

	var number string
	err := g.retry.Do("generate transaction number", func() error {
		candidate := g.next()
		if candidate < minTransactionNumber || candidate > maxTransactionNumber {
			return fmt.Errorf("candidate %d out of range", candidate)
		}
		number = strconv.FormatInt(candidate, 10)
		if existing.Contains(number) {
			return errNumberTaken
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNumberSpaceExhausted, err)
	}
	return number, nil
}
