package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDSetNoDuplicates(t *testing.T) {
	s := NewIDSet()

	assert.True(t, s.Add("1234567890"), "first Add should return true")
	assert.False(t, s.Add("1234567890"), "second Add of same id should return false")
	assert.Equal(t, 1, s.Size())
}

func TestIDSetPrepopulated(t *testing.T) {
	s := NewIDSet("1111111111", "2222222222", "1111111111")

	assert.Equal(t, 2, s.Size())
	assert.True(t, s.Contains("2222222222"))
	assert.False(t, s.Contains("3333333333"))
}
