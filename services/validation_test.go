package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holiday-planner/models"
)

func newTestValidator() *Validator {
	return NewValidator(models.DefaultPriceTable())
}

func TestValidatorName(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		raw     string
		want    string
		wantErr error
	}{
		{"john", "John", nil},
		{"  DOE ", "Doe", nil},
		{"mcDONALD", "Mcdonald", nil},
		{"josé", "José", nil},
		{"j0hn", "", ErrInvalidName},
		{"anne-marie", "", ErrInvalidName},
		{"mary jane", "", ErrInvalidName},
		{"   ", "", ErrEmptyInput},
	}

	for _, tt := range tests {
		got, err := v.Name(tt.raw)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, "Name(%q)", tt.raw)
			continue
		}
		require.NoError(t, err, "Name(%q)", tt.raw)
		assert.Equal(t, tt.want, got, "Name(%q)", tt.raw)
	}
}

func TestValidatorConfirmation(t *testing.T) {
	v := newTestValidator()

	assert.Equal(t, AnswerYes, v.Confirmation("yes"))
	assert.Equal(t, AnswerYes, v.Confirmation(" YES "))
	assert.Equal(t, AnswerNo, v.Confirmation("No"))
	assert.Equal(t, AnswerOther, v.Confirmation("y"))
	assert.Equal(t, AnswerOther, v.Confirmation("maybe"))
}

func TestValidatorEmail(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		raw     string
		want    string
		wantErr error
	}{
		{"user@example.com", "user@example.com", nil},
		{"JOHN@EXAMPLE.COM", "john@example.com", nil},
		{"first.last@sub.domain.com", "first.last@sub.domain.com", nil},
		{"user@example", "", ErrInvalidEmail},
		{"user.example.com", "", ErrInvalidEmail},
		{"user@example.org", "", ErrInvalidEmail},
		{"a@b@c.com", "", ErrInvalidEmail},
		{"@example.com", "", ErrInvalidEmail},
	}

	for _, tt := range tests {
		got, err := v.Email(tt.raw)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, "Email(%q)", tt.raw)
			continue
		}
		require.NoError(t, err, "Email(%q)", tt.raw)
		assert.Equal(t, tt.want, got, "Email(%q)", tt.raw)
	}
}

func TestValidatorAge(t *testing.T) {
	v := newTestValidator()

	age, err := v.Age("18")
	require.NoError(t, err)
	assert.Equal(t, 18, age)

	age, err = v.Age(" 64 ")
	require.NoError(t, err)
	assert.Equal(t, 64, age)

	_, err = v.Age("17")
	assert.ErrorIs(t, err, ErrUnderage)

	_, err = v.Age("-5")
	assert.ErrorIs(t, err, ErrUnderage)

	_, err = v.Age("eighteen")
	assert.ErrorIs(t, err, ErrInvalidAge)

	_, err = v.Age("18.5")
	assert.ErrorIs(t, err, ErrInvalidAge)
}

func TestValidatorDestination(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		raw     string
		want    string
		wantErr error
	}{
		{"paris", "Paris", nil},
		{"NEW YORK", "New York", nil},
		{"  new   york ", "New York", nil},
		{"Dubai", "Dubai", nil},
		{"berlin", "", ErrUnknownDestination},
		{"newyork", "", ErrUnknownDestination},
	}

	for _, tt := range tests {
		got, err := v.Destination(tt.raw)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, "Destination(%q)", tt.raw)
			continue
		}
		require.NoError(t, err, "Destination(%q)", tt.raw)
		assert.Equal(t, tt.want, got, "Destination(%q)", tt.raw)
	}
}

func TestValidatorCounts(t *testing.T) {
	v := newTestValidator()

	n, err := v.Nights("0")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = v.RentalDays("14")
	require.NoError(t, err)
	assert.Equal(t, 14, n)

	_, err = v.Nights("-1")
	assert.ErrorIs(t, err, ErrNegativeNights)

	_, err = v.RentalDays("-2")
	assert.ErrorIs(t, err, ErrNegativeRentalDays)

	_, err = v.Nights("two")
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = v.RentalDays("1.5")
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestValidatorCountCeiling(t *testing.T) {
	v := newTestValidator()
	limit := models.DefaultPriceTable().MaxUnits()
	require.Equal(t, 5368709, limit)

	tests := []struct {
		raw     string
		want    int
		wantErr error
	}{
		{"5368709", 5368709, nil},
		{"5368710", 0, ErrCountTooLarge},
		{"92233720368547758", 0, ErrCountTooLarge},
		{"99999999999999999999", 0, ErrCountTooLarge},
		{"-99999999999999999999", 0, ErrNegativeNights},
	}

	for _, tt := range tests {
		got, err := v.Nights(tt.raw)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, "Nights(%q)", tt.raw)
			continue
		}
		require.NoError(t, err, "Nights(%q)", tt.raw)
		assert.Equal(t, tt.want, got, "Nights(%q)", tt.raw)
	}

	_, err := v.RentalDays("92233720368547758")
	assert.ErrorIs(t, err, ErrCountTooLarge)
}

func TestValidatorTransaction(t *testing.T) {
	v := newTestValidator()
	txn := &models.Transaction{
		Number:   "1234567890",
		BookedAt: time.Now(),
		Profile:  models.UserProfile{FirstName: "John", LastName: "Doe", Email: "john@example.com", Age: 30},
		Request:  models.BookingRequest{Destination: "Paris", Nights: 2, RentalDays: 1},
	}
	require.NoError(t, v.Transaction(txn))

	bad := *txn
	bad.Number = "12345"
	assert.Error(t, v.Transaction(&bad))

	bad = *txn
	bad.Profile.Age = 17
	assert.Error(t, v.Transaction(&bad))

	bad = *txn
	bad.Request.Destination = "Berlin"
	assert.ErrorIs(t, v.Transaction(&bad), ErrUnknownDestination)
}
