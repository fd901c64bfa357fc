package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"holiday-planner/models"
)

var (
	ErrEmptyInput          = errors.New("input cannot be empty")
	ErrInvalidName         = errors.New("names cannot contain numbers or special characters")
	ErrInvalidConfirmation = errors.New("invalid input, please enter 'yes' or 'no'")
	ErrInvalidEmail        = errors.New("invalid email format, must be something@something.com")
	ErrInvalidAge          = errors.New("invalid input, please enter a valid number for age")
	ErrUnderage            = errors.New("traveller is under the minimum age")
	ErrUnknownDestination  = errors.New("invalid city, please choose from the available options")
	ErrInvalidCount        = errors.New("please enter a whole number")
	ErrCountTooLarge       = errors.New("number is too large")
	ErrNegativeNights      = errors.New("number of nights cannot be negative")
	ErrNegativeRentalDays  = errors.New("number of rental days cannot be negative")
)

// MinimumAge is the youngest traveller allowed to book unsupervised.
const MinimumAge = 18

// emailRegexp accepts local-part@domain.com; callers lower-case first.
var emailRegexp = regexp.MustCompile(`^[^@]+@[^@]+\.[cC][oO][mM]$`)

// Answer is the result of a yes/no question.
type Answer int

const (
	AnswerYes Answer = iota
	AnswerNo
	AnswerOther
)

// Validator normalises and checks everything the traveller types.
type Validator struct {
	validate *validator.Validate
	title    cases.Caser
	lower    cases.Caser
	maxUnits int
}

// NewValidator builds a Validator that resolves destinations against prices.
func NewValidator(prices *models.PriceTable) *Validator {
	v := validator.New()
	mustRegister(v, "dotcom", func(fl validator.FieldLevel) bool {
		return emailRegexp.MatchString(fl.Field().String())
	})
	mustRegister(v, "destination", func(fl validator.FieldLevel) bool {
		_, ok := prices.Flight(fl.Field().String())
		return ok
	})

	return &Validator{
		validate: v,
		title:    cases.Title(language.English),
		lower:    cases.Lower(language.English),
		maxUnits: prices.MaxUnits(),
	}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("services: register %q validation: %v", tag, err))
	}
}

// Name title-cases raw ("mcDONALD" -> "Mcdonald") and requires letters only.
func (v *Validator) Name(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyInput
	}
	name := v.title.String(raw)
	if err := v.validate.Var(name, "alphaunicode"); err != nil {
		return "", ErrInvalidName
	}
	return name, nil
}

// Confirmation classifies a yes/no answer, ignoring case.
func (v *Validator) Confirmation(raw string) Answer {
	switch v.lower.String(strings.TrimSpace(raw)) {
	case "yes":
		return AnswerYes
	case "no":
		return AnswerNo
	default:
		return AnswerOther
	}
}

// Email lower-cases raw and checks it against local-part@domain.com.
func (v *Validator) Email(raw string) (string, error) {
	email := v.lower.String(strings.TrimSpace(raw))
	if email == "" {
		return "", ErrEmptyInput
	}
	if err := v.validate.Var(email, "dotcom"); err != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// Age parses raw. A non-number is ErrInvalidAge; anything under MinimumAge is
// ErrUnderage, which callers must treat as terminal.
func (v *Validator) Age(raw string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidAge
	}
	if err := v.validate.Var(age, fmt.Sprintf("gte=%d", MinimumAge)); err != nil {
		return age, ErrUnderage
	}
	return age, nil
}

// Destination collapses whitespace, title-cases raw and requires a listed city.
func (v *Validator) Destination(raw string) (string, error) {
	city := v.title.String(strings.Join(strings.Fields(raw), " "))
	if city == "" {
		return "", ErrEmptyInput
	}
	if err := v.validate.Var(city, "destination"); err != nil {
		return "", ErrUnknownDestination
	}
	return city, nil
}

// Nights parses a non-negative hotel night count no larger than the price
// table's MaxUnits.
func (v *Validator) Nights(raw string) (int, error) {
	return v.count(raw, ErrNegativeNights)
}

// RentalDays parses a non-negative car rental day count no larger than the
// price table's MaxUnits.
func (v *Validator) RentalDays(raw string) (int, error) {
	return v.count(raw, ErrNegativeRentalDays)
}

func (v *Validator) count(raw string, negative error) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(strings.TrimSpace(raw), "-") {
			return 0, negative
		}
		return 0, ErrCountTooLarge
	}
	if err != nil {
		return 0, ErrInvalidCount
	}
	if err := v.validate.Var(n, "gte=0"); err != nil {
		return 0, negative
	}
	if err := v.validate.Var(n, fmt.Sprintf("lte=%d", v.maxUnits)); err != nil {
		return 0, ErrCountTooLarge
	}
	return n, nil
}

// Transaction checks a fully assembled booking before it is persisted.
func (v *Validator) Transaction(txn *models.Transaction) error {
	if err := v.validate.Struct(txn); err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}
	if err := v.validate.Var(txn.Request.Destination, "destination"); err != nil {
		return fmt.Errorf("invalid transaction: %w", ErrUnknownDestination)
	}
	return nil
}
