package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"holiday-planner/models"
	"holiday-planner/storage"
	"holiday-planner/utils"
)

const closingMessage = "Thank you for confirming. Your quote is being shared with one of our " +
	"representatives who will be in touch very soon! We appreciate your patience at this time."

// Store is everything the workflow persists to.
type Store interface {
	storage.Repository
	storage.ReceiptWriter
}

// BookingWorkflow drives one interactive booking session end to end.
type BookingWorkflow struct {
	console   *utils.Console
	validator *Validator
	prices    *models.PriceTable
	numbers   *TransactionNumberGenerator
	store     Store
	logger    *utils.Logger
	now       func() time.Time
	sessionID string
}

// Option customises a BookingWorkflow.
type Option func(*BookingWorkflow)

// WithClock replaces time.Now for the booking timestamp.
func WithClock(now func() time.Time) Option {
	return func(w *BookingWorkflow) { w.now = now }
}

// WithNumberGenerator replaces the default random generator.
func WithNumberGenerator(g *TransactionNumberGenerator) Option {
	return func(w *BookingWorkflow) { w.numbers = g }
}

// NewBookingWorkflow wires a workflow over console and store.
func NewBookingWorkflow(console *utils.Console, prices *models.PriceTable, store Store,
	logger *utils.Logger, opts ...Option) *BookingWorkflow {
	w := &BookingWorkflow{
		console:   console,
		validator: NewValidator(prices),
		prices:    prices,
		store:     store,
		logger:    logger,
		now:       time.Now,
		sessionID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.numbers == nil {
		w.numbers = NewTransactionNumberGenerator(nil, 1000, logger)
	}
	return w
}

// Run collects the profile and booking, confirms the summary and persists it.
// It returns ErrUnderage, without touching the store, for travellers under
// MinimumAge.
func (w *BookingWorkflow) Run() (*models.Transaction, error) {
	w.logger.Info("[workflow] session %s started", w.sessionID)
	w.console.Println("Welcome to the Holiday Planner!")

	profile, err := w.CollectUserProfile()
	if err != nil {
		return nil, err
	}

	number, err := w.GenerateTransactionNumber()
	if err != nil {
		return nil, err
	}
	txn := &models.Transaction{
		Number:   number,
		BookedAt: w.now(),
		Profile:  profile,
	}

	summary, err := w.confirmBooking(txn)
	if err != nil {
		return nil, err
	}
	if err := w.Persist(txn, summary); err != nil {
		return nil, err
	}
	return txn, nil
}

// CollectUserProfile prompts for names, email and age until each is valid.
func (w *BookingWorkflow) CollectUserProfile() (models.UserProfile, error) {
	var p models.UserProfile

	for {
		first, err := w.console.Ask("Enter your first name: ")
		if err != nil {
			return p, err
		}
		last, err := w.console.Ask("Enter your last name: ")
		if err != nil {
			return p, err
		}

		if p.FirstName, err = w.validator.Name(first); err == nil {
			p.LastName, err = w.validator.Name(last)
		}
		if err != nil {
			w.printError(err)
			continue
		}

		w.console.Printf("\nYou entered: %s\n", p.FullName())
		answer, err := w.console.Ask("Is this correct? (yes/no): ")
		if err != nil {
			return p, err
		}
		switch w.validator.Confirmation(answer) {
		case AnswerYes:
		case AnswerNo:
			w.console.Println("Please re-enter your name.")
			continue
		default:
			w.printError(ErrInvalidConfirmation)
			continue
		}
		break
	}

	for {
		raw, err := w.console.Ask("Enter your email address: ")
		if err != nil {
			return p, err
		}
		if p.Email, err = w.validator.Email(raw); err != nil {
			w.printError(err)
			continue
		}
		break
	}

	for {
		raw, err := w.console.Ask("Enter your age: ")
		if err != nil {
			return p, err
		}
		p.Age, err = w.validator.Age(raw)
		if errors.Is(err, ErrUnderage) {
			w.logger.Info("[workflow] session %s ended: traveller under %d", w.sessionID, MinimumAge)
			return p, err
		}
		if err != nil {
			w.printMessage(err)
			continue
		}
		break
	}

	w.logger.Debug("[workflow] session %s profile confirmed for %s", w.sessionID, p.FullName())
	return p, nil
}

// CollectBookingRequest prompts for destination, nights and rental days. A bad
// answer re-asks only that field.
func (w *BookingWorkflow) CollectBookingRequest() (models.BookingRequest, error) {
	var req models.BookingRequest

	w.console.Printf("\nAvailable cities: %s\n", strings.Join(w.prices.Destinations(), ", "))
	for {
		raw, err := w.console.Ask("Enter the city you will be flying to: ")
		if err != nil {
			return req, err
		}
		if req.Destination, err = w.validator.Destination(raw); err != nil {
			w.printRetry(err)
			continue
		}
		break
	}

	for {
		raw, err := w.console.Ask("Enter the number of nights you will stay at the hotel: ")
		if err != nil {
			return req, err
		}
		if req.Nights, err = w.validator.Nights(raw); err != nil {
			w.printRetry(err)
			continue
		}
		break
	}

	for {
		raw, err := w.console.Ask("Enter the number of days you will hire a car: ")
		if err != nil {
			return req, err
		}
		if req.RentalDays, err = w.validator.RentalDays(raw); err != nil {
			w.printRetry(err)
			continue
		}
		break
	}

	return req, nil
}

// confirmBooking loops booking entry and summary until the traveller answers
// "yes", and returns the confirmed summary. Number and timestamp stay fixed.
func (w *BookingWorkflow) confirmBooking(txn *models.Transaction) (string, error) {
	for attempt := 1; ; attempt++ {
		req, err := w.CollectBookingRequest()
		if err != nil {
			return "", err
		}
		txn.Request = req

		summary, err := w.ComputeAndRender(txn)
		if err != nil {
			return "", err
		}
		w.console.Println(summary)

		answer, err := w.console.Ask("Do you confirm your selection? (yes/no): ")
		if err != nil {
			return "", err
		}
		if w.validator.Confirmation(answer) == AnswerYes {
			w.logger.Debug("[workflow] session %s booking confirmed after %d attempt(s)", w.sessionID, attempt)
			return summary, nil
		}
		w.console.Println("Restarting the booking process...")
	}
}

// ComputeAndRender prices txn.Request and renders the summary text.
func (w *BookingWorkflow) ComputeAndRender(txn *models.Transaction) (string, error) {
	q, err := ComputeQuote(w.prices, txn.Request)
	if err != nil {
		return "", err
	}
	return RenderSummary(txn, q), nil
}

// GenerateTransactionNumber draws a number not yet in the transaction index.
func (w *BookingWorkflow) GenerateTransactionNumber() (string, error) {
	entries, err := w.store.ListTransactions()
	if err != nil {
		return "", err
	}
	existing := utils.NewIDSet()
	for _, e := range entries {
		existing.Add(e.Number)
	}

	number, err := w.numbers.Generate(existing)
	if err != nil {
		w.logger.Error("[workflow] session %s: %v", w.sessionID, err)
		return "", err
	}
	w.logger.Debug("[workflow] session %s drew transaction %s (%d on record)", w.sessionID, number, existing.Size())
	return number, nil
}

// Persist writes the receipt, the index entry and the log line, then thanks
// the traveller.
func (w *BookingWorkflow) Persist(txn *models.Transaction, summary string) error {
	if err := w.validator.Transaction(txn); err != nil {
		return err
	}
	if err := w.store.SaveReceipt(txn.ReceiptName(), summary); err != nil {
		return err
	}
	if err := w.store.AppendTransaction(txn.IndexEntry()); err != nil {
		return err
	}
	if err := w.store.AppendLogEntry(txn.LogLine()); err != nil {
		return err
	}

	w.logger.Info("[workflow] session %s persisted booking %s for %s",
		w.sessionID, txn.Number, txn.Profile.FullName())
	w.console.Println("\n" + closingMessage)
	return nil
}

// promptMessages is the traveller-facing wording for each validation error.
var promptMessages = map[error]string{
	ErrInvalidName:         "Names cannot contain numbers or special characters.",
	ErrInvalidConfirmation: "Invalid input. Please enter 'yes' or 'no'.",
	ErrInvalidEmail:        "Invalid email format. Must be something@something.com",
	ErrInvalidAge:          "Invalid input. Please enter a valid number for age.",
	ErrUnknownDestination:  "Invalid city. Please choose from the available options.",
	ErrInvalidCount:        "Please enter a whole number.",
	ErrCountTooLarge:       "That number is too large.",
	ErrNegativeNights:      "Number of nights cannot be negative.",
	ErrNegativeRentalDays:  "Number of rental days cannot be negative.",
}

func promptMessage(err error) string {
	if msg, ok := promptMessages[err]; ok {
		return msg
	}
	s := err.Error()
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

// printError reports a validation failure that restarts the current prompt.
func (w *BookingWorkflow) printError(err error) {
	w.console.Println("Error: " + promptMessage(err))
}

// printRetry is printError for booking fields.
func (w *BookingWorkflow) printRetry(err error) {
	w.console.Println("Error: " + promptMessage(err) + " Please try again.")
}

func (w *BookingWorkflow) printMessage(err error) {
	w.console.Println(promptMessage(err))
}
