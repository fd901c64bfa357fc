package services

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"holiday-planner/models"
)

const (
	SupportEmail = "support@holidayplanner.com"
	SupportPhone = "+1 (800) 123-4567"
)

// labelWidth is the column the summary values line up on.
const labelWidth = 20

// ComputeQuote prices req against prices.
func ComputeQuote(prices *models.PriceTable, req models.BookingRequest) (models.Quote, error) {
	flight, ok := prices.Flight(req.Destination)
	if !ok {
		return models.Quote{}, fmt.Errorf("%w: %q", ErrUnknownDestination, req.Destination)
	}
	if limit := prices.MaxUnits(); req.Nights > limit || req.RentalDays > limit {
		return models.Quote{}, fmt.Errorf("%w: at most %d nights or rental days", ErrCountTooLarge, limit)
	}
	return models.Quote{
		Flight: flight,
		Hotel:  req.Nights * prices.HotelPerNight,
		Rental: req.RentalDays * prices.CarPerDay,
	}, nil
}

// FormatUSD renders whole dollars as "$1,234.00 USD".
func FormatUSD(amount int) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("$%.2f USD", float64(amount))
}

// RenderSummary produces the holiday details text shown for confirmation and
// written verbatim to the receipt.
func RenderSummary(txn *models.Transaction, q models.Quote) string {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%-*s: %s\n", labelWidth, label, value)
	}

	b.WriteString("\n--- Holiday Details ---\n")
	line("Booking Number", txn.Number)
	line("Booked On", txn.Timestamp())
	b.WriteString("\n")
	line("Name", txn.Profile.FullName())
	line("Email", txn.Profile.Email)
	line("Destination", txn.Request.Destination)
	line("Flight Cost", FormatUSD(q.Flight))
	line("Hotel Cost", fmt.Sprintf("%s (%d nights)", FormatUSD(q.Hotel), txn.Request.Nights))
	line("Car Rental Cost", fmt.Sprintf("%s (%d days)", FormatUSD(q.Rental), txn.Request.RentalDays))
	line("Total Holiday Cost", FormatUSD(q.Total()))
	b.WriteString("\nIf you need a refund or want to make changes, contact:\n")
	line("- Email", SupportEmail)
	line("- Phone", SupportPhone)
	b.WriteString("\n**Note:** Refunds cannot be issued after 24 hours.\n")

	return b.String()
}
