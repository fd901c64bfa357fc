package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// TimestampLayout renders booking times as "2024-05-01 14h:03m:09s CEST".
const TimestampLayout = "2006-01-02 15h:04m:05s MST"

// PriceTable holds the flight fare per destination plus the hotel and car
// rental rates, all in whole US dollars. It is never modified after creation.
type PriceTable struct {
	destinations []string
	flights      map[string]int

	HotelPerNight int
	CarPerDay     int
}

// DefaultPriceTable returns the planner's fixed fares.
func DefaultPriceTable() *PriceTable {
	return NewPriceTable(100, 50,
		Fare{"New York", 500},
		Fare{"Paris", 400},
		Fare{"Tokyo", 600},
		Fare{"London", 450},
		Fare{"Dubai", 550},
	)
}

// Fare is one destination row of a PriceTable.
type Fare struct {
	Destination string
	Flight      int
}

// NewPriceTable builds a table; destination order is kept for display.
func NewPriceTable(hotelPerNight, carPerDay int, fares ...Fare) *PriceTable {
	t := &PriceTable{
		flights:       make(map[string]int, len(fares)),
		HotelPerNight: hotelPerNight,
		CarPerDay:     carPerDay,
	}
	for _, f := range fares {
		if _, dup := t.flights[f.Destination]; !dup {
			t.destinations = append(t.destinations, f.Destination)
		}
		t.flights[f.Destination] = f.Flight
	}
	return t
}

// Destinations lists the bookable destinations in table order.
func (t *PriceTable) Destinations() []string {
	out := make([]string, len(t.destinations))
	copy(out, t.destinations)
	return out
}

// Flight returns the fare for destination and whether it is listed.
func (t *PriceTable) Flight(destination string) (int, bool) {
	price, ok := t.flights[destination]
	return price, ok
}

// MaxUnits is the largest night or rental-day count the table will price.
// Each cost line stays below a quarter of math.MaxInt32, so totals cannot
// overflow on any platform.
func (t *PriceTable) MaxUnits() int {
	rate := t.HotelPerNight
	if t.CarPerDay > rate {
		rate = t.CarPerDay
	}
	if rate < 1 {
		rate = 1
	}
	return math.MaxInt32 / 4 / rate
}

// UserProfile is the confirmed traveller.
type UserProfile struct {
	FirstName string `validate:"required,alphaunicode"`
	LastName  string `validate:"required,alphaunicode"`
	Email     string `validate:"required,dotcom"`
	Age       int    `validate:"gte=18"`
}

// FullName is "First Last".
func (p UserProfile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// BookingRequest is the trip being priced. It may be re-entered until the
// traveller confirms the summary.
type BookingRequest struct {
	Destination string `validate:"required"`
	Nights      int    `validate:"gte=0"`
	RentalDays  int    `validate:"gte=0"`
}

// Quote is the cost breakdown for a BookingRequest.
type Quote struct {
	Flight int
	Hotel  int
	Rental int
}

// Total is the sum of all cost lines.
func (q Quote) Total() int {
	return q.Flight + q.Hotel + q.Rental
}

// Transaction is a confirmed booking.
type Transaction struct {
	Number   string `validate:"len=10,numeric"`
	BookedAt time.Time
	Profile  UserProfile
	Request  BookingRequest
}

// Timestamp formats BookedAt with TimestampLayout.
func (t *Transaction) Timestamp() string {
	return t.BookedAt.Format(TimestampLayout)
}

// ReceiptName is the per-traveller receipt file name, e.g. "john_doe_receipt.txt".
func (t *Transaction) ReceiptName() string {
	return fmt.Sprintf("%s_%s_receipt.txt",
		strings.ToLower(t.Profile.FirstName), strings.ToLower(t.Profile.LastName))
}

// IndexEntry returns the transaction-index row for t.
func (t *Transaction) IndexEntry() IndexEntry {
	return IndexEntry{
		LastName:  t.Profile.LastName,
		FirstName: t.Profile.FirstName,
		Number:    t.Number,
	}
}

// LogLine is the activity-log row for t, without a trailing newline.
func (t *Transaction) LogLine() string {
	return fmt.Sprintf("%s - %s completed a booking (%s - %s)",
		t.Timestamp(), t.Profile.FullName(), t.Request.Destination, t.Number)
}

// IndexEntry is one row of the customer transaction index:
// "LastName, FirstName: 1234567890".
type IndexEntry struct {
	LastName  string
	FirstName string
	Number    string
}

// String renders the entry in index-file format.
func (e IndexEntry) String() string {
	return fmt.Sprintf("%s, %s: %s", e.LastName, e.FirstName, e.Number)
}

// ParseIndexEntry splits an index line. Lines that do not contain exactly one
// ": " separator are rejected.
func ParseIndexEntry(line string) (IndexEntry, bool) {
	parts := strings.Split(strings.TrimSpace(line), ": ")
	if len(parts) != 2 {
		return IndexEntry{}, false
	}
	entry := IndexEntry{Number: parts[1]}
	last, first, found := strings.Cut(parts[0], ", ")
	if found {
		entry.LastName, entry.FirstName = last, first
	} else {
		entry.LastName = parts[0]
	}
	return entry, true
}
