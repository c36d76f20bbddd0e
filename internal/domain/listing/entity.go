package listing

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyListingTitle   = errors.New("listing title cannot be empty")
	ErrListingTitleTooLong = errors.New("listing title is too long (max 255 characters)")
	ErrNonPositivePrice    = errors.New("nightly price must be positive")
	ErrInvalidMaxGuests    = errors.New("max guests must be at least 1")
)

const MaxListingTitleLength = 255

// Listing is a read-only snapshot owned by the listing subsystem. The booking
// core never mutates it.
type Listing struct {
	id                uuid.UUID
	hostID            uuid.UUID
	title             string
	location          string
	primaryImageURL   string
	nightlyPriceCents int64
	maxGuests         int
}

func NewListing(id, hostID uuid.UUID, title, location, primaryImageURL string, nightlyPriceCents int64, maxGuests int) (*Listing, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if nightlyPriceCents <= 0 {
		return nil, ErrNonPositivePrice
	}
	if maxGuests < 1 {
		return nil, ErrInvalidMaxGuests
	}

	return &Listing{
		id:                id,
		hostID:            hostID,
		title:             strings.TrimSpace(title),
		location:          location,
		primaryImageURL:   primaryImageURL,
		nightlyPriceCents: nightlyPriceCents,
		maxGuests:         maxGuests,
	}, nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyListingTitle
	}
	if len(title) > MaxListingTitleLength {
		return ErrListingTitleTooLong
	}
	return nil
}

func (l *Listing) ID() uuid.UUID            { return l.id }
func (l *Listing) HostID() uuid.UUID        { return l.hostID }
func (l *Listing) Title() string            { return l.title }
func (l *Listing) Location() string         { return l.location }
func (l *Listing) PrimaryImageURL() string  { return l.primaryImageURL }
func (l *Listing) NightlyPriceCents() int64 { return l.nightlyPriceCents }
func (l *Listing) MaxGuests() int           { return l.maxGuests }
