package model

import (
	"github.com/shopspring/decimal"

	"hostel/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID             = "id"
	FieldCategory       = "category"
	FieldLocation       = "location"
	FieldMenu           = "menu"
	FieldRoomsCount     = "rooms_count"
	FieldPaxPerRoom     = "pax_per_room"
	FieldCapacity       = "capacity"
	FieldAvailableSeats = "available_seats"
	FieldPrice          = "price"
	FieldActive         = "active"
)

const (
	MenuVeg    = "veg"
	MenuNonVeg = "non_veg"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Room is a bookable category of beds at one hostel location. available_seats counts
// beds not yet reserved by a pending or approved booking.
type Room struct {
	ID             string          `db:"id"`
	Category       string          `db:"category"`
	Location       string          `db:"location"`
	Menu           string          `db:"menu"`
	RoomsCount     int             `db:"rooms_count"`
	PaxPerRoom     int             `db:"pax_per_room"`
	Capacity       int             `db:"capacity"`
	AvailableSeats int             `db:"available_seats"`
	Price          decimal.Decimal `db:"price"`
	Active         bool            `db:"active"`
	model.Metadata
}

// SeatsValid reports whether 0 <= available_seats <= capacity.
func (r Room) SeatsValid() bool {
	return r.AvailableSeats >= 0 && r.AvailableSeats <= r.Capacity
}

var genderLocations = map[string][]string{
	GenderFemale: {"GH1 (BH3)", "GH2", "GH3 (BH1)"},
	GenderMale:   {"BH1", "BH2", "Habitat", "Thandalam"},
}

// LocationsFor returns the hostel locations open to gender, or nil for an unknown value.
func LocationsFor(gender string) []string {
	return genderLocations[gender]
}
