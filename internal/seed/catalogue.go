package seed

import (
	"github.com/shopspring/decimal"

	"hostel/internal/domains/room/model"
)

type entry struct {
	category   string
	location   string
	menu       string
	roomsCount int
	pax        int
	price      int64
}

var boysHostels = []entry{
	{"2 AC A", "BH2", model.MenuVeg, 30, 2, 18000},
	{"3 Non AC C", "Thandalam", model.MenuNonVeg, 2, 3, 15000},
	{"4 AC A", "BH2", model.MenuVeg, 79, 4, 16000},
	{"4 Non AC A", "Habitat", model.MenuNonVeg, 152, 4, 13000},
	{"5 Non AC C", "Thandalam", model.MenuNonVeg, 27, 5, 12000},
	{"6 Non AC C", "Habitat", model.MenuNonVeg, 240, 6, 10000},
}

var girlsHostels = []entry{
	{"2 AC A", "GH1 (BH3)", model.MenuVeg, 6, 2, 18000},
	{"2 AC A", "GH2", model.MenuVeg, 27, 2, 18000},
	{"2 AC A", "GH3 (BH1)", model.MenuVeg, 6, 2, 18000},
	{"2 Non AC C", "GH1 (BH3)", model.MenuVeg, 118, 2, 15000},
	{"2 Non AC C", "GH3 (BH1)", model.MenuVeg, 43, 2, 15000},
	{"3 AC A", "GH3 (BH1)", model.MenuVeg, 18, 3, 17000},
	{"3 Non AC C", "GH3 (BH1)", model.MenuVeg, 80, 3, 14000},
	{"4 Non AC C", "GH3 (BH1)", model.MenuVeg, 76, 4, 13000},
	{"4 Non AC C", "GH2", model.MenuVeg, 178, 4, 13000},
	{"6 Non AC C", "GH1 (BH3)", model.MenuVeg, 13, 6, 10000},
}

// Catalogue is the initial room inventory with every seat free.
func Catalogue() []model.Room {
	entries := append(append([]entry{}, boysHostels...), girlsHostels...)
	rooms := make([]model.Room, 0, len(entries))

	for _, e := range entries {
		capacity := e.roomsCount * e.pax

		rooms = append(rooms, model.Room{
			Category:       e.category,
			Location:       e.location,
			Menu:           e.menu,
			RoomsCount:     e.roomsCount,
			PaxPerRoom:     e.pax,
			Capacity:       capacity,
			AvailableSeats: capacity,
			Price:          decimal.NewFromInt(e.price),
			Active:         true,
		})
	}

	return rooms
}
