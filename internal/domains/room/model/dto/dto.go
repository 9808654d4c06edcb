package dto

import (
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hostel/internal/domains/room/model"
	"hostel/shared"
	gDto "hostel/shared/dto"
	gModel "hostel/shared/model"
	"hostel/shared/timezone"
)

type CreateRoomRequest struct {
	Category       string          `json:"category"        validate:"required,max=50"`
	Location       string          `json:"location"        validate:"required,max=50"`
	Menu           string          `json:"menu"            validate:"required,oneof=veg non_veg"`
	RoomsCount     int             `json:"rooms_count"     validate:"min=0"`
	PaxPerRoom     int             `json:"pax_per_room"    validate:"omitempty,min=1"`
	Capacity       *int            `json:"capacity"        validate:"omitempty,min=0"`
	AvailableSeats *int            `json:"available_seats" validate:"omitempty,min=0"`
	Price          decimal.Decimal `json:"price"           validate:"positive"`
	Active         *bool           `json:"active"`
}

// ToModel fills the derived defaults: pax_per_room 2, capacity rooms_count*pax_per_room
// and available_seats equal to capacity.
func (c *CreateRoomRequest) ToModel(user string) model.Room {
	pax := c.PaxPerRoom
	if pax == 0 {
		pax = 2
	}

	capacity := c.RoomsCount * pax
	if c.Capacity != nil && *c.Capacity > 0 {
		capacity = *c.Capacity
	}

	available := capacity
	if c.AvailableSeats != nil {
		available = *c.AvailableSeats
	}

	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:             uuid.NewString(),
		Category:       c.Category,
		Location:       c.Location,
		Menu:           c.Menu,
		RoomsCount:     c.RoomsCount,
		PaxPerRoom:     pax,
		Capacity:       capacity,
		AvailableSeats: available,
		Price:          c.Price,
		Active:         active,
		Metadata:       gModel.Stamp(user, timezone.Now()),
	}
}

type UpdateRoomRequest struct {
	Category       string           `db:"category"        json:"category"        validate:"omitempty,max=50"`
	Location       string           `db:"location"        json:"location"        validate:"omitempty,max=50"`
	Menu           string           `db:"menu"            json:"menu"            validate:"omitempty,oneof=veg non_veg"`
	RoomsCount     *int             `db:"rooms_count"     json:"rooms_count"     validate:"omitempty,min=0"`
	PaxPerRoom     *int             `db:"pax_per_room"    json:"pax_per_room"    validate:"omitempty,min=1"`
	Capacity       *int             `db:"capacity"        json:"capacity"        validate:"omitempty,min=0"`
	AvailableSeats *int             `db:"available_seats" json:"available_seats" validate:"omitempty,min=0"`
	Price          *decimal.Decimal `db:"price"           json:"price"           validate:"omitempty,positive"`
	Active         *bool            `db:"active"          json:"active"`
}

// Apply returns room with the requested changes, used to check seat bounds before writing.
func (u *UpdateRoomRequest) Apply(room model.Room) model.Room {
	if u.Capacity != nil {
		room.Capacity = *u.Capacity
	}

	if u.AvailableSeats != nil {
		room.AvailableSeats = *u.AvailableSeats
	}

	return room
}

// AvailableRoomsFilter narrows the student room listing.
type AvailableRoomsFilter struct {
	Gender   string `json:"gender"   validate:"omitempty,oneof=male female"`
	Menu     string `json:"menu"     validate:"omitempty,oneof=veg non_veg"`
	Capacity int    `json:"capacity" validate:"omitempty,min=1"`
}

type AddPhotoRequest struct {
	Title       string                `json:"title"       validate:"required,max=100"`
	Description string                `json:"description" validate:"omitempty,max=500"`
	IsPrimary   bool                  `json:"is_primary"`
	Image       *multipart.FileHeader `json:"image"       validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	ImageFile   multipart.File        `json:"-"`
}

func (a *AddPhotoRequest) ToModel(user, roomID, url string) model.RoomPhoto {
	return model.RoomPhoto{
		ID:          uuid.NewString(),
		RoomID:      roomID,
		Title:       a.Title,
		Description: a.Description,
		URL:         url,
		IsPrimary:   a.IsPrimary,
		Metadata:    gModel.Stamp(user, timezone.Now()),
	}
}

type PhotoResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	IsPrimary   bool   `json:"is_primary"`
}

func (p *PhotoResponse) FromModel(m model.RoomPhoto) {
	p.ID = m.ID
	p.Title = m.Title
	p.Description = m.Description
	p.URL = m.URL
	p.IsPrimary = m.IsPrimary
}

type RoomResponse struct {
	ID             string          `json:"id"`
	Category       string          `json:"category"`
	Location       string          `json:"location"`
	Menu           string          `json:"menu"`
	RoomsCount     int             `json:"rooms_count"`
	PaxPerRoom     int             `json:"pax_per_room"`
	Capacity       int             `json:"capacity"`
	AvailableSeats int             `json:"available_seats"`
	Price          decimal.Decimal `json:"price"`
	Active         bool            `json:"active"`
	Photos         []PhotoResponse `json:"photos,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(m model.Room) {
	r.ID = m.ID
	r.Category = m.Category
	r.Location = m.Location
	r.Menu = m.Menu
	r.RoomsCount = m.RoomsCount
	r.PaxPerRoom = m.PaxPerRoom
	r.Capacity = m.Capacity
	r.AvailableSeats = m.AvailableSeats
	r.Price = m.Price
	r.Active = m.Active
	r.Metadata.FromModel(m.Metadata)
}

func (r *RoomResponse) WithPhotos(photos []model.RoomPhoto) {
	r.Photos = make([]PhotoResponse, len(photos))
	for i, photo := range photos {
		r.Photos[i].FromModel(photo)
	}
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
