package model

import (
	"net/http"

	"hostel/shared/failure"
)

var (
	ErrRoomNotFound  = failure.New(http.StatusNotFound, "room not found")
	ErrOutOfStock    = failure.New(http.StatusConflict, "no seats left in room")
	ErrRoomExists    = failure.New(http.StatusConflict, "room category already exists at this location")
	ErrSeatBounds    = failure.New(http.StatusBadRequest, "available seats must be between 0 and capacity")
	ErrPhotoNotFound = failure.New(http.StatusNotFound, "room photo not found")
	ErrRoomInUse     = failure.New(http.StatusConflict, "room has active bookings")
)
