package model

import "hostel/shared/model"

const (
	PhotoTableName  = "room_photos"
	PhotoEntityName = "room_photo"

	FieldPhotoID        = "id"
	FieldPhotoRoomID    = "room_id"
	FieldPhotoIsPrimary = "is_primary"
)

type RoomPhoto struct {
	ID          string `db:"id"`
	RoomID      string `db:"room_id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	URL         string `db:"url"`
	IsPrimary   bool   `db:"is_primary"`
	model.Metadata
}
