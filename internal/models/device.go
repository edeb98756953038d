package models

// Device is a registered sensing unit. UUID is the identifier devices post with;
// ID is the public numeric handle.
type Device struct {
	ID       int64  `db:"id" json:"id"`
	UUID     string `db:"uuid" json:"device_uuid"`
	Name     string `db:"name" json:"name"`
	Category string `db:"category" json:"category"`
	OwnerID  int    `db:"owner_id" json:"-"`
}
