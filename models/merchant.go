package models

import "time"

// Merchant is a seller storefront with a fixed geographic location.
type Merchant struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	WhatsApp  string    `bson:"whatsapp" json:"whatsapp,omitempty"` // contact number, opaque to ranking
	Address   string    `bson:"address" json:"address,omitempty"`
	Latitude  float64   `bson:"latitude" json:"latitude"`
	Longitude float64   `bson:"longitude" json:"longitude"`
	Blocked   bool      `bson:"blocked" json:"blocked"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
