// Package models - Artist thuộc domain catalog (artists).
// Hồ sơ nghệ sĩ đã ký với nhà phân phối.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ArtistPlan lưu gói phân phối của nghệ sĩ (embedded trong Artist).
type ArtistPlan struct {
	Type      string `json:"type" bson:"type"`           // basic | pro | premium | aoc
	Status    string `json:"status" bson:"status"`       // active | expired | cancelled
	StartDate int64  `json:"startDate" bson:"startDate"` // Unix millis
	EndDate   int64  `json:"endDate,omitempty" bson:"endDate,omitempty"`
}

// SpotifyData lưu thông tin đồng bộ từ Spotify (embedded trong Artist).
type SpotifyData struct {
	Followers  int64    `json:"followers" bson:"followers"`
	Genres     []string `json:"genres,omitempty" bson:"genres,omitempty"`
	Popularity int      `json:"popularity" bson:"popularity"`
	URI        string   `json:"uri,omitempty" bson:"uri,omitempty"`
}

// Artist lưu hồ sơ nghệ sĩ (artists).
type Artist struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name            string       `json:"name" bson:"name"`
	Slug            string       `json:"slug" bson:"slug" index:"unique"`
	Bio             string       `json:"bio,omitempty" bson:"bio,omitempty"`
	Image           string       `json:"image,omitempty" bson:"image,omitempty"`
	SpotifyArtistID string       `json:"spotifyArtistId,omitempty" bson:"spotifyArtistId,omitempty"`
	SpotifyURL      string       `json:"spotifyUrl,omitempty" bson:"spotifyUrl,omitempty"`
	SpotifyData     *SpotifyData `json:"spotifyData,omitempty" bson:"spotifyData,omitempty"`
	Plans           []ArtistPlan `json:"plans,omitempty" bson:"plans,omitempty"`
	IsFeatured      bool         `json:"isFeatured" bson:"isFeatured"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
