// Package models - Release thuộc domain catalog (releases).
// Bản phát hành (single/album) đã phân phối lên các cửa hàng nhạc số.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Release lưu bản phát hành (releases).
// ISRC là khóa nghiệp vụ để đối soát doanh thu: mỗi track đã phát hành
// mang một ISRC duy nhất trên mọi cửa hàng.
type Release struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Title       string               `json:"title" bson:"title"`
	Slug        string               `json:"slug" bson:"slug" index:"unique"`
	CoverImage  string               `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	Artists     []primitive.ObjectID `json:"artists" bson:"artists" index:"multikey"`
	ISRC        string               `json:"isrc,omitempty" bson:"isrc,omitempty" index:"single:1,sparse"`
	UPC         string               `json:"upc,omitempty" bson:"upc,omitempty"`
	ReleaseType string               `json:"releaseType,omitempty" bson:"releaseType,omitempty"` // single | album | ep
	ReleaseDate int64                `json:"releaseDate,omitempty" bson:"releaseDate,omitempty"`
	SpotifyURL  string               `json:"spotifyUrl,omitempty" bson:"spotifyUrl,omitempty"`
	IsFeatured  bool                 `json:"isFeatured" bson:"isFeatured"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// ArtistRef là bản rút gọn của Artist dùng khi populate vào Release/track detail.
type ArtistRef struct {
	ID    primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Slug  string             `json:"slug" bson:"slug"`
	Image string             `json:"image,omitempty" bson:"image,omitempty"`
}

// ReleaseWithArtists là Release kèm danh sách nghệ sĩ đã populate (kết quả $lookup).
type ReleaseWithArtists struct {
	Release `bson:",inline"`

	ArtistDetails []ArtistRef `json:"artistDetails" bson:"artistDetails"`
}
