// Package dto - DTO cho domain catalog (release).
package dto

// ReleaseCreateInput dữ liệu tạo bản phát hành mới.
// Artists nhận danh sách ObjectID dạng hex string, được convert trong handler.
type ReleaseCreateInput struct {
	Title       string   `json:"title" bson:"title" validate:"required"`
	Slug        string   `json:"slug" bson:"slug" validate:"required,slug"`
	CoverImage  string   `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	ArtistIDs   []string `json:"artists" bson:"-" validate:"required,min=1,dive,len=24"`
	ISRC        string   `json:"isrc,omitempty" bson:"isrc,omitempty" validate:"omitempty,isrc"`
	UPC         string   `json:"upc,omitempty" bson:"upc,omitempty"`
	ReleaseType string   `json:"releaseType,omitempty" bson:"releaseType,omitempty" validate:"omitempty,oneof=single album ep"`
	ReleaseDate int64    `json:"releaseDate,omitempty" bson:"releaseDate,omitempty"`
	SpotifyURL  string   `json:"spotifyUrl,omitempty" bson:"spotifyUrl,omitempty"`
	IsFeatured  bool     `json:"isFeatured" bson:"isFeatured"`
}

// ReleaseUpdateInput dữ liệu cập nhật bản phát hành.
type ReleaseUpdateInput struct {
	Title       string   `json:"title,omitempty" bson:"title,omitempty"`
	Slug        string   `json:"slug,omitempty" bson:"slug,omitempty" validate:"omitempty,slug"`
	CoverImage  string   `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	ArtistIDs   []string `json:"artists,omitempty" bson:"-" validate:"omitempty,dive,len=24"`
	ISRC        string   `json:"isrc,omitempty" bson:"isrc,omitempty" validate:"omitempty,isrc"`
	UPC         string   `json:"upc,omitempty" bson:"upc,omitempty"`
	ReleaseType string   `json:"releaseType,omitempty" bson:"releaseType,omitempty" validate:"omitempty,oneof=single album ep"`
	ReleaseDate int64    `json:"releaseDate,omitempty" bson:"releaseDate,omitempty"`
	SpotifyURL  string   `json:"spotifyUrl,omitempty" bson:"spotifyUrl,omitempty"`
	IsFeatured  bool     `json:"isFeatured,omitempty" bson:"isFeatured,omitempty"`
}
