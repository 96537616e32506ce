// Package cataloghdl - Handler nghệ sĩ.
package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/shakibkumnale/souldistribution/internal/api/base/handler"
	catalogdto "github.com/shakibkumnale/souldistribution/internal/api/catalog/dto"
	catalogmodels "github.com/shakibkumnale/souldistribution/internal/api/catalog/models"
	catalogsvc "github.com/shakibkumnale/souldistribution/internal/api/catalog/service"
	"github.com/shakibkumnale/souldistribution/internal/common"
)

// ArtistHandler xử lý request cho nghệ sĩ.
type ArtistHandler struct {
	*basehdl.BaseHandler[catalogmodels.Artist, catalogdto.ArtistCreateInput, catalogdto.ArtistUpdateInput]
	ArtistSvc *catalogsvc.ArtistService
}

// NewArtistHandler tạo ArtistHandler mới.
func NewArtistHandler() (*ArtistHandler, error) {
	svc, err := catalogsvc.NewArtistService()
	if err != nil {
		return nil, fmt.Errorf("tạo ArtistService: %w", err)
	}
	return &ArtistHandler{
		BaseHandler: basehdl.NewBaseHandler[catalogmodels.Artist, catalogdto.ArtistCreateInput, catalogdto.ArtistUpdateInput](svc),
		ArtistSvc:   svc,
	}, nil
}

// HandleGetBySlug xử lý GET /artists/slug/:slug.
func (h *ArtistHandler) HandleGetBySlug(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		slug := c.Params("slug")
		if slug == "" {
			basehdl.HandleError(c, common.NewError(common.ErrCodeValidationInput, "Thiếu slug", common.StatusBadRequest, nil))
			return nil
		}

		artist, err := h.ArtistSvc.FindBySlug(c.Context(), slug)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		basehdl.HandleSuccess(c, artist)
		return nil
	})
}

// HandleGetWithReleases xử lý GET /artists/with-releases.
// Trả về roster: tất cả nghệ sĩ kèm các bản phát hành của họ.
func (h *ArtistHandler) HandleGetWithReleases(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		roster, err := h.ArtistSvc.FindWithReleases(c.Context())
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		basehdl.HandleSuccess(c, roster)
		return nil
	})
}

// InsertOne thêm nghệ sĩ mới, kiểm tra slug duy nhất trước khi ghi.
func (h *ArtistHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.ArtistCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.ArtistSvc.EnsureUniqueSlug(c.Context(), input.Slug, primitive.NilObjectID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model := catalogmodels.Artist{
			Name:            input.Name,
			Slug:            input.Slug,
			Bio:             input.Bio,
			Image:           input.Image,
			SpotifyArtistID: input.SpotifyArtistID,
			SpotifyURL:      input.SpotifyURL,
			Plans:           input.Plans,
			IsFeatured:      input.IsFeatured,
		}

		data, err := h.BaseService.InsertOne(c.Context(), model)
		h.HandleResponse(c, data, err)
		return nil
	})
}
