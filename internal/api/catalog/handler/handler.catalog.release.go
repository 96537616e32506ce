// Package cataloghdl - Handler bản phát hành và tra cứu track.
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

// ReleaseHandler xử lý request cho bản phát hành.
type ReleaseHandler struct {
	*basehdl.BaseHandler[catalogmodels.Release, catalogdto.ReleaseCreateInput, catalogdto.ReleaseUpdateInput]
	ReleaseSvc *catalogsvc.ReleaseService
}

// NewReleaseHandler tạo ReleaseHandler mới.
func NewReleaseHandler() (*ReleaseHandler, error) {
	svc, err := catalogsvc.NewReleaseService()
	if err != nil {
		return nil, fmt.Errorf("tạo ReleaseService: %w", err)
	}
	return &ReleaseHandler{
		BaseHandler: basehdl.NewBaseHandler[catalogmodels.Release, catalogdto.ReleaseCreateInput, catalogdto.ReleaseUpdateInput](svc),
		ReleaseSvc:  svc,
	}, nil
}

// InsertOne thêm bản phát hành mới.
// Override base handler vì artists gửi lên dạng hex string, cần convert sang ObjectID.
func (h *ReleaseHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.ReleaseCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		artistIDs, err := parseArtistIDs(input.ArtistIDs)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model := catalogmodels.Release{
			Title:       input.Title,
			Slug:        input.Slug,
			CoverImage:  input.CoverImage,
			Artists:     artistIDs,
			ISRC:        input.ISRC,
			UPC:         input.UPC,
			ReleaseType: input.ReleaseType,
			ReleaseDate: input.ReleaseDate,
			SpotifyURL:  input.SpotifyURL,
			IsFeatured:  input.IsFeatured,
		}

		data, err := h.BaseService.InsertOne(c.Context(), model)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleGetByArtist xử lý GET /releases/by-artist/:id.
func (h *ReleaseHandler) HandleGetByArtist(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		artistID, _ := primitive.ObjectIDFromHex(id)

		releases, err := h.ReleaseSvc.FindByArtist(c.Context(), artistID)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		basehdl.HandleSuccess(c, releases)
		return nil
	})
}

// HandleGetTrack xử lý GET /tracks/:key.
// Key được thử lần lượt: ObjectID → slug → ISRC.
func (h *ReleaseHandler) HandleGetTrack(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		key := c.Params("key")
		if key == "" {
			basehdl.HandleError(c, common.NewError(common.ErrCodeValidationInput, "Thiếu track key", common.StatusBadRequest, nil))
			return nil
		}

		track, err := h.ReleaseSvc.FindTrack(c.Context(), key)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		basehdl.HandleSuccess(c, track)
		return nil
	})
}

// parseArtistIDs convert danh sách hex string sang ObjectID
func parseArtistIDs(ids []string) ([]primitive.ObjectID, error) {
	result := make([]primitive.ObjectID, 0, len(ids))
	for i, id := range ids {
		if !primitive.IsValidObjectID(id) {
			return nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Artist ID '%s' tại vị trí %d không đúng định dạng MongoDB ObjectID", id, i),
				common.StatusBadRequest,
				nil,
			)
		}
		objID, _ := primitive.ObjectIDFromHex(id)
		result = append(result, objID)
	}
	return result, nil
}
