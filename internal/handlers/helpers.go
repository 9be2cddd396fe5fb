// internal/handlers/helpers.go
package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/javajoker/materialmap-backend/internal/i18n"
	"github.com/javajoker/materialmap-backend/internal/pricing"
	"github.com/javajoker/materialmap-backend/internal/services"
	"github.com/javajoker/materialmap-backend/internal/utils"
)

// parseIDParam reads a UUID path parameter, answering 400 when it is malformed.
func parseIDParam(c *gin.Context, param, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyInvalidID, resource), nil)
		return uuid.Nil, false
	}
	return id, true
}

// bindAndValidate binds a JSON body into req and runs struct validation.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	lang := utils.GetLangFromContext(c)

	if err := c.ShouldBindJSON(req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return false
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return false
	}
	return true
}

// respondError maps service errors onto the HTTP envelope.
func respondError(c *gin.Context, err error, maxImageMB int) {
	lang := utils.GetLangFromContext(c)

	switch {
	case errors.Is(err, services.ErrProductNotFound):
		utils.NotFoundResponse(c, "product")
	case errors.Is(err, services.ErrStoreNotFound):
		utils.NotFoundResponse(c, "store")
	case errors.Is(err, services.ErrInventoryNotFound):
		utils.NotFoundResponse(c, "inventory")
	case errors.Is(err, services.ErrUserNotFound):
		utils.NotFoundResponse(c, "user")
	case errors.Is(err, pricing.ErrInvalidDiscount):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyInventoryInvalidDiscount), nil)
	case errors.Is(err, pricing.ErrInvalidQuantityOrPrice):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyInventoryInvalidQuantity), nil)
	case errors.Is(err, services.ErrInvalidFileType), errors.Is(err, services.ErrInvalidImage):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyImageInvalidType, strings.Join(services.AllowedImageExtensions, ", ")), nil)
	case errors.Is(err, services.ErrFileTooLarge):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyImageTooLarge, maxImageMB), nil)
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}

// imageUpload is the multipart "file" field of an image upload request.
type imageUpload struct {
	header *multipart.FileHeader
	file   multipart.File
}

func (u *imageUpload) Filename() string    { return u.header.Filename }
func (u *imageUpload) Size() int64         { return u.header.Size }
func (u *imageUpload) Body() io.ReadSeeker { return u.file }
func (u *imageUpload) Close() error        { return u.file.Close() }

func readImageUpload(c *gin.Context) (*imageUpload, bool) {
	lang := utils.GetLangFromContext(c)

	header, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyImageRequired), nil)
		return nil, false
	}

	file, err := header.Open()
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyImageUploadFailed), err.Error())
		return nil, false
	}

	return &imageUpload{header: header, file: file}, true
}

func maxImageMB(storage *services.StorageService) int {
	if storage == nil {
		return 0
	}
	return int(storage.MaxImageSize() / (1024 * 1024))
}
