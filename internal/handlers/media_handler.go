package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/httperr"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/middleware"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/models"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/storage"
)

// Limite do upload antes do reprocessamento.
const maxUploadBytes = 8 << 20

type MediaHandler struct {
	db       *gorm.DB
	uploader *storage.S3Uploader
}

func NewMediaHandler(db *gorm.DB, uploader *storage.S3Uploader) *MediaHandler {
	return &MediaHandler{db: db, uploader: uploader}
}

func (h *MediaHandler) readUpload(c *gin.Context) ([]byte, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie a imagem no campo 'file'.")
		return nil, false
	}

	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Imagem acima de 8MB.")
		return nil, false
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler a imagem.")
		return nil, false
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler a imagem.")
		return nil, false
	}

	return raw, true
}

// UploadLogo troca a foto de capa do truck. A imagem é reduzida e
// reencodada em webp antes de subir para o bucket.
func (h *MediaHandler) UploadLogo(c *gin.Context) {
	truckID := c.MustGet(middleware.ContextFoodTruckID).(uint)

	raw, ok := h.readUpload(c)
	if !ok {
		return
	}

	processed, err := storage.ProcessImage(raw)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_image") {
			httperr.BadRequest(c, "invalid_image", "Formato de imagem não suportado.")
			return
		}
		httperr.Internal(c, "failed_to_process_image", "Erro ao processar a imagem.")
		return
	}

	url, err := h.uploader.UploadWebp(c.Request.Context(), "logos", truckID, processed)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Erro ao enviar a imagem.")
		return
	}

	if err := h.db.
		Model(&models.FoodTruck{}).
		Where("id = ?", truckID).
		Update("logo_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_save_logo", "Erro ao salvar a foto de capa.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"logo_url": url})
}

// UploadMenuItemPhoto anexa uma foto a um item do cardápio.
func (h *MediaHandler) UploadMenuItemPhoto(c *gin.Context) {
	truckID := c.MustGet(middleware.ContextFoodTruckID).(uint)
	itemID := c.Param("id")

	var item models.MenuItem
	if err := h.db.
		Where("id = ? AND food_truck_id = ?", itemID, truckID).
		First(&item).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "menu_item_not_found", "Item do cardápio não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_menu_item", "Erro ao buscar o item.")
		return
	}

	raw, ok := h.readUpload(c)
	if !ok {
		return
	}

	processed, err := storage.ProcessImage(raw)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_image") {
			httperr.BadRequest(c, "invalid_image", "Formato de imagem não suportado.")
			return
		}
		httperr.Internal(c, "failed_to_process_image", "Erro ao processar a imagem.")
		return
	}

	url, err := h.uploader.UploadWebp(c.Request.Context(), "menu", truckID, processed)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Erro ao enviar a imagem.")
		return
	}

	item.PhotoURL = url
	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_save_photo", "Erro ao salvar a foto do item.")
		return
	}

	c.JSON(http.StatusOK, item)
}
