package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUC
	logger       logger.Logger
}

func NewAdminHandler(adminUsecase usecase.AdminUC, logger logger.Logger) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase, logger: logger}
}

// uploadImages
//
//	@Summary		Загрузка изображений товара
//	@Description	Сохраняет изображения в объектное хранилище и возвращает публичные ссылки
//	@Tags			admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			folder	formData	string	false	"Папка (по умолчанию products)"
//	@Param			images	formData	file	true	"Изображения (до 10 файлов по 15 МБ)"
//	@Success		201		{object}	UploadImagesResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		415		{object}	ErrorResponse
//	@Router			/admin/images [post]
func (h *AdminHandler) uploadImages(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		writeErr(h.logger, w, r, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	images, err := parseImages(r.MultipartForm.File["images"])
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	res, err := h.adminUsecase.UploadImages(r.Context(), SessionFromContext(r.Context()), r.FormValue("folder"), images)
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, UploadImagesResponse{Keys: res.ImagesKeys, URLs: res.URLs})
}

// createProduct
//
//	@Summary	Создать товар
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		body	body		ProductRequest	true	"Товар"
//	@Success	201		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/admin/products [post]
func (h *AdminHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	in, err := toProductInput(&req, true)
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	product, err := h.adminUsecase.CreateProduct(r.Context(), SessionFromContext(r.Context()), in)
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(*product))
}

// updateProduct
//
//	@Summary		Изменить товар
//	@Description	Пустые поля не изменяются
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"ID товара"
//	@Param			body	body		ProductRequest	true	"Изменяемые поля"
//	@Success		200		{object}	ProductResponse
//	@Router			/admin/products/{id} [put]
func (h *AdminHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	var req ProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	in, err := toProductInput(&req, false)
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	product, err := h.adminUsecase.UpdateProduct(r.Context(), SessionFromContext(r.Context()), id, in)
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(*product))
}

// deleteProduct
//
//	@Summary	Удалить товар
//	@Tags		admin
//	@Param		id	path	int	true	"ID товара"
//	@Success	204
//	@Router		/admin/products/{id} [delete]
func (h *AdminHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	if err := h.adminUsecase.DeleteProduct(r.Context(), SessionFromContext(r.Context()), id); err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// createCategory
//
//	@Summary	Создать категорию
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CategoryRequest	true	"Категория"
//	@Success	201		{object}	CategoryResponse
//	@Router		/admin/categories [post]
func (h *AdminHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	category, err := h.adminUsecase.CreateCategory(r.Context(), SessionFromContext(r.Context()), &usecase.CategoryInput{
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCategoryResponse(*category))
}

// updateCategory
//
//	@Summary	Изменить категорию
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"ID категории"
//	@Param		body	body		CategoryRequest	true	"Изменяемые поля"
//	@Success	200		{object}	CategoryResponse
//	@Router		/admin/categories/{id} [put]
func (h *AdminHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	var req CategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	category, err := h.adminUsecase.UpdateCategory(r.Context(), SessionFromContext(r.Context()), id, &usecase.CategoryInput{
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(*category))
}

// deleteCategory
//
//	@Summary	Удалить категорию
//	@Tags		admin
//	@Param		id	path	int	true	"ID категории"
//	@Success	204
//	@Router		/admin/categories/{id} [delete]
func (h *AdminHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	if err := h.adminUsecase.DeleteCategory(r.Context(), SessionFromContext(r.Context()), id); err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
