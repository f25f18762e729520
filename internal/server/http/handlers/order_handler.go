package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polyforge/printdesk/internal/domain/model"
	"github.com/polyforge/printdesk/internal/server/http/dto"
	"github.com/polyforge/printdesk/internal/usecase"
)

// OrderHandler manages order intake endpoints.
type OrderHandler struct {
	facade         PrintShopFacade
	maxUploadBytes int64
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade PrintShopFacade, maxUploadBytes int64) *OrderHandler {
	return &OrderHandler{facade: facade, maxUploadBytes: maxUploadBytes}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var form dto.OrderForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "malformed order payload"})
		return
	}

	draft := model.OrderDraft{
		Name:           form.Name,
		Phone:          form.Phone,
		DeliveryMethod: model.DeliveryMethod(form.DeliveryMethod),
		StreetAddress:  optionalString(form.StreetAddress),
		City:           optionalString(form.City),
		State:          optionalString(form.State),
		Zip:            optionalString(form.Zip),
		SupportRemoval: form.SupportRemoval,
	}
	if form.Weight != nil {
		draft.WeightGrams = *form.Weight
	}
	if form.PrintTime != nil {
		draft.PrintTime = *form.PrintTime
	}
	if form.BaseCost != nil {
		draft.BaseCost = *form.BaseCost
	}

	var upload *model.Upload
	if header, err := c.FormFile(modelFileField); err == nil {
		// Extension and size are checked from the header before the file is
		// read, so an oversize upload is never buffered.
		meta := model.Upload{FileName: header.Filename, Size: header.Size}
		if err := usecase.ValidateUpload(meta, h.maxUploadBytes); err != nil {
			respondError(c, err)
			return
		}
		upload, err = readUpload(header)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "could not read model file"})
			return
		}
	}

	order, err := h.facade.SubmitOrder(c.Request.Context(), draft, upload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// Patch handles PATCH /api/orders/:id.
func (h *OrderHandler) Patch(c *gin.Context) {
	var req dto.OrderPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "malformed patch payload"})
		return
	}

	patch := model.OrderPatch{
		Name:           req.Name,
		Phone:          req.Phone,
		StreetAddress:  req.StreetAddress,
		City:           req.City,
		State:          req.State,
		Zip:            req.Zip,
		SupportRemoval: req.SupportRemoval,
	}
	if req.DeliveryMethod != nil {
		method := model.DeliveryMethod(*req.DeliveryMethod)
		patch.DeliveryMethod = &method
	}
	if req.Status != nil {
		status := model.OrderStatus(*req.Status)
		patch.Status = &status
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
