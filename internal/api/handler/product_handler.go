package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"golden9_club/internal/api/middleware"
	"golden9_club/internal/app/service"
	"golden9_club/internal/common"
	"golden9_club/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listProducts)
	r.Get("/{productID}", h.getProduct)

	r.Group(func(adminRouter chi.Router) {
		adminRouter.Use(middleware.AdminOnly)
		adminRouter.Post("/", h.createProduct)
		adminRouter.Put("/{productID}", h.updateProduct)
		adminRouter.Delete("/{productID}", h.deleteProduct)
	})
}

func (h *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListProducts(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.GetProduct(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req service.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	common.RespondWithJSON(w, http.StatusCreated, struct {
		Message string         `json:"message"`
		Product *model.Product `json:"product"`
	}{"Product created successfully", product})
}

func (h *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req service.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), chi.URLParam(r, "productID"), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	common.RespondWithJSON(w, http.StatusOK, struct {
		Message string         `json:"message"`
		Product *model.Product `json:"product"`
	}{"Product updated successfully", product})
}

func (h *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if err := h.productService.DeleteProduct(r.Context(), productID); err != nil {
		h.respondError(w, err)
		return
	}

	common.RespondWithJSON(w, http.StatusOK, struct {
		Message   string `json:"message"`
		ProductID string `json:"product_id"`
	}{"Product deleted successfully", productID})
}

func (h *ProductHandler) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, common.ErrNotFound) {
		common.RespondWithError(w, http.StatusNotFound, "Product not found.")
		return
	}
	common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
}
