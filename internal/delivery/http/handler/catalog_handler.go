package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pet-shop-api/internal/usecase/catalog"
	"pet-shop-api/pkg/pagination"
	"pet-shop-api/pkg/utils"
)

type CatalogHandler struct {
	service *catalog.Service
}

func NewCatalogHandler(service *catalog.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/products", h.ListProducts)
	router.GET("/product/:uuid", h.GetProduct)
	router.GET("/categories", h.ListCategories)
	router.GET("/category/:uuid", h.GetCategory)
	router.GET("/brands", h.ListBrands)
	router.GET("/brand/:uuid", h.GetBrand)
}

func (h *CatalogHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.POST("/product/create", h.CreateProduct)
	router.PUT("/product/:uuid", h.UpdateProduct)
	router.DELETE("/product/:uuid", h.DeleteProduct)

	router.POST("/category/create", h.CreateCategory)
	router.PUT("/category/:uuid", h.UpdateCategory)
	router.DELETE("/category/:uuid", h.DeleteCategory)

	router.POST("/brand/create", h.CreateBrand)
	router.PUT("/brand/:uuid", h.UpdateBrand)
	router.DELETE("/brand/:uuid", h.DeleteBrand)
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	params := pagination.FromQuery(c)

	req := &catalog.ListProductsRequest{
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		Title:    c.Query("title"),
		Page:     params.Page,
		Limit:    params.Limit,
		SortBy:   params.SortBy,
		Desc:     params.Desc,
	}
	if raw := c.Query("price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			utils.ValidationErrorResponse(c, http.StatusUnprocessableEntity, "Invalid input", map[string]string{
				"price": "The price must be a number.",
			})
			return
		}
		req.Price = &price
	}

	page, err := h.service.ListProducts(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondPage(c, "Products retrieved", page)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", "Product not found")
	if !ok {
		return
	}

	resp, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product retrieved", resp)
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req catalog.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Product created successfully", resp)
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", "Product not found")
	if !ok {
		return
	}

	var req catalog.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product updated successfully", resp)
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", "Product not found")
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}

func listRequest(c *gin.Context) *catalog.ListRequest {
	params := pagination.FromQuery(c)
	return &catalog.ListRequest{
		Title:  c.Query("title"),
		Page:   params.Page,
		Limit:  params.Limit,
		SortBy: params.SortBy,
		Desc:   params.Desc,
	}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	page, err := h.service.ListCategories(c.Request.Context(), listRequest(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondPage(c, "Categories retrieved", page)
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", "Category not found")
	if !ok {
		return
	}

	resp, err := h.service.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category retrieved", resp)
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req catalog.TitleRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Category created successfully", resp)
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", "Category not found")
	if !ok {
		return
	}

	var req catalog.TitleRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category updated successfully", resp)
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", "Category not found")
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category deleted successfully", nil)
}

func (h *CatalogHandler) ListBrands(c *gin.Context) {
	page, err := h.service.ListBrands(c.Request.Context(), listRequest(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondPage(c, "Brands retrieved", page)
}

func (h *CatalogHandler) GetBrand(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", "Brand not found")
	if !ok {
		return
	}

	resp, err := h.service.GetBrand(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Brand retrieved", resp)
}

func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	var req catalog.TitleRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreateBrand(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Brand created successfully", resp)
}

func (h *CatalogHandler) UpdateBrand(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", "Brand not found")
	if !ok {
		return
	}

	var req catalog.TitleRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.UpdateBrand(c.Request.Context(), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Brand updated successfully", resp)
}

func (h *CatalogHandler) DeleteBrand(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", "Brand not found")
	if !ok {
		return
	}

	if err := h.service.DeleteBrand(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Brand deleted successfully", nil)
}
