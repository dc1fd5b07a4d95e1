package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pet-shop-api/internal/usecase/content"
	"pet-shop-api/pkg/pagination"
	"pet-shop-api/pkg/utils"
)

type ContentHandler struct {
	service *content.Service
}

func NewContentHandler(service *content.Service) *ContentHandler {
	return &ContentHandler{service: service}
}

func (h *ContentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/main/promotions", h.ListPromotions)
	router.GET("/main/blog", h.ListPosts)
	router.GET("/main/blog/:uuid", h.GetPost)
}

func (h *ContentHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.POST("/main/promotion/create", h.CreatePromotion)
	router.DELETE("/main/promotion/:uuid", h.DeletePromotion)
	router.POST("/main/blog/create", h.CreatePost)
	router.DELETE("/main/blog/:uuid", h.DeletePost)
}

func (h *ContentHandler) ListPromotions(c *gin.Context) {
	params := pagination.FromQuery(c)
	valid := optionalBoolQuery(c, "valid")

	page, err := h.service.ListPromotions(c.Request.Context(), &content.ListPromotionsRequest{
		Valid:  valid != nil && *valid,
		Page:   params.Page,
		Limit:  params.Limit,
		SortBy: params.SortBy,
		Desc:   params.Desc,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondPage(c, "Promotions retrieved", page)
}

func (h *ContentHandler) CreatePromotion(c *gin.Context) {
	var req content.CreatePromotionRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreatePromotion(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Promotion created successfully", resp)
}

func (h *ContentHandler) DeletePromotion(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", "Promotion not found")
	if !ok {
		return
	}

	if err := h.service.DeletePromotion(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Promotion deleted successfully", nil)
}

func (h *ContentHandler) ListPosts(c *gin.Context) {
	params := pagination.FromQuery(c)

	page, err := h.service.ListPosts(c.Request.Context(), &content.ListPostsRequest{
		Page:   params.Page,
		Limit:  params.Limit,
		SortBy: params.SortBy,
		Desc:   params.Desc,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondPage(c, "Posts retrieved", page)
}

func (h *ContentHandler) GetPost(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", "Post not found")
	if !ok {
		return
	}

	resp, err := h.service.GetPost(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Post retrieved", resp)
}

func (h *ContentHandler) CreatePost(c *gin.Context) {
	var req content.CreatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreatePost(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Post created successfully", resp)
}

func (h *ContentHandler) DeletePost(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", "Post not found")
	if !ok {
		return
	}

	if err := h.service.DeletePost(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Post deleted successfully", nil)
}
