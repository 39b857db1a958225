package handler

import (
	"net/http"

	"StudyHub/pkg/context"
	"StudyHub/pkg/response"
	"StudyHub/service"
	"StudyHub/types"

	"github.com/gin-gonic/gin"
)

type Search struct {
	SearchService service.ISearchService
}

func (h *Search) RegisterRouter(r gin.IRouter) {
	search := r.Group("/forum/search")
	search.GET("", context.Wrap(h.Search))
	search.GET("/suggest", context.Wrap(h.Suggest))
}

// Search 全局搜索
func (h *Search) Search(c *gin.Context) error {
	var req types.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	result, err := h.SearchService.Search(c, &req)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

// Suggest 搜索联想
func (h *Search) Suggest(c *gin.Context) error {
	keyword := c.Query("keyword")

	suggestions, err := h.SearchService.Suggest(c, keyword)
	if err != nil {
		return err
	}
	response.Success(c, suggestions)
	return nil
}
