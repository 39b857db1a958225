package handler

import (
	"net/http"
	"strconv"

	"StudyHub/config"
	"StudyHub/middleware"
	"StudyHub/pkg/context"
	"StudyHub/pkg/response"
	"StudyHub/service"
	"StudyHub/types"

	"github.com/gin-gonic/gin"
)

type Comment struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	comment := r.Group("/forum/comment")
	comment.GET("", context.Wrap(h.ListComments))
	comment.POST("", authorize, context.Wrap(h.CreateComment))
	comment.PUT("/:id", authorize, context.Wrap(h.UpdateComment))
	comment.DELETE("/:id", authorize, context.Wrap(h.DeleteComment))
	comment.POST("/:id/vote", authorize, context.Wrap(h.VoteComment))
}

// ListComments 回答下的评论树
func (h *Comment) ListComments(c *gin.Context) error {
	answerID, err := strconv.ParseUint(c.Query("answer_id"), 10, 64)
	if err != nil || answerID == 0 {
		return response.NewError(http.StatusBadRequest, "answer_id 参数错误")
	}

	comments, err := h.CommentService.ListComments(c, answerID)
	if err != nil {
		return err
	}
	response.Success(c, comments)
	return nil
}

// CreateComment 发表评论
func (h *Comment) CreateComment(c *gin.Context) error {
	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	resp, err := h.CommentService.CreateComment(c, userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// UpdateComment 更新评论
func (h *Comment) UpdateComment(c *gin.Context) error {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || commentID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}
	var req types.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.CommentService.UpdateComment(c, userID, commentID, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// DeleteComment 删除评论
func (h *Comment) DeleteComment(c *gin.Context) error {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || commentID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.CommentService.DeleteComment(c, userID, commentID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// VoteComment 点赞评论
func (h *Comment) VoteComment(c *gin.Context) error {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || commentID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}

	result, err := h.CommentService.VoteComment(c, commentID)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
