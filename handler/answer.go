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

type Answer struct {
	Config        *config.Config
	AnswerService service.IAnswerService
}

func (h *Answer) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	answer := r.Group("/forum/answer")
	answer.GET("", context.Wrap(h.ListAnswers))
	answer.GET("/:id", context.Wrap(h.AnswerDetail))
	answer.POST("", authorize, context.Wrap(h.CreateAnswer))
	answer.PUT("/:id", authorize, context.Wrap(h.UpdateAnswer))
	answer.DELETE("/:id", authorize, context.Wrap(h.DeleteAnswer))
	answer.POST("/:id/vote", authorize, context.Wrap(h.VoteAnswer))
	answer.POST("/:id/collect", authorize, context.Wrap(h.CollectAnswer))
}

// ListAnswers 回答列表，按 question_id 过滤
func (h *Answer) ListAnswers(c *gin.Context) error {
	questionID, err := strconv.ParseUint(c.Query("question_id"), 10, 64)
	if err != nil || questionID == 0 {
		return response.NewError(http.StatusBadRequest, "question_id 参数错误")
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	sort := c.Query("sort")

	answers, err := h.AnswerService.ListAnswers(c, questionID, sort, page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, answers)
	return nil
}

// AnswerDetail 回答详情
func (h *Answer) AnswerDetail(c *gin.Context) error {
	answerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || answerID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}

	answer, err := h.AnswerService.GetAnswerDetail(c, answerID)
	if err != nil {
		return err
	}
	response.Success(c, answer)
	return nil
}

// CreateAnswer 发布回答
func (h *Answer) CreateAnswer(c *gin.Context) error {
	var req types.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	resp, err := h.AnswerService.CreateAnswer(c, userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// UpdateAnswer 更新回答
func (h *Answer) UpdateAnswer(c *gin.Context) error {
	answerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || answerID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}
	var req types.UpdateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.AnswerService.UpdateAnswer(c, userID, answerID, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// DeleteAnswer 删除回答
func (h *Answer) DeleteAnswer(c *gin.Context) error {
	answerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || answerID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.AnswerService.DeleteAnswer(c, userID, answerID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// VoteAnswer 点赞回答
func (h *Answer) VoteAnswer(c *gin.Context) error {
	answerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || answerID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}

	result, err := h.AnswerService.VoteAnswer(c, answerID)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

// CollectAnswer 收藏回答
func (h *Answer) CollectAnswer(c *gin.Context) error {
	answerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || answerID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	result, err := h.AnswerService.CollectAnswer(c, userID, answerID)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
