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

type Question struct {
	Config          *config.Config
	QuestionService service.IQuestionService
	AnswerService   service.IAnswerService
}

func (h *Question) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	optional := middleware.OptionalAuth([]byte(h.Config.Jwt.Secret))

	question := r.Group("/forum/question")
	question.GET("", optional, context.Wrap(h.ListQuestions))
	question.GET("/:id", context.Wrap(h.QuestionDetail))
	question.GET("/:id/answers", context.Wrap(h.QuestionAnswers))
	question.POST("", authorize, context.Wrap(h.CreateQuestion))
	question.PUT("/:id", authorize, context.Wrap(h.UpdateQuestion))
	question.DELETE("/:id", authorize, context.Wrap(h.DeleteQuestion))
	question.POST("/:id/follow", authorize, context.Wrap(h.FollowQuestion))
}

// ListQuestions 问题列表，支持话题、关注、热度等过滤
func (h *Question) ListQuestions(c *gin.Context) error {
	var req types.ListQuestionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	// 未登录时 userID 为 0，"我关注的" 过滤自动失效
	userID, _ := context.GetUserID(c)
	questions, err := h.QuestionService.ListQuestions(c, userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, questions)
	return nil
}

// QuestionDetail 问题详情
func (h *Question) QuestionDetail(c *gin.Context) error {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || questionID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}

	question, err := h.QuestionService.GetQuestionDetail(c, questionID)
	if err != nil {
		return err
	}
	response.Success(c, question)
	return nil
}

// QuestionAnswers 问题下的回答列表
func (h *Question) QuestionAnswers(c *gin.Context) error {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || questionID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
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

// CreateQuestion 发布问题
func (h *Question) CreateQuestion(c *gin.Context) error {
	var req types.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	resp, err := h.QuestionService.CreateQuestion(c, userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// UpdateQuestion 更新问题
func (h *Question) UpdateQuestion(c *gin.Context) error {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || questionID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}
	var req types.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.QuestionService.UpdateQuestion(c, userID, questionID, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// DeleteQuestion 删除问题
func (h *Question) DeleteQuestion(c *gin.Context) error {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || questionID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.QuestionService.DeleteQuestion(c, userID, questionID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// FollowQuestion 关注问题，写入还没上线，先返回固定成功
func (h *Question) FollowQuestion(c *gin.Context) error {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || questionID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}
	response.Success(c, &types.FollowResult{IsFollowed: true})
	return nil
}
