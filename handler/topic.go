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

type Topic struct {
	Config          *config.Config
	TopicService    service.ITopicService
	QuestionService service.IQuestionService
}

func (h *Topic) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	topic := r.Group("/forum/topic")
	topic.GET("", context.Wrap(h.ListTopics))
	topic.GET("/hot", context.Wrap(h.HotTopics))
	topic.GET("/:id", context.Wrap(h.TopicDetail))
	topic.GET("/:id/questions", context.Wrap(h.TopicQuestions))
	topic.POST("", authorize, context.Wrap(h.CreateTopic))
	topic.POST("/:id/follow", authorize, context.Wrap(h.FollowTopic))
}

// ListTopics 话题列表
func (h *Topic) ListTopics(c *gin.Context) error {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	topics, err := h.TopicService.GetTopics(c, page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, topics)
	return nil
}

// HotTopics 热门话题
func (h *Topic) HotTopics(c *gin.Context) error {
	topics, err := h.TopicService.GetHotTopics(c)
	if err != nil {
		return err
	}
	response.Success(c, topics)
	return nil
}

// TopicDetail 话题详情
func (h *Topic) TopicDetail(c *gin.Context) error {
	topicID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || topicID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}

	topic, err := h.TopicService.GetTopicDetail(c, topicID)
	if err != nil {
		return err
	}
	response.Success(c, topic)
	return nil
}

// TopicQuestions 话题下的问题列表
func (h *Topic) TopicQuestions(c *gin.Context) error {
	topicID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || topicID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	questions, err := h.QuestionService.ListQuestions(c, 0, &types.ListQuestionsRequest{
		TopicID:  topicID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return err
	}
	response.Success(c, questions)
	return nil
}

// CreateTopic 创建话题，重名时返回已有话题
func (h *Topic) CreateTopic(c *gin.Context) error {
	var req types.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	topic, err := h.TopicService.CreateOrGetTopic(c, &req)
	if err != nil {
		return err
	}
	response.Success(c, topic)
	return nil
}

// FollowTopic 关注话题，关注功能还没落库，先返回固定成功
func (h *Topic) FollowTopic(c *gin.Context) error {
	topicID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || topicID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}
	if _, err := h.TopicService.GetTopicDetail(c, topicID); err != nil {
		return err
	}
	response.Success(c, &types.FollowResult{IsFollowed: true})
	return nil
}
