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

type User struct {
	Config          *config.Config
	UserService     service.IUserService
	QuestionService service.IQuestionService
	AnswerService   service.IAnswerService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	user := r.Group("/user")
	user.GET("/:id", context.Wrap(h.UserProfile))
	user.GET("/:id/questions", context.Wrap(h.UserQuestions))
	user.GET("/:id/answers", context.Wrap(h.UserAnswers))
	user.GET("/:id/collections", context.Wrap(h.UserCollections))
	user.GET("/:id/followers", context.Wrap(h.UserFollowers))
	user.GET("/:id/following", context.Wrap(h.UserFollowing))
	user.POST("/:id/follow", authorize, context.Wrap(h.FollowUser))

	my := r.Group("/my", authorize)
	my.GET("/questions", context.Wrap(h.MyQuestions))
	my.GET("/answers", context.Wrap(h.MyAnswers))
	my.GET("/collections", context.Wrap(h.MyCollections))
}

// UserProfile 用户主页信息
func (h *User) UserProfile(c *gin.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || userID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}

	profile, err := h.UserService.GetUserInfo(c, userID)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

// UserQuestions 用户发布的问题
func (h *User) UserQuestions(c *gin.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || userID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	questions, err := h.QuestionService.GetUserQuestions(c, userID, page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, questions)
	return nil
}

// UserAnswers 用户发布的回答
func (h *User) UserAnswers(c *gin.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || userID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	answers, err := h.AnswerService.GetUserAnswers(c, userID, page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, answers)
	return nil
}

// UserCollections 用户的收藏，收藏夹还没落库，先返回空列表
func (h *User) UserCollections(c *gin.Context) error {
	response.Success(c, []*types.AnswerView{})
	return nil
}

// UserFollowers 用户的粉丝，关注关系还没落库，先返回空列表
func (h *User) UserFollowers(c *gin.Context) error {
	response.Success(c, []types.UserProfile{})
	return nil
}

// UserFollowing 用户关注的人，关注关系还没落库，先返回空列表
func (h *User) UserFollowing(c *gin.Context) error {
	response.Success(c, []types.UserProfile{})
	return nil
}

// FollowUser 关注用户，写入还没上线，先返回固定成功
func (h *User) FollowUser(c *gin.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || userID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}
	if _, err := h.UserService.GetUserInfo(c, userID); err != nil {
		return err
	}
	response.Success(c, &types.FollowResult{IsFollowed: true})
	return nil
}

// MyQuestions 我发布的问题
func (h *User) MyQuestions(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	questions, err := h.QuestionService.GetUserQuestions(c, userID, page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, questions)
	return nil
}

// MyAnswers 我发布的回答
func (h *User) MyAnswers(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	answers, err := h.AnswerService.GetUserAnswers(c, userID, page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, answers)
	return nil
}

// MyCollections 我的收藏，收藏夹还没落库，先返回空列表
func (h *User) MyCollections(c *gin.Context) error {
	response.Success(c, []*types.AnswerView{})
	return nil
}
