package service

import (
	"context"
	"strings"

	"StudyHub/dao"
	"StudyHub/models"
	"StudyHub/pkg/log"
	"StudyHub/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 前端新建话题时会用一个超大的本地占位 ID，
// 绑定前先把这部分过滤掉，真实话题 ID 远小于这个阈值
const tempTopicIDMin = 1_000_000_000

const suggestLimit = 10

var _ IQuestionService = (*QuestionService)(nil)

type QuestionService struct {
	QuestionDAO      *dao.Question
	TopicDAO         *dao.Topic
	QuestionTopicDAO *dao.QuestionTopic
	UserService      IUserService
}

type IQuestionService interface {
	ListQuestions(ctx context.Context, userID uint64, req *types.ListQuestionsRequest) ([]*types.QuestionView, error)
	GetQuestionDetail(ctx context.Context, questionID uint64) (*types.QuestionView, error)
	CreateQuestion(ctx context.Context, userID uint64, req *types.CreateQuestionRequest) (*types.CreateQuestionResponse, error)
	UpdateQuestion(ctx context.Context, userID, questionID uint64, req *types.UpdateQuestionRequest) error
	DeleteQuestion(ctx context.Context, userID, questionID uint64) error
	SearchQuestions(ctx context.Context, keyword string, page, pageSize int) ([]*types.QuestionView, error)
	GetUserQuestions(ctx context.Context, authorID uint64, page, pageSize int) ([]*types.QuestionView, error)
	GetSuggestions(ctx context.Context, keyword string) ([]string, error)
}

// ListQuestions 问题列表
// 过滤条件按 话题 > 我关注的 > 热度排序 > 最新 的优先级取一个生效
func (qs *QuestionService) ListQuestions(ctx context.Context, userID uint64, req *types.ListQuestionsRequest) ([]*types.QuestionView, error) {
	offset, limit := normalizePage(req.Page, req.PageSize)

	var (
		questions []*models.Question
		err       error
	)
	switch {
	case req.TopicID > 0:
		questions, err = qs.QuestionDAO.ListByTopic(ctx, req.TopicID, offset, limit)
	case req.Following && userID > 0:
		questions, err = qs.QuestionDAO.ListFollowed(ctx, userID, offset, limit)
	case req.Sort == "hot" || req.Sort == "recommend":
		questions, err = qs.QuestionDAO.ListBySort(ctx, req.Sort, offset, limit)
	default:
		questions, err = qs.QuestionDAO.ListLatest(ctx, req.Keyword, offset, limit)
	}
	if err != nil {
		return nil, err
	}
	return qs.toQuestionViews(ctx, questions)
}

// GetQuestionDetail 问题详情，每次访问浏览数 +1，返回累加后的值
func (qs *QuestionService) GetQuestionDetail(ctx context.Context, questionID uint64) (*types.QuestionView, error) {
	if err := qs.QuestionDAO.IncrementViewCount(ctx, questionID); err != nil {
		log.L.Warn("更新问题浏览数失败", zap.Uint64("question_id", questionID), zap.Error(err))
	}

	question, err := qs.QuestionDAO.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	views, err := qs.toQuestionViews(ctx, []*models.Question{question})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// CreateQuestion 发布问题并绑定话题
func (qs *QuestionService) CreateQuestion(ctx context.Context, userID uint64, req *types.CreateQuestionRequest) (*types.CreateQuestionResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleEmpty
	}

	topicIDs, err := qs.resolveTopicIDs(ctx, req.TopicIDs)
	if err != nil {
		return nil, err
	}

	question := &models.Question{
		AuthorID:  userID,
		Title:     title,
		Content:   req.Content,
		Anonymous: req.Anonymous,
	}
	if err := qs.QuestionDAO.Create(ctx, question); err != nil {
		return nil, err
	}

	if err := qs.QuestionTopicDAO.BindAll(ctx, question.ID, topicIDs); err != nil {
		return nil, err
	}
	for _, topicID := range topicIDs {
		// 计数更新失败不影响发布结果
		if err := qs.TopicDAO.IncrementQuestionCount(ctx, topicID); err != nil {
			log.L.Warn("更新话题问题数失败", zap.Uint64("topic_id", topicID), zap.Error(err))
		}
	}
	return &types.CreateQuestionResponse{ID: question.ID}, nil
}

// UpdateQuestion 更新问题，只有作者本人可以操作
// topic_ids 传了才会整体替换话题关联
func (qs *QuestionService) UpdateQuestion(ctx context.Context, userID, questionID uint64, req *types.UpdateQuestionRequest) error {
	question, err := qs.QuestionDAO.FindByID(ctx, questionID)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrQuestionNotFound
	}
	if question.AuthorID != userID {
		return ErrNoPermission
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return ErrTitleEmpty
	}

	var topicIDs []uint64
	if req.TopicIDs != nil {
		topicIDs, err = qs.resolveTopicIDs(ctx, *req.TopicIDs)
		if err != nil {
			return err
		}
	}

	return qs.QuestionDAO.Transaction(ctx, func(tx *gorm.DB) error {
		err := tx.Model(&models.Question{}).
			Where("id = ?", questionID).
			Updates(map[string]interface{}{
				"title":   title,
				"content": req.Content,
			}).Error
		if err != nil {
			return err
		}
		if req.TopicIDs == nil {
			return nil
		}
		if err := tx.Where("question_id = ?", questionID).Delete(&models.QuestionTopic{}).Error; err != nil {
			return err
		}
		if len(topicIDs) == 0 {
			return nil
		}
		bindings := make([]*models.QuestionTopic, 0, len(topicIDs))
		for _, topicID := range topicIDs {
			bindings = append(bindings, &models.QuestionTopic{
				QuestionID: questionID,
				TopicID:    topicID,
			})
		}
		return tx.Create(&bindings).Error
	})
}

// DeleteQuestion 删除问题，同时清理话题关联
func (qs *QuestionService) DeleteQuestion(ctx context.Context, userID, questionID uint64) error {
	question, err := qs.QuestionDAO.FindByID(ctx, questionID)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrQuestionNotFound
	}
	if question.AuthorID != userID {
		return ErrNoPermission
	}

	if err := qs.QuestionDAO.DeleteOwned(ctx, questionID, userID); err != nil {
		return err
	}
	if err := qs.QuestionTopicDAO.UnbindAll(ctx, questionID); err != nil {
		log.L.Warn("清理问题话题关联失败", zap.Uint64("question_id", questionID), zap.Error(err))
	}
	return nil
}

// SearchQuestions 按标题或内容搜索问题
func (qs *QuestionService) SearchQuestions(ctx context.Context, keyword string, page, pageSize int) ([]*types.QuestionView, error) {
	offset, limit := normalizePage(page, pageSize)
	questions, err := qs.QuestionDAO.ListLatest(ctx, keyword, offset, limit)
	if err != nil {
		return nil, err
	}
	return qs.toQuestionViews(ctx, questions)
}

// GetUserQuestions 某个用户发布的问题
func (qs *QuestionService) GetUserQuestions(ctx context.Context, authorID uint64, page, pageSize int) ([]*types.QuestionView, error) {
	offset, limit := normalizePage(page, pageSize)
	questions, err := qs.QuestionDAO.ListByAuthor(ctx, authorID, offset, limit)
	if err != nil {
		return nil, err
	}
	return qs.toQuestionViews(ctx, questions)
}

// GetSuggestions 搜索框联想词，取标题前缀匹配的前 10 条
func (qs *QuestionService) GetSuggestions(ctx context.Context, keyword string) ([]string, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []string{}, nil
	}
	return qs.QuestionDAO.SuggestTitles(ctx, keyword, suggestLimit)
}

// resolveTopicIDs 过滤占位 ID 并剔除不存在的话题
func (qs *QuestionService) resolveTopicIDs(ctx context.Context, topicIDs []uint64) ([]uint64, error) {
	resolved := make([]uint64, 0, len(topicIDs))
	for _, topicID := range topicIDs {
		if topicID >= tempTopicIDMin {
			continue
		}
		topic, err := qs.TopicDAO.FindByID(ctx, topicID)
		if err != nil {
			return nil, err
		}
		if topic == nil {
			continue
		}
		resolved = append(resolved, topicID)
	}
	return resolved, nil
}

func (qs *QuestionService) toQuestionViews(ctx context.Context, questions []*models.Question) ([]*types.QuestionView, error) {
	authorIDs := make([]uint64, 0, len(questions))
	for _, question := range questions {
		if !question.Anonymous {
			authorIDs = append(authorIDs, question.AuthorID)
		}
	}
	authors, err := qs.UserService.BatchGetUserInfo(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]*types.QuestionView, 0, len(questions))
	for _, question := range questions {
		topics, err := qs.QuestionTopicDAO.ListTopicsFor(ctx, question.ID)
		if err != nil {
			return nil, err
		}
		view := &types.QuestionView{
			ID:          question.ID,
			Title:       question.Title,
			Content:     question.Content,
			ViewCount:   question.ViewCount,
			AnswerCount: question.AnswerCount,
			FollowCount: question.FollowCount,
			CreateTime:  question.CreateTime,
			UpdateTime:  question.UpdateTime,
			Topics:      toTopicInfos(topics),
		}
		if !question.Anonymous {
			view.Author = authors[question.AuthorID]
		}
		views = append(views, view)
	}
	return views, nil
}
