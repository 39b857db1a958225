package service

import (
	"context"
	"strings"

	"StudyHub/dao"
	"StudyHub/models"
	"StudyHub/types"
)

const hotTopicLimit = 20

var _ ITopicService = (*TopicService)(nil)

type TopicService struct {
	TopicDAO *dao.Topic
}

type ITopicService interface {
	CreateOrGetTopic(ctx context.Context, req *types.CreateTopicRequest) (*types.TopicInfo, error)
	GetHotTopics(ctx context.Context) ([]types.TopicInfo, error)
	GetTopics(ctx context.Context, page, pageSize int) ([]types.TopicInfo, error)
	GetTopicDetail(ctx context.Context, topicID uint64) (*types.TopicInfo, error)
	SearchTopics(ctx context.Context, keyword string, page, pageSize int) ([]types.TopicInfo, error)
}

// CreateOrGetTopic 创建话题，同名话题幂等返回已有记录
func (ts *TopicService) CreateOrGetTopic(ctx context.Context, req *types.CreateTopicRequest) (*types.TopicInfo, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrTopicNameEmpty
	}

	exist, err := ts.TopicDAO.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return toTopicInfo(exist), nil
	}

	topic := &models.Topic{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := ts.TopicDAO.Create(ctx, topic); err != nil {
		// 并发创建同名话题会撞唯一索引，重查一次兜底
		if exist, qerr := ts.TopicDAO.FindByName(ctx, name); qerr == nil && exist != nil {
			return toTopicInfo(exist), nil
		}
		return nil, err
	}
	return toTopicInfo(topic), nil
}

// GetHotTopics 热门话题，固定取前 20 个
func (ts *TopicService) GetHotTopics(ctx context.Context) ([]types.TopicInfo, error) {
	topics, err := ts.TopicDAO.ListHot(ctx, hotTopicLimit)
	if err != nil {
		return nil, err
	}
	return toTopicInfos(topics), nil
}

// GetTopics 分页获取话题列表
func (ts *TopicService) GetTopics(ctx context.Context, page, pageSize int) ([]types.TopicInfo, error) {
	offset, limit := normalizePage(page, pageSize)
	topics, err := ts.TopicDAO.ListPaged(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return toTopicInfos(topics), nil
}

// GetTopicDetail 话题详情
func (ts *TopicService) GetTopicDetail(ctx context.Context, topicID uint64) (*types.TopicInfo, error) {
	topic, err := ts.TopicDAO.FindByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}
	return toTopicInfo(topic), nil
}

// SearchTopics 按名称或描述搜索话题
func (ts *TopicService) SearchTopics(ctx context.Context, keyword string, page, pageSize int) ([]types.TopicInfo, error) {
	offset, limit := normalizePage(page, pageSize)
	topics, err := ts.TopicDAO.Search(ctx, keyword, offset, limit)
	if err != nil {
		return nil, err
	}
	return toTopicInfos(topics), nil
}

func toTopicInfo(topic *models.Topic) *types.TopicInfo {
	return &types.TopicInfo{
		ID:            topic.ID,
		Name:          topic.Name,
		Description:   topic.Description,
		FollowCount:   topic.FollowCount,
		QuestionCount: topic.QuestionCount,
	}
}

func toTopicInfos(topics []*models.Topic) []types.TopicInfo {
	infos := make([]types.TopicInfo, 0, len(topics))
	for _, topic := range topics {
		infos = append(infos, *toTopicInfo(topic))
	}
	return infos
}
