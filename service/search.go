package service

import (
	"context"
	"strings"

	"StudyHub/types"

	"golang.org/x/sync/errgroup"
)

var _ ISearchService = (*SearchService)(nil)

type SearchService struct {
	QuestionService IQuestionService
	TopicService    ITopicService
	UserService     IUserService
}

type ISearchService interface {
	Search(ctx context.Context, req *types.SearchRequest) (*types.SearchResult, error)
	Suggest(ctx context.Context, keyword string) ([]string, error)
}

// Search 全局搜索，type 为空或 all 时并发查三类实体
func (ss *SearchService) Search(ctx context.Context, req *types.SearchRequest) (*types.SearchResult, error) {
	keyword := strings.TrimSpace(req.Keyword)
	if keyword == "" {
		return nil, ErrKeywordEmpty
	}

	result := &types.SearchResult{}
	switch req.Type {
	case "question":
		questions, err := ss.QuestionService.SearchQuestions(ctx, keyword, req.Page, req.PageSize)
		if err != nil {
			return nil, err
		}
		result.Questions = questions
	case "topic":
		topics, err := ss.TopicService.SearchTopics(ctx, keyword, req.Page, req.PageSize)
		if err != nil {
			return nil, err
		}
		result.Topics = topics
	case "user":
		users, err := ss.UserService.SearchUsers(ctx, keyword, req.Page, req.PageSize)
		if err != nil {
			return nil, err
		}
		result.Users = users
	case "", "all":
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			questions, err := ss.QuestionService.SearchQuestions(gctx, keyword, req.Page, req.PageSize)
			if err != nil {
				return err
			}
			result.Questions = questions
			return nil
		})
		g.Go(func() error {
			topics, err := ss.TopicService.SearchTopics(gctx, keyword, req.Page, req.PageSize)
			if err != nil {
				return err
			}
			result.Topics = topics
			return nil
		})
		g.Go(func() error {
			users, err := ss.UserService.SearchUsers(gctx, keyword, req.Page, req.PageSize)
			if err != nil {
				return err
			}
			result.Users = users
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
	default:
		questions, err := ss.QuestionService.SearchQuestions(ctx, keyword, req.Page, req.PageSize)
		if err != nil {
			return nil, err
		}
		result.Questions = questions
	}
	return result, nil
}

// Suggest 搜索联想
func (ss *SearchService) Suggest(ctx context.Context, keyword string) ([]string, error) {
	return ss.QuestionService.GetSuggestions(ctx, keyword)
}
