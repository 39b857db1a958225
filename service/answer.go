package service

import (
	"context"
	"strings"

	"StudyHub/dao"
	"StudyHub/models"
	"StudyHub/pkg/log"
	"StudyHub/types"

	"go.uber.org/zap"
)

var _ IAnswerService = (*AnswerService)(nil)

type AnswerService struct {
	AnswerDAO   *dao.Answer
	QuestionDAO *dao.Question
	UserService IUserService
}

type IAnswerService interface {
	ListAnswers(ctx context.Context, questionID uint64, sort string, page, pageSize int) ([]*types.AnswerView, error)
	GetAnswerDetail(ctx context.Context, answerID uint64) (*types.AnswerView, error)
	CreateAnswer(ctx context.Context, userID uint64, req *types.CreateAnswerRequest) (*types.CreateAnswerResponse, error)
	UpdateAnswer(ctx context.Context, userID, answerID uint64, req *types.UpdateAnswerRequest) error
	DeleteAnswer(ctx context.Context, userID, answerID uint64) error
	VoteAnswer(ctx context.Context, answerID uint64) (*types.VoteResult, error)
	CollectAnswer(ctx context.Context, userID, answerID uint64) (*types.CollectResult, error)
	GetUserAnswers(ctx context.Context, authorID uint64, page, pageSize int) ([]*types.AnswerView, error)
}

// ListAnswers 问题下的回答列表，sort 为 vote_count 时按票数排序
func (s *AnswerService) ListAnswers(ctx context.Context, questionID uint64, sort string, page, pageSize int) ([]*types.AnswerView, error) {
	if questionID == 0 {
		return nil, ErrQuestionIDEmpty
	}
	offset, limit := normalizePage(page, pageSize)
	answers, err := s.AnswerDAO.ListByQuestion(ctx, questionID, sort, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.toAnswerViews(ctx, answers)
}

// GetAnswerDetail 回答详情
func (s *AnswerService) GetAnswerDetail(ctx context.Context, answerID uint64) (*types.AnswerView, error) {
	answer, err := s.AnswerDAO.FindByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, ErrAnswerNotFound
	}
	views, err := s.toAnswerViews(ctx, []*models.Answer{answer})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// CreateAnswer 发布回答，同步累加问题的回答数
func (s *AnswerService) CreateAnswer(ctx context.Context, userID uint64, req *types.CreateAnswerRequest) (*types.CreateAnswerResponse, error) {
	if req.QuestionID == 0 {
		return nil, ErrQuestionIDEmpty
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentEmpty
	}

	question, err := s.QuestionDAO.FindByID(ctx, req.QuestionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	answer := &models.Answer{
		QuestionID: req.QuestionID,
		AuthorID:   userID,
		Content:    req.Content,
	}
	if err := s.AnswerDAO.Create(ctx, answer); err != nil {
		return nil, err
	}

	// 计数更新失败不影响发布结果
	if err := s.QuestionDAO.IncrementAnswerCount(ctx, req.QuestionID); err != nil {
		log.L.Warn("更新问题回答数失败", zap.Uint64("question_id", req.QuestionID), zap.Error(err))
	}
	return &types.CreateAnswerResponse{ID: answer.ID}, nil
}

// UpdateAnswer 更新回答内容，只有作者本人可以操作
func (s *AnswerService) UpdateAnswer(ctx context.Context, userID, answerID uint64, req *types.UpdateAnswerRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return ErrContentEmpty
	}
	answer, err := s.AnswerDAO.FindByID(ctx, answerID)
	if err != nil {
		return err
	}
	if answer == nil {
		return ErrAnswerNotFound
	}
	if answer.AuthorID != userID {
		return ErrNoPermission
	}
	return s.AnswerDAO.UpdateOwned(ctx, answerID, userID, req.Content)
}

// DeleteAnswer 删除回答并回落问题的回答数
func (s *AnswerService) DeleteAnswer(ctx context.Context, userID, answerID uint64) error {
	answer, err := s.AnswerDAO.FindByID(ctx, answerID)
	if err != nil {
		return err
	}
	if answer == nil {
		return ErrAnswerNotFound
	}
	if answer.AuthorID != userID {
		return ErrNoPermission
	}

	if err := s.AnswerDAO.DeleteOwned(ctx, answerID, userID); err != nil {
		return err
	}
	if err := s.QuestionDAO.DecrementAnswerCount(ctx, answer.QuestionID); err != nil {
		log.L.Warn("回落问题回答数失败", zap.Uint64("question_id", answer.QuestionID), zap.Error(err))
	}
	return nil
}

// VoteAnswer 点赞回答，返回累加后的票数
// 不做去重，同一用户重复点赞会反复累加
func (s *AnswerService) VoteAnswer(ctx context.Context, answerID uint64) (*types.VoteResult, error) {
	if answerID == 0 {
		return nil, ErrAnswerIDEmpty
	}
	if err := s.AnswerDAO.IncrementVoteCount(ctx, answerID); err != nil {
		return nil, err
	}
	answer, err := s.AnswerDAO.FindByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	result := &types.VoteResult{IsVoted: true}
	if answer != nil {
		result.VoteCount = answer.VoteCount
	}
	return result, nil
}

// CollectAnswer 收藏回答，收藏夹尚未落库，先固定返回成功
func (s *AnswerService) CollectAnswer(ctx context.Context, userID, answerID uint64) (*types.CollectResult, error) {
	if answerID == 0 {
		return nil, ErrAnswerIDEmpty
	}
	answer, err := s.AnswerDAO.FindByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, ErrAnswerNotFound
	}
	return &types.CollectResult{IsCollected: true}, nil
}

// GetUserAnswers 某个用户发布的回答
func (s *AnswerService) GetUserAnswers(ctx context.Context, authorID uint64, page, pageSize int) ([]*types.AnswerView, error) {
	offset, limit := normalizePage(page, pageSize)
	answers, err := s.AnswerDAO.ListByAuthor(ctx, authorID, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.toAnswerViews(ctx, answers)
}

func (s *AnswerService) toAnswerViews(ctx context.Context, answers []*models.Answer) ([]*types.AnswerView, error) {
	authorIDs := make([]uint64, 0, len(answers))
	for _, answer := range answers {
		authorIDs = append(authorIDs, answer.AuthorID)
	}
	authors, err := s.UserService.BatchGetUserInfo(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]*types.AnswerView, 0, len(answers))
	for _, answer := range answers {
		views = append(views, &types.AnswerView{
			ID:           answer.ID,
			QuestionID:   answer.QuestionID,
			AuthorID:     answer.AuthorID,
			Content:      answer.Content,
			VoteCount:    answer.VoteCount,
			CommentCount: answer.CommentCount,
			CreateTime:   answer.CreateTime,
			UpdateTime:   answer.UpdateTime,
			Author:       authors[answer.AuthorID],
		})
	}
	return views, nil
}
