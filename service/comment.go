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

var _ ICommentService = (*CommentService)(nil)

type CommentService struct {
	CommentDAO  *dao.Comment
	AnswerDAO   *dao.Answer
	UserService IUserService
}

type ICommentService interface {
	ListComments(ctx context.Context, answerID uint64) ([]*types.CommentNode, error)
	CreateComment(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (*types.CreateCommentResponse, error)
	UpdateComment(ctx context.Context, userID, commentID uint64, req *types.UpdateCommentRequest) error
	DeleteComment(ctx context.Context, userID, commentID uint64) error
	VoteComment(ctx context.Context, commentID uint64) (*types.VoteResult, error)
}

// ListComments 获取回答下的评论树
// 展示固定两级：任意深度的回复都挂到它所属根评论的 Replies 里，
// 节点上的 Parent 指向被回复的那条评论
func (cs *CommentService) ListComments(ctx context.Context, answerID uint64) ([]*types.CommentNode, error) {
	if answerID == 0 {
		return nil, ErrAnswerIDEmpty
	}

	comments, err := cs.CommentDAO.ListByAnswer(ctx, answerID)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]uint64, 0, len(comments))
	for _, comment := range comments {
		authorIDs = append(authorIDs, comment.AuthorID)
	}
	authors, err := cs.UserService.BatchGetUserInfo(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	roots := make([]*types.CommentNode, 0, len(comments))
	nodes := make(map[uint64]*types.CommentNode, len(comments))
	// rootOf 记录每条已挂载评论归属的根节点
	rootOf := make(map[uint64]*types.CommentNode, len(comments))

	for _, comment := range comments {
		node := &types.CommentNode{
			ID:         comment.ID,
			AnswerID:   comment.AnswerID,
			AuthorID:   comment.AuthorID,
			ParentID:   comment.ParentID,
			Content:    comment.Content,
			VoteCount:  comment.VoteCount,
			CreateTime: comment.CreateTime,
			UpdateTime: comment.UpdateTime,
			Author:     authors[comment.AuthorID],
			Replies:    []*types.CommentNode{},
		}
		nodes[comment.ID] = node

		if comment.ParentID == nil {
			roots = append(roots, node)
			rootOf[comment.ID] = node
			continue
		}

		root, ok := rootOf[*comment.ParentID]
		if !ok {
			// 父评论已被删除，孤儿回复提升为根评论
			roots = append(roots, node)
			rootOf[comment.ID] = node
			continue
		}
		if parent, ok := nodes[*comment.ParentID]; ok {
			node.Parent = &types.CommentParentStub{
				ID:     parent.ID,
				Author: parent.Author,
			}
		}
		root.Replies = append(root.Replies, node)
		rootOf[comment.ID] = root
	}

	return roots, nil
}

// CreateComment 发表评论，parent_id 非空时校验父评论属于同一条回答
func (cs *CommentService) CreateComment(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (*types.CreateCommentResponse, error) {
	if req.AnswerID == 0 {
		return nil, ErrAnswerIDEmpty
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentEmpty
	}

	answer, err := cs.AnswerDAO.FindByID(ctx, req.AnswerID)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, ErrAnswerNotFound
	}

	if req.ParentID != nil {
		parent, err := cs.CommentDAO.FindByID(ctx, *req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.AnswerID != req.AnswerID {
			return nil, ErrCommentNotFound
		}
	}

	comment := &models.Comment{
		AnswerID: req.AnswerID,
		AuthorID: userID,
		ParentID: req.ParentID,
		Content:  req.Content,
	}
	if err := cs.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}

	// 计数更新失败不影响发布结果
	if err := cs.AnswerDAO.IncrementCommentCount(ctx, req.AnswerID); err != nil {
		log.L.Warn("更新回答评论数失败", zap.Uint64("answer_id", req.AnswerID), zap.Error(err))
	}
	return &types.CreateCommentResponse{ID: comment.ID}, nil
}

// UpdateComment 更新评论内容，只有作者本人可以操作
func (cs *CommentService) UpdateComment(ctx context.Context, userID, commentID uint64, req *types.UpdateCommentRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return ErrContentEmpty
	}
	comment, err := cs.CommentDAO.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.AuthorID != userID {
		return ErrNoPermission
	}
	return cs.CommentDAO.UpdateOwned(ctx, commentID, userID, req.Content)
}

// DeleteComment 删除评论
// 不回落回答的评论数，也不级联子回复，子回复在列表里会被提升为根评论
func (cs *CommentService) DeleteComment(ctx context.Context, userID, commentID uint64) error {
	comment, err := cs.CommentDAO.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.AuthorID != userID {
		return ErrNoPermission
	}
	return cs.CommentDAO.DeleteOwned(ctx, commentID, userID)
}

// VoteComment 点赞评论，返回累加后的票数
func (cs *CommentService) VoteComment(ctx context.Context, commentID uint64) (*types.VoteResult, error) {
	if commentID == 0 {
		return nil, ErrCommentNotFound
	}
	if err := cs.CommentDAO.IncrementVoteCount(ctx, commentID); err != nil {
		return nil, err
	}
	comment, err := cs.CommentDAO.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	result := &types.VoteResult{IsVoted: true}
	if comment != nil {
		result.VoteCount = comment.VoteCount
	}
	return result, nil
}
