package service

import "StudyHub/pkg/response"

// 业务错误码复用 HTTP 语义，经 context.Wrap 统一转成响应
var (
	ErrTopicNameEmpty  = response.NewError(400, "话题名称不能为空")
	ErrTitleEmpty      = response.NewError(400, "标题不能为空")
	ErrContentEmpty    = response.NewError(400, "内容不能为空")
	ErrQuestionIDEmpty = response.NewError(400, "question_id 不能为空")
	ErrAnswerIDEmpty   = response.NewError(400, "answer_id 不能为空")
	ErrKeywordEmpty    = response.NewError(400, "keyword 不能为空")

	ErrUnauthorized = response.NewError(401, "请先登录")
	ErrNoPermission = response.NewError(403, "无权操作")

	ErrTopicNotFound    = response.NewError(404, "话题不存在")
	ErrQuestionNotFound = response.NewError(404, "问题不存在")
	ErrAnswerNotFound   = response.NewError(404, "回答不存在")
	ErrCommentNotFound  = response.NewError(404, "评论不存在")
	ErrUserNotFound     = response.NewError(404, "用户不存在")

	ErrUsernameTaken = response.NewError(400, "用户名已存在")
	ErrBadCredential = response.NewError(400, "用户名或密码错误")
)

const defaultPageSize = 20

// normalizePage 规整分页参数并换算偏移量
func normalizePage(page, pageSize int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return (page - 1) * pageSize, pageSize
}
