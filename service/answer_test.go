package service

import (
	"context"
	"errors"
	"testing"

	"StudyHub/models"
	"StudyHub/types"
)

func (env *testEnv) mustCreateQuestion(t *testing.T, authorID uint64, title string) uint64 {
	t.Helper()
	resp, err := env.question.CreateQuestion(context.Background(), authorID, &types.CreateQuestionRequest{Title: title})
	if err != nil {
		t.Fatalf("发布问题失败: %v", err)
	}
	return resp.ID
}

func TestCreateAnswerBumpsAnswerCount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateUser(t, 1, "alice")
	questionID := env.mustCreateQuestion(t, 1, "问题")

	resp, err := env.answer.CreateAnswer(ctx, 2, &types.CreateAnswerRequest{
		QuestionID: questionID,
		Content:    "我的回答",
	})
	if err != nil {
		t.Fatalf("发布回答失败: %v", err)
	}
	if resp.ID == 0 {
		t.Fatal("回答 ID 不应为 0")
	}

	var question models.Question
	if err := env.db.First(&question, questionID).Error; err != nil {
		t.Fatalf("查询问题失败: %v", err)
	}
	if question.AnswerCount != 1 {
		t.Fatalf("问题回答数应为 1, 实际 %d", question.AnswerCount)
	}
}

func TestCreateAnswerValidations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateUser(t, 1, "alice")
	questionID := env.mustCreateQuestion(t, 1, "问题")

	_, err := env.answer.CreateAnswer(ctx, 1, &types.CreateAnswerRequest{Content: "没有问题"})
	if !errors.Is(err, ErrQuestionIDEmpty) {
		t.Fatalf("期望 ErrQuestionIDEmpty, 实际 %v", err)
	}

	_, err = env.answer.CreateAnswer(ctx, 1, &types.CreateAnswerRequest{QuestionID: questionID, Content: "  "})
	if !errors.Is(err, ErrContentEmpty) {
		t.Fatalf("期望 ErrContentEmpty, 实际 %v", err)
	}

	_, err = env.answer.CreateAnswer(ctx, 1, &types.CreateAnswerRequest{QuestionID: 99999, Content: "内容"})
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("期望 ErrQuestionNotFound, 实际 %v", err)
	}
}

func TestDeleteAnswerDecrementsCount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateUser(t, 1, "alice")
	questionID := env.mustCreateQuestion(t, 1, "问题")

	resp, err := env.answer.CreateAnswer(ctx, 2, &types.CreateAnswerRequest{QuestionID: questionID, Content: "回答"})
	if err != nil {
		t.Fatalf("发布回答失败: %v", err)
	}

	if err := env.answer.DeleteAnswer(ctx, 2, resp.ID); err != nil {
		t.Fatalf("删除回答失败: %v", err)
	}

	var question models.Question
	if err := env.db.First(&question, questionID).Error; err != nil {
		t.Fatalf("查询问题失败: %v", err)
	}
	if question.AnswerCount != 0 {
		t.Fatalf("删除后问题回答数应回落到 0, 实际 %d", question.AnswerCount)
	}
}

func TestDeleteAnswerCountFloorsAtZero(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateUser(t, 1, "alice")
	questionID := env.mustCreateQuestion(t, 1, "问题")

	resp, err := env.answer.CreateAnswer(ctx, 2, &types.CreateAnswerRequest{QuestionID: questionID, Content: "回答"})
	if err != nil {
		t.Fatalf("发布回答失败: %v", err)
	}

	// 计数被外部改坏成 0, 删除时不能减成负数
	err = env.db.Model(&models.Question{}).Where("id = ?", questionID).Update("answer_count", 0).Error
	if err != nil {
		t.Fatalf("重置计数失败: %v", err)
	}

	if err := env.answer.DeleteAnswer(ctx, 2, resp.ID); err != nil {
		t.Fatalf("删除回答失败: %v", err)
	}

	var question models.Question
	if err := env.db.First(&question, questionID).Error; err != nil {
		t.Fatalf("查询问题失败: %v", err)
	}
	if question.AnswerCount != 0 {
		t.Fatalf("回答数不应为负, 实际 %d", question.AnswerCount)
	}
}

func TestVoteAnswerAccumulates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateUser(t, 1, "alice")
	questionID := env.mustCreateQuestion(t, 1, "问题")

	resp, err := env.answer.CreateAnswer(ctx, 1, &types.CreateAnswerRequest{QuestionID: questionID, Content: "回答"})
	if err != nil {
		t.Fatalf("发布回答失败: %v", err)
	}

	var result *types.VoteResult
	for i := 0; i < 3; i++ {
		result, err = env.answer.VoteAnswer(ctx, resp.ID)
		if err != nil {
			t.Fatalf("点赞失败: %v", err)
		}
	}
	if result.VoteCount != 3 {
		t.Fatalf("三次点赞后票数应为 3, 实际 %d", result.VoteCount)
	}
	if !result.IsVoted {
		t.Fatal("IsVoted 应为 true")
	}
}

func TestListAnswersSort(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateUser(t, 1, "alice")
	questionID := env.mustCreateQuestion(t, 1, "问题")

	first, err := env.answer.CreateAnswer(ctx, 1, &types.CreateAnswerRequest{QuestionID: questionID, Content: "先发的"})
	if err != nil {
		t.Fatalf("发布回答失败: %v", err)
	}
	second, err := env.answer.CreateAnswer(ctx, 2, &types.CreateAnswerRequest{QuestionID: questionID, Content: "后发的"})
	if err != nil {
		t.Fatalf("发布回答失败: %v", err)
	}
	if _, err := env.answer.VoteAnswer(ctx, first.ID); err != nil {
		t.Fatalf("点赞失败: %v", err)
	}

	byVote, err := env.answer.ListAnswers(ctx, questionID, "vote_count", 1, 20)
	if err != nil {
		t.Fatalf("列表查询失败: %v", err)
	}
	if len(byVote) != 2 || byVote[0].ID != first.ID {
		t.Fatalf("按票数排序错误: %+v", byVote)
	}

	byTime, err := env.answer.ListAnswers(ctx, questionID, "", 1, 20)
	if err != nil {
		t.Fatalf("列表查询失败: %v", err)
	}
	if len(byTime) != 2 || byTime[0].ID != second.ID {
		t.Fatalf("按时间排序应后发在前: %+v", byTime)
	}
}

func TestUpdateAnswerPermission(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateUser(t, 1, "alice")
	questionID := env.mustCreateQuestion(t, 1, "问题")

	resp, err := env.answer.CreateAnswer(ctx, 1, &types.CreateAnswerRequest{QuestionID: questionID, Content: "原内容"})
	if err != nil {
		t.Fatalf("发布回答失败: %v", err)
	}

	err = env.answer.UpdateAnswer(ctx, 2, resp.ID, &types.UpdateAnswerRequest{Content: "篡改"})
	if !errors.Is(err, ErrNoPermission) {
		t.Fatalf("期望 ErrNoPermission, 实际 %v", err)
	}

	err = env.answer.UpdateAnswer(ctx, 1, resp.ID, &types.UpdateAnswerRequest{Content: "新内容"})
	if err != nil {
		t.Fatalf("更新回答失败: %v", err)
	}

	var answer models.Answer
	if err := env.db.First(&answer, resp.ID).Error; err != nil {
		t.Fatalf("查询回答失败: %v", err)
	}
	if answer.Content != "新内容" {
		t.Fatalf("期望内容被更新, 实际 %q", answer.Content)
	}
}
