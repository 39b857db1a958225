package service

import (
	"context"
	"errors"
	"testing"

	"StudyHub/models"
	"StudyHub/types"
)

func TestCreateQuestionBindsTopics(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateUser(t, 1, "alice")

	golang := env.mustCreateTopic(t, "Golang", 0, 0)
	db := env.mustCreateTopic(t, "数据库", 0, 0)

	resp, err := env.question.CreateQuestion(ctx, 1, &types.CreateQuestionRequest{
		Title:   "如何理解 goroutine 调度",
		Content: "GMP 模型看不懂",
		// 999 不存在, 2000000000 是前端占位 ID, 都应被忽略
		TopicIDs: []uint64{golang.ID, db.ID, 999, 2_000_000_000},
	})
	if err != nil {
		t.Fatalf("发布问题失败: %v", err)
	}

	detail, err := env.question.GetQuestionDetail(ctx, resp.ID)
	if err != nil {
		t.Fatalf("获取问题详情失败: %v", err)
	}
	if len(detail.Topics) != 2 {
		t.Fatalf("期望绑定 2 个话题, 实际 %d", len(detail.Topics))
	}

	got, err := env.topic.GetTopicDetail(ctx, golang.ID)
	if err != nil {
		t.Fatalf("获取话题失败: %v", err)
	}
	if got.QuestionCount != 1 {
		t.Fatalf("话题问题数应为 1, 实际 %d", got.QuestionCount)
	}
}

func TestCreateQuestionEmptyTitle(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.question.CreateQuestion(context.Background(), 1, &types.CreateQuestionRequest{Title: "  "})
	if !errors.Is(err, ErrTitleEmpty) {
		t.Fatalf("期望 ErrTitleEmpty, 实际 %v", err)
	}
}

func TestQuestionDetailIncrementsViewCount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateUser(t, 1, "alice")

	resp, err := env.question.CreateQuestion(ctx, 1, &types.CreateQuestionRequest{Title: "第一问"})
	if err != nil {
		t.Fatalf("发布问题失败: %v", err)
	}

	first, err := env.question.GetQuestionDetail(ctx, resp.ID)
	if err != nil {
		t.Fatalf("获取详情失败: %v", err)
	}
	if first.ViewCount != 1 {
		t.Fatalf("首次访问浏览数应为 1, 实际 %d", first.ViewCount)
	}

	second, err := env.question.GetQuestionDetail(ctx, resp.ID)
	if err != nil {
		t.Fatalf("获取详情失败: %v", err)
	}
	if second.ViewCount != 2 {
		t.Fatalf("第二次访问浏览数应为 2, 实际 %d", second.ViewCount)
	}
}

func TestQuestionDetailNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.question.GetQuestionDetail(context.Background(), 404404)
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("期望 ErrQuestionNotFound, 实际 %v", err)
	}
}

func TestAnonymousQuestionHidesAuthor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateUser(t, 1, "alice")

	named, err := env.question.CreateQuestion(ctx, 1, &types.CreateQuestionRequest{Title: "实名提问"})
	if err != nil {
		t.Fatalf("发布问题失败: %v", err)
	}
	anon, err := env.question.CreateQuestion(ctx, 1, &types.CreateQuestionRequest{Title: "匿名提问", Anonymous: true})
	if err != nil {
		t.Fatalf("发布问题失败: %v", err)
	}

	namedView, err := env.question.GetQuestionDetail(ctx, named.ID)
	if err != nil {
		t.Fatalf("获取详情失败: %v", err)
	}
	if namedView.Author == nil || namedView.Author.Username != "alice" {
		t.Fatalf("实名问题应返回作者, 实际 %+v", namedView.Author)
	}

	anonView, err := env.question.GetQuestionDetail(ctx, anon.ID)
	if err != nil {
		t.Fatalf("获取详情失败: %v", err)
	}
	if anonView.Author != nil {
		t.Fatalf("匿名问题不应返回作者, 实际 %+v", anonView.Author)
	}
}

func TestUpdateQuestionPermission(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateUser(t, 1, "alice")

	resp, err := env.question.CreateQuestion(ctx, 1, &types.CreateQuestionRequest{Title: "原标题"})
	if err != nil {
		t.Fatalf("发布问题失败: %v", err)
	}

	err = env.question.UpdateQuestion(ctx, 2, resp.ID, &types.UpdateQuestionRequest{Title: "篡改标题"})
	if !errors.Is(err, ErrNoPermission) {
		t.Fatalf("期望 ErrNoPermission, 实际 %v", err)
	}

	var question models.Question
	if err := env.db.First(&question, resp.ID).Error; err != nil {
		t.Fatalf("查询问题失败: %v", err)
	}
	if question.Title != "原标题" {
		t.Fatalf("越权更新不应生效, 实际标题 %q", question.Title)
	}
}

func TestUpdateQuestionRebindTopics(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateUser(t, 1, "alice")

	old := env.mustCreateTopic(t, "旧话题", 0, 0)
	fresh := env.mustCreateTopic(t, "新话题", 0, 0)

	resp, err := env.question.CreateQuestion(ctx, 1, &types.CreateQuestionRequest{
		Title:    "换话题",
		TopicIDs: []uint64{old.ID},
	})
	if err != nil {
		t.Fatalf("发布问题失败: %v", err)
	}

	// 不传 topic_ids, 原有关联保留
	err = env.question.UpdateQuestion(ctx, 1, resp.ID, &types.UpdateQuestionRequest{Title: "换话题"})
	if err != nil {
		t.Fatalf("更新问题失败: %v", err)
	}
	topics, err := env.questionTopicDAO.ListTopicsFor(ctx, resp.ID)
	if err != nil {
		t.Fatalf("查询话题关联失败: %v", err)
	}
	if len(topics) != 1 || topics[0].ID != old.ID {
		t.Fatalf("未传 topic_ids 时关联不应变化, 实际 %+v", topics)
	}

	// 传了 topic_ids, 整体替换
	newIDs := []uint64{fresh.ID}
	err = env.question.UpdateQuestion(ctx, 1, resp.ID, &types.UpdateQuestionRequest{
		Title:    "换话题",
		TopicIDs: &newIDs,
	})
	if err != nil {
		t.Fatalf("更新问题失败: %v", err)
	}
	topics, err = env.questionTopicDAO.ListTopicsFor(ctx, resp.ID)
	if err != nil {
		t.Fatalf("查询话题关联失败: %v", err)
	}
	if len(topics) != 1 || topics[0].ID != fresh.ID {
		t.Fatalf("期望只关联新话题, 实际 %+v", topics)
	}

	// 传空数组, 清空关联
	empty := []uint64{}
	err = env.question.UpdateQuestion(ctx, 1, resp.ID, &types.UpdateQuestionRequest{
		Title:    "换话题",
		TopicIDs: &empty,
	})
	if err != nil {
		t.Fatalf("更新问题失败: %v", err)
	}
	topics, err = env.questionTopicDAO.ListTopicsFor(ctx, resp.ID)
	if err != nil {
		t.Fatalf("查询话题关联失败: %v", err)
	}
	if len(topics) != 0 {
		t.Fatalf("期望清空关联, 实际 %+v", topics)
	}
}

func TestDeleteQuestionCleansBindings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateUser(t, 1, "alice")
	topic := env.mustCreateTopic(t, "话题", 0, 0)

	resp, err := env.question.CreateQuestion(ctx, 1, &types.CreateQuestionRequest{
		Title:    "将被删除",
		TopicIDs: []uint64{topic.ID},
	})
	if err != nil {
		t.Fatalf("发布问题失败: %v", err)
	}

	if err := env.question.DeleteQuestion(ctx, 1, resp.ID); err != nil {
		t.Fatalf("删除问题失败: %v", err)
	}

	if _, err := env.question.GetQuestionDetail(ctx, resp.ID); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("删除后详情应返回 ErrQuestionNotFound, 实际 %v", err)
	}

	var count int64
	env.db.Model(&models.QuestionTopic{}).Where("question_id = ?", resp.ID).Count(&count)
	if count != 0 {
		t.Fatalf("删除后话题关联应清空, 实际剩余 %d", count)
	}
}

func TestListQuestionsDispatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateUser(t, 1, "alice")
	topic := env.mustCreateTopic(t, "分发", 0, 0)

	inTopic, err := env.question.CreateQuestion(ctx, 1, &types.CreateQuestionRequest{
		Title:    "话题内问题",
		TopicIDs: []uint64{topic.ID},
	})
	if err != nil {
		t.Fatalf("发布问题失败: %v", err)
	}
	if _, err := env.question.CreateQuestion(ctx, 1, &types.CreateQuestionRequest{Title: "话题外问题"}); err != nil {
		t.Fatalf("发布问题失败: %v", err)
	}

	// topicId 过滤优先生效
	got, err := env.question.ListQuestions(ctx, 0, &types.ListQuestionsRequest{TopicID: topic.ID})
	if err != nil {
		t.Fatalf("列表查询失败: %v", err)
	}
	if len(got) != 1 || got[0].ID != inTopic.ID {
		t.Fatalf("期望只返回话题内问题, 实际 %+v", got)
	}

	// 默认最新列表, keyword 过滤
	got, err = env.question.ListQuestions(ctx, 0, &types.ListQuestionsRequest{Keyword: "话题外"})
	if err != nil {
		t.Fatalf("列表查询失败: %v", err)
	}
	if len(got) != 1 || got[0].Title != "话题外问题" {
		t.Fatalf("期望命中话题外问题, 实际 %+v", got)
	}

	// 无过滤时返回全部
	got, err = env.question.ListQuestions(ctx, 0, &types.ListQuestionsRequest{})
	if err != nil {
		t.Fatalf("列表查询失败: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("期望返回 2 条, 实际 %d", len(got))
	}
}

func TestListQuestionsHotOrdering(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// 热度 = answer_count*2 + view_count + follow_count
	cold := &models.Question{AuthorID: 1, Title: "冷问题", AnswerCount: 1, ViewCount: 1}
	hot := &models.Question{AuthorID: 1, Title: "热问题", AnswerCount: 10, ViewCount: 50, FollowCount: 5}
	if err := env.db.Create(cold).Error; err != nil {
		t.Fatalf("写入失败: %v", err)
	}
	if err := env.db.Create(hot).Error; err != nil {
		t.Fatalf("写入失败: %v", err)
	}

	got, err := env.question.ListQuestions(ctx, 0, &types.ListQuestionsRequest{Sort: "hot"})
	if err != nil {
		t.Fatalf("列表查询失败: %v", err)
	}
	if len(got) != 2 || got[0].Title != "热问题" {
		t.Fatalf("热度排序错误: %+v", got)
	}
}

func TestListQuestionsFollowed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateUser(t, 1, "alice")

	followed, err := env.question.CreateQuestion(ctx, 1, &types.CreateQuestionRequest{Title: "被关注"})
	if err != nil {
		t.Fatalf("发布问题失败: %v", err)
	}
	if _, err := env.question.CreateQuestion(ctx, 1, &types.CreateQuestionRequest{Title: "没人关注"}); err != nil {
		t.Fatalf("发布问题失败: %v", err)
	}
	err = env.db.Create(&models.QuestionFollow{QuestionID: followed.ID, UserID: 7}).Error
	if err != nil {
		t.Fatalf("写入关注记录失败: %v", err)
	}

	got, err := env.question.ListQuestions(ctx, 7, &types.ListQuestionsRequest{Following: true})
	if err != nil {
		t.Fatalf("列表查询失败: %v", err)
	}
	if len(got) != 1 || got[0].ID != followed.ID {
		t.Fatalf("期望只返回关注的问题, 实际 %+v", got)
	}

	// 未登录时 following 过滤退化为最新列表
	got, err = env.question.ListQuestions(ctx, 0, &types.ListQuestionsRequest{Following: true})
	if err != nil {
		t.Fatalf("列表查询失败: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("未登录应返回全部问题, 实际 %d", len(got))
	}
}

func TestGetSuggestions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateUser(t, 1, "alice")

	for _, title := range []string{"Go 怎么学", "Go 面试题", "Java 怎么学"} {
		if _, err := env.question.CreateQuestion(ctx, 1, &types.CreateQuestionRequest{Title: title}); err != nil {
			t.Fatalf("发布问题失败: %v", err)
		}
	}

	got, err := env.question.GetSuggestions(ctx, "Go")
	if err != nil {
		t.Fatalf("联想查询失败: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("期望 2 条联想, 实际 %v", got)
	}

	got, err = env.question.GetSuggestions(ctx, "   ")
	if err != nil {
		t.Fatalf("联想查询失败: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("空关键词应返回空列表, 实际 %v", got)
	}
}
