package service

import (
	"fmt"
	"testing"

	"StudyHub/config"
	"StudyHub/dao"
	"StudyHub/models"
	"StudyHub/pkg/database"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db *gorm.DB

	userDAO          *dao.Users
	topicDAO         *dao.Topic
	questionDAO      *dao.Question
	questionTopicDAO *dao.QuestionTopic
	answerDAO        *dao.Answer
	commentDAO       *dao.Comment

	auth     *AuthService
	user     *UserService
	topic    *TopicService
	question *QuestionService
	answer   *AnswerService
	comment  *CommentService
	search   *SearchService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("建表失败: %v", err)
	}

	env := &testEnv{
		db:               db,
		userDAO:          dao.NewUsers(db),
		topicDAO:         dao.NewTopic(db),
		questionDAO:      dao.NewQuestion(db),
		questionTopicDAO: dao.NewQuestionTopic(db),
		answerDAO:        dao.NewAnswer(db),
		commentDAO:       dao.NewComment(db),
	}

	cfg := &config.Config{
		Jwt: &config.Jwt{Secret: "test-secret", Expire: 3600},
	}

	env.user = &UserService{UserDAO: env.userDAO}
	env.auth = &AuthService{Config: cfg, UserDAO: env.userDAO}
	env.topic = &TopicService{TopicDAO: env.topicDAO}
	env.question = &QuestionService{
		QuestionDAO:      env.questionDAO,
		TopicDAO:         env.topicDAO,
		QuestionTopicDAO: env.questionTopicDAO,
		UserService:      env.user,
	}
	env.answer = &AnswerService{
		AnswerDAO:   env.answerDAO,
		QuestionDAO: env.questionDAO,
		UserService: env.user,
	}
	env.comment = &CommentService{
		CommentDAO:  env.commentDAO,
		AnswerDAO:   env.answerDAO,
		UserService: env.user,
	}
	env.search = &SearchService{
		QuestionService: env.question,
		TopicService:    env.topic,
		UserService:     env.user,
	}
	return env
}

func (env *testEnv) mustCreateUser(t *testing.T, id uint64, username string) {
	t.Helper()
	err := env.db.Create(&models.Users{
		ID:       id,
		Username: username,
		Password: "x",
	}).Error
	if err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
}

func (env *testEnv) mustCreateTopic(t *testing.T, name string, followCount, questionCount uint32) *models.Topic {
	t.Helper()
	topic := &models.Topic{
		Name:          name,
		FollowCount:   followCount,
		QuestionCount: questionCount,
	}
	if err := env.db.Create(topic).Error; err != nil {
		t.Fatalf("创建测试话题失败: %v", err)
	}
	return topic
}
