package service

import (
	"context"
	"errors"
	"fmt"
	"quiz_backend/internal/model"
	"quiz_backend/internal/repository"
	"quiz_backend/internal/util"
	"quiz_backend/pkg/logger"
	"quiz_backend/pkg/monitoring"
	"quiz_backend/pkg/tracing"
	"sort"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuizStore interface {
	FindAll(ctx context.Context) ([]model.Quiz, error)
	FindByID(ctx context.Context, id uint) (*model.Quiz, error)
}

type SubjectStore interface {
	FindAll(ctx context.Context) ([]model.Subject, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.Subject, error)
}

type QuestionStore interface {
	FindByQuizID(ctx context.Context, quizID uint) ([]model.Question, error)
	FindByQuizIDOrdered(ctx context.Context, quizID uint) ([]model.Question, error)
	FindByQuizIDAndSubjectID(ctx context.Context, quizID, subjectID uint) ([]model.Question, error)
}

type OptionStore interface {
	FindByID(ctx context.Context, id uint) (*model.QuestionOption, error)
	FindByQuestionID(ctx context.Context, questionID uint) ([]model.QuestionOption, error)
}

type AttemptStore interface {
	Create(ctx context.Context, attempt *model.QuizAttempt) error
	Update(ctx context.Context, attempt *model.QuizAttempt) error
	FindByID(ctx context.Context, id uint) (*model.QuizAttempt, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*model.QuizAttempt, error)
	ListByUser(ctx context.Context, userID uint) ([]model.QuizAttempt, error)
}

type AnswerStore interface {
	Create(ctx context.Context, answer *model.UserAnswer) error
	Update(ctx context.Context, answer *model.UserAnswer) error
	FindByAttemptID(ctx context.Context, attemptID uint) ([]model.UserAnswer, error)
	FindByAttemptAndQuestion(ctx context.Context, attemptID, questionID uint) (*model.UserAnswer, error)
}

// SubjectCache 可选的学科缓存，nil 表示不缓存
type SubjectCache interface {
	GetSubjects(ctx context.Context) ([]model.Subject, bool)
	SetSubjects(ctx context.Context, subjects []model.Subject)
}

// TxFunc 在一个事务内执行 fn，传入的仓库都绑定到该事务
type TxFunc func(ctx context.Context, fn func(attempts AttemptStore, answers AnswerStore) error) error

func GormTx(db *gorm.DB) TxFunc {
	return func(ctx context.Context, fn func(attempts AttemptStore, answers AnswerStore) error) error {
		return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(repository.NewQuizAttemptRepository(tx), repository.NewUserAnswerRepository(tx))
		})
	}
}

type Stores struct {
	Quizzes   QuizStore
	Subjects  SubjectStore
	Questions QuestionStore
	Options   OptionStore
	Attempts  AttemptStore
	Answers   AnswerStore
	Tx        TxFunc
}

type QuizService struct {
	stores Stores
	cache  SubjectCache
	strict bool
	now    func() time.Time
}

// NewQuizService strict 为 true 时拒绝向已完成的答题提交答案，并按题目覆盖旧答案
func NewQuizService(stores Stores, cache SubjectCache, strict bool) *QuizService {
	return &QuizService{
		stores: stores,
		cache:  cache,
		strict: strict,
		now:    time.Now,
	}
}

type QuestionFilter struct {
	Ordered   bool
	SubjectID uint
}

func (s *QuizService) ListQuizzes(ctx context.Context) ([]QuizDTO, error) {
	quizzes, err := s.stores.Quizzes.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}

	res := make([]QuizDTO, len(quizzes))
	for i := range quizzes {
		res[i] = ToQuizDTO(&quizzes[i])
	}
	return res, nil
}

func (s *QuizService) GetQuiz(ctx context.Context, id uint) (*QuizDTO, error) {
	quiz, err := s.stores.Quizzes.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get quiz %d: %w", id, err)
	}
	dto := ToQuizDTO(quiz)
	return &dto, nil
}

func (s *QuizService) ListSubjects(ctx context.Context) ([]SubjectDTO, error) {
	subjects, err := s.allSubjects(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]SubjectDTO, len(subjects))
	for i := range subjects {
		res[i] = ToSubjectDTO(&subjects[i])
	}
	return res, nil
}

func (s *QuizService) allSubjects(ctx context.Context) ([]model.Subject, error) {
	if s.cache != nil {
		if subjects, ok := s.cache.GetSubjects(ctx); ok {
			return subjects, nil
		}
	}

	subjects, err := s.stores.Subjects.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	if s.cache != nil {
		s.cache.SetSubjects(ctx, subjects)
	}
	return subjects, nil
}

// subjectIndex 一次性加载题目涉及的学科，缓存中缺失的学科回源数据库并补进缓存
func (s *QuizService) subjectIndex(ctx context.Context, questions []model.Question) (map[uint]*model.Subject, error) {
	var cached []model.Subject
	if s.cache != nil {
		cached, _ = s.cache.GetSubjects(ctx)
	}

	index := make(map[uint]*model.Subject, len(cached))
	for i := range cached {
		index[cached[i].ID] = &cached[i]
	}

	missing := make([]uint, 0)
	seen := make(map[uint]bool)
	for _, q := range questions {
		if _, ok := index[q.SubjectID]; ok || seen[q.SubjectID] {
			continue
		}
		seen[q.SubjectID] = true
		missing = append(missing, q.SubjectID)
	}
	if len(missing) == 0 {
		return index, nil
	}

	loaded, err := s.stores.Subjects.FindByIDs(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("load subjects: %w", err)
	}
	for i := range loaded {
		index[loaded[i].ID] = &loaded[i]
	}

	if s.cache != nil && cached != nil && len(loaded) > 0 {
		refreshed := make([]model.Subject, 0, len(cached)+len(loaded))
		refreshed = append(refreshed, cached...)
		refreshed = append(refreshed, loaded...)
		sort.Slice(refreshed, func(i, j int) bool { return refreshed[i].ID < refreshed[j].ID })
		s.cache.SetSubjects(ctx, refreshed)
	}
	return index, nil
}

func (s *QuizService) ListQuestions(ctx context.Context, quizID uint, filter QuestionFilter) ([]QuestionDTO, error) {
	var (
		questions []model.Question
		err       error
	)
	switch {
	case filter.SubjectID != 0:
		questions, err = s.stores.Questions.FindByQuizIDAndSubjectID(ctx, quizID, filter.SubjectID)
	case filter.Ordered:
		questions, err = s.stores.Questions.FindByQuizIDOrdered(ctx, quizID)
	default:
		questions, err = s.stores.Questions.FindByQuizID(ctx, quizID)
	}
	if err != nil {
		return nil, fmt.Errorf("list questions for quiz %d: %w", quizID, err)
	}

	index, err := s.subjectIndex(ctx, questions)
	if err != nil {
		return nil, err
	}

	res := make([]QuestionDTO, len(questions))
	for i := range questions {
		res[i] = ToQuestionDTO(&questions[i], index[questions[i].SubjectID])
	}
	return res, nil
}

func (s *QuizService) ListOptions(ctx context.Context, questionID uint) ([]QuestionOptionDTO, error) {
	options, err := s.stores.Options.FindByQuestionID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("list options for question %d: %w", questionID, err)
	}

	res := make([]QuestionOptionDTO, len(options))
	for i := range options {
		res[i] = ToOptionDTO(&options[i])
	}
	return res, nil
}

// StartAttempt 不校验测验和用户是否存在
func (s *QuizService) StartAttempt(ctx context.Context, quizID, userID uint) (*QuizAttemptDTO, error) {
	attempt := &model.QuizAttempt{
		UserID:    userID,
		QuizID:    quizID,
		StartTime: s.now(),
		Status:    model.AttemptStarted,
	}
	if err := s.stores.Attempts.Create(ctx, attempt); err != nil {
		return nil, fmt.Errorf("start attempt: %w", err)
	}

	monitoring.AttemptsStarted.Inc()
	logger.Log.Debug("quiz attempt started",
		zap.Uint("attempt_id", attempt.ID),
		zap.Uint("quiz_id", quizID),
		zap.Uint("user_id", userID),
	)

	dto := ToAttemptDTO(attempt)
	return &dto, nil
}

// isCorrectOption 选项不存在时视为答错
func (s *QuizService) isCorrectOption(ctx context.Context, optionID uint) (bool, error) {
	if optionID == 0 {
		return false, nil
	}
	opt, err := s.stores.Options.FindByID(ctx, optionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load option %d: %w", optionID, err)
	}
	return opt.IsCorrect, nil
}

func (s *QuizService) RecordAnswer(ctx context.Context, attemptID, questionID, selectedOptionID uint) (*UserAnswerDTO, error) {
	correct, err := s.isCorrectOption(ctx, selectedOptionID)
	if err != nil {
		return nil, err
	}

	answer := &model.UserAnswer{
		QuizAttemptID:    attemptID,
		QuestionID:       questionID,
		SelectedOptionID: selectedOptionID,
		IsCorrect:        correct,
	}

	if s.strict {
		answer, err = s.saveAnswerStrict(ctx, answer)
	} else {
		err = s.stores.Answers.Create(ctx, answer)
	}
	if err != nil {
		if errors.Is(err, util.ErrAttemptNotFound) || errors.Is(err, util.ErrAttemptCompleted) {
			return nil, err
		}
		return nil, fmt.Errorf("record answer for attempt %d: %w", attemptID, err)
	}

	monitoring.AnswersRecorded.WithLabelValues(strconv.FormatBool(correct)).Inc()

	dto := ToUserAnswerDTO(answer)
	return &dto, nil
}

// saveAnswerStrict 锁住答题记录后写入，已完成的答题不再接受答案，同题重复作答覆盖旧记录
func (s *QuizService) saveAnswerStrict(ctx context.Context, answer *model.UserAnswer) (*model.UserAnswer, error) {
	saved := answer
	err := s.stores.Tx(ctx, func(attempts AttemptStore, answers AnswerStore) error {
		attempt, err := attempts.FindByIDForUpdate(ctx, answer.QuizAttemptID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrAttemptNotFound
		}
		if err != nil {
			return err
		}
		if attempt.IsCompleted() {
			return util.ErrAttemptCompleted
		}

		existing, err := answers.FindByAttemptAndQuestion(ctx, answer.QuizAttemptID, answer.QuestionID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return answers.Create(ctx, answer)
		}
		if err != nil {
			return err
		}

		existing.SelectedOptionID = answer.SelectedOptionID
		existing.IsCorrect = answer.IsCorrect
		saved = existing
		return answers.Update(ctx, existing)
	})
	return saved, err
}

// CompleteAttempt 在事务内重新统计全部作答并写回，重复调用会覆盖上次结果
func (s *QuizService) CompleteAttempt(ctx context.Context, attemptID uint) (*QuizAttemptDTO, error) {
	ctx, span := tracing.Tracer().Start(ctx, "QuizService.CompleteAttempt")
	defer span.End()
	span.SetAttributes(attribute.Int64("attempt.id", int64(attemptID)))

	var completed *model.QuizAttempt
	err := s.stores.Tx(ctx, func(attempts AttemptStore, answers AnswerStore) error {
		attempt, err := attempts.FindByIDForUpdate(ctx, attemptID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrAttemptNotFound
		}
		if err != nil {
			return err
		}

		list, err := answers.FindByAttemptID(ctx, attemptID)
		if err != nil {
			return err
		}

		end := s.now()
		score := ScoreAnswers(list)
		correct := score.Correct

		attempt.EndTime = &end
		attempt.Status = model.AttemptCompleted
		attempt.Score = &correct
		attempt.CorrectAnswers = score.Correct
		attempt.TotalQuestions = score.Total
		attempt.TimeSpentSeconds = ElapsedSeconds(attempt.StartTime, end)

		if err := attempts.Update(ctx, attempt); err != nil {
			return err
		}
		completed = attempt
		return nil
	})
	if errors.Is(err, util.ErrAttemptNotFound) {
		return nil, err
	}
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("complete attempt %d: %w", attemptID, err)
	}

	monitoring.AttemptsCompleted.Inc()
	monitoring.AttemptTimeSpent.Observe(float64(completed.TimeSpentSeconds))
	span.SetAttributes(
		attribute.Int("attempt.score", completed.CorrectAnswers),
		attribute.Int("attempt.total", completed.TotalQuestions),
	)
	logger.Log.Info("quiz attempt completed",
		zap.Uint("attempt_id", completed.ID),
		zap.Int("correct", completed.CorrectAnswers),
		zap.Int("total", completed.TotalQuestions),
		zap.Int("time_spent_seconds", completed.TimeSpentSeconds),
	)

	dto := ToAttemptDTO(completed)
	return &dto, nil
}

func (s *QuizService) GetAttempt(ctx context.Context, attemptID uint) (*QuizAttemptDTO, error) {
	attempt, err := s.stores.Attempts.FindByID(ctx, attemptID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAttemptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get attempt %d: %w", attemptID, err)
	}
	dto := ToAttemptDTO(attempt)
	return &dto, nil
}

func (s *QuizService) ListAttempts(ctx context.Context, userID uint) ([]QuizAttemptDTO, error) {
	attempts, err := s.stores.Attempts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list attempts for user %d: %w", userID, err)
	}

	res := make([]QuizAttemptDTO, len(attempts))
	for i := range attempts {
		res[i] = ToAttemptDTO(&attempts[i])
	}
	return res, nil
}
