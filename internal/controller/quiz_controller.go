package controller

import (
	"errors"
	"quiz_backend/internal/service"
	"quiz_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

type RecordAnswerRequest struct {
	QuestionID uint `json:"questionId" binding:"required"`
	// 缺省或不存在的选项按答错记录
	SelectedOptionID uint `json:"selectedOptionId"`
}

func (c *QuizController) handleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrQuizNotFound), errors.Is(err, util.ErrAttemptNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrAttemptCompleted):
		util.Conflict(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, ok := util.ParseID(ctx.Param(name))
	if !ok {
		util.BadRequest(ctx, "invalid "+name)
	}
	return id, ok
}

// @Summary 获取测验列表
// @Tags 测验
// @Produce json
// @Success 200 {object} util.Response{data=[]service.QuizDTO}
// @Router /quiz [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.Service.ListQuizzes(ctx.Request.Context())
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// @Summary 获取测验详情
// @Tags 测验
// @Produce json
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response{data=service.QuizDTO}
// @Failure 404 {object} util.Response
// @Router /quiz/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	quiz, err := c.Service.GetQuiz(ctx.Request.Context(), id)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// @Summary 获取学科列表
// @Tags 测验
// @Produce json
// @Success 200 {object} util.Response{data=[]service.SubjectDTO}
// @Router /quiz/subjects [get]
func (c *QuizController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.Service.ListSubjects(ctx.Request.Context())
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, subjects)
}

// @Summary 获取测验题目
// @Description ordered=true 时按学科、题号排序；subjectId 只返回该学科的题目
// @Tags 测验
// @Produce json
// @Param id path int true "测验ID"
// @Param ordered query bool false "按学科和题号排序"
// @Param subjectId query int false "学科ID"
// @Success 200 {object} util.Response{data=[]service.QuestionDTO}
// @Router /quiz/{id}/questions [get]
func (c *QuizController) ListQuestions(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var filter service.QuestionFilter
	if v := ctx.Query("ordered"); v != "" {
		ordered, err := strconv.ParseBool(v)
		if err != nil {
			util.BadRequest(ctx, "invalid ordered")
			return
		}
		filter.Ordered = ordered
	}
	if v := ctx.Query("subjectId"); v != "" {
		subjectID, ok := util.ParseID(v)
		if !ok {
			util.BadRequest(ctx, "invalid subjectId")
			return
		}
		filter.SubjectID = subjectID
	}

	questions, err := c.Service.ListQuestions(ctx.Request.Context(), id, filter)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary 获取题目选项
// @Tags 测验
// @Produce json
// @Param questionId path int true "题目ID"
// @Success 200 {object} util.Response{data=[]service.QuestionOptionDTO}
// @Router /quiz/questions/{questionId}/options [get]
func (c *QuizController) ListOptions(ctx *gin.Context) {
	id, ok := pathID(ctx, "questionId")
	if !ok {
		return
	}

	options, err := c.Service.ListOptions(ctx.Request.Context(), id)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, options)
}

// @Summary 开始答题
// @Tags 答题
// @Produce json
// @Param id path int true "测验ID"
// @Param userId query int true "用户ID"
// @Success 201 {object} util.Response{data=service.QuizAttemptDTO}
// @Failure 400 {object} util.Response
// @Router /quiz/{id}/start [post]
func (c *QuizController) StartAttempt(ctx *gin.Context) {
	quizID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	userID, ok := util.ParseID(ctx.Query("userId"))
	if !ok {
		util.BadRequest(ctx, "invalid userId")
		return
	}

	attempt, err := c.Service.StartAttempt(ctx.Request.Context(), quizID, userID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Created(ctx, attempt)
}

// @Summary 提交单题答案
// @Tags 答题
// @Accept json
// @Produce json
// @Param attemptId path int true "答题ID"
// @Param body body RecordAnswerRequest true "答案"
// @Success 201 {object} util.Response{data=service.UserAnswerDTO}
// @Failure 409 {object} util.Response
// @Router /quiz/attempts/{attemptId}/answer [post]
func (c *QuizController) RecordAnswer(ctx *gin.Context) {
	attemptID, ok := pathID(ctx, "attemptId")
	if !ok {
		return
	}

	var req RecordAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.Service.RecordAnswer(ctx.Request.Context(), attemptID, req.QuestionID, req.SelectedOptionID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Created(ctx, answer)
}

// @Summary 完成答题并计分
// @Tags 答题
// @Produce json
// @Param attemptId path int true "答题ID"
// @Success 200 {object} util.Response{data=service.QuizAttemptDTO}
// @Failure 404 {object} util.Response
// @Router /quiz/attempts/{attemptId}/complete [post]
func (c *QuizController) CompleteAttempt(ctx *gin.Context) {
	attemptID, ok := pathID(ctx, "attemptId")
	if !ok {
		return
	}

	attempt, err := c.Service.CompleteAttempt(ctx.Request.Context(), attemptID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, attempt)
}

// @Summary 获取答题记录
// @Tags 答题
// @Produce json
// @Param attemptId path int true "答题ID"
// @Success 200 {object} util.Response{data=service.QuizAttemptDTO}
// @Failure 404 {object} util.Response
// @Router /quiz/attempts/{attemptId} [get]
func (c *QuizController) GetAttempt(ctx *gin.Context) {
	attemptID, ok := pathID(ctx, "attemptId")
	if !ok {
		return
	}

	attempt, err := c.Service.GetAttempt(ctx.Request.Context(), attemptID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, attempt)
}

// @Summary 用户的答题历史
// @Tags 答题
// @Produce json
// @Param userId path int true "用户ID"
// @Success 200 {object} util.Response{data=[]service.QuizAttemptDTO}
// @Router /quiz/users/{userId}/attempts [get]
func (c *QuizController) ListUserAttempts(ctx *gin.Context) {
	userID, ok := pathID(ctx, "userId")
	if !ok {
		return
	}

	attempts, err := c.Service.ListAttempts(ctx.Request.Context(), userID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, attempts)
}
