package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"quiz_backend/internal/config"
	"quiz_backend/internal/model"
	"quiz_backend/pkg/database"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type seeded struct {
	quiz      model.Quiz
	questions []model.Question
	correct   []uint
	wrong     []uint
}

func testConfig(strict bool) *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Port: "0", Mode: "test"},
		Quiz:      config.QuizConfig{StrictAttempts: strict},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"http://localhost:5500"}},
		RateLimit: config.RateLimitConfig{MaxRequests: 10000, WindowMinutes: 1},
	}
}

func newTestApp(t *testing.T, strict bool) (*App, *seeded) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedSubjects(db))

	var subjects []model.Subject
	require.NoError(t, db.Order("id asc").Find(&subjects).Error)
	require.Len(t, subjects, 4)

	s := &seeded{quiz: model.Quiz{Title: "CS Fundamentals", TimeLimit: 30, TotalQuestions: 2, Difficulty: "medium", Active: true}}
	require.NoError(t, db.Create(&s.quiz).Error)

	// 故意按倒序插入，ordered=true 时应按学科、题号重新排列
	for _, q := range []model.Question{
		{QuizID: s.quiz.ID, SubjectID: subjects[2].ID, QuestionText: "What is encapsulation?", Points: 1, OrderNum: 1},
		{QuizID: s.quiz.ID, SubjectID: subjects[0].ID, QuestionText: "What is a primary key?", Points: 1, OrderNum: 1},
	} {
		q := q
		require.NoError(t, db.Create(&q).Error)
		right := model.QuestionOption{QuestionID: q.ID, OptionText: "right", IsCorrect: true}
		wrong := model.QuestionOption{QuestionID: q.ID, OptionText: "wrong"}
		require.NoError(t, db.Create(&right).Error)
		require.NoError(t, db.Create(&wrong).Error)
		s.questions = append(s.questions, q)
		s.correct = append(s.correct, right.ID)
		s.wrong = append(s.wrong, wrong.ID)
	}

	return New(testConfig(strict), db, nil), s
}

func do(t *testing.T, a *App, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestBrowseQuizzes(t *testing.T) {
	a, s := newTestApp(t, false)

	w, env := do(t, a, http.MethodGet, "/api/quiz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var quizzes []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &quizzes))
	require.Len(t, quizzes, 1)
	assert.Equal(t, "CS Fundamentals", quizzes[0]["title"])

	w, env = do(t, a, http.MethodGet, "/api/quiz/subjects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var subjects []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &subjects))
	assert.Len(t, subjects, 4)

	w, _ = do(t, a, http.MethodGet, "/api/quiz/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, a, http.MethodGet, "/api/quiz/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, env.Code)

	w, _ = do(t, a, http.MethodGet, "/api/quiz/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, a, http.MethodGet, "/api/quiz/1/questions?ordered=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var questions []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &questions))
	require.Len(t, questions, 2)
	assert.Equal(t, "What is a primary key?", questions[0]["questionText"])
	assert.Equal(t, "DBMS", questions[0]["subjectName"])
	assert.Equal(t, "#000000", questions[0]["subjectColor"])

	w, _ = do(t, a, http.MethodGet, "/api/quiz/1/questions?ordered=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, a, http.MethodGet, "/api/quiz/questions/"+uintStr(s.questions[0].ID)+"/options", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var options []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &options))
	assert.Len(t, options, 2)

	w, env = do(t, a, http.MethodGet, "/api/quiz/2/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", string(env.Data))
}

func TestAttemptFlow(t *testing.T) {
	a, s := newTestApp(t, false)

	w, _ := do(t, a, http.MethodPost, "/api/quiz/1/start", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := do(t, a, http.MethodPost, "/api/quiz/1/start?userId=7", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var started struct {
		ID        uint `json:"id"`
		Completed bool `json:"completed"`
		Score     *int `json:"score"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &started))
	assert.False(t, started.Completed)
	assert.Nil(t, started.Score)

	base := "/api/quiz/attempts/" + uintStr(started.ID)

	w, _ = do(t, a, http.MethodPost, base+"/answer", map[string]interface{}{"selectedOptionId": s.correct[0]})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, a, http.MethodPost, base+"/answer", map[string]interface{}{
		"questionId":       s.questions[0].ID,
		"selectedOptionId": s.correct[0],
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var answer map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &answer))
	assert.Equal(t, true, answer["isCorrect"])

	w, _ = do(t, a, http.MethodPost, base+"/answer", map[string]interface{}{
		"questionId":       s.questions[1].ID,
		"selectedOptionId": s.wrong[1],
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env = do(t, a, http.MethodPost, base+"/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var completed struct {
		Completed      bool `json:"completed"`
		Score          *int `json:"score"`
		TotalQuestions int  `json:"totalQuestions"`
		CorrectAnswers int  `json:"correctAnswers"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &completed))
	assert.True(t, completed.Completed)
	require.NotNil(t, completed.Score)
	assert.Equal(t, 1, *completed.Score)
	assert.Equal(t, 2, completed.TotalQuestions)
	assert.Equal(t, 1, completed.CorrectAnswers)

	w, _ = do(t, a, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, a, http.MethodGet, "/api/quiz/users/7/attempts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &history))
	assert.Len(t, history, 1)

	w, _ = do(t, a, http.MethodPost, "/api/quiz/attempts/999/complete", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, a, http.MethodGet, "/api/quiz/attempts/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordAnswerWithoutOptionIsIncorrect(t *testing.T) {
	a, s := newTestApp(t, false)

	w, env := do(t, a, http.MethodPost, "/api/quiz/1/start?userId=9", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var started struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &started))
	base := "/api/quiz/attempts/" + uintStr(started.ID)

	for _, body := range []map[string]interface{}{
		{"questionId": s.questions[0].ID},
		{"questionId": s.questions[1].ID, "selectedOptionId": 0},
	} {
		w, env = do(t, a, http.MethodPost, base+"/answer", body)
		require.Equal(t, http.StatusCreated, w.Code)
		var answer map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &answer))
		assert.Equal(t, false, answer["isCorrect"])
	}

	w, env = do(t, a, http.MethodPost, base+"/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var completed struct {
		TotalQuestions int `json:"totalQuestions"`
		CorrectAnswers int `json:"correctAnswers"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &completed))
	assert.Equal(t, 2, completed.TotalQuestions)
	assert.Zero(t, completed.CorrectAnswers)
}

func TestStrictAttemptRejectsLateAnswers(t *testing.T) {
	a, s := newTestApp(t, true)

	w, env := do(t, a, http.MethodPost, "/api/quiz/1/start?userId=3", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var started struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &started))
	base := "/api/quiz/attempts/" + uintStr(started.ID)

	w, _ = do(t, a, http.MethodPost, base+"/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, a, http.MethodPost, base+"/answer", map[string]interface{}{
		"questionId":       s.questions[0].ID,
		"selectedOptionId": s.correct[0],
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, http.StatusConflict, env.Code)

	w, _ = do(t, a, http.MethodPost, "/api/quiz/attempts/999/answer", map[string]interface{}{
		"questionId":       s.questions[0].ID,
		"selectedOptionId": s.correct[0],
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOperationalEndpoints(t *testing.T) {
	a, _ := newTestApp(t, false)

	w, env := do(t, a, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"database":"up"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w, _ = do(t, a, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")

	w, _ = do(t, a, http.MethodGet, "/swagger/doc.json", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/quiz/attempts/{attemptId}/complete")
}

func uintStr(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
