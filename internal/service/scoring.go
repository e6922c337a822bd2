package service

import (
	"quiz_backend/internal/model"
	"time"
)

// Score 一次答题的汇总结果
type Score struct {
	Correct int
	Total   int
}

// ScoreAnswers 每条作答记录都计入总数，同一题重复作答也分别计分
func ScoreAnswers(answers []model.UserAnswer) Score {
	s := Score{Total: len(answers)}
	for _, a := range answers {
		if a.IsCorrect {
			s.Correct++
		}
	}
	return s
}

// ElapsedSeconds 按毫秒差向下取整到秒，时钟回拨时记为 0
func ElapsedSeconds(start, end time.Time) int {
	ms := end.Sub(start).Milliseconds()
	if ms < 0 {
		return 0
	}
	return int(ms / 1000)
}
