package service

import (
	"courseflow_backend/internal/model"
	"courseflow_backend/internal/util"
	"math"
)

// QuizGrader 测验判分，无状态、无存储访问。
// 是否以及何时把成绩写入进度由调用方通过 ProgressService.CompleteQuiz 决定。
type QuizGrader struct{}

func NewQuizGrader() *QuizGrader {
	return &QuizGrader{}
}

// Grade 按题目序号严格比对选项序号，未作答按错误计，不给部分分。
// answers: 题目下标 -> 所选选项下标，允许稀疏。
// 题目数为零的测验拒绝判分，返回 ErrInvalidQuiz。
func (g *QuizGrader) Grade(quiz *model.Quiz, answers map[int]int) (int, error) {
	if quiz == nil || len(quiz.Questions) == 0 {
		return 0, util.ErrInvalidQuiz
	}

	correct := 0
	for i, q := range quiz.Questions {
		if selected, ok := answers[i]; ok && selected == q.CorrectAnswer {
			correct++
		}
	}

	score := math.Round(100 * float64(correct) / float64(len(quiz.Questions)))
	return int(score), nil
}

// Passed 成绩达到通过线即通过，边界取闭区间
func (g *QuizGrader) Passed(quiz *model.Quiz, score int) bool {
	return score >= quiz.PassingScore
}
