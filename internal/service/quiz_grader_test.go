package service

import (
	"courseflow_backend/internal/model"
	"courseflow_backend/internal/util"
	"errors"
	"testing"
)

func threeQuestionQuiz() *model.Quiz {
	return &model.Quiz{
		PassingScore: 70,
		Questions: []model.Question{
			{Question: "q1", Options: []string{"a", "b"}, CorrectAnswer: 0},
			{Question: "q2", Options: []string{"a", "b"}, CorrectAnswer: 1},
			{Question: "q3", Options: []string{"a", "b", "c"}, CorrectAnswer: 2},
		},
	}
}

func TestGradeAllCorrect(t *testing.T) {
	g := NewQuizGrader()
	score, err := g.Grade(threeQuestionQuiz(), map[int]int{0: 0, 1: 1, 2: 2})
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}
	if score != 100 {
		t.Fatalf("expected 100, got %d", score)
	}
}

func TestGradeEmptyAnswersScoresZero(t *testing.T) {
	g := NewQuizGrader()
	score, err := g.Grade(threeQuestionQuiz(), map[int]int{})
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}
	if score != 0 {
		t.Fatalf("expected 0, got %d", score)
	}
}

func TestGradeSparseAnswersCountWrong(t *testing.T) {
	g := NewQuizGrader()
	// 只答了第一题且答对，其余按错误计
	score, err := g.Grade(threeQuestionQuiz(), map[int]int{0: 0})
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}
	if score != 33 {
		t.Fatalf("expected 33, got %d", score)
	}
}

func TestGradeRoundsHalfUp(t *testing.T) {
	g := NewQuizGrader()
	quiz := &model.Quiz{
		PassingScore: 50,
		Questions: []model.Question{
			{Question: "q1", CorrectAnswer: 0},
			{Question: "q2", CorrectAnswer: 0},
		},
	}
	score, err := g.Grade(quiz, map[int]int{0: 0, 1: 1})
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}
	if score != 50 {
		t.Fatalf("expected 50, got %d", score)
	}
}

func TestGradeRejectsQuizWithoutQuestions(t *testing.T) {
	g := NewQuizGrader()
	if _, err := g.Grade(&model.Quiz{PassingScore: 70}, map[int]int{}); !errors.Is(err, util.ErrInvalidQuiz) {
		t.Fatalf("expected ErrInvalidQuiz, got %v", err)
	}
	if _, err := g.Grade(nil, map[int]int{}); !errors.Is(err, util.ErrInvalidQuiz) {
		t.Fatalf("expected ErrInvalidQuiz for nil quiz, got %v", err)
	}
}

func TestPassedBoundaryIsInclusive(t *testing.T) {
	g := NewQuizGrader()
	quiz := threeQuestionQuiz() // 通过线 70

	if !g.Passed(quiz, 70) {
		t.Fatal("score equal to passing score should pass")
	}
	if g.Passed(quiz, 69) {
		t.Fatal("score below passing score should not pass")
	}
	if !g.Passed(quiz, 100) {
		t.Fatal("full score should pass")
	}
}
