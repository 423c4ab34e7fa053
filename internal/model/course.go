package model

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Course 课程目录中的顶层学习单元，模块和课时的顺序即学习顺序
// swagger:model Course
type Course struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Instructor string         `json:"instructor"`
	Category   string         `json:"category"`
	Difficulty Difficulty     `json:"difficulty"`
	Duration   int            `json:"duration"` // 总时长（分钟）
	Thumbnail  string         `json:"thumbnail,omitempty"`
	Modules    []CourseModule `json:"modules"`
}

// CourseModule 课程内有序的课时分组
type CourseModule struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Lesson 视频课时，可附带一个选择题测验
type Lesson struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration int    `json:"duration"` // 视频时长（秒）
	VideoURL string `json:"videoUrl"`
	Quiz     *Quiz  `json:"quiz,omitempty"`
}

type Quiz struct {
	Questions    []Question `json:"questions"`
	PassingScore int        `json:"passingScore"` // 通过线（百分比）
}

type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Lessons 按声明顺序展开课程的全部课时
func (c *Course) Lessons() []Lesson {
	var lessons []Lesson
	for _, m := range c.Modules {
		lessons = append(lessons, m.Lessons...)
	}
	return lessons
}

// LessonCount 课程的课时总数
func (c *Course) LessonCount() int {
	n := 0
	for _, m := range c.Modules {
		n += len(m.Lessons)
	}
	return n
}
