package models

import "fmt"

// Course is a catalog or enrolled-course summary. Catalog listings carry
// Duration/Students/Price; enrolled listings carry Progress/NextLesson.
type Course struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Instructor  string  `json:"instructor"`
	Duration    string  `json:"duration"`
	Students    int     `json:"students"`
	Price       string  `json:"price"`
	Progress    float64 `json:"progress"`
	NextLesson  string  `json:"next_lesson"`
}

func (c Course) String() string {
	return fmt.Sprintf("%s  %s — %s", c.ID, c.Title, c.Description)
}

// Assignment is one item of GET /courses/{id}/assignments.
type Assignment struct {
	ID       string `json:"id"`
	CourseID string `json:"course_id"`
	Title    string `json:"title"`
	DueDate  string `json:"due_date"`
	Status   string `json:"status"`
	Points   int    `json:"points"`
}

func (a Assignment) String() string {
	return fmt.Sprintf("%s  %s (due %s, %d pts) [%s]", a.ID, a.Title, a.DueDate, a.Points, a.Status)
}

// Quiz is one item of GET /quizzes/courses/{id}/quizzes.
type Quiz struct {
	ID        string `json:"id"`
	CourseID  string `json:"course_id"`
	Title     string `json:"title"`
	Questions int    `json:"questions"`
	Duration  string `json:"duration"`
	Status    string `json:"status"`
}

func (q Quiz) String() string {
	return fmt.Sprintf("%s  %s (%d questions, %s) [%s]", q.ID, q.Title, q.Questions, q.Duration, q.Status)
}
