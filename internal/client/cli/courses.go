package cli

import (
	"context"
	"fmt"
)

// Dashboard lists the courses the user is enrolled in.
func (a *App) Dashboard(ctx context.Context) error {
	courses, err := a.courses.MyCourses(ctx)
	if err != nil {
		a.log.Error(ctx, "listing enrolled courses failed", "error", err)
		fmt.Println("Could not load your courses:", userMessage(err))
		return err
	}

	if len(courses) == 0 {
		fmt.Println("You are not enrolled in any courses yet. Try 'explore'.")
		return nil
	}
	for _, c := range courses {
		fmt.Printf("%s (%.0f%% complete, next: %s)\n", c.String(), c.Progress, c.NextLesson)
	}
	return nil
}

// Explore lists the course catalog.
func (a *App) Explore(ctx context.Context) error {
	courses, err := a.courses.ExploreCourses(ctx)
	if err != nil {
		a.log.Error(ctx, "listing catalog failed", "error", err)
		fmt.Println("Could not load the catalog:", userMessage(err))
		return err
	}

	for _, c := range courses {
		fmt.Printf("%s (%s, %d students, %s)\n", c.String(), c.Duration, c.Students, c.Price)
	}
	return nil
}

// Enroll registers the user on the given course.
func (a *App) Enroll(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: enroll <course-id>")
		return nil
	}
	courseID := args[0]

	if err := a.courses.Enroll(ctx, courseID); err != nil {
		a.log.Error(ctx, "enrollment failed", "course_id", courseID, "error", err)
		fmt.Println("Enrollment failed:", userMessage(err))
		return err
	}

	fmt.Println("Enrolled! The course is now on your dashboard.")
	return nil
}

// Assignments lists the assignments of a course.
func (a *App) Assignments(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: assignments <course-id>")
		return nil
	}
	courseID := args[0]

	assignments, err := a.courses.Assignments(ctx, courseID)
	if err != nil {
		a.log.Error(ctx, "listing assignments failed", "course_id", courseID, "error", err)
		fmt.Println("Could not load assignments:", userMessage(err))
		return err
	}

	if len(assignments) == 0 {
		fmt.Println("No assignments for this course.")
		return nil
	}
	for _, item := range assignments {
		fmt.Println(item)
	}
	return nil
}

// Quizzes lists the quizzes of a course.
func (a *App) Quizzes(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: quizzes <course-id>")
		return nil
	}
	courseID := args[0]

	quizzes, err := a.courses.Quizzes(ctx, courseID)
	if err != nil {
		a.log.Error(ctx, "listing quizzes failed", "course_id", courseID, "error", err)
		fmt.Println("Could not load quizzes:", userMessage(err))
		return err
	}

	if len(quizzes) == 0 {
		fmt.Println("No quizzes for this course.")
		return nil
	}
	for _, item := range quizzes {
		fmt.Println(item)
	}
	return nil
}
