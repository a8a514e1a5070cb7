package services

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/opencampus/campusctl/internal/client/api"
	"github.com/opencampus/campusctl/internal/client/models"
)

const (
	myCoursesCacheKey      = "my-courses"
	exploreCoursesCacheKey = "explore-courses"
)

// CourseService exposes the catalog and per-course listings. Listing calls
// are cached for a short TTL so flipping between dashboard and catalog views
// does not hammer the API; enrolling invalidates both listings.
type CourseService interface {
	MyCourses(ctx context.Context) ([]models.Course, error)
	ExploreCourses(ctx context.Context) ([]models.Course, error)
	Enroll(ctx context.Context, courseID string) error
	Assignments(ctx context.Context, courseID string) ([]models.Assignment, error)
	Quizzes(ctx context.Context, courseID string) ([]models.Quiz, error)
}

type courseService struct {
	client api.Client
	cache  *gocache.Cache
}

// NewCourseService constructs a CourseService with a listing cache using the
// given TTL.
func NewCourseService(client api.Client, cacheTTL time.Duration) CourseService {
	return &courseService{
		client: client,
		cache:  gocache.New(cacheTTL, 2*cacheTTL),
	}
}

func (c *courseService) cachedListing(ctx context.Context, key string, fetch func(context.Context) ([]models.Course, error)) ([]models.Course, error) {
	if cached, ok := c.cache.Get(key); ok {
		return cached.([]models.Course), nil
	}
	courses, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, courses)
	return courses, nil
}

func (c *courseService) MyCourses(ctx context.Context) ([]models.Course, error) {
	return c.cachedListing(ctx, myCoursesCacheKey, c.client.MyCourses)
}

func (c *courseService) ExploreCourses(ctx context.Context) ([]models.Course, error) {
	return c.cachedListing(ctx, exploreCoursesCacheKey, c.client.ExploreCourses)
}

// Enroll registers the user on a course and drops the cached listings, since
// both change as a result.
func (c *courseService) Enroll(ctx context.Context, courseID string) error {
	if err := c.client.Enroll(ctx, courseID); err != nil {
		return err
	}
	c.cache.Delete(myCoursesCacheKey)
	c.cache.Delete(exploreCoursesCacheKey)
	return nil
}

func (c *courseService) Assignments(ctx context.Context, courseID string) ([]models.Assignment, error) {
	return c.client.Assignments(ctx, courseID)
}

func (c *courseService) Quizzes(ctx context.Context, courseID string) ([]models.Quiz, error) {
	return c.client.Quizzes(ctx, courseID)
}
