package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yogamaster/yoga_master/models"
)

type fakeReportStore struct {
	popularClasses     []models.Class
	popularInstructors []models.PopularInstructor
	stats              models.AdminStats
	enrolled           []models.EnrolledClass
}

func (f *fakeReportStore) PopularClasses(ctx context.Context) ([]models.Class, error) {
	return f.popularClasses, nil
}
func (f *fakeReportStore) PopularInstructors(ctx context.Context) ([]models.PopularInstructor, error) {
	return f.popularInstructors, nil
}
func (f *fakeReportStore) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	return &f.stats, nil
}
func (f *fakeReportStore) EnrolledClasses(ctx context.Context, email string) ([]models.EnrolledClass, error) {
	return f.enrolled, nil
}

func reportApp(store *fakeReportStore) *fiber.App {
	h := NewReportHandler(store)

	app := fiber.New()
	app.Get("/reports/popular-classes", h.PopularClasses)
	app.Get("/reports/popular-instructors", h.PopularInstructors)
	app.Get("/admin/stats", h.AdminStats)
	app.Get("/enrolled-classes/:email", h.EnrolledClasses)
	return app
}

func TestPopularClassesOrderedAndCapped(t *testing.T) {
	// The store query sorts by total_enrolled desc and limits to 6; the
	// handler passes the rows through untouched.
	store := &fakeReportStore{popularClasses: []models.Class{
		{Name: "Vinyasa", TotalEnrolled: 90},
		{Name: "Hatha", TotalEnrolled: 60},
		{Name: "Yin", TotalEnrolled: 10},
	}}
	app := reportApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/reports/popular-classes", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var classes []models.Class
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&classes))
	require.LessOrEqual(t, len(classes), 6)
	for i := 1; i < len(classes); i++ {
		assert.GreaterOrEqual(t, classes[i-1].TotalEnrolled, classes[i].TotalEnrolled)
	}
}

func TestPopularInstructorsKeepsRowsWithoutProfile(t *testing.T) {
	store := &fakeReportStore{popularInstructors: []models.PopularInstructor{
		{InstructorEmail: "known@example.com", TotalEnrolled: 40, Instructor: &models.User{Email: "known@example.com"}},
		{InstructorEmail: "ghost@example.com", TotalEnrolled: 30, Instructor: nil},
	}}
	app := reportApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/reports/popular-instructors", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rows []models.PopularInstructor
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 2)
	assert.Nil(t, rows[1].Instructor, "rows with no matching profile stay in the result")
}

func TestAdminStatsShape(t *testing.T) {
	store := &fakeReportStore{stats: models.AdminStats{
		ApprovedClasses:  4,
		PendingClasses:   2,
		Instructors:      3,
		TotalClasses:     7,
		TotalEnrollments: 11,
	}}
	app := reportApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/stats", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stats models.AdminStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.GreaterOrEqual(t, stats.ApprovedClasses, int64(0))
	assert.Equal(t, int64(7), stats.TotalClasses)
	assert.Equal(t, int64(11), stats.TotalEnrollments)
}

func TestEnrolledClassesByEmail(t *testing.T) {
	store := &fakeReportStore{enrolled: []models.EnrolledClass{
		{Class: models.Class{Name: "Vinyasa"}, Instructor: &models.User{Name: "Maya"}},
	}}
	app := reportApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/enrolled-classes/student@example.com", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rows []models.EnrolledClass
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Vinyasa", rows[0].Class.Name)
	assert.Equal(t, "Maya", rows[0].Instructor.Name)
}
