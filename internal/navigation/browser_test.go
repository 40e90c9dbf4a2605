package navigation

import (
	"testing"
	"time"

	"github.com/examdesk/admin-console/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatalog is a mock implementation of Catalog
type mockCatalog struct {
	courses  []models.Course
	modules  []models.Module
	contents []models.Content
	versions map[int][]models.ContentVersion
}

func (m *mockCatalog) Courses() []models.Course { return m.courses }

func (m *mockCatalog) Modules(courseID int) []models.Module {
	var result []models.Module
	for _, mod := range m.modules {
		if mod.CourseID == courseID {
			result = append(result, mod)
		}
	}
	return result
}

func (m *mockCatalog) Contents(moduleID int) []models.Content {
	var result []models.Content
	for _, c := range m.contents {
		if c.ModuleID == moduleID {
			result = append(result, c)
		}
	}
	return result
}

func (m *mockCatalog) Versions(contentID int) []models.ContentVersion {
	return m.versions[contentID]
}

func (m *mockCatalog) Course(id int) (models.Course, bool) {
	for _, c := range m.courses {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

func (m *mockCatalog) Module(id int) (models.Module, bool) {
	for _, mod := range m.modules {
		if mod.ID == id {
			return mod, true
		}
	}
	return models.Module{}, false
}

func newMockCatalog() *mockCatalog {
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	return &mockCatalog{
		courses: []models.Course{{ID: 1, Title: "JEE Physics"}, {ID: 2, Title: "NEET Biology"}},
		modules: []models.Module{
			{ID: 10, CourseID: 1, Title: "Mechanics"},
			{ID: 11, CourseID: 1, Title: "Optics"},
			{ID: 20, CourseID: 2, Title: "Cells"},
		},
		contents: []models.Content{
			{ID: 100, ModuleID: 10, Title: "Newton's laws"},
			{ID: 101, ModuleID: 10, Title: "Friction"},
			{ID: 200, ModuleID: 20, Title: "Mitosis"},
		},
		versions: map[int][]models.ContentVersion{
			100: {
				{Version: "2.0", Status: models.VersionStatusDraft, CreatedAt: base.Add(time.Hour)},
				{Version: "1.0", Status: models.VersionStatusPublished, CreatedAt: base},
			},
		},
	}
}

func TestNewBrowser(t *testing.T) {
	browser := NewBrowser(newMockCatalog())

	view := browser.View()

	assert.Equal(t, LevelCourses, view.Level)
	assert.Len(t, view.Courses, 2)
	assert.Nil(t, view.SelectedCourseID)
}

func TestBrowser_DrillDownAndBack(t *testing.T) {
	browser := NewBrowser(newMockCatalog())

	view, err := browser.SelectCourse(1)
	require.NoError(t, err)
	assert.Equal(t, LevelModules, view.Level)
	require.NotNil(t, view.SelectedCourseID)
	assert.Equal(t, 1, *view.SelectedCourseID)
	assert.Equal(t, "JEE Physics", view.Course.Title)
	assert.Len(t, view.Modules, 2)

	view, err = browser.SelectModule(10)
	require.NoError(t, err)
	assert.Equal(t, LevelContent, view.Level)
	require.Len(t, view.Contents, 2)
	assert.Equal(t, "1.0", view.Contents[0].CurrentVersion)
	assert.Equal(t, 2, view.Contents[0].VersionCount)
	assert.Empty(t, view.Contents[1].CurrentVersion)

	view = browser.Back()
	assert.Equal(t, LevelModules, view.Level)
	assert.Nil(t, view.SelectedModuleID)
	require.NotNil(t, view.SelectedCourseID)
	assert.Equal(t, 1, *view.SelectedCourseID)

	view = browser.Back()
	assert.Equal(t, LevelCourses, view.Level)
	assert.Nil(t, view.SelectedCourseID, "course is no longer selected")
	assert.Nil(t, view.SelectedModuleID)
	assert.Len(t, view.Courses, 2)

	view = browser.Back()
	assert.Equal(t, LevelCourses, view.Level)
}

func TestBrowser_SelectCourse(t *testing.T) {
	tests := []struct {
		name          string
		courseID      int
		expectedError string
	}{
		{name: "existing course", courseID: 2},
		{name: "unknown course", courseID: 99, expectedError: "course not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			browser := NewBrowser(newMockCatalog())

			view, err := browser.SelectCourse(tt.courseID)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				assert.Nil(t, view)
				assert.Equal(t, LevelCourses, browser.View().Level)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, LevelModules, view.Level)
		})
	}
}

func TestBrowser_SelectModule(t *testing.T) {
	tests := []struct {
		name          string
		selectCourse  bool
		moduleID      int
		expectedError string
	}{
		{name: "module of selected course", selectCourse: true, moduleID: 11},
		{name: "module of another course", selectCourse: true, moduleID: 20, expectedError: "module not found"},
		{name: "unknown module", selectCourse: true, moduleID: 99, expectedError: "module not found"},
		{name: "no course selected", moduleID: 10, expectedError: "no course selected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			browser := NewBrowser(newMockCatalog())
			if tt.selectCourse {
				_, err := browser.SelectCourse(1)
				require.NoError(t, err)
			}

			view, err := browser.SelectModule(tt.moduleID)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, LevelContent, view.Level)
		})
	}
}

func TestBrowser_SelectingAnotherCourseClearsModule(t *testing.T) {
	browser := NewBrowser(newMockCatalog())
	_, err := browser.SelectCourse(1)
	require.NoError(t, err)
	_, err = browser.SelectModule(10)
	require.NoError(t, err)

	view, err := browser.SelectCourse(2)

	require.NoError(t, err)
	assert.Equal(t, LevelModules, view.Level)
	assert.Nil(t, view.SelectedModuleID)
	assert.Equal(t, []models.Module{{ID: 20, CourseID: 2, Title: "Cells"}}, view.Modules)
}

func TestBrowser_ViewAfterEntityRemoved(t *testing.T) {
	catalog := newMockCatalog()
	browser := NewBrowser(catalog)
	_, err := browser.SelectCourse(1)
	require.NoError(t, err)
	_, err = browser.SelectModule(10)
	require.NoError(t, err)

	catalog.modules = catalog.modules[1:]
	view := browser.View()
	assert.Equal(t, LevelModules, view.Level)
	assert.Len(t, view.Modules, 1)

	catalog.courses = catalog.courses[1:]
	view = browser.View()
	assert.Equal(t, LevelCourses, view.Level)
	assert.Len(t, view.Courses, 1)
}
