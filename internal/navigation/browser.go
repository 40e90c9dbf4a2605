// Package navigation implements the three-level catalog drill-down: courses, modules, content
package navigation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/examdesk/admin-console/internal/models"
	"github.com/examdesk/admin-console/internal/versioning"
)

// Level is the level of the catalog currently displayed
type Level string

const (
	LevelCourses Level = "courses"
	LevelModules Level = "modules"
	LevelContent Level = "content"
)

// ErrNoCourseSelected is returned when selecting a module before a course
var ErrNoCourseSelected = errors.New("no course selected")

// Catalog defines the snapshot reads the browser needs
type Catalog interface {
	// Courses returns every course
	Courses() []models.Course
	// Modules returns the modules of a course
	Modules(courseID int) []models.Module
	// Contents returns the content items of a module
	Contents(moduleID int) []models.Content
	// Versions returns the version history of a content item
	Versions(contentID int) []models.ContentVersion
	// Course returns a course by id
	Course(id int) (models.Course, bool)
	// Module returns a module by id
	Module(id int) (models.Module, bool)
}

// ContentRow is a content item as listed at the content level
type ContentRow struct {
	Content        models.Content `json:"content"`
	CurrentVersion string         `json:"current_version,omitempty"`
	VersionCount   int            `json:"version_count"`
}

// View is what the browser currently displays
type View struct {
	Level            Level           `json:"level"`
	SelectedCourseID *int            `json:"selected_course_id,omitempty"`
	SelectedModuleID *int            `json:"selected_module_id,omitempty"`
	Course           *models.Course  `json:"course,omitempty"`
	Module           *models.Module  `json:"module,omitempty"`
	Courses          []models.Course `json:"courses,omitempty"`
	Modules          []models.Module `json:"modules,omitempty"`
	Contents         []ContentRow    `json:"contents,omitempty"`
}

// Browser holds the selections of the catalog drill-down.
// It only stores ids; rows are always read from the latest snapshot.
type Browser struct {
	mu       sync.Mutex
	catalog  Catalog
	courseID *int
	moduleID *int
}

// NewBrowser creates a browser at the courses level
func NewBrowser(catalog Catalog) *Browser {
	return &Browser{catalog: catalog}
}

// SelectCourse moves to the modules level of a course
func (b *Browser) SelectCourse(courseID int) (*View, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.catalog.Course(courseID); !ok {
		return nil, fmt.Errorf("course not found")
	}
	b.courseID = &courseID
	b.moduleID = nil
	return b.view(), nil
}

// SelectModule moves to the content level of a module of the selected course
func (b *Browser) SelectModule(moduleID int) (*View, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.reconcile()
	if b.courseID == nil {
		return nil, ErrNoCourseSelected
	}
	module, ok := b.catalog.Module(moduleID)
	if !ok || module.CourseID != *b.courseID {
		return nil, fmt.Errorf("module not found")
	}
	b.moduleID = &moduleID
	return b.view(), nil
}

// Back moves one level up, clearing exactly the deepest selection.
// At the courses level it does nothing.
func (b *Browser) Back() *View {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case b.moduleID != nil:
		b.moduleID = nil
	case b.courseID != nil:
		b.courseID = nil
	}
	return b.view()
}

// View returns the current level with its rows
func (b *Browser) View() *View {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.reconcile()
	return b.view()
}

func (b *Browser) level() Level {
	switch {
	case b.moduleID != nil:
		return LevelContent
	case b.courseID != nil:
		return LevelModules
	default:
		return LevelCourses
	}
}

// reconcile drops selections whose entity disappeared in a reload
func (b *Browser) reconcile() {
	if b.courseID != nil {
		if _, ok := b.catalog.Course(*b.courseID); !ok {
			b.courseID = nil
			b.moduleID = nil
			return
		}
	}
	if b.moduleID != nil {
		if _, ok := b.catalog.Module(*b.moduleID); !ok {
			b.moduleID = nil
		}
	}
}

func (b *Browser) view() *View {
	v := &View{Level: b.level()}
	switch v.Level {
	case LevelCourses:
		v.Courses = b.catalog.Courses()
	case LevelModules:
		v.SelectedCourseID = copyID(b.courseID)
		if course, ok := b.catalog.Course(*b.courseID); ok {
			v.Course = &course
		}
		v.Modules = b.catalog.Modules(*b.courseID)
	case LevelContent:
		v.SelectedCourseID = copyID(b.courseID)
		v.SelectedModuleID = copyID(b.moduleID)
		if course, ok := b.catalog.Course(*b.courseID); ok {
			v.Course = &course
		}
		if module, ok := b.catalog.Module(*b.moduleID); ok {
			v.Module = &module
		}
		for _, content := range b.catalog.Contents(*b.moduleID) {
			versions := b.catalog.Versions(content.ID)
			row := ContentRow{Content: content, VersionCount: len(versions)}
			if current, ok := versioning.CurrentVersion(versions); ok {
				row.CurrentVersion = current.Version
			}
			v.Contents = append(v.Contents, row)
		}
	}
	return v
}

func copyID(id *int) *int {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
