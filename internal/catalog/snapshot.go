package catalog

import (
	"sort"
	"time"

	"github.com/examdesk/admin-console/internal/models"
	"github.com/examdesk/admin-console/internal/versioning"
)

// Snapshot is an immutable, normalized copy of the catalog.
// Entities are keyed by id; parents keep the ordered ids of their children.
type Snapshot struct {
	courses  map[int]models.Course
	modules  map[int]models.Module
	contents map[int]models.Content
	versions map[int][]models.ContentVersion

	courseIDs          []int
	moduleIDsByCourse  map[int][]int
	contentIDsByModule map[int][]int

	loadedAt time.Time
}

func newSnapshot() *Snapshot {
	return &Snapshot{
		courses:            make(map[int]models.Course),
		modules:            make(map[int]models.Module),
		contents:           make(map[int]models.Content),
		versions:           make(map[int][]models.ContentVersion),
		moduleIDsByCourse:  make(map[int][]int),
		contentIDsByModule: make(map[int][]int),
	}
}

func (s *Snapshot) addCourse(c models.Course) {
	s.courses[c.ID] = c
	s.courseIDs = append(s.courseIDs, c.ID)
}

// addModules stores the modules of a course sorted by order index
func (s *Snapshot) addModules(courseID int, modules []models.Module) {
	sorted := append([]models.Module(nil), modules...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderIndex < sorted[j].OrderIndex
	})
	ids := make([]int, 0, len(sorted))
	for _, m := range sorted {
		if m.CourseID == 0 {
			m.CourseID = courseID
		}
		s.modules[m.ID] = m
		ids = append(ids, m.ID)
	}
	s.moduleIDsByCourse[courseID] = ids
}

func (s *Snapshot) addContents(moduleID int, contents []models.Content) {
	ids := make([]int, 0, len(contents))
	for _, c := range contents {
		if c.ModuleID == 0 {
			c.ModuleID = moduleID
		}
		s.contents[c.ID] = c
		ids = append(ids, c.ID)
	}
	s.contentIDsByModule[moduleID] = ids
}

func (s *Snapshot) addVersions(contentID int, versions []models.ContentVersion) {
	s.versions[contentID] = append([]models.ContentVersion(nil), versions...)
}

// LoadedAt returns when the snapshot was fetched; zero for the empty snapshot
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// Courses returns the courses in backend order
func (s *Snapshot) Courses() []models.Course {
	courses := make([]models.Course, 0, len(s.courseIDs))
	for _, id := range s.courseIDs {
		courses = append(courses, s.courses[id])
	}
	return courses
}

// Modules returns the modules of a course ordered by order index
func (s *Snapshot) Modules(courseID int) []models.Module {
	ids := s.moduleIDsByCourse[courseID]
	modules := make([]models.Module, 0, len(ids))
	for _, id := range ids {
		modules = append(modules, s.modules[id])
	}
	return modules
}

// Contents returns the content items of a module in backend order
func (s *Snapshot) Contents(moduleID int) []models.Content {
	ids := s.contentIDsByModule[moduleID]
	contents := make([]models.Content, 0, len(ids))
	for _, id := range ids {
		contents = append(contents, s.contents[id])
	}
	return contents
}

// Versions returns the version history of a content item in backend order
func (s *Snapshot) Versions(contentID int) []models.ContentVersion {
	return append([]models.ContentVersion(nil), s.versions[contentID]...)
}

// Course returns a course by id
func (s *Snapshot) Course(id int) (models.Course, bool) {
	c, ok := s.courses[id]
	return c, ok
}

// Module returns a module by id
func (s *Snapshot) Module(id int) (models.Module, bool) {
	m, ok := s.modules[id]
	return m, ok
}

// Content returns a content item by id
func (s *Snapshot) Content(id int) (models.Content, bool) {
	c, ok := s.contents[id]
	return c, ok
}

// Version returns a version of a content item by id
func (s *Snapshot) Version(contentID, versionID int) (models.ContentVersion, bool) {
	for _, v := range s.versions[contentID] {
		if v.ID == versionID {
			return v, true
		}
	}
	return models.ContentVersion{}, false
}

// Counts returns the number of entities of each kind
func (s *Snapshot) Counts() Counts {
	counts := Counts{
		Courses:  len(s.courses),
		Modules:  len(s.modules),
		Contents: len(s.contents),
	}
	for _, v := range s.versions {
		counts.Versions += len(v)
	}
	return counts
}

// Counts summarizes the size of a snapshot
type Counts struct {
	Courses  int `json:"courses"`
	Modules  int `json:"modules"`
	Contents int `json:"contents"`
	Versions int `json:"versions"`
}

// CourseNode is a course with its nested modules
type CourseNode struct {
	models.Course
	Modules []ModuleNode `json:"modules"`
}

// ModuleNode is a module with its nested content items
type ModuleNode struct {
	models.Module
	Contents []ContentNode `json:"contents"`
}

// ContentNode is a content item with its version history, newest first.
// Content is not embedded since its JSON encoding is custom.
type ContentNode struct {
	Content        models.Content          `json:"content"`
	Versions       []models.ContentVersion `json:"versions"`
	CurrentVersion *models.ContentVersion  `json:"current_version,omitempty"`
}

// Tree builds the nested view of the snapshot used for rendering
func (s *Snapshot) Tree() []CourseNode {
	tree := make([]CourseNode, 0, len(s.courseIDs))
	for _, course := range s.Courses() {
		node := CourseNode{Course: course, Modules: []ModuleNode{}}
		for _, module := range s.Modules(course.ID) {
			moduleNode := ModuleNode{Module: module, Contents: []ContentNode{}}
			for _, content := range s.Contents(module.ID) {
				moduleNode.Contents = append(moduleNode.Contents, s.contentNode(content))
			}
			node.Modules = append(node.Modules, moduleNode)
		}
		tree = append(tree, node)
	}
	return tree
}

func (s *Snapshot) contentNode(content models.Content) ContentNode {
	versions := s.Versions(content.ID)
	node := ContentNode{Content: content}
	if current, ok := versioning.CurrentVersion(versions); ok {
		node.CurrentVersion = &current
	}
	versioning.SortNewestFirst(versions)
	node.Versions = versions
	if node.Versions == nil {
		node.Versions = []models.ContentVersion{}
	}
	return node
}
