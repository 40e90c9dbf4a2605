package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/examdesk/admin-console/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockBackend is a mock implementation of Backend serving a fixed catalog
type mockBackend struct {
	mu       sync.Mutex
	courses  []models.Course
	modules  map[int][]models.Module
	contents map[int][]models.Content
	versions map[int][]models.ContentVersion

	coursesErr  error
	modulesErr  map[int]error
	versionsErr error

	listCourses func(ctx context.Context) ([]models.Course, error)
}

func (m *mockBackend) ListCourses(ctx context.Context) ([]models.Course, error) {
	if m.listCourses != nil {
		return m.listCourses(ctx)
	}
	if m.coursesErr != nil {
		return nil, m.coursesErr
	}
	return m.courses, nil
}

func (m *mockBackend) ListModules(ctx context.Context, courseID int) ([]models.Module, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.modulesErr[courseID]; err != nil {
		return nil, err
	}
	return m.modules[courseID], nil
}

func (m *mockBackend) ListContents(ctx context.Context, moduleID int) ([]models.Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.contents[moduleID], nil
}

func (m *mockBackend) ListVersions(ctx context.Context, contentID int) ([]models.ContentVersion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.versionsErr != nil {
		return nil, m.versionsErr
	}
	return m.versions[contentID], nil
}

func newCatalogBackend() *mockBackend {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &mockBackend{
		courses: []models.Course{
			{ID: 1, Title: "JEE Physics", Status: models.CourseStatusPublished},
			{ID: 2, Title: "NEET Biology", Status: models.CourseStatusDraft},
		},
		modules: map[int][]models.Module{
			1: {
				{ID: 11, CourseID: 1, Title: "Optics", OrderIndex: 2},
				{ID: 10, CourseID: 1, Title: "Mechanics", OrderIndex: 1},
			},
			2: {{ID: 20, CourseID: 2, Title: "Cells", OrderIndex: 1}},
		},
		contents: map[int][]models.Content{
			10: {
				{ID: 100, ModuleID: 10, Title: "Newton's laws", ContentType: models.ContentTypeDocument},
				{ID: 101, Title: "Kinematics quiz", ContentType: models.ContentTypeQuiz},
			},
		},
		versions: map[int][]models.ContentVersion{
			100: {
				{ID: 1, ContentID: 100, Version: "1.0", Status: models.VersionStatusPublished, CreatedAt: base},
				{ID: 2, ContentID: 100, Version: "2.0", Status: models.VersionStatusDraft, CreatedAt: base.Add(time.Hour)},
			},
		},
		modulesErr: map[int]error{},
	}
}

func setupTestStore(t *testing.T, backend Backend) *Store {
	t.Helper()
	return NewStore(backend, zap.NewNop())
}

func TestNewStore(t *testing.T) {
	store := setupTestStore(t, &mockBackend{})

	assert.NotNil(t, store)
	assert.Empty(t, store.Courses())
	assert.True(t, store.LoadedAt().IsZero())
}

func TestStore_Reload(t *testing.T) {
	store := setupTestStore(t, newCatalogBackend())

	err := store.Reload(context.Background())

	require.NoError(t, err)
	assert.False(t, store.LoadedAt().IsZero())

	courses := store.Courses()
	require.Len(t, courses, 2)
	assert.Equal(t, "JEE Physics", courses[0].Title)

	modules := store.Modules(1)
	require.Len(t, modules, 2)
	assert.Equal(t, "Mechanics", modules[0].Title, "modules are ordered by order index")
	assert.Equal(t, "Optics", modules[1].Title)

	contents := store.Contents(10)
	require.Len(t, contents, 2)
	assert.Equal(t, 10, contents[1].ModuleID, "missing parent reference is filled from the request")

	module, ok := store.Module(20)
	require.True(t, ok)
	assert.Equal(t, 2, module.CourseID)

	_, ok = store.Course(99)
	assert.False(t, ok)

	assert.Len(t, store.Versions(100), 2)
	assert.Empty(t, store.Versions(101))
	assert.Equal(t, Counts{Courses: 2, Modules: 3, Contents: 2, Versions: 2}, store.Snapshot().Counts())
}

func TestStore_Tree(t *testing.T) {
	store := setupTestStore(t, newCatalogBackend())
	require.NoError(t, store.Reload(context.Background()))

	tree := store.Tree()

	require.Len(t, tree, 2)
	require.Len(t, tree[0].Modules, 2)
	mechanics := tree[0].Modules[0]
	require.Len(t, mechanics.Contents, 2)

	newton := mechanics.Contents[0]
	assert.Equal(t, []string{"2.0", "1.0"}, []string{newton.Versions[0].Version, newton.Versions[1].Version})
	require.NotNil(t, newton.CurrentVersion)
	assert.Equal(t, "1.0", newton.CurrentVersion.Version, "published version is current, not the greatest label")

	quiz := mechanics.Contents[1]
	assert.Empty(t, quiz.Versions)
	assert.Nil(t, quiz.CurrentVersion)
	assert.Empty(t, tree[1].Modules[0].Contents)
}

func TestStore_ReloadFailureKeepsSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		breakIt func(b *mockBackend)
	}{
		{name: "course list fails", breakIt: func(b *mockBackend) { b.coursesErr = errors.New("connection refused") }},
		{name: "one module list fails", breakIt: func(b *mockBackend) { b.modulesErr[2] = errors.New("boom") }},
		{name: "versions fail", breakIt: func(b *mockBackend) { b.versionsErr = errors.New("boom") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newCatalogBackend()
			store := setupTestStore(t, backend)
			require.NoError(t, store.Reload(context.Background()))
			before := store.Snapshot()

			backend.mu.Lock()
			backend.courses = append(backend.courses, models.Course{ID: 3, Title: "UPSC History"})
			tt.breakIt(backend)
			backend.mu.Unlock()

			err := store.Reload(context.Background())

			assert.Error(t, err)
			assert.Contains(t, err.Error(), "failed to reload catalog")
			assert.Same(t, before, store.Snapshot())
			assert.Len(t, store.Courses(), 2)
		})
	}
}

func TestStore_NewerReloadCancelsInFlight(t *testing.T) {
	backend := newCatalogBackend()
	started := make(chan struct{})
	var calls atomic.Int32
	backend.listCourses = func(ctx context.Context) ([]models.Course, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return backend.courses, nil
	}
	store := setupTestStore(t, backend)

	first := make(chan error, 1)
	go func() { first <- store.Reload(context.Background()) }()
	<-started

	require.NoError(t, store.Reload(context.Background()))

	assert.ErrorIs(t, <-first, ErrReloadSuperseded)
	assert.Len(t, store.Courses(), 2)
}

func TestStore_SupersededReloadNeverCommits(t *testing.T) {
	backend := newCatalogBackend()
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	backend.listCourses = func(ctx context.Context) ([]models.Course, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			return []models.Course{{ID: 42, Title: "stale"}}, nil
		}
		return backend.courses, nil
	}
	store := setupTestStore(t, backend)

	first := make(chan error, 1)
	go func() { first <- store.Reload(context.Background()) }()
	<-started

	require.NoError(t, store.Reload(context.Background()))
	close(release)

	assert.ErrorIs(t, <-first, ErrReloadSuperseded)
	_, stale := store.Course(42)
	assert.False(t, stale)
	assert.Len(t, store.Courses(), 2)
}
