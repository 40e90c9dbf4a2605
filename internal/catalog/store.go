// Package catalog holds the in-memory snapshot of the course catalog fetched from the backend
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/examdesk/admin-console/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrReloadSuperseded is returned by a reload that was replaced by a newer one before committing
var ErrReloadSuperseded = errors.New("catalog reload superseded by a newer reload")

// defaultFetchConcurrency bounds the in-flight backend requests of one reload level
const defaultFetchConcurrency = 8

// Backend defines the read endpoints the catalog is loaded from
type Backend interface {
	// ListCourses retrieves every course
	ListCourses(ctx context.Context) ([]models.Course, error)
	// ListModules retrieves the modules of a course
	ListModules(ctx context.Context, courseID int) ([]models.Module, error)
	// ListContents retrieves the content items of a module
	ListContents(ctx context.Context, moduleID int) ([]models.Content, error)
	// ListVersions retrieves the version history of a content item
	ListVersions(ctx context.Context, contentID int) ([]models.ContentVersion, error)
}

// Store owns the current catalog snapshot.
// Readers always see one complete snapshot; a reload replaces it as one unit.
type Store struct {
	backend     Backend
	logger      *zap.Logger
	concurrency int
	now         func() time.Time

	mu       sync.RWMutex
	snapshot *Snapshot

	reloadMu   sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

// NewStore creates a store holding an empty snapshot
func NewStore(backend Backend, logger *zap.Logger) *Store {
	return &Store{
		backend:     backend,
		logger:      logger,
		concurrency: defaultFetchConcurrency,
		now:         time.Now,
		snapshot:    newSnapshot(),
	}
}

// Snapshot returns the current snapshot
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Reload fetches the whole catalog and replaces the snapshot if every fetch succeeded.
// Starting a reload cancels the one in flight; a superseded reload returns
// ErrReloadSuperseded and never commits. On failure the snapshot is left unchanged.
func (s *Store) Reload(ctx context.Context) error {
	ctx, gen := s.begin(ctx)

	start := s.now()
	snapshot, err := s.fetch(ctx)
	if err != nil {
		if s.superseded(gen) {
			return ErrReloadSuperseded
		}
		s.finish(gen)
		return fmt.Errorf("failed to reload catalog: %w", err)
	}

	if !s.commit(gen, snapshot) {
		return ErrReloadSuperseded
	}

	counts := snapshot.Counts()
	s.logger.Debug("catalog reloaded",
		zap.Uint64("generation", gen),
		zap.Int("courses", counts.Courses),
		zap.Int("modules", counts.Modules),
		zap.Int("contents", counts.Contents),
		zap.Int("versions", counts.Versions),
		zap.Duration("took", s.now().Sub(start)),
	)
	return nil
}

// begin registers a new reload generation and cancels the previous one
func (s *Store) begin(ctx context.Context) (context.Context, uint64) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	return ctx, s.generation
}

func (s *Store) superseded(gen uint64) bool {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()
	return gen != s.generation
}

// finish releases the context of the latest reload
func (s *Store) finish(gen uint64) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()
	if gen == s.generation && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// commit swaps in the snapshot unless a newer reload started meanwhile
func (s *Store) commit(gen uint64, snapshot *Snapshot) bool {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()
	if gen != s.generation {
		return false
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	s.cancel()
	s.cancel = nil
	return true
}

// fetch loads courses, then all modules, then all contents, then all versions.
// Each level is fetched concurrently and awaited jointly.
func (s *Store) fetch(ctx context.Context) (*Snapshot, error) {
	courses, err := s.backend.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := newSnapshot()
	courseIDs := make([]int, 0, len(courses))
	for _, c := range courses {
		snapshot.addCourse(c)
		courseIDs = append(courseIDs, c.ID)
	}

	modules, err := fetchLevel(ctx, s.concurrency, courseIDs, s.backend.ListModules)
	if err != nil {
		return nil, err
	}
	var moduleIDs []int
	for i, courseID := range courseIDs {
		snapshot.addModules(courseID, modules[i])
		moduleIDs = append(moduleIDs, snapshot.moduleIDsByCourse[courseID]...)
	}

	contents, err := fetchLevel(ctx, s.concurrency, moduleIDs, s.backend.ListContents)
	if err != nil {
		return nil, err
	}
	var contentIDs []int
	for i, moduleID := range moduleIDs {
		snapshot.addContents(moduleID, contents[i])
		contentIDs = append(contentIDs, snapshot.contentIDsByModule[moduleID]...)
	}

	versions, err := fetchLevel(ctx, s.concurrency, contentIDs, s.backend.ListVersions)
	if err != nil {
		return nil, err
	}
	for i, contentID := range contentIDs {
		snapshot.addVersions(contentID, versions[i])
	}

	snapshot.loadedAt = s.now()
	return snapshot, nil
}

// fetchLevel calls list for every parent id concurrently; results keep the order of parentIDs.
// The first failure cancels the remaining calls.
func fetchLevel[T any](ctx context.Context, limit int, parentIDs []int, list func(context.Context, int) ([]T, error)) ([][]T, error) {
	results := make([][]T, len(parentIDs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, id := range parentIDs {
		g.Go(func() error {
			items, err := list(ctx, id)
			if err != nil {
				return err
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Courses returns the courses of the current snapshot
func (s *Store) Courses() []models.Course { return s.Snapshot().Courses() }

// Modules returns the modules of a course in the current snapshot
func (s *Store) Modules(courseID int) []models.Module { return s.Snapshot().Modules(courseID) }

// Contents returns the content items of a module in the current snapshot
func (s *Store) Contents(moduleID int) []models.Content { return s.Snapshot().Contents(moduleID) }

// Versions returns the version history of a content item in the current snapshot
func (s *Store) Versions(contentID int) []models.ContentVersion {
	return s.Snapshot().Versions(contentID)
}

// Course returns a course of the current snapshot
func (s *Store) Course(id int) (models.Course, bool) { return s.Snapshot().Course(id) }

// Module returns a module of the current snapshot
func (s *Store) Module(id int) (models.Module, bool) { return s.Snapshot().Module(id) }

// Content returns a content item of the current snapshot
func (s *Store) Content(id int) (models.Content, bool) { return s.Snapshot().Content(id) }

// Tree returns the nested view of the current snapshot
func (s *Store) Tree() []CourseNode { return s.Snapshot().Tree() }

// LoadedAt returns when the current snapshot was fetched
func (s *Store) LoadedAt() time.Time { return s.Snapshot().LoadedAt() }
