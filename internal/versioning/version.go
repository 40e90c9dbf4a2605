// Package versioning derives content version labels of the form MAJOR.MINOR
package versioning

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/examdesk/admin-console/internal/models"
)

// InitialVersion is the label of the first version of a content item
const InitialVersion = "1.0"

// Label is a parsed MAJOR.MINOR version label
type Label struct {
	Major int
	Minor int
}

// String formats the label as MAJOR.MINOR
func (l Label) String() string {
	return fmt.Sprintf("%d.%d", l.Major, l.Minor)
}

// Less reports whether l orders before other
func (l Label) Less(other Label) bool {
	if l.Major != other.Major {
		return l.Major < other.Major
	}
	return l.Minor < other.Minor
}

// Next returns the label with the minor part incremented.
// It fails when the minor part is already the largest int.
func (l Label) Next() (Label, error) {
	if l.Minor == math.MaxInt {
		return Label{}, fmt.Errorf("invalid version label '%s': minor part cannot be incremented", l)
	}
	return Label{Major: l.Major, Minor: l.Minor + 1}, nil
}

// ParseLabel parses two non-negative integers separated by a single dot
func ParseLabel(s string) (Label, error) {
	majorStr, minorStr, ok := strings.Cut(s, ".")
	if !ok || strings.Contains(minorStr, ".") {
		return Label{}, fmt.Errorf("invalid version label '%s'", s)
	}
	major, err := parseComponent(majorStr)
	if err != nil {
		return Label{}, fmt.Errorf("invalid version label '%s': %w", s, err)
	}
	minor, err := parseComponent(minorStr)
	if err != nil {
		return Label{}, fmt.Errorf("invalid version label '%s': %w", s, err)
	}
	return Label{Major: major, Minor: minor}, nil
}

func parseComponent(s string) (int, error) {
	if s == "" || strings.ContainsAny(s, "+-") {
		return 0, fmt.Errorf("component must be a non-negative integer")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("component must be a non-negative integer")
	}
	return n, nil
}

// Compare returns -1, 0 or 1 when a orders before, equal to or after b
func Compare(a, b Label) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

// Max returns the greatest label of labels. The order of labels is irrelevant.
// The second result is false when labels is empty.
func Max(labels []string) (Label, bool, error) {
	var greatest Label
	found := false
	for _, s := range labels {
		l, err := ParseLabel(s)
		if err != nil {
			return Label{}, false, err
		}
		if !found || greatest.Less(l) {
			greatest = l
			found = true
		}
	}
	return greatest, found, nil
}

// NextVersion returns the label following the greatest existing label,
// or InitialVersion when there are none.
func NextVersion(labels []string) (string, error) {
	greatest, ok, err := Max(labels)
	if err != nil {
		return "", err
	}
	if !ok {
		return InitialVersion, nil
	}
	next, err := greatest.Next()
	if err != nil {
		return "", err
	}
	return next.String(), nil
}

// Labels extracts the version labels of versions
func Labels(versions []models.ContentVersion) []string {
	labels := make([]string, 0, len(versions))
	for _, v := range versions {
		labels = append(labels, v.Version)
	}
	return labels
}

// NextVersionOf returns the next label over the whole history of a content item
func NextVersionOf(versions []models.ContentVersion) (string, error) {
	return NextVersion(Labels(versions))
}

// CurrentVersion returns the version authoritative for end users: the most recently
// created published version (ties broken by the greater label), falling back to the
// first version of the list. The second result is false when versions is empty.
func CurrentVersion(versions []models.ContentVersion) (models.ContentVersion, bool) {
	var current models.ContentVersion
	found := false
	for _, v := range versions {
		if v.Status != models.VersionStatusPublished {
			continue
		}
		if !found || newerThan(v, current) {
			current = v
			found = true
		}
	}
	if found {
		return current, true
	}
	if len(versions) == 0 {
		return models.ContentVersion{}, false
	}
	return versions[0], true
}

func newerThan(a, b models.ContentVersion) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	la, errA := ParseLabel(a.Version)
	lb, errB := ParseLabel(b.Version)
	if errA != nil || errB != nil {
		return false
	}
	return lb.Less(la)
}

// SortNewestFirst orders versions by label, greatest first.
// Unparsable labels sort last in their original order.
func SortNewestFirst(versions []models.ContentVersion) {
	sort.SliceStable(versions, func(i, j int) bool {
		li, errI := ParseLabel(versions[i].Version)
		lj, errJ := ParseLabel(versions[j].Version)
		if errI != nil || errJ != nil {
			return errI == nil && errJ != nil
		}
		return Compare(li, lj) > 0
	})
}

// RestoreRequest builds the request creating a new published version that restores
// target. The label is derived from the whole history, so restoring never reuses a label.
func RestoreRequest(history []models.ContentVersion, target models.ContentVersion, author string) (*models.CreateVersionRequest, error) {
	next, err := NextVersionOf(history)
	if err != nil {
		return nil, err
	}
	return &models.CreateVersionRequest{
		Version:   next,
		Changelog: fmt.Sprintf("Restored from version %s", target.Version),
		FileURL:   target.FileURL,
		FileSize:  target.FileSize,
		Author:    author,
		Status:    models.VersionStatusPublished,
	}, nil
}
