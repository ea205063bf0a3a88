package room

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidCampus   = errors.New("invalid campus")
	ErrEmptyResources  = errors.New("resource list cannot be empty")
	ErrUnknownResource = errors.New("unknown resource")
	ErrInvalidName     = errors.New("name must be between 1 and 255 characters")
	ErrInvalidCapacity = errors.New("capacity must be greater than zero")
)

// Resources is the canonical amenity set of a room: deduplicated, sorted,
// comma-joined. Input order, duplicates and whitespace are normalized away so
// the stored form is stable regardless of how the client spelled it.
type Resources struct {
	tags []ResourceTag
}

func NewResources(raw string) (Resources, error) {
	if strings.TrimSpace(raw) == "" {
		return Resources{}, ErrEmptyResources
	}

	seen := make(map[ResourceTag]bool)
	var tags []ResourceTag
	for _, segment := range strings.Split(raw, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		tag := ResourceTag(segment)
		if !tag.IsValid() {
			return Resources{}, fmt.Errorf("%w: %q", ErrUnknownResource, segment)
		}
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return Resources{}, ErrEmptyResources
	}

	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return Resources{tags: tags}, nil
}

// ReconstructResources rebuilds a stored resource list without re-running
// validation, so rows written under an older tag set rehydrate intact.
func ReconstructResources(raw string) Resources {
	var tags []ResourceTag
	for _, segment := range strings.Split(raw, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		tags = append(tags, ResourceTag(segment))
	}
	return Resources{tags: tags}
}

func (r Resources) String() string {
	parts := make([]string, len(r.tags))
	for i, t := range r.tags {
		parts[i] = t.String()
	}
	return strings.Join(parts, ",")
}

func (r Resources) Tags() []ResourceTag {
	out := make([]ResourceTag, len(r.tags))
	copy(out, r.tags)
	return out
}

func (r Resources) Contains(tag ResourceTag) bool {
	for _, t := range r.tags {
		if t == tag {
			return true
		}
	}
	return false
}
