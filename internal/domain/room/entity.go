package room

import (
	"strings"
	"time"
)

const maxNameLength = 255

type Room struct {
	id        int64
	name      string
	campus    Campus
	capacity  int
	resources Resources
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(name string, campus Campus, capacity int, resources Resources) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLength {
		return nil, ErrInvalidName
	}
	if !campus.IsValid() {
		return nil, ErrInvalidCampus
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Room{
		name:      name,
		campus:    campus,
		capacity:  capacity,
		resources: resources,
	}, nil
}

func Reconstruct(id int64, name string, campus Campus, capacity int, resources Resources, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:        id,
		name:      name,
		campus:    campus,
		capacity:  capacity,
		resources: resources,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Room) ID() int64            { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) Campus() Campus       { return r.campus }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) Resources() Resources { return r.resources }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
