// Package roster holds the chamber's reference data: parliamentary groups and
// the politicians who sit for them. A Roster is immutable once built.
package roster

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/parliament/internal/errors"
)

// Orientation is a group's position on the political spectrum.
type Orientation string

// Orientations, ordered left to right.
const (
	FarLeft   Orientation = "far_left"
	LeftWing  Orientation = "left_wing"
	Center    Orientation = "center"
	RightWing Orientation = "right_wing"
	FarRight  Orientation = "far_right"
)

// Orientations returns every orientation, ordered left to right.
func Orientations() []Orientation {
	return []Orientation{FarLeft, LeftWing, Center, RightWing, FarRight}
}

// Label returns the display name, e.g. "Left Wing".
func (o Orientation) Label() string {
	switch o {
	case FarLeft:
		return "Far Left"
	case LeftWing:
		return "Left Wing"
	case Center:
		return "Center"
	case RightWing:
		return "Right Wing"
	case FarRight:
		return "Far Right"
	default:
		return string(o)
	}
}

// Valid reports whether o is a known orientation.
func (o Orientation) Valid() bool {
	return slices.Contains(Orientations(), o)
}

// ParseOrientation accepts slugs ("left_wing"), labels ("Left Wing") and
// camel-case names ("LeftWing").
func ParseOrientation(s string) (Orientation, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(norm)
	for _, o := range Orientations() {
		if strings.ReplaceAll(string(o), "_", "") == norm {
			return o, nil
		}
	}
	return "", errors.NewValidationError(fmt.Sprintf("unknown orientation %q", s)).WithField("orientation")
}

// Group is a parliamentary group.
type Group struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Color       string      `json:"color,omitempty"` // display hint, e.g. "#1E40AF"
	Orientation Orientation `json:"orientation"`
	SeatsCount  int         `json:"seatsCount"`
	Description string      `json:"description,omitempty"`
}

// Politician is a member of the chamber.
type Politician struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	GroupID   string `json:"groupId"`
	Role      string `json:"role,omitempty"` // optional, e.g. "Group Leader"
	Specialty string `json:"specialty,omitempty"`
}

// Roster is the read-only catalog of groups and politicians.
type Roster struct {
	groups      []Group
	politicians []Politician
	groupIdx    map[string]int
	polIdx      map[string]int
}

// New validates the reference data and builds a Roster. Group and politician
// ids must be unique and non-empty, seat counts non-negative, and every
// politician must belong to a known group.
func New(groups []Group, politicians []Politician) (*Roster, error) {
	r := &Roster{
		groups:      slices.Clone(groups),
		politicians: slices.Clone(politicians),
		groupIdx:    make(map[string]int, len(groups)),
		polIdx:      make(map[string]int, len(politicians)),
	}

	for i, g := range r.groups {
		if g.ID == "" {
			return nil, invalid("group id is required", "group.id", "")
		}
		if _, dup := r.groupIdx[g.ID]; dup {
			return nil, invalid("duplicate group id", "group.id", g.ID)
		}
		if g.SeatsCount < 0 {
			return nil, invalid("seats must be non-negative", "group.seats", g.SeatsCount)
		}
		if !g.Orientation.Valid() {
			return nil, invalid("unknown orientation", "group.orientation", g.Orientation)
		}
		r.groupIdx[g.ID] = i
	}

	for i, p := range r.politicians {
		if p.ID == "" {
			return nil, invalid("politician id is required", "politician.id", "")
		}
		if _, dup := r.polIdx[p.ID]; dup {
			return nil, invalid("duplicate politician id", "politician.id", p.ID)
		}
		if _, ok := r.groupIdx[p.GroupID]; !ok {
			return nil, errors.GroupNotFound(p.GroupID)
		}
		r.polIdx[p.ID] = i
	}

	return r, nil
}

func invalid(msg, field string, value any) error {
	return errors.NewValidationError(msg).WithField(field).WithValue(value).WithCause(errors.ErrSeedInvalid)
}

// Groups returns all groups in load order.
func (r *Roster) Groups() []Group {
	return slices.Clone(r.groups)
}

// Group looks up a group by id.
func (r *Roster) Group(id string) (Group, error) {
	i, ok := r.groupIdx[id]
	if !ok {
		return Group{}, errors.GroupNotFound(id)
	}
	return r.groups[i], nil
}

// Politicians returns all politicians in load order.
func (r *Roster) Politicians() []Politician {
	return slices.Clone(r.politicians)
}

// Politician looks up a politician by id.
func (r *Roster) Politician(id string) (Politician, error) {
	i, ok := r.polIdx[id]
	if !ok {
		return Politician{}, errors.PoliticianNotFound(id)
	}
	return r.politicians[i], nil
}

// PoliticiansInGroup returns the members of a group in load order.
func (r *Roster) PoliticiansInGroup(groupID string) ([]Politician, error) {
	if _, ok := r.groupIdx[groupID]; !ok {
		return nil, errors.GroupNotFound(groupID)
	}
	var out []Politician
	for _, p := range r.politicians {
		if p.GroupID == groupID {
			out = append(out, p)
		}
	}
	return out, nil
}

// GroupOf returns the group a politician sits for.
func (r *Roster) GroupOf(politicianID string) (Group, error) {
	p, err := r.Politician(politicianID)
	if err != nil {
		return Group{}, err
	}
	return r.Group(p.GroupID)
}

// TotalSeats sums the seats of every group.
func (r *Roster) TotalSeats() int {
	total := 0
	for _, g := range r.groups {
		total += g.SeatsCount
	}
	return total
}
