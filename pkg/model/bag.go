package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type bagEntry struct {
	template *Template
	count    int
}

// Bag is the multiset of pieces still available. Templates keep the order in which they were first added, which is
// the order the packers try them in. Take and GiveBack mutate the bag in place and are exact inverses of each other
type Bag struct {
	entries []bagEntry
	indices map[uuid.UUID]int
}

// NewBag builds a bag holding one unit per element of templates; repeating a template adds further units of it
func NewBag(templates ...*Template) *Bag {
	bag := &Bag{indices: make(map[uuid.UUID]int)}
	for _, template := range templates {
		bag.add(template, 1)
	}
	return bag
}

// Put adds count units of template, count must be positive
func (bag *Bag) Put(template *Template, count int) error {
	if count <= 0 {
		return fmt.Errorf("cannot put %d units of %v: count must be positive", count, template.Name())
	}
	bag.add(template, count)
	return nil
}

func (bag *Bag) add(template *Template, count int) {
	index, ok := bag.indices[template.id]
	if !ok {
		index = len(bag.entries)
		bag.indices[template.id] = index
		bag.entries = append(bag.entries, bagEntry{template: template})
	}
	bag.entries[index].count += count
}

// Take removes one unit of template, failing with ErrOutOfStock when none is left
func (bag *Bag) Take(template *Template) error {
	index, ok := bag.indices[template.id]
	if !ok || bag.entries[index].count <= 0 {
		return fmt.Errorf("cannot take %v: %w", template.Name(), ErrOutOfStock)
	}
	bag.entries[index].count--
	return nil
}

// GiveBack returns one unit of template to the bag
func (bag *Bag) GiveBack(template *Template) {
	bag.add(template, 1)
}

func (bag *Bag) Count(template *Template) int {
	index, ok := bag.indices[template.id]
	if !ok {
		return 0
	}
	return bag.entries[index].count
}

// Templates returns the distinct templates with at least one unit left
func (bag *Bag) Templates() []*Template {
	return lo.FilterMap(bag.entries, func(entry bagEntry, _ int) (*Template, bool) {
		return entry.template, entry.count > 0
	})
}

// Size returns the total number of units
func (bag *Bag) Size() int {
	return lo.SumBy(bag.entries, func(entry bagEntry) int { return entry.count })
}

// Volume returns the number of cells the remaining units would cover together
func (bag *Bag) Volume() int {
	return lo.SumBy(bag.entries, func(entry bagEntry) int { return entry.count * entry.template.shape.Len() })
}

func (bag *Bag) IsEmpty() bool {
	return bag.Size() == 0
}

func (bag *Bag) Clone() *Bag {
	clone := &Bag{
		entries: make([]bagEntry, len(bag.entries)),
		indices: make(map[uuid.UUID]int, len(bag.indices)),
	}
	copy(clone.entries, bag.entries)
	for id, index := range bag.indices {
		clone.indices[id] = index
	}
	return clone
}

// Equal reports whether both bags hold the same number of units of every template
func (bag *Bag) Equal(other *Bag) bool {
	for _, entry := range bag.entries {
		if other.Count(entry.template) != entry.count {
			return false
		}
	}
	for _, entry := range other.entries {
		if bag.Count(entry.template) != entry.count {
			return false
		}
	}
	return true
}

func (bag *Bag) String() string {
	parts := lo.FilterMap(bag.entries, func(entry bagEntry, _ int) (string, bool) {
		return fmt.Sprintf("%dx%v", entry.count, entry.template.Name()), entry.count > 0
	})
	return "{" + strings.Join(parts, " ") + "}"
}
