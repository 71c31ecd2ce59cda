package entity

import (
	"iter"

	"github.com/elliotchance/orderedmap/v2"
)

// Operation is the way a Modifier is folded into the value of an Attribute.
type Operation uint8

const (
	// OperationAdd adds the amount to the base value.
	OperationAdd Operation = iota
	// OperationMultiplyBase multiplies the base value plus additions by the sum of all amounts.
	OperationMultiplyBase
	// OperationMultiplyTotal multiplies the running total by (1 + amount), one modifier at a time.
	OperationMultiplyTotal
)

// Modifier changes the value of an Attribute. Modifiers are identified by UUID.
type Modifier struct {
	UUID      string
	Operation Operation
	Amount    float32
}

// Attribute is a base value with an ordered list of modifiers.
type Attribute struct {
	Base      float32
	Modifiers []Modifier
}

// NewAttribute creates an attribute without modifiers.
func NewAttribute(base float32) *Attribute {
	return &Attribute{Base: base}
}

// Value evaluates the attribute. Additions are applied first, then base multipliers collectively,
// then total multipliers in insertion order.
func (a *Attribute) Value() float32 {
	x := a.Base
	for _, m := range a.Modifiers {
		if m.Operation == OperationAdd {
			x += m.Amount
		}
	}

	y := x
	for _, m := range a.Modifiers {
		if m.Operation == OperationMultiplyBase {
			y += x * m.Amount
		}
	}

	for _, m := range a.Modifiers {
		if m.Operation == OperationMultiplyTotal {
			y += y * m.Amount
		}
	}
	return y
}

// AddModifier appends a modifier.
func (a *Attribute) AddModifier(m Modifier) {
	a.Modifiers = append(a.Modifiers, m)
}

// HasModifier returns true if a modifier with the uuid is present.
func (a *Attribute) HasModifier(uuid string) bool {
	for _, m := range a.Modifiers {
		if m.UUID == uuid {
			return true
		}
	}
	return false
}

// RemoveModifier removes every modifier with the uuid and returns how many were removed.
func (a *Attribute) RemoveModifier(uuid string) int {
	kept := a.Modifiers[:0]
	for _, m := range a.Modifiers {
		if m.UUID != uuid {
			kept = append(kept, m)
		}
	}
	removed := len(a.Modifiers) - len(kept)
	clear(a.Modifiers[len(kept):])
	a.Modifiers = kept
	return removed
}

// Clone returns a deep copy of the attribute.
func (a *Attribute) Clone() *Attribute {
	if a == nil {
		return nil
	}
	c := &Attribute{Base: a.Base}
	if len(a.Modifiers) > 0 {
		c.Modifiers = append([]Modifier(nil), a.Modifiers...)
	}
	return c
}

// Attributes is an insertion-ordered set of named attributes. A nil *Attributes behaves as an empty set
// for reads.
type Attributes struct {
	m *orderedmap.OrderedMap[string, *Attribute]
}

// NewAttributes creates an empty attribute set.
func NewAttributes() *Attributes {
	return &Attributes{m: orderedmap.NewOrderedMap[string, *Attribute]()}
}

// Get returns the attribute with the given name.
func (a *Attributes) Get(name string) (*Attribute, bool) {
	if a == nil {
		return nil, false
	}
	return a.m.Get(name)
}

// Set stores the attribute under the given name, keeping the original position if it already existed.
func (a *Attributes) Set(name string, attr *Attribute) {
	a.m.Set(name, attr)
}

// Delete removes the attribute with the given name.
func (a *Attributes) Delete(name string) bool {
	if a == nil {
		return false
	}
	return a.m.Delete(name)
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return a.m.Len()
}

// All iterates over the attributes in insertion order.
func (a *Attributes) All() iter.Seq2[string, *Attribute] {
	return func(yield func(string, *Attribute) bool) {
		if a == nil {
			return
		}
		for el := a.m.Front(); el != nil; el = el.Next() {
			if !yield(el.Key, el.Value) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the set.
func (a *Attributes) Clone() *Attributes {
	if a == nil {
		return nil
	}
	c := NewAttributes()
	for name, attr := range a.All() {
		c.Set(name, attr.Clone())
	}
	return c
}
