package pojocheck

import (
	"errors"
	"fmt"
)

// ============================================================================
// Well-behaved fixtures
// ============================================================================

// account is a fully conventional data type: unexported state behind
// accessor pairs, lawful Equals/HashCode, deterministic String.
type account struct {
	name    string
	balance int
	email   string
	tags    []string
	limits  map[string]int
	active  bool
}

func newAccount(name string, balance int) *account {
	return &account{name: name, balance: balance}
}

func (a *account) SetName(v string)           { a.name = v }
func (a *account) GetName() string            { return a.name }
func (a *account) SetBalance(v int)           { a.balance = v }
func (a *account) GetBalance() int            { return a.balance }
func (a *account) SetEmail(v string)          { a.email = v }
func (a *account) GetEmail() string           { return a.email }
func (a *account) SetTags(v []string)         { a.tags = v }
func (a *account) GetTags() []string          { return a.tags }
func (a *account) SetLimits(v map[string]int) { a.limits = v }
func (a *account) GetLimits() map[string]int  { return a.limits }
func (a *account) SetActive(v bool)           { a.active = v }
func (a *account) IsActive() bool             { return a.active }

func (a *account) Equals(other any) bool {
	o, ok := other.(*account)
	if !ok || o == nil {
		return false
	}
	return a.name == o.name && a.balance == o.balance && a.email == o.email
}

func (a *account) HashCode() int {
	h := 17
	for _, r := range a.name + a.email {
		h = h*31 + int(r)
	}
	return h*31 + a.balance
}

func (a *account) String() string {
	return fmt.Sprintf("account{name=%s, balance=%d, email=%s}", a.name, a.balance, a.email)
}

// timestamped contributes an inherited field through embedding.
type timestamped struct {
	created int64
}

func (t *timestamped) SetCreated(v int64) { t.created = v }
func (t *timestamped) GetCreated() int64  { return t.created }

type auditedAccount struct {
	timestamped
	owner string
}

func (a *auditedAccount) SetOwner(v string) { a.owner = v }
func (a *auditedAccount) GetOwner() string  { return a.owner }

// level is an enum-style type: a defined integer kind with a String method.
type level int

const (
	levelLow level = iota
	levelHigh
)

func (l level) String() string {
	if l == levelLow {
		return "low"
	}
	return "high"
}

// ============================================================================
// Contract-violating fixtures
// ============================================================================

// alwaysEqual considers any instance of its own type equal, ignoring state.
type alwaysEqual struct{ id int }

func (a *alwaysEqual) Equals(other any) bool {
	_, ok := other.(*alwaysEqual)
	return ok
}

func (a *alwaysEqual) HashCode() int { return a.id }

// nilFriendly claims equality with nil.
type nilFriendly struct{ id int }

func (n *nilFriendly) Equals(other any) bool {
	if other == nil {
		return true
	}
	o, ok := other.(*nilFriendly)
	return ok && o != nil && n.id == o.id
}

// constantHash has a lawful Equals but a degenerate hash.
type constantHash struct{ id int }

func (c *constantHash) Equals(other any) bool {
	o, ok := other.(*constantHash)
	return ok && o != nil && c.id == o.id
}

func (c *constantHash) HashCode() int { return 42 }

// driftingString renders differently on every call.
type driftingString struct{ renders int }

func (d *driftingString) String() string {
	d.renders++
	return fmt.Sprintf("render#%d", d.renders)
}

// constantString renders identically regardless of state.
type constantString struct{ id int }

func (c *constantString) String() string { return "constant" }

// mislabeled has a setter that does not store its argument.
type mislabeled struct{ label string }

func (m *mislabeled) SetLabel(string)  { m.label = "stuck" }
func (m *mislabeled) GetLabel() string { return m.label }

// grabBag exposes a raw collection through its accessor pair.
type grabBag struct{ items []any }

func (g *grabBag) SetItems(v []any) { g.items = v }
func (g *grabBag) GetItems() []any  { return g.items }

// registry takes a raw map through its constructor.
type registry struct{ entries map[string]any }

func newRegistry(entries map[string]any) *registry {
	return &registry{entries: entries}
}

// fragile panics during construction.
type fragile struct{ id int }

func newFragile(id int) fragile {
	panic("fragile constructor")
}

// checked rejects every construction attempt with an error.
type checked struct{ name string }

func newChecked(name string) (*checked, error) {
	return nil, errors.New("name rejected")
}

// volatileOps panics when one of its methods is invoked.
type volatileOps struct{ n int }

func (v *volatileOps) Explode() { panic("boom") }
