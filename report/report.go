// Package report collects diagnostic entries produced by the contract
// checkers and renders them for humans. The store accumulates across every
// check run in the process until explicitly reset, so independent suites can
// be reported together; it is safe for concurrent writers.
package report

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/elliotchance/orderedmap/v2"
	"gopkg.in/yaml.v3"
)

// Kind identifies which contract check produced an entry.
type Kind string

const (
	SetterGetter      Kind = "SetterGetter"
	EqualsAndHashCode Kind = "EqualsAndHashCode"
	ToString          Kind = "ToString"
	Constructor       Kind = "Constructor"
	Random            Kind = "Random"
)

// renderOrder fixes the order kinds appear in rendered reports.
var renderOrder = []Kind{SetterGetter, EqualsAndHashCode, ToString, Constructor, Random}

// Store accumulates report entries grouped by class and kind.
type Store struct {
	mu      sync.Mutex
	classes map[string]*classReport
}

type classReport struct {
	kinds *orderedmap.OrderedMap[Kind, []string]
}

// NewStore creates an empty, independently owned store.
func NewStore() *Store {
	return &Store{classes: map[string]*classReport{}}
}

var defaultStore = NewStore()

// Default returns the process-wide store the facade records into.
func Default() *Store { return defaultStore }

// Record appends a message for the given check kind and class.
func (s *Store) Record(kind Kind, class string, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cr, ok := s.classes[class]
	if !ok {
		cr = &classReport{kinds: orderedmap.NewOrderedMap[Kind, []string]()}
		s.classes[class] = cr
	}
	msgs, _ := cr.kinds.Get(kind)
	cr.kinds.Set(kind, append(msgs, message))
}

// Reset clears all accumulated entries.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.classes = map[string]*classReport{}
}

// Classes returns the recorded class names, sorted.
func (s *Store) Classes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedClassesLocked()
}

func (s *Store) sortedClassesLocked() []string {
	names := make([]string, 0, len(s.classes))
	for name := range s.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Messages returns the entries recorded for a class and kind, in record
// order.
func (s *Store) Messages(class string, kind Kind) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	cr, ok := s.classes[class]
	if !ok {
		return nil
	}
	msgs, _ := cr.kinds.Get(kind)
	out := make([]string, len(msgs))
	copy(out, msgs)
	return out
}

// Render produces the plain-text report: classes sorted by name, kinds in
// fixed order, messages indented beneath their kind.
func (s *Store) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var b strings.Builder
	for _, class := range s.sortedClassesLocked() {
		cr := s.classes[class]
		fmt.Fprintf(&b, "Class: %s\n", class)
		for _, kind := range renderOrder {
			msgs, ok := cr.kinds.Get(kind)
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "\tTest type: %s\n", kind)
			for _, msg := range msgs {
				fmt.Fprintf(&b, "\t\t%s\n", msg)
			}
		}
	}
	return b.String()
}

// yamlEntry is the serialized shape of one class section.
type yamlEntry struct {
	Class   string              `yaml:"class"`
	Results map[string][]string `yaml:"results"`
}

// RenderYAML produces the report as a YAML document.
func (s *Store) RenderYAML() (string, error) {
	s.mu.Lock()
	entries := make([]yamlEntry, 0, len(s.classes))
	for _, class := range s.sortedClassesLocked() {
		cr := s.classes[class]
		results := map[string][]string{}
		for _, kind := range renderOrder {
			if msgs, ok := cr.kinds.Get(kind); ok {
				results[string(kind)] = msgs
			}
		}
		entries = append(entries, yamlEntry{Class: class, Results: results})
	}
	s.mu.Unlock()

	out, err := yaml.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(out), nil
}

// WriteFile writes the plain-text report to path, overwriting any existing
// file.
func (s *Store) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(s.Render()), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Print writes the plain-text report to stdout.
func (s *Store) Print() {
	fmt.Print(s.Render())
}
