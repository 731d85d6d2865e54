// Package pojocheck validates the structural contracts of plain data-holding
// Go types: constructor success, setter/getter round trips, Equals/HashCode
// laws, String determinism and panic-free method invocation, all driven by
// pseudo-randomly generated data.
//
// The entry point is a builder over explicit types or a registered scan
// namespace:
//
//	err := pojocheck.ForTypes(models.User{}, models.Account{}).
//		ExcludeMethodsContaining("Clone").
//		CheckAll()
//
// Contract violations surface as the typed errors of package checkerr;
// successful checks accumulate diagnostic entries in the process-wide report
// store until it is reset.
package pojocheck

import (
	"fmt"
	"reflect"

	"github.com/dbsmedya/pojocheck/internal/config"
	"github.com/dbsmedya/pojocheck/internal/logger"
	"github.com/dbsmedya/pojocheck/internal/synth"
	"github.com/dbsmedya/pojocheck/randgen"
	"github.com/dbsmedya/pojocheck/report"
	"github.com/dbsmedya/pojocheck/scan"
)

// Suite is the configurable facade dispatching the five contract checkers
// over a set of types. A Suite is built once, configured with the chained
// methods, and run; it is not safe for concurrent mutation, but separate
// suites may run concurrently against the shared report store.
type Suite struct {
	types   []reflect.Type
	pkg     string
	usePkg  bool
	exclude struct {
		methods []string
		types   map[reflect.Type]struct{}
	}
	typePred    func(reflect.Type) bool
	methodPred  func(reflect.Method) bool
	ctorPred    func(reflect.Value) bool
	crossString bool

	store *report.Store
	syn   *synth.Synthesizer
	log   *logger.Logger
}

func newSuite() *Suite {
	s := &Suite{
		store: report.Default(),
		log:   logger.Nop(),
	}
	s.exclude.types = map[reflect.Type]struct{}{}
	s.syn = synth.NewDefault(s.log)
	// A fresh suite starts a fresh report session.
	s.store.Reset()
	return s
}

// ForTypes builds a Suite over explicit types. Arguments may be prototype
// values, pointers to them, or reflect.Type tokens. Constructors registered
// with the scan registry for these types are picked up automatically.
func ForTypes(prototypes ...any) *Suite {
	s := newSuite()
	for _, p := range prototypes {
		s.types = append(s.types, TypeOf(p))
	}
	return s
}

// ForPackage builds a Suite over every type registered under a scan
// namespace. Types passed as excluded are skipped.
func ForPackage(name string, excluded ...any) *Suite {
	s := newSuite()
	s.pkg = name
	s.usePkg = true
	for _, p := range excluded {
		s.exclude.types[TypeOf(p)] = struct{}{}
	}
	return s
}

// TypeOf normalizes a prototype argument to its underlying type: pointers
// are dereferenced and reflect.Type tokens pass through.
func TypeOf(prototype any) reflect.Type {
	if t, ok := prototype.(reflect.Type); ok {
		return t
	}
	t := reflect.TypeOf(prototype)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// ExcludeMethodsContaining skips any member whose signature contains one of
// the literal substrings.
func (s *Suite) ExcludeMethodsContaining(patterns ...string) *Suite {
	s.exclude.methods = append(s.exclude.methods, patterns...)
	return s
}

// ExcludeTypes skips the given types entirely.
func (s *Suite) ExcludeTypes(prototypes ...any) *Suite {
	for _, p := range prototypes {
		s.exclude.types[TypeOf(p)] = struct{}{}
	}
	return s
}

// FilterTypes keeps only types the predicate accepts. Rejected types are
// skipped silently.
func (s *Suite) FilterTypes(pred func(reflect.Type) bool) *Suite {
	s.typePred = pred
	return s
}

// FilterMethods keeps only methods the predicate accepts.
func (s *Suite) FilterMethods(pred func(reflect.Method) bool) *Suite {
	s.methodPred = pred
	return s
}

// FilterConstructors keeps only constructor functions the predicate accepts.
func (s *Suite) FilterConstructors(pred func(reflect.Value) bool) *Suite {
	s.ctorPred = pred
	return s
}

// WithSeed makes value synthesis deterministic for a given seed.
func (s *Suite) WithSeed(seed uint64) *Suite {
	s.syn = synth.NewDefault(s.log, randgen.WithSeed(seed))
	return s
}

// WithStore records into an explicitly owned store instead of the
// process-wide default. The owned store is not reset on suite construction.
func (s *Suite) WithStore(store *report.Store) *Suite {
	s.store = store
	return s
}

// WithLogging enables structured logging of skip decisions and check
// progress at the given level ("debug" shows every skip).
func (s *Suite) WithLogging(level string) *Suite {
	s.log = logger.New(&config.LoggingConfig{Level: level, Format: "text", Output: "stderr"})
	s.syn = synth.NewDefault(s.log)
	return s
}

// WithCrossInstanceStringCheck additionally requires two independently
// synthesized instances to render different String output. Off by default:
// coarse string summaries may legitimately collide.
func (s *Suite) WithCrossInstanceStringCheck() *Suite {
	s.crossString = true
	return s
}

// CheckAll runs every checker in sequence: Random, SettersGetters,
// EqualsAndHashCode, ToString, Constructor. The first failure stops the run.
func (s *Suite) CheckAll() error {
	if err := s.CheckRandom(); err != nil {
		return err
	}
	if err := s.CheckSettersGetters(); err != nil {
		return err
	}
	if err := s.CheckEqualsAndHashCode(); err != nil {
		return err
	}
	if err := s.CheckToString(); err != nil {
		return err
	}
	return s.CheckConstructors()
}

// Report returns the accumulated plain-text report.
func (s *Suite) Report() string {
	return s.store.Render()
}

// PrintReport writes the accumulated report to stdout.
func (s *Suite) PrintReport() {
	s.store.Print()
}

// SaveReport writes the accumulated report to a file.
func (s *Suite) SaveReport(path string) error {
	return s.store.WriteFile(path)
}

// Store exposes the report store this suite records into.
func (s *Suite) Store() *report.Store {
	return s.store
}

// classes resolves the set of types under test with their registered
// constructors, applying type-level exclusions.
func (s *Suite) classes() ([]scan.Registered, error) {
	var regs []scan.Registered
	if s.usePkg {
		found, err := scan.FindAll(s.pkg)
		if err != nil {
			return nil, err
		}
		regs = found
	} else {
		for _, t := range s.types {
			regs = append(regs, scan.Registered{Type: t, Constructors: scan.ConstructorsFor(t)})
		}
	}

	out := regs[:0]
	for _, reg := range regs {
		if _, drop := s.exclude.types[reg.Type]; drop {
			s.log.Debugf("Skipping excluded class: %s", reg.Type)
			continue
		}
		out = append(out, reg)
	}
	return out, nil
}

// forEachClass runs one checker over every eligible class, stopping at the
// first failure.
func (s *Suite) forEachClass(check func(t reflect.Type, ctors []reflect.Value) error) error {
	regs, err := s.classes()
	if err != nil {
		return err
	}
	for _, reg := range regs {
		if s.typePred != nil && !s.typePred(reg.Type) {
			s.log.Debugf("Skipping class based on predicate: %s", reg.Type)
			continue
		}
		if err := check(reg.Type, reg.Constructors); err != nil {
			return err
		}
	}
	return nil
}

// record appends a diagnostic entry for a class.
func (s *Suite) record(kind report.Kind, t reflect.Type, format string, args ...any) {
	s.store.Record(kind, t.String(), fmt.Sprintf(format, args...))
}

// methodAllowed applies the method-level predicate.
func (s *Suite) methodAllowed(m reflect.Method) bool {
	if s.methodPred == nil {
		return true
	}
	if !s.methodPred(m) {
		s.log.Debugf("Skipping method based on predicate: %s", m.Name)
		return false
	}
	return true
}

// safeCall invokes fn with panic recovery. Variadic callees receive the
// synthesized slice through CallSlice.
func safeCall(fn reflect.Value, args []reflect.Value) (results []reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	if fn.Type().IsVariadic() {
		return fn.CallSlice(args), nil
	}
	return fn.Call(args), nil
}

// values unwraps reflect values for report formatting.
func values(args []reflect.Value) []any {
	out := make([]any, len(args))
	for i, a := range args {
		if a.IsValid() {
			out[i] = a.Interface()
		}
	}
	return out
}
