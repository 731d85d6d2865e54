package pojocheck

import (
	"reflect"

	"github.com/dbsmedya/pojocheck/checkerr"
	"github.com/dbsmedya/pojocheck/internal/member"
	"github.com/dbsmedya/pojocheck/report"
)

// CheckRandom exercises every eligible public method of a synthesized
// instance with one round of random arguments. No return values are
// asserted; the only claim is "does not panic under random valid input".
// A panic, or a parameter declared as a raw collection, is fatal for the
// class.
func (s *Suite) CheckRandom() error {
	return s.forEachClass(s.checkRandom)
}

func (s *Suite) checkRandom(t reflect.Type, _ []reflect.Value) error {
	if t.Kind() == reflect.Interface {
		s.log.Debugf("Skipping interface type: %s", t)
		return nil
	}
	enum := member.IsEnum(t)
	if !member.Instantiable(t) && !enum {
		s.log.Debugf("Skipping non-instantiable type: %s", t)
		return nil
	}
	s.log.Debugf("Running random invocation check for: %s", t)

	instance, err := s.syn.NewInstance(t)
	if err != nil {
		return err
	}

	methodsRan := 0
	for _, m := range member.Methods(t) {
		sig := m.Signature()
		if member.Excluded(sig, s.exclude.methods) {
			s.log.Debugf("Skipping excluded method: %s", sig)
			continue
		}
		if !s.methodAllowed(m.Method) {
			continue
		}
		// Builder terminals need prior builder state; fuzzing them is
		// meaningless.
		if m.Name == "Build" && m.NumParams() == 0 {
			s.log.Debugf("Skipping builder method: %s", sig)
			continue
		}
		// The enum analog of platform methods: String over constant names.
		if enum && m.Name == "String" {
			s.log.Debugf("Skipping enum platform method: %s", sig)
			continue
		}

		methodsRan++
		s.record(report.Random, t, "Method: %s", sig)

		args := make([]reflect.Value, 0, m.NumParams()+1)
		args = append(args, instance)
		for i := 0; i < m.NumParams(); i++ {
			v, err := s.syn.CreateFor(sig, m.Param(i))
			if err != nil {
				return err
			}
			args = append(args, v)
		}
		if len(args) > 1 {
			s.record(report.Random, t, "\tArguments: %v", values(args[1:]))
		}

		results, err := safeCall(m.Func, args)
		if err != nil {
			return &checkerr.InvocationError{Member: sig, Cause: err}
		}
		if len(results) > 0 {
			s.record(report.Random, t, "\tReturn: %v", values(results))
		}
	}
	s.record(report.Random, t, "Methods tested: %d", methodsRan)
	return nil
}
