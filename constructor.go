package pojocheck

import (
	"fmt"
	"reflect"

	"github.com/dbsmedya/pojocheck/checkerr"
	"github.com/dbsmedya/pojocheck/internal/member"
	"github.com/dbsmedya/pojocheck/report"
)

// CheckConstructors invokes every registered constructor of every eligible
// class with synthesized arguments. A constructor that panics or returns a
// non-nil error fails with a ConstructorError; parameters declared as raw
// collections fail with a RawUseError naming the constructor.
func (s *Suite) CheckConstructors() error {
	return s.forEachClass(s.checkConstructors)
}

func (s *Suite) checkConstructors(t reflect.Type, ctors []reflect.Value) error {
	if t.Kind() == reflect.Interface {
		s.log.Debugf("Skipping interface type: %s", t)
		return nil
	}
	if member.IsEnum(t) {
		s.log.Debugf("Skipping enum type: %s", t)
		return nil
	}
	if !member.Instantiable(t) {
		s.log.Debugf("Skipping non-instantiable type: %s", t)
		return nil
	}
	s.log.Debugf("Running constructor check for: %s", t)

	for _, ctor := range ctors {
		if s.ctorPred != nil && !s.ctorPred(ctor) {
			s.log.Debugf("Skipping constructor based on predicate: %s", ctor.Type())
			continue
		}
		sig := member.ConstructorSignature(ctor)
		s.record(report.Constructor, t, "Constructor: %s", sig)

		ft := ctor.Type()
		args := make([]reflect.Value, 0, ft.NumIn())
		for i := 0; i < ft.NumIn(); i++ {
			v, err := s.syn.CreateFor(sig, ft.In(i))
			if err != nil {
				return err
			}
			args = append(args, v)
		}
		if len(args) > 0 {
			s.record(report.Constructor, t, "Arguments: %v", values(args))
		}

		results, err := safeCall(ctor, args)
		if err != nil {
			return &checkerr.ConstructorError{
				Constructor: sig,
				Cause:       fmt.Sprintf("Constructor instantiation exception: %v", err),
			}
		}
		if len(results) == 2 && !results[1].IsNil() {
			return &checkerr.ConstructorError{
				Constructor: sig,
				Cause:       fmt.Sprintf("Constructor instantiation exception: %v", results[1].Interface()),
			}
		}
	}
	return nil
}
