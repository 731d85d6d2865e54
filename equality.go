package pojocheck

import (
	"reflect"

	"github.com/dbsmedya/pojocheck/checkerr"
	"github.com/dbsmedya/pojocheck/internal/member"
	"github.com/dbsmedya/pojocheck/report"
)

var (
	anyType  = reflect.TypeOf((*any)(nil)).Elem()
	boolType = reflect.TypeOf(true)
	intType  = reflect.TypeOf(0)
)

// unrelatedProbe is the object-of-a-different-type passed to Equals; no type
// under test can legitimately equal it.
type unrelatedProbe struct{}

// CheckEqualsAndHashCode verifies the Equals laws (nil inequality, foreign
// type inequality, two random instances unequal, self equality, checked in
// that order with the first violation fatal) and that two independently
// synthesized instances produce different HashCode values. Enum kinds are
// skipped.
func (s *Suite) CheckEqualsAndHashCode() error {
	return s.forEachClass(s.checkEqualsAndHashCode)
}

func (s *Suite) checkEqualsAndHashCode(t reflect.Type, _ []reflect.Value) error {
	if member.IsEnum(t) {
		s.log.Debugf("Skipping enum type: %s", t)
		return nil
	}
	if !member.Instantiable(t) {
		s.log.Debugf("Skipping non-instantiable type: %s", t)
		return nil
	}
	s.log.Debugf("Running Equals/HashCode check for: %s", t)

	one, err := s.syn.NewInstance(t)
	if err != nil {
		return err
	}
	two, err := s.syn.NewInstance(t)
	if err != nil {
		return err
	}

	for _, m := range member.Methods(t) {
		switch {
		case isEqualsMethod(m):
			if !s.methodAllowed(m.Method) || member.Excluded(m.Signature(), s.exclude.methods) {
				continue
			}
			s.record(report.EqualsAndHashCode, t, "Method: %s", m.Signature())
			if err := s.checkEquals(m, one, two); err != nil {
				return err
			}
		case isHashCodeMethod(m):
			if !s.methodAllowed(m.Method) || member.Excluded(m.Signature(), s.exclude.methods) {
				continue
			}
			s.record(report.EqualsAndHashCode, t, "Method: %s", m.Signature())
			if err := s.checkHashCode(m, one, two); err != nil {
				return err
			}
		}
	}
	return nil
}

func isEqualsMethod(m member.Method) bool {
	return m.Name == "Equals" &&
		m.NumParams() == 1 &&
		m.Param(0) == anyType &&
		m.Type.NumOut() == 1 &&
		m.Type.Out(0) == boolType
}

func isHashCodeMethod(m member.Method) bool {
	return m.Name == "HashCode" &&
		m.NumParams() == 0 &&
		m.Type.NumOut() == 1 &&
		m.Type.Out(0) == intType
}

func (s *Suite) checkEquals(m member.Method, one, two reflect.Value) error {
	equals := func(recv reflect.Value, arg reflect.Value) (bool, error) {
		results, err := safeCall(m.Func, []reflect.Value{recv, arg})
		if err != nil {
			return false, &checkerr.InvocationError{Member: m.Signature(), Cause: err}
		}
		return results[0].Bool(), nil
	}

	ok, err := equals(one, reflect.Zero(anyType))
	if err != nil {
		return err
	}
	if ok {
		return &checkerr.EqualsError{Method: m.Signature(), Message: checkerr.MsgEqualsNil}
	}

	ok, err = equals(one, reflect.ValueOf(&unrelatedProbe{}))
	if err != nil {
		return err
	}
	if ok {
		return &checkerr.EqualsError{Method: m.Signature(), Message: checkerr.MsgEqualsUnrelated}
	}

	ok, err = equals(one, two)
	if err != nil {
		return err
	}
	if ok {
		return &checkerr.EqualsError{Method: m.Signature(), Message: checkerr.MsgEqualsRandom}
	}

	ok, err = equals(one, one)
	if err != nil {
		return err
	}
	if !ok {
		return &checkerr.EqualsError{Method: m.Signature(), Message: checkerr.MsgEqualsSelf}
	}
	return nil
}

func (s *Suite) checkHashCode(m member.Method, one, two reflect.Value) error {
	hash := func(recv reflect.Value) (int64, error) {
		results, err := safeCall(m.Func, []reflect.Value{recv})
		if err != nil {
			return 0, &checkerr.InvocationError{Member: m.Signature(), Cause: err}
		}
		return results[0].Int(), nil
	}

	h1, err := hash(one)
	if err != nil {
		return err
	}
	h2, err := hash(two)
	if err != nil {
		return err
	}
	if h1 == h2 {
		return &checkerr.HashCodeError{Method: m.Signature(), Message: checkerr.MsgHashCodeRandom}
	}
	return nil
}
