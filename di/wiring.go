package di

import (
	"errors"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// ErrNilWiring is returned when a nil *Wiring is used.
var ErrNilWiring = errors.New("di: nil wiring")

// DependencyKey labels one recorded dependency.
type DependencyKey string

// NilDependencyError is returned by Record for a nil value.
type NilDependencyError struct{ Key DependencyKey }

func (e NilDependencyError) Error() string {
	return "di: nil dependency for key " + strconv.Quote(string(e.Key))
}

// DuplicateKeyError is returned by Record when Key was already recorded.
type DuplicateKeyError struct{ Key DependencyKey }

func (e DuplicateKeyError) Error() string {
	return "di: duplicate dependency key " + strconv.Quote(string(e.Key))
}

// MissingDependenciesError lists every required key that was never recorded.
type MissingDependenciesError struct{ Keys []DependencyKey }

func (e MissingDependenciesError) Error() string {
	quoted := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		quoted[i] = strconv.Quote(string(k))
	}
	// Example: di: missing dependencies "printer", "runner"
	return "di: missing dependencies " + strings.Join(quoted, ", ")
}

// WrongTypeError is returned by Resolve when the recorded value is not a D.
type WrongTypeError struct {
	Key     DependencyKey
	Want    string
	GotType string
}

func (e WrongTypeError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) +
		" is " + e.GotType + ", want " + e.Want
}

// Wiring records the dependencies a composition root constructed.
// The zero value is not usable; call NewWiring.
type Wiring struct {
	deps map[DependencyKey]any
}

// NewWiring returns an empty record.
func NewWiring() *Wiring {
	return &Wiring{deps: make(map[DependencyKey]any)}
}

// Record stores dep under key. Nil values (including typed nil pointers
// inside an interface) and repeated keys are rejected and leave w unchanged.
func Record[D any](w *Wiring, key DependencyKey, dep D) error {
	if w == nil || w.deps == nil {
		return ErrNilWiring
	}
	if isNil(dep) {
		return NilDependencyError{Key: key}
	}
	if _, dup := w.deps[key]; dup {
		return DuplicateKeyError{Key: key}
	}
	w.deps[key] = dep
	return nil
}

// Require reports every key in keys that has not been recorded, in the
// order given.
func (w *Wiring) Require(keys ...DependencyKey) error {
	if w == nil || w.deps == nil {
		return ErrNilWiring
	}
	var missing []DependencyKey
	for _, k := range keys {
		if _, ok := w.deps[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return MissingDependenciesError{Keys: missing}
	}
	return nil
}

// Resolve returns the value recorded under key as a D.
func Resolve[D any](w *Wiring, key DependencyKey) (D, error) {
	var zero D
	if w == nil || w.deps == nil {
		return zero, ErrNilWiring
	}
	raw, ok := w.deps[key]
	if !ok {
		return zero, MissingDependenciesError{Keys: []DependencyKey{key}}
	}
	d, ok := raw.(D)
	if !ok {
		return zero, WrongTypeError{
			Key:     key,
			Want:    reflect.TypeFor[D]().String(),
			GotType: reflect.TypeOf(raw).String(),
		}
	}
	return d, nil
}

// Keys returns the recorded keys in sorted order.
func (w *Wiring) Keys() []DependencyKey {
	if w == nil || len(w.deps) == 0 {
		return nil
	}
	keys := make([]DependencyKey, 0, len(w.deps))
	for k := range w.deps {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
