package driver

import (
	"github.com/pkg/errors"

	"godis-dequeue/datastruct/list"
	"godis-dequeue/logger"
)

// People is the fixed cast of the scenario.
var People = []Person{
	{Age: 21, Name: "Alice Johnson"},
	{Age: 35, Name: "Bob Smith"},
	{Age: 18, Name: "Charlie Brown"},
	{Age: 27, Name: "David Wilson"},
	{Age: 42, Name: "Eve Hernandez"},
}

// RunScenario walks one dequeue through its whole lifecycle with People:
// push and peek at the back, pop, clone and drain pairwise, push and peek at
// the front, clear, dispose, and finally calls on absent handles.
func RunScenario(b Backend) error {
	log := logger.WithField("backend", b.Name)

	d, err := b.New()
	if err != nil {
		return errors.Wrap(err, "create")
	}
	if !d.IsEmpty() {
		return errors.New("new dequeue is not empty")
	}

	log.Debug("push back with peek")
	for _, p := range People {
		if err := d.PushBack(p); err != nil {
			return errors.Wrapf(err, "push back %v", p)
		}
		got, ok := d.PeekBack()
		if err := expectPerson("peek back", got, ok, p); err != nil {
			return err
		}
	}

	log.Debug("pop back")
	got, ok := d.PopBack()
	if err := expectPerson("pop back", got, ok, People[len(People)-1]); err != nil {
		return err
	}
	size := d.Len()
	if size != len(People)-1 {
		return errors.Errorf("size after pop back is %d, want %d", size, len(People)-1)
	}

	log.Debug("clone")
	cloned := b.Clone(d)
	if cloned == nil {
		return errors.New("clone returned nothing")
	}
	if cloned.Len() != size {
		return errors.Errorf("clone has %d elements, want %d", cloned.Len(), size)
	}
	for i := 0; i < size; i++ {
		want, ok := d.PopBack()
		if !ok {
			return errors.Errorf("original ran dry after %d pops", i)
		}
		got, ok := cloned.PopBack()
		if err := expectPerson("pop back clone", got, ok, want); err != nil {
			return err
		}
	}
	if !d.IsEmpty() || d.Len() != cloned.Len() {
		return errors.Errorf("drained sizes differ: original %d, clone %d", d.Len(), cloned.Len())
	}
	if err := b.Dispose(&cloned); err != nil {
		return errors.Wrap(err, "dispose clone")
	}
	if cloned != nil {
		return errors.New("dispose left the clone handle set")
	}

	log.Debug("push front with peek")
	for i := len(People) - 1; i >= 0; i-- {
		if err := d.PushFront(People[i]); err != nil {
			return errors.Wrapf(err, "push front %v", People[i])
		}
		got, ok := d.PeekFront()
		if err := expectPerson("peek front", got, ok, People[i]); err != nil {
			return err
		}
	}

	log.Debug("pop front")
	got, ok = d.PopFront()
	if err := expectPerson("pop front", got, ok, People[0]); err != nil {
		return err
	}
	got, ok = d.PeekFront()
	if err := expectPerson("peek front after pop", got, ok, People[1]); err != nil {
		return err
	}

	log.Debug("clear")
	if err := d.Clear(); err != nil {
		return errors.Wrap(err, "clear")
	}
	if d.Len() != 0 {
		return errors.Errorf("size after clear is %d", d.Len())
	}

	if err := b.Dispose(&d); err != nil {
		return errors.Wrap(err, "dispose")
	}
	if d != nil {
		return errors.New("dispose left the handle set")
	}

	log.Debug("absent handles")
	if err := checkAbsentHandles(); err != nil {
		return err
	}
	return b.checkAbsentDispose()
}

func expectPerson(step string, got Person, ok bool, want Person) error {
	if !ok {
		return errors.Wrapf(list.ErrorEmpty, "%s: want %v", step, want)
	}
	if got != want {
		return errors.Errorf("%s: got %v, want %v", step, got, want)
	}
	return nil
}

// checkAbsentHandles calls every operation on nil dequeues of both flavours.
func checkAbsentHandles() error {
	var typed *list.LinkedDeque[Person]
	var raw *list.ByteDequeue

	checks := []struct {
		name string
		ok   bool
	}{
		{"typed push back", errors.Is(typed.PushBack(People[0]), list.ErrorInvalidArgument)},
		{"typed push front", errors.Is(typed.PushFront(People[0]), list.ErrorInvalidArgument)},
		{"typed pop back", !second(typed.PopBack())},
		{"typed pop front", !second(typed.PopFront())},
		{"typed peek back", !second(typed.PeekBack())},
		{"typed peek front", !second(typed.PeekFront())},
		{"typed clone", typed.Clone() == nil},
		{"typed clear", errors.Is(typed.Clear(), list.ErrorInvalidArgument)},
		{"typed dispose", errors.Is(list.Dispose[Person](nil), list.ErrorInvalidArgument)},
		{"typed size", typed.Len() == 0 && typed.IsEmpty()},
		{"bytes push back", errors.Is(raw.PushBack(nil), list.ErrorInvalidArgument)},
		{"bytes push front", errors.Is(raw.PushFront(nil), list.ErrorInvalidArgument)},
		{"bytes pop back", raw.PopBack() == nil},
		{"bytes pop front", raw.PopFront() == nil},
		{"bytes peek back", raw.PeekBack() == nil},
		{"bytes peek front", raw.PeekFront() == nil},
		{"bytes clone", raw.Clone() == nil},
		{"bytes clear", errors.Is(raw.Clear(), list.ErrorInvalidArgument)},
		{"bytes dispose", errors.Is(list.DisposeBytes(nil), list.ErrorInvalidArgument)},
		{"bytes size", raw.Len() == 0 && raw.IsEmpty()},
	}
	for _, c := range checks {
		if !c.ok {
			return errors.Errorf("%s on an absent dequeue did not return its sentinel", c.name)
		}
	}
	return nil
}

func (b Backend) checkAbsentDispose() error {
	if err := b.Dispose(nil); !errors.Is(err, list.ErrorInvalidArgument) {
		return errors.Errorf("dispose of a nil handle returned %v", err)
	}
	var d list.Dequeue[Person]
	if err := b.Dispose(&d); !errors.Is(err, list.ErrorInvalidArgument) {
		return errors.Errorf("dispose of an absent dequeue returned %v", err)
	}
	return nil
}

func second(_ Person, ok bool) bool {
	return ok
}
