package driver

import (
	"math/rand"

	"github.com/pkg/errors"

	"godis-dequeue/datastruct/list"
	"godis-dequeue/logger"
	"godis-dequeue/pkg/util"
)

// Suite runs the seeded checks against one backend.
type Suite struct {
	Backend       Backend
	Seed          int64
	Capacity      int
	MaxNameLength int

	rand *rand.Rand
}

type suiteCheck struct {
	name string
	run  func(s *Suite) error
}

var suiteChecks = []suiteCheck{
	{"constructor and destructor", (*Suite).constructorDestructor},
	{"size getter", (*Suite).size},
	{"push back", (*Suite).pushBack},
	{"pop back", (*Suite).popBack},
	{"push front", (*Suite).pushFront},
	{"pop front", (*Suite).popFront},
	{"clear", (*Suite).clear},
	{"clone", (*Suite).clone},
	{"invalid arguments", (*Suite).invalidArguments},
}

// Run executes every check in order and stops at the first failure.
func (s *Suite) Run() error {
	s.rand = rand.New(rand.NewSource(s.Seed))
	log := logger.WithField("backend", s.Backend.Name)
	log.Infof("test seed: %d", s.Seed)

	for _, c := range suiteChecks {
		log.Infof("Testing %s...", c.name)
		if err := c.run(s); err != nil {
			return errors.Wrapf(err, "%s (seed %d)", c.name, s.Seed)
		}
	}
	log.Info("All tests passed successfully.")
	return nil
}

// people draws Capacity random records; names fit the fixed record size.
func (s *Suite) people() []Person {
	maxLen := min(s.MaxNameLength, NameSize)
	people := make([]Person, s.Capacity)
	for i := range people {
		people[i] = Person{
			Age:  s.rand.Int31(),
			Name: util.RandName(s.rand, maxLen),
		}
	}
	if logger.IsEnabledDebug() && len(people) > 0 {
		logger.DebugF("drew %d people, first %v", len(people), people[0])
	}
	return people
}

func (s *Suite) filled(people []Person, front bool) (list.Dequeue[Person], error) {
	d, err := s.Backend.New()
	if err != nil {
		return nil, err
	}
	for _, p := range people {
		if front {
			err = d.PushFront(p)
		} else {
			err = d.PushBack(p)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "push %v", p)
		}
	}
	return d, nil
}

func (s *Suite) constructorDestructor() error {
	d, err := s.Backend.New()
	if err != nil {
		return err
	}
	if d == nil {
		return errors.New("constructor returned nothing")
	}
	if err := s.Backend.Dispose(&d); err != nil {
		return err
	}
	if d != nil {
		return errors.New("destructor left the handle set")
	}
	return nil
}

func (s *Suite) size() error {
	d, err := s.Backend.New()
	if err != nil {
		return err
	}
	if !d.IsEmpty() || d.Len() != 0 {
		return errors.Errorf("new dequeue has size %d", d.Len())
	}
	for _, p := range s.people() {
		if err := d.PushFront(p); err != nil {
			return err
		}
	}
	if d.IsEmpty() || d.Len() != s.Capacity {
		return errors.Errorf("size is %d, want %d", d.Len(), s.Capacity)
	}
	return s.Backend.Dispose(&d)
}

func (s *Suite) pushBack() error {
	return s.pushWithPeek(false)
}

func (s *Suite) pushFront() error {
	return s.pushWithPeek(true)
}

func (s *Suite) pushWithPeek(front bool) error {
	d, err := s.Backend.New()
	if err != nil {
		return err
	}
	for _, p := range s.people() {
		var (
			got Person
			ok  bool
		)
		if front {
			err = d.PushFront(p)
			got, ok = d.PeekFront()
		} else {
			err = d.PushBack(p)
			got, ok = d.PeekBack()
		}
		if err != nil {
			return err
		}
		if err := expectPerson("peek", got, ok, p); err != nil {
			return err
		}
	}
	return s.Backend.Dispose(&d)
}

func (s *Suite) popBack() error {
	return s.popInReverse(false)
}

func (s *Suite) popFront() error {
	return s.popInReverse(true)
}

// popInReverse pops from the same end it pushed to, so records come back
// in reverse order.
func (s *Suite) popInReverse(front bool) error {
	people := s.people()
	d, err := s.filled(people, front)
	if err != nil {
		return err
	}
	for i := len(people) - 1; i >= 0; i-- {
		var (
			got Person
			ok  bool
		)
		if front {
			got, ok = d.PopFront()
		} else {
			got, ok = d.PopBack()
		}
		if err := expectPerson("pop", got, ok, people[i]); err != nil {
			return err
		}
	}
	return s.Backend.Dispose(&d)
}

func (s *Suite) clear() error {
	d, err := s.filled(s.people(), true)
	if err != nil {
		return err
	}
	if err := d.Clear(); err != nil {
		return err
	}
	if !d.IsEmpty() {
		return errors.Errorf("size after clear is %d", d.Len())
	}
	return s.Backend.Dispose(&d)
}

func (s *Suite) clone() error {
	d, err := s.filled(s.people(), false)
	if err != nil {
		return err
	}
	cloned := s.Backend.Clone(d)
	if cloned == nil {
		return errors.New("clone returned nothing")
	}
	if d.Len() != cloned.Len() {
		return errors.Errorf("clone has %d elements, want %d", cloned.Len(), d.Len())
	}
	for i := 0; i < s.Capacity; i++ {
		want, ok := d.PopBack()
		if !ok {
			return errors.Errorf("original ran dry after %d pops", i)
		}
		got, ok := cloned.PopBack()
		if err := expectPerson("pop clone", got, ok, want); err != nil {
			return err
		}
	}
	if err := s.Backend.Dispose(&d); err != nil {
		return err
	}
	return s.Backend.Dispose(&cloned)
}

func (s *Suite) invalidArguments() error {
	if err := checkAbsentHandles(); err != nil {
		return err
	}
	return s.Backend.checkAbsentDispose()
}
