package feedback

import (
	"signup/internal/core/domain/registration"
	"sync"
)

type FakeFormState struct {
	Writes []registration.FieldErrors
	lock   sync.Mutex
}

func NewFakeFormState() *FakeFormState {
	return &FakeFormState{}
}

func (f *FakeFormState) SetFieldErrors(errors registration.FieldErrors) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.Writes = append(f.Writes, errors)
}

func (f *FakeFormState) WriteCount() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return len(f.Writes)
}

// Current returns the errors currently displayed, i.e. the last write.
func (f *FakeFormState) Current() registration.FieldErrors {
	f.lock.Lock()
	defer f.lock.Unlock()
	if len(f.Writes) == 0 {
		return registration.FieldErrors{}
	}
	return f.Writes[len(f.Writes)-1]
}

type FakeNotificationSink struct {
	Pushed []Notification
	lock   sync.Mutex
}

func NewFakeNotificationSink() *FakeNotificationSink {
	return &FakeNotificationSink{}
}

func (s *FakeNotificationSink) Push(n Notification) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Pushed = append(s.Pushed, n)
}

func (s *FakeNotificationSink) PushedCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Pushed)
}

func (s *FakeNotificationSink) LastPushed() Notification {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Pushed)
	if l == 0 {
		panic("Pushed count is 0.")
	}
	return s.Pushed[l-1]
}

type FakeNavigator struct {
	Routes []string
	lock   sync.Mutex
}

func NewFakeNavigator() *FakeNavigator {
	return &FakeNavigator{}
}

func (n *FakeNavigator) GoTo(route string) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.Routes = append(n.Routes, route)
}

func (n *FakeNavigator) NavigationCount() int {
	n.lock.Lock()
	defer n.lock.Unlock()
	return len(n.Routes)
}
