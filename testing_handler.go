package libee

import "github.com/stretchr/testify/mock"

type mockHandler[T any] struct {
	mock.Mock

	tapHandle func(ev *Event[T])
}

func (m *mockHandler[T]) Handle(ev *Event[T]) error {
	if m.tapHandle != nil {
		m.tapHandle(ev)
	}
	args := m.MethodCalled("Handle", ev.Data())
	return args.Error(0)
}
