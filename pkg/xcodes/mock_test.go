package xcodes

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	called := m.Called(name, args)
	out, _ := called.Get(0).([]byte)
	return out, called.Error(1)
}

func (m *mockRunner) Run(ctx context.Context, name string, args ...string) error {
	called := m.Called(name, args)
	return called.Error(0)
}
