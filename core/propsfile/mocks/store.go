package mocks

import (
	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of propsfile.Store
type Store struct {
	mock.Mock
}

func (m *Store) ReadText(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

func (m *Store) WriteText(path string, content string) error {
	args := m.Called(path, content)
	return args.Error(0)
}
