package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

// MockFieldHandle is a mock type for the FieldHandle type
type MockFieldHandle struct {
	mock.Mock
}

type MockFieldHandle_Expecter struct {
	mock *mock.Mock
}

func (_m *MockFieldHandle) EXPECT() *MockFieldHandle_Expecter {
	return &MockFieldHandle_Expecter{mock: &_m.Mock}
}

// Blur provides a mock function with no fields
func (_m *MockFieldHandle) Blur() {
	_m.Called()
}

// MockFieldHandle_Blur_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Blur'
type MockFieldHandle_Blur_Call struct {
	*mock.Call
}

// Blur is a helper method to define mock.On call
func (_e *MockFieldHandle_Expecter) Blur() *MockFieldHandle_Blur_Call {
	return &MockFieldHandle_Blur_Call{Call: _e.mock.On("Blur")}
}

func (_c *MockFieldHandle_Blur_Call) Run(run func()) *MockFieldHandle_Blur_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockFieldHandle_Blur_Call) Return() *MockFieldHandle_Blur_Call {
	_c.Call.Return()
	return _c
}

// Focus provides a mock function with no fields
func (_m *MockFieldHandle) Focus() {
	_m.Called()
}

// MockFieldHandle_Focus_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Focus'
type MockFieldHandle_Focus_Call struct {
	*mock.Call
}

// Focus is a helper method to define mock.On call
func (_e *MockFieldHandle_Expecter) Focus() *MockFieldHandle_Focus_Call {
	return &MockFieldHandle_Focus_Call{Call: _e.mock.On("Focus")}
}

func (_c *MockFieldHandle_Focus_Call) Run(run func()) *MockFieldHandle_Focus_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockFieldHandle_Focus_Call) Return() *MockFieldHandle_Focus_Call {
	_c.Call.Return()
	return _c
}

// NewMockFieldHandle creates a new instance of MockFieldHandle. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockFieldHandle(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFieldHandle {
	m := &MockFieldHandle{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
