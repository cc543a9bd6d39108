package mocks

import (
	context "context"

	entity "github.com/GameraCC/gym/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockFieldSet is a mock type for the FieldSet type
type MockFieldSet struct {
	mock.Mock
}

type MockFieldSet_Expecter struct {
	mock *mock.Mock
}

func (_m *MockFieldSet) EXPECT() *MockFieldSet_Expecter {
	return &MockFieldSet_Expecter{mock: &_m.Mock}
}

// Active provides a mock function with no fields
func (_m *MockFieldSet) Active() (entity.FieldKey, bool) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Active")
	}

	var r0 entity.FieldKey
	var r1 bool
	if rf, ok := ret.Get(0).(func() (entity.FieldKey, bool)); ok {
		return rf()
	}
	if rf, ok := ret.Get(0).(func() entity.FieldKey); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(entity.FieldKey)
	}
	if rf, ok := ret.Get(1).(func() bool); ok {
		r1 = rf()
	} else {
		r1 = ret.Get(1).(bool)
	}

	return r0, r1
}

// MockFieldSet_Active_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Active'
type MockFieldSet_Active_Call struct {
	*mock.Call
}

// Active is a helper method to define mock.On call
func (_e *MockFieldSet_Expecter) Active() *MockFieldSet_Active_Call {
	return &MockFieldSet_Active_Call{Call: _e.mock.On("Active")}
}

func (_c *MockFieldSet_Active_Call) Return(_a0 entity.FieldKey, _a1 bool) *MockFieldSet_Active_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// Blur provides a mock function with given fields: ctx, key
func (_m *MockFieldSet) Blur(ctx context.Context, key entity.FieldKey) error {
	ret := _m.Called(ctx, key)

	if len(ret) == 0 {
		panic("no return value specified for Blur")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.FieldKey) error); ok {
		r0 = rf(ctx, key)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockFieldSet_Blur_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Blur'
type MockFieldSet_Blur_Call struct {
	*mock.Call
}

// Blur is a helper method to define mock.On call
//   - ctx context.Context
//   - key entity.FieldKey
func (_e *MockFieldSet_Expecter) Blur(ctx interface{}, key interface{}) *MockFieldSet_Blur_Call {
	return &MockFieldSet_Blur_Call{Call: _e.mock.On("Blur", ctx, key)}
}

func (_c *MockFieldSet_Blur_Call) Return(_a0 error) *MockFieldSet_Blur_Call {
	_c.Call.Return(_a0)
	return _c
}

// CloseAll provides a mock function with given fields: ctx
func (_m *MockFieldSet) CloseAll(ctx context.Context) {
	_m.Called(ctx)
}

// MockFieldSet_CloseAll_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CloseAll'
type MockFieldSet_CloseAll_Call struct {
	*mock.Call
}

// CloseAll is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockFieldSet_Expecter) CloseAll(ctx interface{}) *MockFieldSet_CloseAll_Call {
	return &MockFieldSet_CloseAll_Call{Call: _e.mock.On("CloseAll", ctx)}
}

func (_c *MockFieldSet_CloseAll_Call) Return() *MockFieldSet_CloseAll_Call {
	_c.Call.Return()
	return _c
}

// Focus provides a mock function with given fields: ctx, key
func (_m *MockFieldSet) Focus(ctx context.Context, key entity.FieldKey) error {
	ret := _m.Called(ctx, key)

	if len(ret) == 0 {
		panic("no return value specified for Focus")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.FieldKey) error); ok {
		r0 = rf(ctx, key)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockFieldSet_Focus_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Focus'
type MockFieldSet_Focus_Call struct {
	*mock.Call
}

// Focus is a helper method to define mock.On call
//   - ctx context.Context
//   - key entity.FieldKey
func (_e *MockFieldSet_Expecter) Focus(ctx interface{}, key interface{}) *MockFieldSet_Focus_Call {
	return &MockFieldSet_Focus_Call{Call: _e.mock.On("Focus", ctx, key)}
}

func (_c *MockFieldSet_Focus_Call) Return(_a0 error) *MockFieldSet_Focus_Call {
	_c.Call.Return(_a0)
	return _c
}

// Keys provides a mock function with no fields
func (_m *MockFieldSet) Keys() []entity.FieldKey {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Keys")
	}

	var r0 []entity.FieldKey
	if rf, ok := ret.Get(0).(func() []entity.FieldKey); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.FieldKey)
	}

	return r0
}

// MockFieldSet_Keys_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Keys'
type MockFieldSet_Keys_Call struct {
	*mock.Call
}

// Keys is a helper method to define mock.On call
func (_e *MockFieldSet_Expecter) Keys() *MockFieldSet_Keys_Call {
	return &MockFieldSet_Keys_Call{Call: _e.mock.On("Keys")}
}

func (_c *MockFieldSet_Keys_Call) Return(_a0 []entity.FieldKey) *MockFieldSet_Keys_Call {
	_c.Call.Return(_a0)
	return _c
}

// Unregister provides a mock function with given fields: ctx, key
func (_m *MockFieldSet) Unregister(ctx context.Context, key entity.FieldKey) {
	_m.Called(ctx, key)
}

// MockFieldSet_Unregister_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Unregister'
type MockFieldSet_Unregister_Call struct {
	*mock.Call
}

// Unregister is a helper method to define mock.On call
//   - ctx context.Context
//   - key entity.FieldKey
func (_e *MockFieldSet_Expecter) Unregister(ctx interface{}, key interface{}) *MockFieldSet_Unregister_Call {
	return &MockFieldSet_Unregister_Call{Call: _e.mock.On("Unregister", ctx, key)}
}

func (_c *MockFieldSet_Unregister_Call) Return() *MockFieldSet_Unregister_Call {
	_c.Call.Return()
	return _c
}

// Value provides a mock function with given fields: key
func (_m *MockFieldSet) Value(key entity.FieldKey) (string, bool) {
	ret := _m.Called(key)

	if len(ret) == 0 {
		panic("no return value specified for Value")
	}

	var r0 string
	var r1 bool
	if rf, ok := ret.Get(0).(func(entity.FieldKey) (string, bool)); ok {
		return rf(key)
	}
	if rf, ok := ret.Get(0).(func(entity.FieldKey) string); ok {
		r0 = rf(key)
	} else {
		r0 = ret.Get(0).(string)
	}
	if rf, ok := ret.Get(1).(func(entity.FieldKey) bool); ok {
		r1 = rf(key)
	} else {
		r1 = ret.Get(1).(bool)
	}

	return r0, r1
}

// MockFieldSet_Value_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Value'
type MockFieldSet_Value_Call struct {
	*mock.Call
}

// Value is a helper method to define mock.On call
//   - key entity.FieldKey
func (_e *MockFieldSet_Expecter) Value(key interface{}) *MockFieldSet_Value_Call {
	return &MockFieldSet_Value_Call{Call: _e.mock.On("Value", key)}
}

func (_c *MockFieldSet_Value_Call) Return(_a0 string, _a1 bool) *MockFieldSet_Value_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewMockFieldSet creates a new instance of MockFieldSet. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockFieldSet(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFieldSet {
	m := &MockFieldSet{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
