package mocks

import (
	context "context"
	reflect "reflect"

	entity "github.com/GameraCC/gym/internal/domain/entity"
	gomock "go.uber.org/mock/gomock"
)

// MockKeyboardObserver is a mock of KeyboardObserver interface.
type MockKeyboardObserver struct {
	ctrl     *gomock.Controller
	recorder *MockKeyboardObserverMockRecorder
}

// MockKeyboardObserverMockRecorder is the mock recorder for MockKeyboardObserver.
type MockKeyboardObserverMockRecorder struct {
	mock *MockKeyboardObserver
}

// NewMockKeyboardObserver creates a new mock instance.
func NewMockKeyboardObserver(ctrl *gomock.Controller) *MockKeyboardObserver {
	mock := &MockKeyboardObserver{ctrl: ctrl}
	mock.recorder = &MockKeyboardObserverMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockKeyboardObserver) EXPECT() *MockKeyboardObserverMockRecorder {
	return m.recorder
}

// OnKeyboardChange mocks base method.
func (m *MockKeyboardObserver) OnKeyboardChange(ctx context.Context, prev, next entity.KeyboardState) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnKeyboardChange", ctx, prev, next)
}

// OnKeyboardChange indicates an expected call of OnKeyboardChange.
func (mr *MockKeyboardObserverMockRecorder) OnKeyboardChange(ctx, prev, next any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnKeyboardChange", reflect.TypeOf((*MockKeyboardObserver)(nil).OnKeyboardChange), ctx, prev, next)
}
