// Package mocks holds gomock mocks for resource.Collection.
// They are written by hand because mockgen does not support generic
// interfaces.
package mocks

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockCollection is a mock of Collection interface.
type MockCollection[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockCollectionMockRecorder[T]
}

// MockCollectionMockRecorder is the mock recorder for MockCollection.
type MockCollectionMockRecorder[T any] struct {
	mock *MockCollection[T]
}

// NewMockCollection creates a new mock instance.
func NewMockCollection[T any](ctrl *gomock.Controller) *MockCollection[T] {
	mock := &MockCollection[T]{ctrl: ctrl}
	mock.recorder = &MockCollectionMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCollection[T]) EXPECT() *MockCollectionMockRecorder[T] {
	return m.recorder
}

// Clear mocks base method.
func (m *MockCollection[T]) Clear(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Clear", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Clear indicates an expected call of Clear.
func (mr *MockCollectionMockRecorder[T]) Clear(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Clear", reflect.TypeOf((*MockCollection[T])(nil).Clear), ctx)
}

// Get mocks base method.
func (m *MockCollection[T]) Get(ctx context.Context, id int64) (T, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id)
	ret0, _ := ret[0].(T)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockCollectionMockRecorder[T]) Get(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockCollection[T])(nil).Get), ctx, id)
}

// Insert mocks base method.
func (m *MockCollection[T]) Insert(ctx context.Context, item T) (T, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Insert", ctx, item)
	ret0, _ := ret[0].(T)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Insert indicates an expected call of Insert.
func (mr *MockCollectionMockRecorder[T]) Insert(ctx, item interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockCollection[T])(nil).Insert), ctx, item)
}

// List mocks base method.
func (m *MockCollection[T]) List(ctx context.Context) ([]T, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]T)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockCollectionMockRecorder[T]) List(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockCollection[T])(nil).List), ctx)
}

// Remove mocks base method.
func (m *MockCollection[T]) Remove(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Remove", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Remove indicates an expected call of Remove.
func (mr *MockCollectionMockRecorder[T]) Remove(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Remove", reflect.TypeOf((*MockCollection[T])(nil).Remove), ctx, id)
}

// Replace mocks base method.
func (m *MockCollection[T]) Replace(ctx context.Context, item T) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Replace", ctx, item)
	ret0, _ := ret[0].(error)
	return ret0
}

// Replace indicates an expected call of Replace.
func (mr *MockCollectionMockRecorder[T]) Replace(ctx, item interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Replace", reflect.TypeOf((*MockCollection[T])(nil).Replace), ctx, item)
}
