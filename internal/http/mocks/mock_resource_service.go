// Package mocks holds gomock mocks for http.ResourceService.
// They are written by hand because mockgen does not support generic
// interfaces.
package mocks

import (
	context "context"
	reflect "reflect"

	resource "crudapi/internal/resource"
	gomock "github.com/golang/mock/gomock"
)

// MockResourceService is a mock of ResourceService interface.
type MockResourceService[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockResourceServiceMockRecorder[T]
}

// MockResourceServiceMockRecorder is the mock recorder for MockResourceService.
type MockResourceServiceMockRecorder[T any] struct {
	mock *MockResourceService[T]
}

// NewMockResourceService creates a new mock instance.
func NewMockResourceService[T any](ctrl *gomock.Controller) *MockResourceService[T] {
	mock := &MockResourceService[T]{ctrl: ctrl}
	mock.recorder = &MockResourceServiceMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockResourceService[T]) EXPECT() *MockResourceServiceMockRecorder[T] {
	return m.recorder
}

// Add mocks base method.
func (m *MockResourceService[T]) Add(ctx context.Context, item T) (T, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Add", ctx, item)
	ret0, _ := ret[0].(T)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Add indicates an expected call of Add.
func (mr *MockResourceServiceMockRecorder[T]) Add(ctx interface{}, item interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Add", reflect.TypeOf((*MockResourceService[T])(nil).Add), ctx, item)
}

// Delete mocks base method.
func (m *MockResourceService[T]) Delete(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockResourceServiceMockRecorder[T]) Delete(ctx interface{}, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockResourceService[T])(nil).Delete), ctx, id)
}

// DeleteAll mocks base method.
func (m *MockResourceService[T]) DeleteAll(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteAll", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteAll indicates an expected call of DeleteAll.
func (mr *MockResourceServiceMockRecorder[T]) DeleteAll(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteAll", reflect.TypeOf((*MockResourceService[T])(nil).DeleteAll), ctx)
}

// GetAll mocks base method.
func (m *MockResourceService[T]) GetAll(ctx context.Context) ([]T, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", ctx)
	ret0, _ := ret[0].([]T)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockResourceServiceMockRecorder[T]) GetAll(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockResourceService[T])(nil).GetAll), ctx)
}

// GetByFieldExact mocks base method.
func (m *MockResourceService[T]) GetByFieldExact(ctx context.Context, value string) (T, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByFieldExact", ctx, value)
	ret0, _ := ret[0].(T)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByFieldExact indicates an expected call of GetByFieldExact.
func (mr *MockResourceServiceMockRecorder[T]) GetByFieldExact(ctx interface{}, value interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByFieldExact", reflect.TypeOf((*MockResourceService[T])(nil).GetByFieldExact), ctx, value)
}

// GetByID mocks base method.
func (m *MockResourceService[T]) GetByID(ctx context.Context, id int64) (T, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(T)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockResourceServiceMockRecorder[T]) GetByID(ctx interface{}, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockResourceService[T])(nil).GetByID), ctx, id)
}

// SearchByField mocks base method.
func (m *MockResourceService[T]) SearchByField(ctx context.Context, value string) ([]T, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchByField", ctx, value)
	ret0, _ := ret[0].([]T)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SearchByField indicates an expected call of SearchByField.
func (mr *MockResourceServiceMockRecorder[T]) SearchByField(ctx interface{}, value interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchByField", reflect.TypeOf((*MockResourceService[T])(nil).SearchByField), ctx, value)
}

// SortBy mocks base method.
func (m *MockResourceService[T]) SortBy(ctx context.Context, field string, order resource.Order) ([]T, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SortBy", ctx, field, order)
	ret0, _ := ret[0].([]T)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SortBy indicates an expected call of SortBy.
func (mr *MockResourceServiceMockRecorder[T]) SortBy(ctx interface{}, field interface{}, order interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SortBy", reflect.TypeOf((*MockResourceService[T])(nil).SortBy), ctx, field, order)
}

// Update mocks base method.
func (m *MockResourceService[T]) Update(ctx context.Context, item T) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, item)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockResourceServiceMockRecorder[T]) Update(ctx interface{}, item interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockResourceService[T])(nil).Update), ctx, item)
}
