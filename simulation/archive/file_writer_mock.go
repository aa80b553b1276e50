// Package archive is a generated GoMock package.
package archive

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockFileWriter is a mock of FileWriter interface.
type MockFileWriter struct {
	ctrl     *gomock.Controller
	recorder *MockFileWriterMockRecorder
	isgomock struct{}
}

// MockFileWriterMockRecorder is the mock recorder for MockFileWriter.
type MockFileWriterMockRecorder struct {
	mock *MockFileWriter
}

// NewMockFileWriter creates a new mock instance.
func NewMockFileWriter(ctrl *gomock.Controller) *MockFileWriter {
	mock := &MockFileWriter{ctrl: ctrl}
	mock.recorder = &MockFileWriterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFileWriter) EXPECT() *MockFileWriterMockRecorder {
	return m.recorder
}

// Close mocks base method.
func (m *MockFileWriter) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockFileWriterMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockFileWriter)(nil).Close))
}

// WriteData mocks base method.
func (m *MockFileWriter) WriteData(data []byte) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WriteData", data)
	ret0, _ := ret[0].(error)
	return ret0
}

// WriteData indicates an expected call of WriteData.
func (mr *MockFileWriterMockRecorder) WriteData(data any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteData", reflect.TypeOf((*MockFileWriter)(nil).WriteData), data)
}

// WriteUint16 mocks base method.
func (m *MockFileWriter) WriteUint16(data uint16) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WriteUint16", data)
	ret0, _ := ret[0].(error)
	return ret0
}

// WriteUint16 indicates an expected call of WriteUint16.
func (mr *MockFileWriterMockRecorder) WriteUint16(data any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteUint16", reflect.TypeOf((*MockFileWriter)(nil).WriteUint16), data)
}

// WriteUint64 mocks base method.
func (m *MockFileWriter) WriteUint64(data uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WriteUint64", data)
	ret0, _ := ret[0].(error)
	return ret0
}

// WriteUint64 indicates an expected call of WriteUint64.
func (mr *MockFileWriterMockRecorder) WriteUint64(data any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteUint64", reflect.TypeOf((*MockFileWriter)(nil).WriteUint64), data)
}

// WriteUint8 mocks base method.
func (m *MockFileWriter) WriteUint8(data uint8) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WriteUint8", data)
	ret0, _ := ret[0].(error)
	return ret0
}

// WriteUint8 indicates an expected call of WriteUint8.
func (mr *MockFileWriterMockRecorder) WriteUint8(data any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteUint8", reflect.TypeOf((*MockFileWriter)(nil).WriteUint8), data)
}

// MockWriteBuffer is a mock of WriteBuffer interface.
type MockWriteBuffer struct {
	ctrl     *gomock.Controller
	recorder *MockWriteBufferMockRecorder
	isgomock struct{}
}

// MockWriteBufferMockRecorder is the mock recorder for MockWriteBuffer.
type MockWriteBufferMockRecorder struct {
	mock *MockWriteBuffer
}

// NewMockWriteBuffer creates a new mock instance.
func NewMockWriteBuffer(ctrl *gomock.Controller) *MockWriteBuffer {
	mock := &MockWriteBuffer{ctrl: ctrl}
	mock.recorder = &MockWriteBufferMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWriteBuffer) EXPECT() *MockWriteBufferMockRecorder {
	return m.recorder
}

// Flush mocks base method.
func (m *MockWriteBuffer) Flush() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Flush")
	ret0, _ := ret[0].(error)
	return ret0
}

// Flush indicates an expected call of Flush.
func (mr *MockWriteBufferMockRecorder) Flush() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Flush", reflect.TypeOf((*MockWriteBuffer)(nil).Flush))
}

// Write mocks base method.
func (m *MockWriteBuffer) Write(p []byte) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Write", p)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Write indicates an expected call of Write.
func (mr *MockWriteBufferMockRecorder) Write(p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Write", reflect.TypeOf((*MockWriteBuffer)(nil).Write), p)
}

// WriteByte mocks base method.
func (m *MockWriteBuffer) WriteByte(c byte) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WriteByte", c)
	ret0, _ := ret[0].(error)
	return ret0
}

// WriteByte indicates an expected call of WriteByte.
func (mr *MockWriteBufferMockRecorder) WriteByte(c any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteByte", reflect.TypeOf((*MockWriteBuffer)(nil).WriteByte), c)
}
