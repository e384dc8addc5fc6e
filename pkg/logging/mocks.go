package logging

import (
	"github.com/stretchr/testify/mock"
)

// MockLogger is a mock implementation of the Logger interface
type MockLogger struct {
	mock.Mock
}

var _ Logger = (*MockLogger)(nil)

// SetupDefaultExpectations sets up common logger mock expectations that accept
// any arguments. Useful for tests that don't care about specific log calls.
func (m *MockLogger) SetupDefaultExpectations() {
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		m.On(method, mock.Anything, mock.Anything).Maybe().Return()
	}
	for _, method := range []string{"Debugf", "Infof", "Warnf", "Errorf"} {
		m.On(method, mock.Anything).Maybe().Return()
		m.On(method, mock.Anything, mock.Anything).Maybe().Return()
		m.On(method, mock.Anything, mock.Anything, mock.Anything).Maybe().Return()
		m.On(method, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe().Return()
	}
}

func (m *MockLogger) Debug(msg string, tags ...any) {
	m.Called(msg, tags)
}

func (m *MockLogger) Info(msg string, tags ...any) {
	m.Called(msg, tags)
}

func (m *MockLogger) Warn(msg string, tags ...any) {
	m.Called(msg, tags)
}

func (m *MockLogger) Error(msg string, tags ...any) {
	m.Called(msg, tags)
}

func (m *MockLogger) Fatal(msg string, tags ...any) {
	m.Called(msg, tags)
}

func (m *MockLogger) Debugf(template string, args ...interface{}) {
	m.Called(append([]interface{}{template}, args...)...)
}

func (m *MockLogger) Infof(template string, args ...interface{}) {
	m.Called(append([]interface{}{template}, args...)...)
}

func (m *MockLogger) Warnf(template string, args ...interface{}) {
	m.Called(append([]interface{}{template}, args...)...)
}

func (m *MockLogger) Errorf(template string, args ...interface{}) {
	m.Called(append([]interface{}{template}, args...)...)
}

func (m *MockLogger) Fatalf(template string, args ...interface{}) {
	m.Called(append([]interface{}{template}, args...)...)
}

func (m *MockLogger) With(tags ...any) Logger {
	args := m.Called(tags)
	if logger, ok := args.Get(0).(Logger); ok {
		return logger
	}
	return m
}

// NoOpLogger discards everything. Handy default for tests that never
// assert on logging.
type NoOpLogger struct{}

var _ Logger = (*NoOpLogger)(nil)

func (NoOpLogger) Debug(msg string, tags ...any) {}
func (NoOpLogger) Info(msg string, tags ...any) {}
func (NoOpLogger) Warn(msg string, tags ...any) {}
func (NoOpLogger) Error(msg string, tags ...any) {}
func (NoOpLogger) Fatal(msg string, tags ...any) {}
func (NoOpLogger) Debugf(template string, args ...interface{}) {}
func (NoOpLogger) Infof(template string, args ...interface{}) {}
func (NoOpLogger) Warnf(template string, args ...interface{}) {}
func (NoOpLogger) Errorf(template string, args ...interface{}) {}
func (NoOpLogger) Fatalf(template string, args ...interface{}) {}
func (n NoOpLogger) With(tags ...any) Logger { return n }
