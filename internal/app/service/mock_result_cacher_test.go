package service

import (
	"context"
	"time"

	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/analysis"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/ticket"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type MockResultCacher struct {
	mock.Mock
}

func NewMockResultCacher(t testingT) *MockResultCacher {
	m := &MockResultCacher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockResultCacher) GetCacheKey(path string, settings ticket.Settings) (string, error) {
	args := m.Called(path, settings)
	return args.String(0), args.Error(1)
}

func (m *MockResultCacher) GetLockKey(cacheKey string) string {
	args := m.Called(cacheKey)
	return args.String(0)
}

func (m *MockResultCacher) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	args := m.Called(ctx, key, timeout)
	return args.Bool(0), args.Error(1)
}

func (m *MockResultCacher) ReleaseLock(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockResultCacher) GetResult(ctx context.Context, key string) (analysis.Result, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(analysis.Result), args.Error(1)
}

func (m *MockResultCacher) SetResult(ctx context.Context, key string, result analysis.Result, expiration time.Duration) error {
	args := m.Called(ctx, key, result, expiration)
	return args.Error(0)
}

type MockTicketReader struct {
	mock.Mock
}

func NewMockTicketReader(t testingT) *MockTicketReader {
	m := &MockTicketReader{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTicketReader) ReadFile(ctx context.Context, path string) []ticket.Ticket {
	args := m.Called(ctx, path)
	return args.Get(0).([]ticket.Ticket)
}
