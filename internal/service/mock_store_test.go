package service

import (
	"context"
	"sync"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/model"
)

// ── Mock StudentDataStore ──

type mockStudentStore struct {
	mu    sync.Mutex
	data  map[string]*model.StudentData
	err   error
	calls int
}

func newMockStudentStore() *mockStudentStore {
	return &mockStudentStore{data: make(map[string]*model.StudentData)}
}

func (m *mockStudentStore) put(userID string, events ...model.AcademicEvent) {
	m.data[userID] = &model.StudentData{UserID: userID, Events: events}
}

func (m *mockStudentStore) Fetch(_ context.Context, userID string) (*model.StudentData, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	if d, ok := m.data[userID]; ok {
		return d, nil
	}
	return &model.StudentData{UserID: userID}, nil
}
