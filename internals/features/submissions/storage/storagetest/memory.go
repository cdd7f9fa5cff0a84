// Package storagetest provides an in-memory storage.Storage for handler and seed tests.
package storagetest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gloopclub_backend/internals/features/submissions/storage"
	submissionModel "gloopclub_backend/internals/features/submissions/submissions/model"
	twitterModel "gloopclub_backend/internals/features/submissions/twitter_submissions/model"
)

// MemoryStorage keeps rows in maps keyed by id. Errors queued with FailNext are
// returned (wrapped in *storage.StorageError) by the next call of that operation.
type MemoryStorage struct {
	mu sync.Mutex

	nextID      int64
	submissions map[int64]submissionModel.Submission
	tweets      map[int64]twitterModel.TwitterSubmission

	nextErr map[string]error
	Now     func() time.Time
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		submissions: make(map[int64]submissionModel.Submission),
		tweets:      make(map[int64]twitterModel.TwitterSubmission),
		nextErr:     make(map[string]error),
		Now:         func() time.Time { return time.Now().UTC() },
	}
}

var _ storage.Storage = (*MemoryStorage)(nil)

// FailNext makes the next call to op (method name, e.g. "CreateSubmission") fail with err.
func (m *MemoryStorage) FailNext(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextErr[op] = err
}

func (m *MemoryStorage) takeErr(op string) error {
	if err, ok := m.nextErr[op]; ok {
		delete(m.nextErr, op)
		return &storage.StorageError{Op: op, Err: err}
	}
	return nil
}

func (m *MemoryStorage) CreateSubmission(_ context.Context, in submissionModel.SubmissionInput) (*submissionModel.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeErr("CreateSubmission"); err != nil {
		return nil, err
	}
	m.nextID++
	row := submissionModel.Submission{
		ID:            m.nextID,
		Title:         in.Title,
		Description:   in.Description,
		ImageURL:      in.ImageURL,
		WalletAddress: in.WalletAddress,
		TwitterHandle: in.TwitterHandle,
		DiscordHandle: in.DiscordHandle,
		Status:        submissionModel.SubmissionPending,
		CreatedAt:     m.Now(),
	}
	m.submissions[row.ID] = row
	return &row, nil
}

// ListSubmissions returns rows in id order; callers must not rely on it.
func (m *MemoryStorage) ListSubmissions(_ context.Context) ([]submissionModel.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeErr("ListSubmissions"); err != nil {
		return nil, err
	}
	out := make([]submissionModel.Submission, 0, len(m.submissions))
	for _, row := range m.submissions {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStorage) GetSubmission(_ context.Context, id int64) (*submissionModel.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeErr("GetSubmission"); err != nil {
		return nil, err
	}
	row, ok := m.submissions[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (m *MemoryStorage) UpdateSubmissionStatus(_ context.Context, id int64, status submissionModel.SubmissionStatus) (*submissionModel.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", storage.ErrInvalidStatus, status)
	}
	if err := m.takeErr("UpdateSubmissionStatus"); err != nil {
		return nil, err
	}
	row, ok := m.submissions[id]
	if !ok {
		return nil, nil
	}
	row.Status = status
	m.submissions[id] = row
	return &row, nil
}

func (m *MemoryStorage) CreateTwitterSubmission(_ context.Context, in twitterModel.TwitterSubmissionInput) (*twitterModel.TwitterSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeErr("CreateTwitterSubmission"); err != nil {
		return nil, err
	}
	m.nextID++
	row := twitterModel.TwitterSubmission{
		ID:            m.nextID,
		TwitterHandle: in.TwitterHandle,
		QuoteContent:  in.QuoteContent,
		CreatedAt:     m.Now(),
	}
	m.tweets[row.ID] = row
	return &row, nil
}

func (m *MemoryStorage) Ping(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.takeErr("Ping")
}

// TwitterSubmissions returns every stored twitter row in id order.
func (m *MemoryStorage) TwitterSubmissions() []twitterModel.TwitterSubmission {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]twitterModel.TwitterSubmission, 0, len(m.tweets))
	for _, row := range m.tweets {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MemoryStorage) SubmissionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.submissions)
}
