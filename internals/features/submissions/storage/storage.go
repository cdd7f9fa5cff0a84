// Package storage is the only code allowed to read or write the submissions
// and twitter_submissions tables.
package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	database "gloopclub_backend/internals/databases"
	submissionModel "gloopclub_backend/internals/features/submissions/submissions/model"
	twitterModel "gloopclub_backend/internals/features/submissions/twitter_submissions/model"
)

// ErrInvalidStatus is returned by UpdateSubmissionStatus before touching the store.
var ErrInvalidStatus = errors.New("invalid submission status")

// StorageError wraps any failure reported by the relational store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage is the persistence gateway contract. Absent rows are (nil, nil), never an error.
type Storage interface {
	CreateSubmission(ctx context.Context, in submissionModel.SubmissionInput) (*submissionModel.Submission, error)
	ListSubmissions(ctx context.Context) ([]submissionModel.Submission, error)
	GetSubmission(ctx context.Context, id int64) (*submissionModel.Submission, error)
	UpdateSubmissionStatus(ctx context.Context, id int64, status submissionModel.SubmissionStatus) (*submissionModel.Submission, error)
	CreateTwitterSubmission(ctx context.Context, in twitterModel.TwitterSubmissionInput) (*twitterModel.TwitterSubmission, error)
	Ping(ctx context.Context) error
}

type GormStorage struct {
	DB *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{DB: db}
}

var _ Storage = (*GormStorage)(nil)

// =======================
// ➕ Create Submission
// =======================
func (s *GormStorage) CreateSubmission(ctx context.Context, in submissionModel.SubmissionInput) (*submissionModel.Submission, error) {
	row := submissionModel.Submission{
		Title:         in.Title,
		Description:   in.Description,
		ImageURL:      in.ImageURL,
		WalletAddress: in.WalletAddress,
		TwitterHandle: in.TwitterHandle,
		DiscordHandle: in.DiscordHandle,
		Status:        submissionModel.SubmissionPending,
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, &StorageError{Op: "create submission", Err: err}
	}
	return &row, nil
}

// =======================
// 📄 List Submissions (store order, no ORDER BY)
// =======================
func (s *GormStorage) ListSubmissions(ctx context.Context) ([]submissionModel.Submission, error) {
	rows := make([]submissionModel.Submission, 0)
	if err := s.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, &StorageError{Op: "list submissions", Err: err}
	}
	return rows, nil
}

// =======================
// 🔍 Get Submission by ID
// =======================
func (s *GormStorage) GetSubmission(ctx context.Context, id int64) (*submissionModel.Submission, error) {
	var row submissionModel.Submission
	err := s.DB.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "get submission", Err: err}
	}
	return &row, nil
}

// =======================
// ✏️ Update Submission Status (moderation)
// =======================
func (s *GormStorage) UpdateSubmissionStatus(ctx context.Context, id int64, status submissionModel.SubmissionStatus) (*submissionModel.Submission, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var row submissionModel.Submission
	res := s.DB.WithContext(ctx).
		Model(&row).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, &StorageError{Op: "update submission status", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

// =======================
// ➕ Create Twitter Submission
// =======================
func (s *GormStorage) CreateTwitterSubmission(ctx context.Context, in twitterModel.TwitterSubmissionInput) (*twitterModel.TwitterSubmission, error) {
	row := twitterModel.TwitterSubmission{
		TwitterHandle: in.TwitterHandle,
		QuoteContent:  in.QuoteContent,
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, &StorageError{Op: "create twitter submission", Err: err}
	}
	return &row, nil
}

func (s *GormStorage) Ping(ctx context.Context) error {
	if err := database.Ping(ctx, s.DB); err != nil {
		return &StorageError{Op: "ping", Err: err}
	}
	return nil
}
