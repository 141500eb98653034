// Package store persists report records keyed by a durable per-respondent
// token. The core treats records as opaque blobs: drivers only need
// create-and-lookup, never queries.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dotcommander/scorekit/internal/types"
)

// ErrNotFound is returned when no report exists for a token. Absence is an
// expected outcome for callers to branch on.
var ErrNotFound = errors.New("report not found")

// Lead identifies who the report was generated for.
type Lead struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Company string `json:"company,omitempty"`
}

// ReportRecord is one persisted report: the raw answers plus the scoring
// result they produced, under the token handed back to the respondent.
type ReportRecord struct {
	Token      string              `json:"token"`
	CreatedAt  time.Time           `json:"createdAt"`
	TemplateID string              `json:"templateId"`
	Answers    map[string]any      `json:"answers"`
	Result     types.ScoringResult `json:"result"`
	Lead       Lead                `json:"lead"`
}

// CreateReportInput is the payload for CreateReport; the store assigns the
// token and timestamp.
type CreateReportInput struct {
	TemplateID string              `json:"templateId"`
	Answers    map[string]any      `json:"answers"`
	Result     types.ScoringResult `json:"result"`
	Lead       Lead                `json:"lead"`
}

// Store is the report persistence contract.
type Store interface {
	CreateReport(ctx context.Context, input CreateReportInput) (string, error)
	GetReport(ctx context.Context, token string) (*ReportRecord, error)
}

// newToken mints the durable report token.
func newToken() string {
	return uuid.NewString()
}

func newRecord(input CreateReportInput) ReportRecord {
	return ReportRecord{
		Token:      newToken(),
		CreatedAt:  time.Now().UTC(),
		TemplateID: input.TemplateID,
		Answers:    input.Answers,
		Result:     input.Result,
		Lead:       input.Lead,
	}
}

// MemoryStore keeps records in process memory. The default driver; suitable
// for tests and single-shot CLI runs.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]ReportRecord
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]ReportRecord)}
}

// CreateReport stores the record and returns its token.
func (s *MemoryStore) CreateReport(_ context.Context, input CreateReportInput) (string, error) {
	record := newRecord(input)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Token] = record
	return record.Token, nil
}

// GetReport looks a record up by token.
func (s *MemoryStore) GetReport(_ context.Context, token string) (*ReportRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[token]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

// Open constructs the store selected by driver. path configures the file
// driver, addr the redis driver.
func Open(driver, path, addr string) (Store, error) {
	switch driver {
	case "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(path)
	case "redis":
		return NewRedisStore(addr), nil
	default:
		return nil, fmt.Errorf("unknown store driver: %s", driver)
	}
}
