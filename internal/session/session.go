// Package session holds the per-run state of the tool: resolved
// configuration, the loaded record table and its backing store. It replaces
// hidden package-level mutable state with one explicit context object.
package session

import (
	"time"

	"rpires/nf-control/internal/advisor"
	"rpires/nf-control/internal/config"
	"rpires/nf-control/internal/inference"
	"rpires/nf-control/internal/models"
	"rpires/nf-control/internal/store"
)

// Session owns the live table for the duration of a command run. There is
// exactly one mutable table reference per session and no concurrent access
// path; all operations run on the calling goroutine.
type Session struct {
	Config   *config.Config
	Store    *store.RecordStore
	Table    store.Table
	Mappings *inference.Mappings
}

// New initializes a session: it loads the backing worksheet (or starts empty)
// and resolves the sector mapping tables.
func New(cfg *config.Config) *Session {
	st := store.NewRecordStore(cfg.Worksheet.Path, cfg.Worksheet.Sheet)
	return &Session{
		Config:   cfg,
		Store:    st,
		Table:    st.Load(),
		Mappings: inference.LoadMappings(cfg.Mappings.File),
	}
}

// Commit appends a validated record to the table and persists the whole table
// to disk as one logical sequence. The session table is only advanced when
// persisting succeeded.
func (s *Session) Commit(record models.FiscalRecord) error {
	next := s.Table.Append(record)
	if err := s.Store.Persist(next); err != nil {
		return err
	}
	s.Table = next
	return nil
}

// Advisor builds the advisory client from the session configuration.
func (s *Session) Advisor() *advisor.Client {
	return advisor.NewClient(advisor.Config{
		Endpoint:    s.Config.Advisor.Endpoint,
		Model:       s.Config.Advisor.Model,
		Temperature: s.Config.Advisor.Temperature,
		TopP:        s.Config.Advisor.TopP,
		Timeout:     time.Duration(s.Config.Advisor.TimeoutSeconds) * time.Second,
	})
}
