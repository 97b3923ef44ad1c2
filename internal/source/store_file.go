package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type implFileStore struct {
	dir string
}

// NewFileStore keeps one <id>.json file per document in dir.
func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &implFileStore{dir: dir}, nil
}

func (s *implFileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func (s *implFileStore) Get(ctx context.Context, docID string) (Document, error) {
	if err := ValidateDocID(docID); err != nil {
		return Document{}, err
	}

	data, err := os.ReadFile(s.path(docID))
	if errors.Is(err, fs.ErrNotExist) {
		return Document{}, fmt.Errorf("%w: document %s", ErrNotFound, docID)
	}
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode document %s: %w", docID, err)
	}
	if doc.ID == "" {
		doc.ID = docID
	}
	return doc, nil
}

func (s *implFileStore) Put(ctx context.Context, doc Document) error {
	if err := ValidateDocID(doc.ID); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	tmp := s.path(doc.ID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return os.Rename(tmp, s.path(doc.ID))
}

func (s *implFileStore) Close() error {
	return nil
}
