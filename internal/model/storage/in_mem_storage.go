package storage

import "context"

// InMemStorage keeps settings for the session only. It backs tests and
// serves as a fallback when the sqlite file cannot be opened.
type InMemStorage struct {
	settings map[string][]byte
}

func NewInMemStorage() *InMemStorage {
	s := make(map[string][]byte)
	return &InMemStorage{s}
}

func (s *InMemStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, ok := s.settings[key]
	if !ok {
		return nil, false, nil
	}
	return value, true, nil
}

func (s *InMemStorage) Set(_ context.Context, key string, value []byte) error {
	s.settings[key] = value
	return nil
}
