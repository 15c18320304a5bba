package config

const defaultStoragePath = "data/expenses.db"

type StorageConfig struct {
	StoragePath string `yaml:"path"`
}

func (s *StorageConfig) Path() string {
	if s.StoragePath == "" {
		return defaultStoragePath
	}
	return s.StoragePath
}
