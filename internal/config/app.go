package config

import "max.ks1230/expenses-tracker/internal/entity/expense"

type AppConfig struct {
	DefaultCurrencyName  string `yaml:"default-currency"`
	PlaceholderStoreName string `yaml:"placeholder-store"`
}

func (s *AppConfig) DefaultCurrency() string {
	if s.DefaultCurrencyName == "" {
		return expense.DefaultCurrency
	}
	return s.DefaultCurrencyName
}

func (s *AppConfig) PlaceholderStore() string {
	if s.PlaceholderStoreName == "" {
		return expense.DefaultStore
	}
	return s.PlaceholderStoreName
}
