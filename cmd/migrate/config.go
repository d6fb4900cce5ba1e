package main

import (
	"crudapi/internal/config"
	"crudapi/internal/storage"
)

// target resolves the backend to migrate. Flags win over configuration;
// a driver flag without a DSN uses that driver's default location.
func target(driver, dsn string) (storage.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return storage.Config{}, err
	}

	st := cfg.Storage
	if driver != "" && driver != st.Driver {
		st.Driver = driver
		st.DSN = storage.DefaultDSN(driver)
	}
	if dsn != "" {
		st.DSN = dsn
	}
	return st, nil
}
