package inits

import (
	"os"
	"slices"
	"smart-mockdata/app/dashboard/models"
	"testing"
	"time"
)

func TestConfigDefaults(t *testing.T) {
	t.Setenv("SEED_USERNAME", "admin")
	t.Setenv("SEED_PASSWORD", "admin123")
	for _, key := range []string{"BACKEND_ENDPOINT", "SEED_INTERVAL", "SEED_KINDS", "SEED_BATCH", "REQUEST_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Config()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.BackendEndpoint != "http://localhost:8080/api" || cfg.SeedInterval != time.Minute || cfg.SeedBatch != 1 {
		t.Errorf("cfg = %+v", cfg)
	}
	if !slices.Equal(cfg.SeedKinds, []models.Kind{models.KindCategory, models.KindBook}) {
		t.Errorf("kinds = %v", cfg.SeedKinds)
	}
}

func TestConfigKinds(t *testing.T) {
	t.Setenv("SEED_USERNAME", "admin")
	t.Setenv("SEED_PASSWORD", "admin123")
	t.Setenv("SEED_KINDS", "User, api")

	cfg, err := Config()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(cfg.SeedKinds, []models.Kind{models.KindUser, models.KindApi}) {
		t.Errorf("kinds = %v", cfg.SeedKinds)
	}

	t.Setenv("SEED_KINDS", "user,site")
	if _, err := Config(); err == nil {
		t.Error("unknown kind accepted")
	}
}

func TestConfigRejects(t *testing.T) {
	cases := map[string]string{
		"SEED_INTERVAL": "0s",
		"SEED_BATCH":    "zero",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("SEED_USERNAME", "admin")
			t.Setenv("SEED_PASSWORD", "admin123")
			t.Setenv(key, value)

			if _, err := Config(); err == nil {
				t.Errorf("%s=%s accepted", key, value)
			}
		})
	}

	t.Run("credentials", func(t *testing.T) {
		t.Setenv("SEED_USERNAME", "")
		os.Unsetenv("SEED_USERNAME")

		if _, err := Config(); err == nil {
			t.Error("missing SEED_USERNAME accepted")
		}
	})
}
