package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigString(t *testing.T) {
	t.Parallel()
	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "host=127.0.0.1 dbname=postgres port=5432 sslmode=prefer", Config{}.String())
	})
	t.Run("credentials", func(t *testing.T) {
		t.Parallel()
		conf := Config{Host: "db", DBName: "bubblegum", User: "indexer", Password: "secret", SSLMode: "disable"}
		assert.Equal(t, "host=db dbname=bubblegum port=5432 sslmode=disable user=indexer password=secret", conf.String())
	})
	t.Run("url wins", func(t *testing.T) {
		t.Parallel()
		conf := Config{Host: "db", URL: "postgres://localhost:5432/bubblegum"}
		assert.Equal(t, "postgres://localhost:5432/bubblegum", conf.String())
	})
}
