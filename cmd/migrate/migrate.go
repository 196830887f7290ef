package migrate

import (
	"fmt"
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/internal/config"
	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

const (
	bubblegumMigrationSource = "modules/bubblegum/database/postgresql/migrations"
	bubblegumMigrationTable  = "bubblegum_schema_migrations"
)

var supportedDrivers = map[string]struct{}{
	"postgres":   {},
	"postgresql": {},
}

type migrateCmdOptions struct {
	DatabaseURL     string
	BubblegumSource string
}

func (o *migrateCmdOptions) bindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.BubblegumSource, "bubblegum-source", bubblegumMigrationSource, "Path to Bubblegum migrations directory.")
	flags.StringVar(&o.DatabaseURL, "database", "", "Database url to run migration on, defaults to `modules.bubblegum.postgres.url`")
}

// newMigrate opens the Bubblegum migrations against the database, recording
// applied versions in their own table so other schemas can share the database.
func (o *migrateCmdOptions) newMigrate() (*migrate.Migrate, error) {
	rawURL := o.DatabaseURL
	if rawURL == "" {
		rawURL = config.Load().Modules.Bubblegum.Postgres.URL
	}
	if rawURL == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "--database is required")
	}
	databaseURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse database URL")
	}
	if _, ok := supportedDrivers[databaseURL.Scheme]; !ok {
		return nil, errors.Wrapf(errs.Unsupported, "unsupported database driver: %s", databaseURL.Scheme)
	}

	databaseURL = cloneURLWithQuery(databaseURL, url.Values{"x-migrations-table": {bubblegumMigrationTable}})
	m, err := migrate.New("file://"+o.BubblegumSource, databaseURL.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Migrate instance")
	}
	m.Log = &consoleLogger{prefix: "[Bubblegum] "}
	return m, nil
}

func cloneURLWithQuery(u *url.URL, newQuery url.Values) *url.URL {
	clone := *u
	query := clone.Query()
	for key, values := range newQuery {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	clone.RawQuery = query.Encode()
	return &clone
}

var _ migrate.Logger = (*consoleLogger)(nil)

type consoleLogger struct {
	prefix  string
	verbose bool
}

func (l *consoleLogger) Printf(format string, v ...interface{}) {
	fmt.Printf(l.prefix+format, v...)
}

func (l *consoleLogger) Verbose() bool {
	return l.verbose
}
