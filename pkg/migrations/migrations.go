package migrations

import (
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/pkg/errors"
)

// Do applies every pending migration from path against connString.
func Do(connString, path string, logger *slog.Logger) error {
	m, err := migrate.New("file://"+path, connString)
	if err != nil {
		return errors.Wrap(err, "create migrator")
	}
	defer m.Close()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Debug("migrations: nothing to apply")
		return nil
	}

	return err
}
