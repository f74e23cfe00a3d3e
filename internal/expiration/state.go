package expiration

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"expirypicker/internal/domain"
)

// stateFile is the on-disk layout of the saved expiration
type stateFile struct {
	Month     string    `toml:"month"`
	Year      string    `toml:"year"`
	UpdatedAt time.Time `toml:"updated_at"`
}

// LoadState reads the saved expiration from path. A missing file is not an
// error and yields an empty expiration.
func LoadState(path string) (domain.Expiration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Expiration{}, nil
		}
		return domain.Expiration{}, errors.Wrapf(err, "read state file %s", path)
	}

	var sf stateFile
	if err := toml.Unmarshal(data, &sf); err != nil {
		return domain.Expiration{}, errors.Wrapf(err, "parse state file %s", path)
	}
	return domain.Expiration{Month: sf.Month, Year: sf.Year}, nil
}

// SaveState writes exp to path, creating the parent directory if needed.
// The file is replaced atomically.
func SaveState(path string, exp domain.Expiration) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create state directory")
	}

	data, err := toml.Marshal(stateFile{
		Month:     exp.Month,
		Year:      exp.Year,
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	})
	if err != nil {
		return errors.Wrap(err, "marshal state")
	}

	tmp, err := os.CreateTemp(dir, ".expiration-*.toml")
	if err != nil {
		return errors.Wrap(err, "create temp state file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write state file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close state file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "replace state file %s", path)
	}
	return nil
}
