package provisioner

import (
	"os"

	"github.com/pkg/errors"
)

var ChownFunc func(string, int, int) error = os.Chown

// DirectoryCreator makes home directories owned by the provisioned
// identity. An existing directory is left untouched, ownership included,
// since it may be a volume mounted from the host.
type DirectoryCreator struct {
}

func (d DirectoryCreator) MkdirAs(path string, mode os.FileMode, uid, gid int) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.MkdirAll(path, mode); err != nil {
		return errors.Wrapf(err, "creating directory %s", path)
	}

	return ChownFunc(path, uid, gid)
}
