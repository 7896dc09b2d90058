package idbank

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/usher/pkg/locksmith"
	"github.com/opencontainers/runc/libcontainer/user"
	"github.com/pkg/errors"
)

// FileRepo reads and appends to passwd/group files in the format consumed
// by libc and by the workload once it has been exec'd. Writes are guarded
// by a flock on <passwd>.lock and re-check for duplicates under the lock,
// so a racing second invocation fails with ErrExists rather than leaving a
// duplicate entry behind.
type FileRepo struct {
	passwdPath string
	groupPath  string
	locksmith  *locksmith.FileSystem
}

func NewFileRepo(passwdPath, groupPath string, fileSystemLock *locksmith.FileSystem) *FileRepo {
	return &FileRepo{
		passwdPath: passwdPath,
		groupPath:  groupPath,
		locksmith:  fileSystemLock,
	}
}

func (r *FileRepo) LookupUID(uid int) (User, error) {
	matches, err := user.ParsePasswdFileFilter(r.passwdPath, func(u user.User) bool {
		return u.Uid == uid
	})
	if err != nil {
		if os.IsNotExist(err) {
			return User{}, ErrNotFound
		}
		return User{}, errors.Wrap(err, "parsing passwd file")
	}
	if len(matches) == 0 {
		return User{}, ErrNotFound
	}

	return r.withSgids(matches[0])
}

func (r *FileRepo) LookupUserName(name string) (User, error) {
	matches, err := user.ParsePasswdFileFilter(r.passwdPath, func(u user.User) bool {
		return u.Name == name
	})
	if err != nil {
		if os.IsNotExist(err) {
			return User{}, ErrNotFound
		}
		return User{}, errors.Wrap(err, "parsing passwd file")
	}
	if len(matches) == 0 {
		return User{}, ErrNotFound
	}

	return r.withSgids(matches[0])
}

func (r *FileRepo) LookupGID(gid int) (Group, error) {
	matches, err := user.ParseGroupFileFilter(r.groupPath, func(g user.Group) bool {
		return g.Gid == gid
	})
	if err != nil {
		if os.IsNotExist(err) {
			return Group{}, ErrNotFound
		}
		return Group{}, errors.Wrap(err, "parsing group file")
	}
	if len(matches) == 0 {
		return Group{}, ErrNotFound
	}

	return Group{Name: matches[0].Name, Gid: matches[0].Gid}, nil
}

func (r *FileRepo) LookupGroupName(name string) (Group, error) {
	matches, err := user.ParseGroupFileFilter(r.groupPath, func(g user.Group) bool {
		return g.Name == name
	})
	if err != nil {
		if os.IsNotExist(err) {
			return Group{}, ErrNotFound
		}
		return Group{}, errors.Wrap(err, "parsing group file")
	}
	if len(matches) == 0 {
		return Group{}, ErrNotFound
	}

	return Group{Name: matches[0].Name, Gid: matches[0].Gid}, nil
}

func (r *FileRepo) CreateUser(usr User) error {
	unlocker, err := r.locksmith.Lock(r.lockPath())
	if err != nil {
		return errors.Wrap(err, "locking identity database")
	}
	defer unlocker.Unlock()

	if err := r.ensureUserFree(usr); err != nil {
		return err
	}

	line := fmt.Sprintf("%s:x:%d:%d::%s:%s\n", usr.Name, usr.Uid, usr.Gid, usr.Home, usr.Shell)
	return appendLine(r.passwdPath, line)
}

func (r *FileRepo) CreateGroup(grp Group) error {
	unlocker, err := r.locksmith.Lock(r.lockPath())
	if err != nil {
		return errors.Wrap(err, "locking identity database")
	}
	defer unlocker.Unlock()

	if err := r.ensureGroupFree(grp); err != nil {
		return err
	}

	line := fmt.Sprintf("%s:x:%d:\n", grp.Name, grp.Gid)
	return appendLine(r.groupPath, line)
}

// lockPath lives next to the passwd file so every provisioner invocation in
// the same container filesystem contends on the same inode.
func (r *FileRepo) lockPath() string {
	return r.passwdPath + ".lock"
}

func (r *FileRepo) ensureUserFree(usr User) error {
	if _, err := r.LookupUID(usr.Uid); err == nil {
		return ErrExists
	} else if err != ErrNotFound {
		return err
	}

	if _, err := r.LookupUserName(usr.Name); err == nil {
		return ErrExists
	} else if err != ErrNotFound {
		return err
	}

	return nil
}

func (r *FileRepo) ensureGroupFree(grp Group) error {
	if _, err := r.LookupGID(grp.Gid); err == nil {
		return ErrExists
	} else if err != ErrNotFound {
		return err
	}

	if _, err := r.LookupGroupName(grp.Name); err == nil {
		return ErrExists
	} else if err != ErrNotFound {
		return err
	}

	return nil
}

func (r *FileRepo) withSgids(u user.User) (User, error) {
	sgids := []int{}
	groups, err := user.ParseGroupFileFilter(r.groupPath, func(g user.Group) bool {
		for _, member := range g.List {
			if member == u.Name {
				return true
			}
		}
		return false
	})
	if err != nil && !os.IsNotExist(err) {
		return User{}, errors.Wrap(err, "parsing group file")
	}

	for _, g := range groups {
		sgids = append(sgids, g.Gid)
	}

	return User{
		Name:  u.Name,
		Uid:   u.Uid,
		Gid:   u.Gid,
		Sgids: sgids,
		Home:  u.Home,
		Shell: u.Shell,
	}, nil
}

func appendLine(path, line string) error {
	prefix, err := missingTrailingNewline(path)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrapf(err, "opening %s for append", path)
	}
	defer f.Close()

	if _, err := f.WriteString(prefix + line); err != nil {
		return errors.Wrapf(err, "appending to %s", path)
	}

	return nil
}

// missingTrailingNewline guards against a hand-edited file whose last line
// is not newline-terminated, which would otherwise merge with our entry.
func missingTrailingNewline(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return "", err
	}
	if stat.Size() == 0 {
		return "", nil
	}

	lastByte := make([]byte, 1)
	if _, err := f.ReadAt(lastByte, stat.Size()-1); err != nil {
		return "", err
	}
	if lastByte[0] != '\n' {
		return "\n", nil
	}

	return "", nil
}
