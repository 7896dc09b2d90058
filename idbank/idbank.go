package idbank

import "errors"

// ErrNotFound is returned by lookups when no matching entry exists.
var ErrNotFound = errors.New("identity not found")

// ErrExists is returned by creates when an entry for the same id or name
// appeared between lookup and create, e.g. because two provisioner
// invocations raced on the same filesystem.
var ErrExists = errors.New("identity already exists")

type User struct {
	Name  string
	Uid   int
	Gid   int
	Sgids []int
	Home  string
	Shell string
}

type Group struct {
	Name string
	Gid  int
}

//go:generate counterfeiter . Repo

// Repo abstracts the container's identity database so that provisioning
// logic can be tested against a fake instead of a real passwd file.
type Repo interface {
	LookupUID(uid int) (User, error)
	LookupUserName(name string) (User, error)
	LookupGID(gid int) (Group, error)
	LookupGroupName(name string) (Group, error)
	CreateUser(usr User) error
	CreateGroup(grp Group) error
}
