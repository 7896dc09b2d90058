package runas

import "fmt"

// Execer replaces the current process image with the workload running as a
// resolved identity. On success control never comes back: stdio, signal
// disposition and the eventual exit code all belong to the workload, with
// no wrapper process left behind to relay them.
type Execer struct {
}

// PrivilegeDropError means the current process was not allowed to assume
// the target identity.
type PrivilegeDropError struct {
	Op    string
	Uid   int
	Gid   int
	Cause error
}

func (e PrivilegeDropError) Error() string {
	return fmt.Sprintf("%s to %d:%d: %s", e.Op, e.Uid, e.Gid, e.Cause)
}

func (e PrivilegeDropError) Unwrap() error {
	return e.Cause
}

// ExecError means the workload command could not be resolved or executed.
type ExecError struct {
	Path  string
	Cause error
}

func (e ExecError) Error() string {
	return fmt.Sprintf("cannot exec %q: %s", e.Path, e.Cause)
}

func (e ExecError) Unwrap() error {
	return e.Cause
}
