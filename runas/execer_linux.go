package runas

import (
	"errors"
	"os"
	"os/exec"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/usher/provisioner"
	"golang.org/x/sys/unix"
)

var (
	SetgroupsSyscall = unix.Setgroups
	SetgidSyscall    = unix.Setgid
	SetuidSyscall    = unix.Setuid
	ExecSyscall      = unix.Exec
)

func (e Execer) Exec(log lager.Logger, user provisioner.ResolvedUser, argv []string) error {
	log = log.Session("exec", lager.Data{"uid": user.Uid, "gid": user.Gid, "argv": argv})
	log.Info("start")

	if len(argv) == 0 {
		return ExecError{Path: "", Cause: errors.New("no command specified")}
	}

	env := EnvFor(user, os.Environ())

	sgids := user.Sgids
	if len(sgids) == 0 {
		sgids = []int{user.Gid}
	}

	// Gids first, setuid last: once the uid is gone so is the right to
	// change group membership.
	if err := SetgroupsSyscall(sgids); err != nil {
		log.Error("setgroups-failed", err)
		return PrivilegeDropError{Op: "setgroups", Uid: user.Uid, Gid: user.Gid, Cause: err}
	}
	if err := SetgidSyscall(user.Gid); err != nil {
		log.Error("setgid-failed", err)
		return PrivilegeDropError{Op: "setgid", Uid: user.Uid, Gid: user.Gid, Cause: err}
	}
	if err := SetuidSyscall(user.Uid); err != nil {
		log.Error("setuid-failed", err)
		return PrivilegeDropError{Op: "setuid", Uid: user.Uid, Gid: user.Gid, Cause: err}
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		log.Error("lookpath-failed", err)
		return ExecError{Path: argv[0], Cause: err}
	}

	if err := ExecSyscall(path, argv, env); err != nil {
		log.Error("exec-failed", err)
		return ExecError{Path: path, Cause: err}
	}

	panic("unreachable")
}
