//go:build !linux

package runas

import (
	"errors"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/usher/provisioner"
)

func (e Execer) Exec(log lager.Logger, user provisioner.ResolvedUser, argv []string) error {
	return ExecError{Path: "", Cause: errors.New("workloads can only be exec'd on linux")}
}
