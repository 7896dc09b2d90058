package ushercmd

import (
	"errors"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/usher/provisioner"
)

//go:generate counterfeiter . IdentityProvisioner
type IdentityProvisioner interface {
	Provision(log lager.Logger, req provisioner.Request) (provisioner.ResolvedUser, error)
}

//go:generate counterfeiter . WorkloadExecer
type WorkloadExecer interface {
	Exec(log lager.Logger, user provisioner.ResolvedUser, argv []string) error
}

// Runner drives one container start: resolve the identity, then hand the
// process over to the workload. There are no retries; a failed start is
// the orchestrator's problem.
type Runner struct {
	Provisioner IdentityProvisioner
	Execer      WorkloadExecer
}

func (r *Runner) Run(log lager.Logger, req provisioner.Request, argv []string) error {
	log = log.Session("run")
	log.Info("start")

	if len(argv) == 0 {
		err := ConfigurationError{Cause: errors.New("no workload command specified")}
		log.Error("no-command", err)
		return err
	}

	resolvedUser, err := r.Provisioner.Provision(log, req)
	if err != nil {
		log.Error("provision-failed", err)
		return err
	}

	// on success Exec does not return: the process image is replaced by
	// the workload
	if err := r.Execer.Exec(log, resolvedUser, argv); err != nil {
		log.Error("exec-failed", err)
		return err
	}

	return nil
}
