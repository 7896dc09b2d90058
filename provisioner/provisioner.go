package provisioner

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/usher/idbank"
)

//go:generate counterfeiter . Mkdirer
type Mkdirer interface {
	MkdirAs(path string, mode os.FileMode, uid, gid int) error
}

// Request describes the identity the workload should run as. Uid and Gid
// are already defaulted by the caller; names, home and shell describe the
// entry to create when the uid is not yet known to the identity database.
type Request struct {
	Uid        int
	Gid        int
	UserName   string
	GroupName  string
	Home       string
	Shell      string
	CreateHome bool
}

// ResolvedUser is the identity the workload will actually run as. When the
// uid already existed, home, shell and supplementary gids come from the
// existing entry, not from the request.
type ResolvedUser struct {
	Name  string
	Uid   int
	Gid   int
	Sgids []int
	Home  string
	Shell string
}

// ConflictError means the requested uid, gid or name is already bound to a
// different identity. Overwriting would clobber somebody else's entry, so
// provisioning aborts instead.
type ConflictError struct {
	Field   string
	Value   string
	BoundTo string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("%s %s is already bound to %q", e.Field, e.Value, e.BoundTo)
}

// ProvisioningError means the identity database or the home directory could
// not be mutated as requested.
type ProvisioningError struct {
	Action string
	Cause  error
}

func (e ProvisioningError) Error() string {
	return fmt.Sprintf("%s: %s", e.Action, e.Cause)
}

func (e ProvisioningError) Unwrap() error {
	return e.Cause
}

type Provisioner struct {
	Repo    idbank.Repo
	Mkdirer Mkdirer
}

// Provision looks the requested uid up in the identity database and creates
// a user and group entry for it when absent. It never mutates an existing
// entry: rerunning with the same request is a no-op, rerunning with a
// colliding one is a ConflictError.
func (p *Provisioner) Provision(log lager.Logger, req Request) (ResolvedUser, error) {
	log = log.Session("provision", lager.Data{"uid": req.Uid, "gid": req.Gid, "username": req.UserName})
	log.Info("start")
	defer log.Info("finished")

	existing, err := p.Repo.LookupUID(req.Uid)
	if err == nil {
		if existing.Name != req.UserName {
			log.Error("uid-conflict", nil, lager.Data{"boundTo": existing.Name})
			return ResolvedUser{}, ConflictError{Field: "uid", Value: fmt.Sprintf("%d", req.Uid), BoundTo: existing.Name}
		}

		log.Debug("reusing-existing-entry", lager.Data{"home": existing.Home})
		return resolved(existing), nil
	}
	if err != idbank.ErrNotFound {
		log.Error("lookup-uid-failed", err)
		return ResolvedUser{}, ProvisioningError{Action: "looking up uid", Cause: err}
	}

	if byName, err := p.Repo.LookupUserName(req.UserName); err == nil {
		log.Error("username-conflict", nil, lager.Data{"boundTo": byName.Uid})
		return ResolvedUser{}, ConflictError{Field: "username", Value: req.UserName, BoundTo: fmt.Sprintf("uid %d", byName.Uid)}
	} else if err != idbank.ErrNotFound {
		log.Error("lookup-username-failed", err)
		return ResolvedUser{}, ProvisioningError{Action: "looking up username", Cause: err}
	}

	if err := p.ensureGroup(log, req); err != nil {
		return ResolvedUser{}, err
	}

	newUser := idbank.User{
		Name:  req.UserName,
		Uid:   req.Uid,
		Gid:   req.Gid,
		Home:  req.Home,
		Shell: req.Shell,
	}
	if err := p.Repo.CreateUser(newUser); err != nil {
		log.Error("create-user-failed", err)
		return ResolvedUser{}, ProvisioningError{Action: "creating user", Cause: err}
	}

	if req.CreateHome {
		if err := p.Mkdirer.MkdirAs(req.Home, 0755, req.Uid, req.Gid); err != nil {
			log.Error("create-home-failed", err, lager.Data{"home": req.Home})
			return ResolvedUser{}, ProvisioningError{Action: "creating home directory", Cause: err}
		}
	}

	return resolved(newUser), nil
}

func (p *Provisioner) ensureGroup(log lager.Logger, req Request) error {
	grp, err := p.Repo.LookupGID(req.Gid)
	if err == nil {
		if grp.Name != req.GroupName {
			log.Error("gid-conflict", nil, lager.Data{"boundTo": grp.Name})
			return ConflictError{Field: "gid", Value: fmt.Sprintf("%d", req.Gid), BoundTo: grp.Name}
		}
		return nil
	}
	if err != idbank.ErrNotFound {
		log.Error("lookup-gid-failed", err)
		return ProvisioningError{Action: "looking up gid", Cause: err}
	}

	if byName, err := p.Repo.LookupGroupName(req.GroupName); err == nil {
		log.Error("group-name-conflict", nil, lager.Data{"boundTo": byName.Gid})
		return ConflictError{Field: "group", Value: req.GroupName, BoundTo: fmt.Sprintf("gid %d", byName.Gid)}
	} else if err != idbank.ErrNotFound {
		log.Error("lookup-group-name-failed", err)
		return ProvisioningError{Action: "looking up group name", Cause: err}
	}

	if err := p.Repo.CreateGroup(idbank.Group{Name: req.GroupName, Gid: req.Gid}); err != nil {
		log.Error("create-group-failed", err)
		return ProvisioningError{Action: "creating group", Cause: err}
	}

	return nil
}

func resolved(usr idbank.User) ResolvedUser {
	return ResolvedUser{
		Name:  usr.Name,
		Uid:   usr.Uid,
		Gid:   usr.Gid,
		Sgids: usr.Sgids,
		Home:  usr.Home,
		Shell: usr.Shell,
	}
}
