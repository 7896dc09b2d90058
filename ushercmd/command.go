package ushercmd

import (
	"fmt"
	"strconv"

	multierror "github.com/hashicorp/go-multierror"

	"code.cloudfoundry.org/usher/idbank"
	"code.cloudfoundry.org/usher/pkg/locksmith"
	"code.cloudfoundry.org/usher/provisioner"
	"code.cloudfoundry.org/usher/runas"
)

// DefaultUID is used when the caller supplies no LOCAL_USER_ID. It is
// deliberately high so that it never collides with identities baked into
// common base images.
const DefaultUID = 9001

// ConfigurationError means the environment or flags could not be turned
// into a valid identity request. It is always raised before any identity
// mutation is attempted.
type ConfigurationError struct {
	Cause error
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("bad configuration: %s", e.Cause)
}

func (e ConfigurationError) Unwrap() error {
	return e.Cause
}

type UsherCommand struct {
	Logger LagerFlag

	Uid string `long:"uid" env:"LOCAL_USER_ID" description:"Numeric uid to run the workload as. Defaults to 9001."`
	Gid string `long:"gid" env:"LOCAL_GROUP_ID" description:"Numeric gid to run the workload as. Defaults to the uid."`

	User  string `long:"user" default:"user" description:"User name to create when the uid is unknown."`
	Group string `long:"group" description:"Group name to create when the gid is unknown. Defaults to the user name."`
	Home  string `long:"home" description:"Home directory for a newly created user. Defaults to /home/<user>."`
	Shell string `long:"shell" default:"/bin/sh" description:"Login shell for a newly created user."`

	NoCreateHome bool `long:"no-create-home" description:"Do not create the home directory for a newly created user."`

	PasswdFile string `long:"passwd-file" default:"/etc/passwd" description:"Path to the passwd file."`
	GroupFile  string `long:"group-file" default:"/etc/group" description:"Path to the group file."`
}

// Execute provisions the requested identity and replaces this process with
// the workload. It only ever returns on failure.
func (cmd *UsherCommand) Execute(argv []string) error {
	logger, _ := cmd.Logger.Logger("usher")

	req, err := cmd.IdentityRequest()
	if err != nil {
		logger.Error("parse-identity-request-failed", err)
		return err
	}

	runner := &Runner{
		Provisioner: &provisioner.Provisioner{
			Repo:    idbank.NewFileRepo(cmd.PasswdFile, cmd.GroupFile, locksmith.NewFileSystem()),
			Mkdirer: provisioner.DirectoryCreator{},
		},
		Execer: runas.Execer{},
	}

	return runner.Run(logger, req, argv)
}

func (cmd *UsherCommand) IdentityRequest() (provisioner.Request, error) {
	var merr *multierror.Error

	uid := DefaultUID
	if cmd.Uid != "" {
		parsed, err := parseID("uid", cmd.Uid)
		if err != nil {
			merr = multierror.Append(merr, err)
		} else {
			uid = parsed
		}
	}

	gid := uid
	if cmd.Gid != "" {
		parsed, err := parseID("gid", cmd.Gid)
		if err != nil {
			merr = multierror.Append(merr, err)
		} else {
			gid = parsed
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return provisioner.Request{}, ConfigurationError{Cause: err}
	}

	groupName := cmd.Group
	if groupName == "" {
		groupName = cmd.User
	}

	home := cmd.Home
	if home == "" {
		home = "/home/" + cmd.User
	}

	return provisioner.Request{
		Uid:        uid,
		Gid:        gid,
		UserName:   cmd.User,
		GroupName:  groupName,
		Home:       home,
		Shell:      cmd.Shell,
		CreateHome: !cmd.NoCreateHome,
	}, nil
}

func parseID(field, value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", field, value)
	}

	return id, nil
}
