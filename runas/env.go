package runas

import (
	"strings"

	"code.cloudfoundry.org/usher/provisioner"
)

const (
	DefaultPath     = "PATH=/usr/local/bin:/usr/bin:/bin"
	DefaultRootPath = "PATH=/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin"
)

// EnvFor rewrites the inherited environment for the target identity: HOME
// always points at the resolved home directory, USER is filled in when the
// caller did not set one, and PATH gets a default appropriate to the uid
// when absent.
func EnvFor(user provisioner.ResolvedUser, env []string) []string {
	return envWithUser(envWithDefaultPath(defaultPathFor(user.Uid), envWithHome(env, user.Home)), user.Name)
}

func envWithHome(env []string, home string) []string {
	kept := []string{}
	for _, envVar := range env {
		if strings.HasPrefix(envVar, "HOME=") {
			continue
		}
		kept = append(kept, envVar)
	}

	return append(kept, "HOME="+home)
}

func envWithDefaultPath(defaultPath string, env []string) []string {
	for _, envVar := range env {
		if strings.HasPrefix(envVar, "PATH=") {
			return env
		}
	}

	return append(env, defaultPath)
}

func envWithUser(env []string, name string) []string {
	for _, envVar := range env {
		if strings.HasPrefix(envVar, "USER=") {
			return env
		}
	}

	return append(env, "USER="+name)
}

func defaultPathFor(uid int) string {
	if uid == 0 {
		return DefaultRootPath
	}

	return DefaultPath
}
