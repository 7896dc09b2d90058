package main

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/usher/ushercmd"

	"github.com/jessevdk/go-flags"
)

func main() {
	cmd := &ushercmd.UsherCommand{}

	parser := flags.NewParser(cmd, flags.Default|flags.PassAfterNonOption)
	parser.NamespaceDelimiter = "-"
	parser.Usage = "[OPTIONS] command [args...]"

	if configFilePath := os.Getenv("USHER_CONFIG"); configFilePath != "" {
		iniParser := flags.NewIniParser(parser)
		must(iniParser.ParseFile(configFilePath))
	}

	argv, err := parser.Parse()
	mustNot(err)

	// only reached when exec'ing the workload failed
	mustNot(cmd.Execute(argv))
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var mustNot = must
