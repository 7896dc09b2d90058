package ushercmd_test

import (
	"code.cloudfoundry.org/usher/provisioner"
	"code.cloudfoundry.org/usher/ushercmd"

	"github.com/jessevdk/go-flags"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UsherCommand", func() {
	var cmd *ushercmd.UsherCommand

	// parse applies go-flags defaults and env handling the same way main does
	parse := func(args ...string) []string {
		cmd = &ushercmd.UsherCommand{}
		parser := flags.NewParser(cmd, flags.Default|flags.PassAfterNonOption)
		parser.NamespaceDelimiter = "-"

		remaining, err := parser.ParseArgs(args)
		Expect(err).NotTo(HaveOccurred())
		return remaining
	}

	Describe("IdentityRequest", func() {
		It("falls back to uid 9001 with a mirroring gid", func() {
			parse()

			req, err := cmd.IdentityRequest()
			Expect(err).NotTo(HaveOccurred())
			Expect(req.Uid).To(Equal(9001))
			Expect(req.Gid).To(Equal(9001))
		})

		It("mirrors an explicit uid into the gid", func() {
			parse("--uid", "1000")

			req, err := cmd.IdentityRequest()
			Expect(err).NotTo(HaveOccurred())
			Expect(req.Uid).To(Equal(1000))
			Expect(req.Gid).To(Equal(1000))
		})

		It("keeps uid and gid independent when both are given", func() {
			parse("--uid", "1000", "--gid", "2000")

			req, err := cmd.IdentityRequest()
			Expect(err).NotTo(HaveOccurred())
			Expect(req.Uid).To(Equal(1000))
			Expect(req.Gid).To(Equal(2000))
		})

		It("reads overrides from LOCAL_USER_ID and LOCAL_GROUP_ID", func() {
			GinkgoT().Setenv("LOCAL_USER_ID", "1234")
			GinkgoT().Setenv("LOCAL_GROUP_ID", "5678")

			parse()

			req, err := cmd.IdentityRequest()
			Expect(err).NotTo(HaveOccurred())
			Expect(req.Uid).To(Equal(1234))
			Expect(req.Gid).To(Equal(5678))
		})

		It("defaults names, home and shell from the user name", func() {
			parse("--user", "app")

			req, err := cmd.IdentityRequest()
			Expect(err).NotTo(HaveOccurred())
			Expect(req).To(Equal(provisioner.Request{
				Uid:        9001,
				Gid:        9001,
				UserName:   "app",
				GroupName:  "app",
				Home:       "/home/app",
				Shell:      "/bin/sh",
				CreateHome: true,
			}))
		})

		It("honours explicit group, home, shell and no-create-home", func() {
			parse("--user", "app", "--group", "staff", "--home", "/srv/app", "--shell", "/bin/bash", "--no-create-home")

			req, err := cmd.IdentityRequest()
			Expect(err).NotTo(HaveOccurred())
			Expect(req.GroupName).To(Equal("staff"))
			Expect(req.Home).To(Equal("/srv/app"))
			Expect(req.Shell).To(Equal("/bin/bash"))
			Expect(req.CreateHome).To(BeFalse())
		})

		Context("when the uid is not a number", func() {
			It("returns a ConfigurationError", func() {
				GinkgoT().Setenv("LOCAL_USER_ID", "banana")

				parse()

				_, err := cmd.IdentityRequest()
				Expect(err).To(BeAssignableToTypeOf(ushercmd.ConfigurationError{}))
				Expect(err).To(MatchError(ContainSubstring("banana")))
			})
		})

		Context("when the uid is negative", func() {
			It("returns a ConfigurationError", func() {
				parse("--uid=-1")

				_, err := cmd.IdentityRequest()
				Expect(err).To(BeAssignableToTypeOf(ushercmd.ConfigurationError{}))
			})
		})

		Context("when both ids are bad", func() {
			It("reports both in one ConfigurationError", func() {
				GinkgoT().Setenv("LOCAL_USER_ID", "banana")
				GinkgoT().Setenv("LOCAL_GROUP_ID", "mango")

				parse()

				_, err := cmd.IdentityRequest()
				Expect(err).To(BeAssignableToTypeOf(ushercmd.ConfigurationError{}))
				Expect(err).To(MatchError(ContainSubstring("banana")))
				Expect(err).To(MatchError(ContainSubstring("mango")))
			})
		})
	})

	Describe("workload argument passthrough", func() {
		It("leaves the workload's own flags untouched", func() {
			remaining := parse("--uid", "1000", "myapp", "--verbose", "--uid", "7")
			Expect(remaining).To(Equal([]string{"myapp", "--verbose", "--uid", "7"}))
		})
	})
})
