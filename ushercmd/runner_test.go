package ushercmd_test

import (
	"errors"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/usher/provisioner"
	"code.cloudfoundry.org/usher/ushercmd"
	"code.cloudfoundry.org/usher/ushercmd/ushercmdfakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Runner", func() {
	var (
		fakeProvisioner *ushercmdfakes.FakeIdentityProvisioner
		fakeExecer      *ushercmdfakes.FakeWorkloadExecer
		logger          *lagertest.TestLogger

		runner *ushercmd.Runner
		req    provisioner.Request
	)

	BeforeEach(func() {
		fakeProvisioner = new(ushercmdfakes.FakeIdentityProvisioner)
		fakeExecer = new(ushercmdfakes.FakeWorkloadExecer)
		logger = lagertest.NewTestLogger("test")

		fakeProvisioner.ProvisionReturns(provisioner.ResolvedUser{
			Name: "user",
			Uid:  1000,
			Gid:  1000,
			Home: "/home/user",
		}, nil)

		runner = &ushercmd.Runner{
			Provisioner: fakeProvisioner,
			Execer:      fakeExecer,
		}

		req = provisioner.Request{Uid: 1000, Gid: 1000, UserName: "user"}
	})

	It("provisions the identity and execs the workload as it", func() {
		Expect(runner.Run(logger, req, []string{"id", "-u"})).To(Succeed())

		Expect(fakeProvisioner.ProvisionCallCount()).To(Equal(1))
		_, provisionedReq := fakeProvisioner.ProvisionArgsForCall(0)
		Expect(provisionedReq).To(Equal(req))

		Expect(fakeExecer.ExecCallCount()).To(Equal(1))
		_, execedUser, execedArgv := fakeExecer.ExecArgsForCall(0)
		Expect(execedUser.Uid).To(Equal(1000))
		Expect(execedArgv).To(Equal([]string{"id", "-u"}))
	})

	Context("when no workload command was given", func() {
		It("returns a ConfigurationError without provisioning anything", func() {
			err := runner.Run(logger, req, nil)
			Expect(err).To(BeAssignableToTypeOf(ushercmd.ConfigurationError{}))
			Expect(fakeProvisioner.ProvisionCallCount()).To(BeZero())
			Expect(fakeExecer.ExecCallCount()).To(BeZero())
		})
	})

	Context("when provisioning fails", func() {
		BeforeEach(func() {
			fakeProvisioner.ProvisionReturns(provisioner.ResolvedUser{}, provisioner.ConflictError{
				Field: "uid", Value: "1000", BoundTo: "squatter",
			})
		})

		It("propagates the error and never execs", func() {
			err := runner.Run(logger, req, []string{"id"})
			Expect(err).To(BeAssignableToTypeOf(provisioner.ConflictError{}))
			Expect(fakeExecer.ExecCallCount()).To(BeZero())
		})
	})

	Context("when exec fails", func() {
		BeforeEach(func() {
			fakeExecer.ExecReturns(errors.New("cannot exec"))
		})

		It("propagates the error", func() {
			Expect(runner.Run(logger, req, []string{"id"})).To(MatchError("cannot exec"))
		})
	})
})
