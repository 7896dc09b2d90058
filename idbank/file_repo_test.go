package idbank_test

import (
	"os"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/usher/idbank"
	"code.cloudfoundry.org/usher/pkg/locksmith"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FileRepo", func() {
	var (
		tmpDir     string
		passwdPath string
		groupPath  string
		repo       *idbank.FileRepo
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "idbank")
		Expect(err).NotTo(HaveOccurred())

		passwdPath = filepath.Join(tmpDir, "passwd")
		groupPath = filepath.Join(tmpDir, "group")

		repo = idbank.NewFileRepo(passwdPath, groupPath, locksmith.NewFileSystem())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
	})

	writePasswd := func(content string) {
		Expect(os.WriteFile(passwdPath, []byte(content), 0644)).To(Succeed())
	}

	writeGroup := func(content string) {
		Expect(os.WriteFile(groupPath, []byte(content), 0644)).To(Succeed())
	}

	Describe("LookupUID", func() {
		BeforeEach(func() {
			writePasswd(`root:x:0:0:root:/root:/bin/bash
daemon:x:1:1:daemon:/usr/sbin:/usr/sbin/nologin
app:x:1000:1000::/home/app:/bin/sh
`)
		})

		It("returns the matching user", func() {
			usr, err := repo.LookupUID(1000)
			Expect(err).NotTo(HaveOccurred())
			Expect(usr.Name).To(Equal("app"))
			Expect(usr.Uid).To(Equal(1000))
			Expect(usr.Gid).To(Equal(1000))
			Expect(usr.Home).To(Equal("/home/app"))
			Expect(usr.Shell).To(Equal("/bin/sh"))
		})

		It("returns ErrNotFound when no entry has the uid", func() {
			_, err := repo.LookupUID(4242)
			Expect(err).To(MatchError(idbank.ErrNotFound))
		})

		Context("when the passwd file does not exist", func() {
			BeforeEach(func() {
				Expect(os.Remove(passwdPath)).To(Succeed())
			})

			It("returns ErrNotFound", func() {
				_, err := repo.LookupUID(0)
				Expect(err).To(MatchError(idbank.ErrNotFound))
			})
		})

		Context("when the user is listed in supplementary groups", func() {
			BeforeEach(func() {
				writeGroup(`app:x:1000:
video:x:44:app
audio:x:29:app,otherone
`)
			})

			It("collects the supplementary gids", func() {
				usr, err := repo.LookupUID(1000)
				Expect(err).NotTo(HaveOccurred())
				Expect(usr.Sgids).To(ConsistOf(44, 29))
			})
		})
	})

	Describe("LookupUserName", func() {
		BeforeEach(func() {
			writePasswd(`root:x:0:0:root:/root:/bin/bash
app:x:1000:1000::/home/app:/bin/sh
`)
		})

		It("returns the matching user", func() {
			usr, err := repo.LookupUserName("app")
			Expect(err).NotTo(HaveOccurred())
			Expect(usr.Uid).To(Equal(1000))
		})

		It("returns ErrNotFound for an unknown name", func() {
			_, err := repo.LookupUserName("stranger")
			Expect(err).To(MatchError(idbank.ErrNotFound))
		})
	})

	Describe("LookupGID and LookupGroupName", func() {
		BeforeEach(func() {
			writeGroup(`root:x:0:
app:x:1000:
`)
		})

		It("finds groups by gid", func() {
			grp, err := repo.LookupGID(1000)
			Expect(err).NotTo(HaveOccurred())
			Expect(grp.Name).To(Equal("app"))
		})

		It("finds groups by name", func() {
			grp, err := repo.LookupGroupName("app")
			Expect(err).NotTo(HaveOccurred())
			Expect(grp.Gid).To(Equal(1000))
		})

		It("returns ErrNotFound otherwise", func() {
			_, err := repo.LookupGID(4242)
			Expect(err).To(MatchError(idbank.ErrNotFound))
			_, err = repo.LookupGroupName("stranger")
			Expect(err).To(MatchError(idbank.ErrNotFound))
		})
	})

	Describe("CreateUser", func() {
		It("appends a well-formed passwd entry", func() {
			Expect(repo.CreateUser(idbank.User{
				Name:  "app",
				Uid:   1000,
				Gid:   1000,
				Home:  "/home/app",
				Shell: "/bin/sh",
			})).To(Succeed())

			content, err := os.ReadFile(passwdPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("app:x:1000:1000::/home/app:/bin/sh\n"))

			usr, err := repo.LookupUID(1000)
			Expect(err).NotTo(HaveOccurred())
			Expect(usr.Name).To(Equal("app"))
		})

		It("does not clobber existing entries", func() {
			writePasswd("root:x:0:0:root:/root:/bin/bash\n")

			Expect(repo.CreateUser(idbank.User{Name: "app", Uid: 1000, Gid: 1000, Home: "/home/app", Shell: "/bin/sh"})).To(Succeed())

			content, err := os.ReadFile(passwdPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Split(strings.TrimSpace(string(content)), "\n")).To(HaveLen(2))
		})

		Context("when the existing file has no trailing newline", func() {
			BeforeEach(func() {
				writePasswd("root:x:0:0:root:/root:/bin/bash")
			})

			It("still appends a separate line", func() {
				Expect(repo.CreateUser(idbank.User{Name: "app", Uid: 1000, Gid: 1000, Home: "/home/app", Shell: "/bin/sh"})).To(Succeed())

				usr, err := repo.LookupUID(1000)
				Expect(err).NotTo(HaveOccurred())
				Expect(usr.Name).To(Equal("app"))

				rootUsr, err := repo.LookupUID(0)
				Expect(err).NotTo(HaveOccurred())
				Expect(rootUsr.Name).To(Equal("root"))
			})
		})

		Context("when an entry with the same uid already exists", func() {
			BeforeEach(func() {
				writePasswd("other:x:1000:1000::/home/other:/bin/sh\n")
			})

			It("returns ErrExists and leaves the file alone", func() {
				err := repo.CreateUser(idbank.User{Name: "app", Uid: 1000, Gid: 1000})
				Expect(err).To(MatchError(idbank.ErrExists))

				content, err := os.ReadFile(passwdPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(content)).To(Equal("other:x:1000:1000::/home/other:/bin/sh\n"))
			})
		})

		Context("when an entry with the same name already exists", func() {
			BeforeEach(func() {
				writePasswd("app:x:2000:2000::/home/app:/bin/sh\n")
			})

			It("returns ErrExists", func() {
				err := repo.CreateUser(idbank.User{Name: "app", Uid: 1000, Gid: 1000})
				Expect(err).To(MatchError(idbank.ErrExists))
			})
		})
	})

	Describe("CreateGroup", func() {
		It("appends a well-formed group entry", func() {
			Expect(repo.CreateGroup(idbank.Group{Name: "app", Gid: 1000})).To(Succeed())

			content, err := os.ReadFile(groupPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("app:x:1000:\n"))
		})

		Context("when the gid is already taken", func() {
			BeforeEach(func() {
				writeGroup("other:x:1000:\n")
			})

			It("returns ErrExists", func() {
				Expect(repo.CreateGroup(idbank.Group{Name: "app", Gid: 1000})).To(MatchError(idbank.ErrExists))
			})
		})

		Context("when the name is already taken", func() {
			BeforeEach(func() {
				writeGroup("app:x:2000:\n")
			})

			It("returns ErrExists", func() {
				Expect(repo.CreateGroup(idbank.Group{Name: "app", Gid: 1000})).To(MatchError(idbank.ErrExists))
			})
		})
	})
})
