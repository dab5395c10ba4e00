package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Check Command", func() {

	Describe("Single schedules", func() {
		It("should accept a clean schedule", func() {
			command := exec.Command(pathToCLI, "check", "every weekday at 2pm")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("OK"))
		})

		It("should warn about short-month days without failing", func() {
			command := exec.Command(pathToCLI, "check", "every month on 31")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("SCHED-004"))
		})

		It("should fail on unparseable text", func() {
			command := exec.Command(pathToCLI, "check", "every florp")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Out).To(gbytes.Say("SCHED-001"))
		})
	})

	Describe("Manifests", func() {
		var manifestPath string

		BeforeEach(func() {
			dir := GinkgoT().TempDir()
			manifestPath = filepath.Join(dir, "schedules.txt")
			content := "backup: every day at 2am\nbroken: every florp\n"
			Expect(os.WriteFile(manifestPath, []byte(content), 0644)).To(Succeed())
		})

		It("should report issues with line numbers", func() {
			command := exec.Command(pathToCLI, "check", "--file", manifestPath)
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Out).To(gbytes.Say("line 2:"))
		})
	})
})
