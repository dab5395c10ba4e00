package integration_test

import (
	"os/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Translate Command", func() {

	Describe("Unix dialect", func() {
		Context("when user translates daily schedules", func() {
			It("should translate a daily time", func() {
				command := exec.Command(pathToCLI, "translate", "every day at 2pm")
				session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
				Expect(err).NotTo(HaveOccurred())

				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say(`0 14 \* \* \*`))
			})

			It("should translate compact forms", func() {
				command := exec.Command(pathToCLI, "translate", "1d at 2am")
				session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
				Expect(err).NotTo(HaveOccurred())

				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say(`0 2 \* \* \*`))
			})

			It("should translate weekday schedules", func() {
				command := exec.Command(pathToCLI, "translate", "every weekday at 2pm")
				session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
				Expect(err).NotTo(HaveOccurred())

				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say(`0 14 \* \* 1-5`))
			})
		})

		Context("when the dialect cannot express the schedule", func() {
			It("should fail for second intervals", func() {
				command := exec.Command(pathToCLI, "translate", "every 30 seconds")
				session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
				Expect(err).NotTo(HaveOccurred())

				Eventually(session).Should(gexec.Exit(1))
				Expect(session.Err).To(gbytes.Say("unix cannot express"))
			})
		})
	})

	Describe("NCrontab dialect", func() {
		It("should translate second intervals", func() {
			command := exec.Command(pathToCLI, "translate", "every 30 seconds", "--dialect", "ncrontab")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say(`\*/30 \* \* \* \* \*`))
		})

		It("should prefix a seconds column on minute schedules", func() {
			command := exec.Command(pathToCLI, "translate", "30m", "--dialect", "ncrontab")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say(`0 \*/30 \* \* \* \*`))
		})
	})

	Describe("Quartz dialect", func() {
		It("should emit quartz weekday numbering", func() {
			command := exec.Command(pathToCLI, "translate", "every weekday at 2pm", "--dialect", "quartz")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say(`0 0 14 \? \* 2-6 \*`))
		})

		It("should fall back to a calendar interval", func() {
			command := exec.Command(pathToCLI, "translate", "every 3 months", "--dialect", "quartz")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("calendar-interval: every 3 months"))
		})
	})

	Describe("Error reporting", func() {
		It("should reject unknown tokens with an offset", func() {
			command := exec.Command(pathToCLI, "translate", "every florp")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say("offset 6"))
		})
	})
})
