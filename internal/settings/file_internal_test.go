//nolint:varnamelen // Test files use idiomatic short variable names (g, etc.)
package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BrugadaSyndrome/bslogger"
	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers
)

func TestFile_ReloadWarningsUseInjectedLogger(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	g.Expect(os.WriteFile(path, []byte("users: {}\n"), 0o600)).To(Succeed())

	logFile, err := os.Create(filepath.Join(dir, "settings.log"))
	g.Expect(err).ShouldNot(HaveOccurred())
	defer logFile.Close()

	f, err := OpenFile(path, bslogger.NewLogger("SettingsTest", bslogger.Normal, logFile))
	g.Expect(err).ShouldNot(HaveOccurred())
	defer f.Close()

	g.Expect(os.WriteFile(path, []byte("users: [broken\n"), 0o600)).To(Succeed())
	f.reloadFromEvent()

	contents, err := os.ReadFile(logFile.Name())
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(string(contents)).To(ContainSubstring("Reloading " + path))
}
