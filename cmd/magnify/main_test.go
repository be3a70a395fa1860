//nolint:varnamelen // Test files use idiomatic short variable names (g, etc.)
package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/magnify/internal/config"
	"github.com/joe/magnify/internal/settings"
)

// These tests swap os.Stdout and os.Stderr, so none of them run in parallel.

func TestQuietOutput_LogFileKeepsTerminalClean(t *testing.T) {
	g := NewWithT(t)

	terminal := captureOutput(t)
	logPath := filepath.Join(t.TempDir(), "magnify.log")

	realStdout, restore, err := quietOutput()
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(realStdout).To(BeIdenticalTo(terminal.stdout))

	logger, closeLog, err := newLogger(logPath)
	g.Expect(err).ShouldNot(HaveOccurred())
	logger.Infof("Display %d: transition to %s complete", 0, "window")
	logger.Debugf("Display %d: cleared transition slot", 0)
	logger.Warningf("Display %d: invalid center, ignore it", 0)
	logger.Errorf("Display %d: invalid target mode %d", 0, 7)
	closeLog()
	restore()

	g.Expect(terminal.written()).To(BeEmpty())

	contents, err := os.ReadFile(logPath)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(string(contents)).To(ContainSubstring("transition to window complete"))
	g.Expect(string(contents)).To(ContainSubstring("cleared transition slot"))
	g.Expect(string(contents)).To(ContainSubstring("invalid target mode 7"))
}

func TestQuietOutput_RestoresStreams(t *testing.T) {
	g := NewWithT(t)

	terminal := captureOutput(t)

	_, restore, err := quietOutput()
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(os.Stdout).NotTo(BeIdenticalTo(terminal.stdout))
	restore()

	g.Expect(os.Stdout).To(BeIdenticalTo(terminal.stdout))
	g.Expect(os.Stderr).To(BeIdenticalTo(terminal.stderr))
}

func TestOpenSettings_OpensFileSource(t *testing.T) {
	g := NewWithT(t)

	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "prefs.yaml")
	g.Expect(os.WriteFile(settingsPath, []byte("users: {}\n"), 0o600)).To(Succeed())

	logger, closeLog, err := newLogger(filepath.Join(dir, "magnify.log"))
	g.Expect(err).ShouldNot(HaveOccurred())
	defer closeLog()

	source, err := openSettings(&config.Config{SettingsPath: settingsPath}, logger)
	g.Expect(err).ShouldNot(HaveOccurred())
	defer closeSettings(source, logger)

	g.Expect(source).To(BeAssignableToTypeOf(&settings.File{}))
}

func TestOpenSettings_MemorySeededFromFlags(t *testing.T) {
	g := NewWithT(t)

	logger, closeLog, err := newLogger(filepath.Join(t.TempDir(), "magnify.log"))
	g.Expect(err).ShouldNot(HaveOccurred())
	defer closeLog()

	source, err := openSettings(&config.Config{User: 4, Scale: 5}, logger)
	g.Expect(err).ShouldNot(HaveOccurred())

	value, err := source.Float(settings.KeyDisplayMagnificationScale, 4)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(value).To(Equal(5.0))
}

func TestCloseSettings_LogsCloseError(t *testing.T) {
	g := NewWithT(t)

	captureOutput(t)
	logPath := filepath.Join(t.TempDir(), "magnify.log")
	logger, closeLog, err := newLogger(logPath)
	g.Expect(err).ShouldNot(HaveOccurred())

	closeSettings(failingCloser{Memory: settings.NewMemory()}, logger)
	closeSettings(settings.NewMemory(), logger)
	closeLog()

	contents, err := os.ReadFile(logPath)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(string(contents)).To(ContainSubstring("Closing settings: disk went away"))
}

// failingCloser is a settings source whose Close fails.
type failingCloser struct {
	*settings.Memory
}

func (failingCloser) Close() error {
	return errors.New("disk went away")
}

// capturedOutput replaces os.Stdout and os.Stderr with pipes for the duration of a test.
type capturedOutput struct {
	t      *testing.T
	stdout *os.File
	stderr *os.File
	reader *os.File
}

func captureOutput(t *testing.T) *capturedOutput {
	t.Helper()

	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	origStdout, origStderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = writer, writer
	t.Cleanup(func() {
		os.Stdout, os.Stderr = origStdout, origStderr
		_ = writer.Close()
		_ = reader.Close()
	})

	return &capturedOutput{t: t, stdout: writer, stderr: writer, reader: reader}
}

// written closes the write end and returns everything printed to it.
func (c *capturedOutput) written() string {
	c.t.Helper()

	_ = c.stdout.Close()
	data, err := io.ReadAll(c.reader)
	if err != nil {
		c.t.Fatalf("Failed to read captured output: %v", err)
	}
	return string(data)
}
