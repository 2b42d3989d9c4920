// Package setup prepares a local development checkout: it verifies the
// toolchain, creates the data tree and the local env file, and installs the
// dependencies of each app.
package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// ErrMissingPrerequisites is returned when a required tool is not installed
var ErrMissingPrerequisites = errors.New("missing prerequisites")

// Tool is an external command the checkout depends on
type Tool struct {
	Command  string
	Name     string
	URL      string
	Required bool
	Hint     string
}

// Tools are checked in order
var Tools = []Tool{
	{Command: "node", Name: "Node.js", URL: "https://nodejs.org/", Required: true},
	{Command: "python", Name: "Python", URL: "https://www.python.org/", Required: true},
	{Command: "docker", Name: "Docker", URL: "https://www.docker.com/products/docker-desktop", Required: true},
	{Command: "pm2", Name: "PM2", Hint: "npm install -g pm2"},
}

// DataDirs are created under data/
var DataDirs = []string{
	"models/nlp", "models/cv", "models/audio",
	"datasets/images", "datasets/text", "datasets/audio",
	"outputs/generated_text", "outputs/generated_images",
	"uploads/user_files",
}

// CommandFunc runs name with args in dir and returns its combined output
type CommandFunc func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// Status of a finished step
type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// StepResult is one row of the summary table
type StepResult struct {
	Step   string
	Status Status
	Detail string
}

// Runner executes the setup steps against a checkout
type Runner struct {
	root     string
	out      io.Writer
	goos     string
	lookPath func(string) (string, error)
	command  CommandFunc
	results  []StepResult
}

// Option customizes a Runner
type Option func(*Runner)

// WithOutput redirects progress output
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// WithLookPath replaces the PATH lookup used by the prerequisite check
func WithLookPath(fn func(string) (string, error)) Option {
	return func(r *Runner) { r.lookPath = fn }
}

// WithCommand replaces subprocess execution
func WithCommand(fn CommandFunc) Option {
	return func(r *Runner) { r.command = fn }
}

// WithGOOS selects the platform layout of the virtual environment
func WithGOOS(goos string) Option {
	return func(r *Runner) { r.goos = goos }
}

// NewRunner creates a runner for the checkout at root
func NewRunner(root string, opts ...Option) *Runner {
	r := &Runner{
		root:     root,
		out:      os.Stdout,
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		command:  execCommand,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func execCommand(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Results returns the outcome of every step run so far
func (r *Runner) Results() []StepResult {
	return r.results
}

// Run executes every step. Only missing required tools, filesystem errors
// and cancellation stop the run; a failed install is reported and skipped.
func (r *Runner) Run(ctx context.Context) error {
	r.results = nil
	r.print(color.Green, "🚀 Setting up local development environment...\n")

	if err := r.checkPrerequisites(ctx); err != nil {
		return err
	}

	steps := []func(context.Context) error{
		r.createDirectories,
		r.createEnvFile,
		r.installDependencies,
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step(ctx); err != nil {
			return err
		}
		fmt.Fprintln(r.out)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.print(color.Green, "✅ Setup complete!\n")
	r.printSummary()
	r.print(color.Cyan, "Next steps:")
	fmt.Fprintln(r.out, "  1. Edit .env.local with your configuration")
	fmt.Fprintln(r.out, "  2. Start services with: pm2 start ecosystem.config.cjs")
	fmt.Fprintln(r.out, "  3. View logs with: pm2 logs")
	fmt.Fprintln(r.out)
	return nil
}

func (r *Runner) checkPrerequisites(ctx context.Context) error {
	r.print(color.Cyan, "📋 Checking prerequisites...")

	allPresent := true
	for _, tool := range Tools {
		if !r.checkTool(ctx, tool) && tool.Required {
			allPresent = false
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if !allPresent {
		r.print(color.Red, "\n❌ Please install missing prerequisites and try again.")
		return ErrMissingPrerequisites
	}

	r.print(color.Green, "✅ Prerequisites check passed\n")
	return nil
}

func (r *Runner) checkTool(ctx context.Context, tool Tool) bool {
	if _, err := r.lookPath(tool.Command); err != nil {
		if tool.Required {
			r.print(color.Red, "❌ %s is required but not installed.", tool.Name)
			r.print(color.Yellow, "   Download from: %s", tool.URL)
			r.record(tool.Name, StatusFailed, "not installed")
		} else {
			r.print(color.Yellow, "⚠️  %s not found (optional)", tool.Name)
			r.print(color.Yellow, "   Install with: %s", tool.Hint)
			r.record(tool.Name, StatusWarning, "optional, not installed")
		}
		return false
	}

	output, err := r.command(ctx, r.root, tool.Command, "--version")
	version := firstLine(output)
	if err != nil || version == "" {
		r.print(color.Green, "✅ %s found", tool.Name)
		r.record(tool.Name, StatusOK, "")
		return true
	}
	r.print(color.Green, "✅ %s found: %s", tool.Name, version)
	r.record(tool.Name, StatusOK, version)
	return true
}

func (r *Runner) createDirectories(context.Context) error {
	r.print(color.Cyan, "📁 Creating data directories...")
	for _, dir := range DataDirs {
		path := filepath.Join(r.root, "data", filepath.FromSlash(dir))
		if err := os.MkdirAll(path, 0755); err != nil {
			r.record("Data directories", StatusFailed, err.Error())
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
	}
	r.print(color.Green, "✅ Data directories created")
	r.record("Data directories", StatusOK, fmt.Sprintf("%d directories", len(DataDirs)))
	return nil
}

func (r *Runner) createEnvFile(context.Context) error {
	envLocal := filepath.Join(r.root, ".env.local")
	envExample := filepath.Join(r.root, ".env.example")

	if exists(envLocal) {
		r.print(color.Green, "✅ .env.local already exists")
		r.record(".env.local", StatusOK, "already exists")
		return nil
	}
	if !exists(envExample) {
		r.print(color.Yellow, "⚠️  .env.example not found, skipping .env.local creation")
		r.record(".env.local", StatusWarning, ".env.example not found")
		return nil
	}

	r.print(color.Cyan, "📝 Creating .env.local from template...")
	if err := copyFile(envExample, envLocal); err != nil {
		r.record(".env.local", StatusFailed, err.Error())
		return fmt.Errorf("failed to create .env.local: %w", err)
	}
	r.print(color.Yellow, "⚠️  Please edit .env.local with your configuration")
	r.record(".env.local", StatusOK, "created from .env.example")
	return nil
}

func (r *Runner) installDependencies(ctx context.Context) error {
	r.installNpm(ctx, "apps/homepage", "Homepage")
	r.installNpm(ctx, "apps/api", "API")
	r.installDemos(ctx)
	return nil
}

func (r *Runner) installNpm(ctx context.Context, rel, name string) {
	dir := filepath.Join(r.root, filepath.FromSlash(rel))
	step := name + " dependencies"
	if !exists(dir) {
		r.record(step, StatusSkipped, rel+" not found")
		return
	}

	r.print(color.Cyan, "📦 Installing %s dependencies...", strings.ToLower(name))
	if _, err := r.runWithSpinner(ctx, dir, "Running npm install in "+rel, "npm", "install"); err != nil {
		r.print(color.Red, "❌ Failed to install %s dependencies: %v", strings.ToLower(name), err)
		r.record(step, StatusFailed, err.Error())
		return
	}
	r.print(color.Green, "✅ %s dependencies installed", name)
	r.record(step, StatusOK, "npm install")
}

func (r *Runner) installDemos(ctx context.Context) {
	dir := filepath.Join(r.root, "apps", "demos")
	if !exists(dir) {
		r.record("Demos dependencies", StatusSkipped, "apps/demos not found")
		return
	}

	r.print(color.Cyan, "📦 Installing demos dependencies...")

	venv := filepath.Join(dir, "venv")
	if !exists(venv) {
		if _, err := r.command(ctx, dir, "python", "-m", "venv", "venv"); err != nil {
			r.print(color.Red, "❌ Failed to create virtual environment: %v", err)
			r.record("Virtual environment", StatusFailed, err.Error())
			r.record("Demos dependencies", StatusSkipped, "no virtual environment")
			return
		}
		r.print(color.Green, "✅ Virtual environment created")
		r.record("Virtual environment", StatusOK, "created")
	}

	if !exists(filepath.Join(dir, "requirements.txt")) {
		r.record("Demos dependencies", StatusSkipped, "requirements.txt not found")
		return
	}

	pip := r.pipPath(venv)
	if _, err := r.runWithSpinner(ctx, dir, "Running pip install in apps/demos", pip, "install", "-r", "requirements.txt"); err != nil {
		r.print(color.Red, "❌ Failed to install demos dependencies: %v", err)
		r.record("Demos dependencies", StatusFailed, err.Error())
		return
	}
	r.print(color.Green, "✅ Demos dependencies installed")
	r.record("Demos dependencies", StatusOK, "pip install -r requirements.txt")
}

// pipPath locates pip inside the virtual environment for the target platform
func (r *Runner) pipPath(venv string) string {
	if r.goos == "windows" {
		return filepath.Join(venv, "Scripts", "pip")
	}
	return filepath.Join(venv, "bin", "pip")
}

func (r *Runner) runWithSpinner(ctx context.Context, dir, suffix, name string, args ...string) ([]byte, error) {
	s := spinner.New(spinner.CharSets[14], 120*time.Millisecond, spinner.WithWriter(r.out))
	s.Suffix = " " + suffix
	s.Start()
	output, err := r.command(ctx, dir, name, args...)
	s.Stop()

	if err != nil {
		if line := lastLine(output); line != "" {
			return output, fmt.Errorf("%w: %s", err, line)
		}
		return output, err
	}
	return output, nil
}

func (r *Runner) printSummary() {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Step", "Status", "Details"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, result := range r.results {
		table.Append([]string{result.Step, string(result.Status), result.Detail})
	}
	table.Render()
	fmt.Fprintln(r.out)
}

func (r *Runner) print(c color.Color, format string, args ...interface{}) {
	fmt.Fprintln(r.out, c.Sprintf(format, args...))
}

func (r *Runner) record(step string, status Status, detail string) {
	r.results = append(r.results, StepResult{Step: step, Status: status, Detail: detail})
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, info.Mode().Perm())
}

func firstLine(output []byte) string {
	line, _, _ := strings.Cut(strings.TrimSpace(string(output)), "\n")
	return strings.TrimSpace(line)
}

func lastLine(output []byte) string {
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
