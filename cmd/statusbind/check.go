package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/mgomes/statusbind/bind"
	"github.com/mgomes/statusbind/fixtures/statusexample"
	"github.com/mgomes/statusbind/host"
)

// fixtureFile is a conformance fixture. Calls are evaluated with the named
// module's attributes in scope.
type fixtureFile struct {
	Module         string        `yaml:"module" json:"module"`
	RecursionLimit int           `yaml:"recursion_limit" json:"recursion_limit"`
	Cases          []fixtureCase `yaml:"cases" json:"cases"`
}

type fixtureCase struct {
	Name    string        `yaml:"name" json:"name"`
	Call    string        `yaml:"call" json:"call"`
	Returns *string       `yaml:"returns" json:"returns"`
	Raises  *raisesExpect `yaml:"raises" json:"raises"`
	Status  *statusExpect `yaml:"status" json:"status"`
}

type raisesExpect struct {
	Type    string  `yaml:"type" json:"type"`
	Code    string  `yaml:"code" json:"code"`
	Message *string `yaml:"message" json:"message"`
}

type statusExpect struct {
	Ok      *bool   `yaml:"ok" json:"ok"`
	Code    string  `yaml:"code" json:"code"`
	RawCode *int    `yaml:"raw_code" json:"raw_code"`
	Message *string `yaml:"message" json:"message"`
}

type caseResult struct {
	name string
	err  error
}

type fileReport struct {
	path    string
	results []caseResult
}

func (r fileReport) failures() int {
	n := 0
	for _, res := range r.results {
		if res.err != nil {
			n++
		}
	}
	return n
}

func newCheckCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "check <fixture>...",
		Short: "Run conformance fixture files (.yaml, .yml, .json, .jsonc)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return runCheck(cmd.Context(), cmd.OutOrStdout(), logger, args)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each case to stderr")
	return cmd
}

func runCheck(ctx context.Context, out io.Writer, logger *slog.Logger, paths []string) error {
	reports, err := runFixtureFiles(ctx, paths, logger)
	if err != nil {
		return err
	}

	passed, failed := 0, 0
	for _, report := range reports {
		for _, res := range report.results {
			if res.err != nil {
				failed++
				fmt.Fprintf(out, "FAIL %s: %s: %v\n", report.path, res.name, res.err)
				continue
			}
			passed++
			fmt.Fprintf(out, "PASS %s: %s\n", report.path, res.name)
		}
	}
	fmt.Fprintf(out, "%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		return fmt.Errorf("check: %d case(s) failed", failed)
	}
	return nil
}

// runFixtureFiles checks every file concurrently. Each file gets its own
// runtime and native slots, so files cannot observe each other. Reports come
// back in argument order.
func runFixtureFiles(ctx context.Context, paths []string, logger *slog.Logger) ([]fileReport, error) {
	reports := make([]fileReport, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			file, err := loadFixtureFile(path)
			if err != nil {
				return err
			}
			report, err := runFixture(ctx, path, file, logger)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func loadFixtureFile(path string) (*fixtureFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var file fixtureFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse fixture %s: %w", path, err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
			return nil, fmt.Errorf("parse fixture %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("fixture %s: unsupported extension %q", path, filepath.Ext(path))
	}
	if file.Module == "" {
		file.Module = statusexample.ModuleName
	}
	for i, c := range file.Cases {
		if strings.TrimSpace(c.Call) == "" {
			return nil, fmt.Errorf("fixture %s: case %d has no call", path, i+1)
		}
		if c.Name == "" {
			file.Cases[i].Name = c.Call
		}
	}
	return &file, nil
}

func runFixture(ctx context.Context, path string, file *fixtureFile, logger *slog.Logger) (fileReport, error) {
	sess, err := newSession(file.Module, host.Config{RecursionLimit: file.RecursionLimit})
	if err != nil {
		return fileReport{}, fmt.Errorf("fixture %s: %w", path, err)
	}
	report := fileReport{path: path}
	for _, c := range file.Cases {
		if err := ctx.Err(); err != nil {
			return fileReport{}, err
		}
		err := runCase(sess, c)
		logger.Debug("case finished", "file", path, "case", c.Name, "ok", err == nil)
		if err != nil {
			logger.Info("case failed", "file", path, "case", c.Name, "error", err)
		}
		report.results = append(report.results, caseResult{name: c.Name, err: err})
	}
	return report, nil
}

func runCase(sess *session, c fixtureCase) error {
	result, err := host.Eval(sess.rt, sess.globals, c.Call)
	if c.Raises != nil {
		return checkRaised(err, c.Raises)
	}
	if err != nil {
		return fmt.Errorf("unexpected %w", err)
	}
	if c.Returns != nil {
		if got := sess.rt.Repr(result); got != *c.Returns {
			return fmt.Errorf("returned %s, want %s", got, *c.Returns)
		}
	}
	if c.Status != nil {
		return checkStatus(result, c.Status)
	}
	return nil
}

func checkRaised(err error, want *raisesExpect) error {
	if err == nil {
		return fmt.Errorf("expected %s, nothing was raised", want.Type)
	}
	exc, ok := host.AsException(err)
	if !ok {
		return fmt.Errorf("expected %s, got non-exception error %v", want.Type, err)
	}
	if want.Type != "" && !exceptionIs(exc.Class, want.Type) {
		return fmt.Errorf("raised %v, want %s", exc, want.Type)
	}
	if want.Code != "" {
		code, ok := exc.Attrs["code"]
		if !ok || code.Enum() == nil {
			return fmt.Errorf("raised %v without a status code", exc)
		}
		if !strings.EqualFold(code.Enum().Name, want.Code) {
			return fmt.Errorf("raised code %s, want %s", code.Enum().Name, want.Code)
		}
	}
	if want.Message != nil {
		msg := exc.Message
		if attr, ok := exc.Attrs["message"]; ok {
			msg = attr.String()
		}
		if msg != *want.Message {
			return fmt.Errorf("raised message %q, want %q", msg, *want.Message)
		}
	}
	return nil
}

func exceptionIs(class *host.ExceptionClass, name string) bool {
	for cur := class; cur != nil; cur = cur.Base {
		if cur.Name == name {
			return true
		}
	}
	return false
}

func checkStatus(v host.Value, want *statusExpect) error {
	s, err := bind.LoadStatus(v)
	if err != nil {
		return fmt.Errorf("expected a status: %w", err)
	}
	if want.Ok != nil && s.Ok() != *want.Ok {
		return fmt.Errorf("ok() = %t, want %t", s.Ok(), *want.Ok)
	}
	if want.Code != "" && !strings.EqualFold(s.Code().String(), want.Code) {
		return fmt.Errorf("code() = %s, want %s", s.Code(), want.Code)
	}
	if want.RawCode != nil && s.RawCode() != *want.RawCode {
		return fmt.Errorf("raw_code() = %d, want %d", s.RawCode(), *want.RawCode)
	}
	if want.Message != nil && s.Message() != *want.Message {
		return fmt.Errorf("message() = %q, want %q", s.Message(), *want.Message)
	}
	return nil
}
