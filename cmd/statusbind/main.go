package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mgomes/statusbind/fixtures/statusexample"
	"github.com/mgomes/statusbind/host"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	root := newRootCommand()
	root.SetArgs(args[1:])
	return root.Execute()
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "statusbind",
		Short: "Exercise status conversion between native code and the host runtime",
		Long: `statusbind evaluates host expressions against the status fixture modules.

Every session imports the status module together with status_example and
status_testing. The attributes of the selected module are in scope unqualified.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New("command required")
		},
	}
	root.AddCommand(newCallCommand())
	root.AddCommand(newCheckCommand())
	root.AddCommand(newREPLCommand())
	return root
}

type sessionFlags struct {
	module         string
	recursionLimit int
}

func newCallCommand() *cobra.Command {
	flags := &sessionFlags{}
	cmd := &cobra.Command{
		Use:   "call <expr>...",
		Short: "Evaluate expressions and print their results",
		Example: `  statusbind call 'make_status(:not_found, "gone")'
  statusbind call --module status_testing 'call_callback_with_status_return(ok_status)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd.OutOrStdout(), flags, args)
		},
	}
	cmd.Flags().StringVar(&flags.module, "module", statusexample.ModuleName, "module whose attributes are in scope")
	cmd.Flags().IntVar(&flags.recursionLimit, "recursion-limit", 0, "maximum nested call depth")
	return cmd
}

func runCall(out io.Writer, flags *sessionFlags, exprs []string) error {
	sess, err := newSession(flags.module, host.Config{RecursionLimit: flags.recursionLimit})
	if err != nil {
		return err
	}
	for _, src := range exprs {
		result, err := host.Eval(sess.rt, sess.globals, src)
		if err != nil {
			return fmt.Errorf("%s raised %w", src, err)
		}
		fmt.Fprintln(out, sess.rt.Repr(result))
	}
	return nil
}

func newREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL()
		},
	}
}
