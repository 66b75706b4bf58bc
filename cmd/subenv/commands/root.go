// Package commands implements the command line interface of subenv.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/subenv/internal/app"
	"go.trai.ch/subenv/internal/build"
	"go.trai.ch/subenv/internal/core/domain"
)

// CLI represents the command line interface for subenv.
type CLI struct {
	app     Application
	env     domain.Environ
	rootCmd *cobra.Command
	args    []string

	packages   []string
	keepEnv    []string
	addPath    []string
	setEnv     []pair
	binds      []pair
	roBinds    []pair
	configPath string
	dryRun     bool
	verbose    bool
	logJSON    bool
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, req app.Request, opts app.RunOptions) error
}

// New creates a new CLI instance for a and the invoking environment env.
func New(a Application, env domain.Environ) *CLI {
	c := &CLI{
		app: a,
		env: env,
	}

	rootCmd := &cobra.Command{
		Use:   "subenv [flags] [--] command [args...]",
		Short: "Run a command in a sandbox containing only the given Nix packages",
		Long: `subenv builds the requested packages with Nix, mounts their runtime closure
read-only into a fresh bubblewrap sandbox with every namespace unshared, and
replaces itself with the sandboxed command.`,
		Example: `  subenv -p hello hello
  subenv -p python3 -E TERM --bind "$PWD" /work -- python3 /work/main.py`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          cobra.ArbitraryArgs,
		RunE:          c.run,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	flags := rootCmd.Flags()
	flags.SetInterspersed(false)
	flags.StringArrayVarP(&c.packages, "package", "p", nil, "Nix `package` to make available in the sandbox")
	flags.StringArrayVarP(&c.keepEnv, "keep-env", "E", nil, "Copy environment `variable` from the invoking environment")
	flags.VarP(pairList{&c.setEnv}, "set-env", "e", "Set `KEY VALUE` in the sandbox environment")
	flags.StringArrayVar(&c.addPath, "add-path", nil, "Add `dir` to the sandbox PATH, before package bin directories")
	flags.Var(pairList{&c.binds}, "bind", "Bind mount `SRC DEST` read-write")
	flags.Var(pairList{&c.roBinds}, "ro-bind", "Bind mount `SRC DEST` read-only")
	flags.BoolVarP(&c.dryRun, "dry-run", "n", false, "Print the sandbox invocation instead of running it")
	flags.StringVarP(&c.configPath, "config", "c", "", "Read defaults from config `file`")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Log resolver calls")
	flags.BoolVar(&c.logJSON, "log-json", false, "Write log messages as JSON")

	// Registered last so --version does not claim -v.
	rootCmd.InitDefaultVersionFlag()
	flags.Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	flags.Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	req := app.Request{
		Packages:   c.packages,
		KeepEnv:    c.keepEnv,
		AddPath:    c.addPath,
		Command:    args,
		ConfigPath: c.configPath,
		Env:        c.env,
	}
	for _, p := range c.setEnv {
		req.SetEnv = append(req.SetEnv, domain.EnvVar{Key: p.first, Value: p.second})
	}
	for _, p := range c.binds {
		req.Binds = append(req.Binds, domain.Bind{Source: p.first, Dest: p.second})
	}
	for _, p := range c.roBinds {
		req.Binds = append(req.Binds, domain.Bind{Source: p.first, Dest: p.second, ReadOnly: true})
	}

	return c.app.Run(cmd.Context(), req, app.RunOptions{
		DryRun:  c.dryRun,
		Verbose: c.verbose,
		LogJSON: c.logJSON,
		Stdout:  cmd.OutOrStdout(),
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	args, err := foldPairs(c.rootCmd.Flags(), c.args)
	if err != nil {
		return err
	}
	c.rootCmd.SetArgs(args)
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the command line arguments, without the program name.
func (c *CLI) SetArgs(args []string) {
	c.args = args
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
