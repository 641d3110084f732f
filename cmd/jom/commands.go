package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jomtui/jom/internal/catalog"
	"github.com/jomtui/jom/internal/config"
	"github.com/jomtui/jom/internal/errdefs"
	"github.com/jomtui/jom/internal/log"
	"github.com/jomtui/jom/internal/menu"
	"github.com/jomtui/jom/internal/osinfo"
	"github.com/jomtui/jom/internal/tui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// cli carries state shared by the commands of one invocation.
type cli struct {
	v       *viper.Viper
	fs      afero.Fs
	cfgFile string
	cfg     config.Config
	logFile io.Closer
	root    *cobra.Command
}

func newCLI() *cli {
	c := &cli{
		v:  viper.New(),
		fs: afero.NewOsFs(),
	}
	c.root = c.rootCmd()
	return c
}

// execute runs the command tree and releases the log file whether or not the
// command failed.
func (c *cli) execute() error {
	err := c.root.Execute()
	if cerr := c.teardown(); err == nil {
		err = cerr
	}
	return err
}

func (c *cli) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jom",
		Short: "Browse Linux distributions and pick packages to install or uninstall",
		Long: "jom lists the distributions of its catalog. Pick one, choose install or\n" +
			"uninstall, then mark packages to build a command plan. Commands are\n" +
			"never executed.",
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE:              c.runInteractiveMode,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/jom/config.yaml)")
	pf.String("catalog", "", "catalog file to use instead of the built-in one")
	pf.String("log-level", "warn", "log level (debug, info, warn, error, fatal)")
	pf.String("log-file", "", "write logs to this file")

	f := rootCmd.Flags()
	f.Bool("strict", false, "fail on keys the action screen does not support")
	f.Bool("detect", false, "preselect the distribution of this host")
	f.Bool("print-plan", false, "print the command plan on exit")
	f.Bool("alt-screen", true, "draw the menu on the alternate screen")

	// Bind flags to viper
	c.v.BindPFlag(config.KeyCatalog, pf.Lookup("catalog"))
	c.v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	c.v.BindPFlag(config.KeyLogFile, pf.Lookup("log-file"))
	c.v.BindPFlag(config.KeyStrict, f.Lookup("strict"))
	c.v.BindPFlag(config.KeyDetectDistro, f.Lookup("detect"))
	c.v.BindPFlag(config.KeyPrintPlan, f.Lookup("print-plan"))
	c.v.BindPFlag(config.KeyAltScreen, f.Lookup("alt-screen"))

	rootCmd.AddCommand(c.versionCmd(), c.listCmd())
	return rootCmd
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jom v%s\n", Version)
		},
	}
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the catalog",
		Long:  "Print every distribution of the catalog with its packages and their commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog()
			if err != nil {
				return err
			}
			printCatalog(cmd.OutOrStdout(), cat)
			return nil
		},
	}
}

// setup loads config and routes logging before any command runs.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.v, c.cfgFile)
	if err != nil {
		return err
	}
	c.cfg = cfg

	var out io.Writer
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		c.logFile = f
		out = f
	}
	if err := log.Configure(out, cfg.Log.Level); err != nil {
		return err
	}

	log.Debug("config loaded", "file", c.v.ConfigFileUsed(), "catalog", cfg.Catalog)
	return nil
}

func (c *cli) teardown() error {
	if c.logFile == nil {
		return nil
	}
	log.GetLogger().SetOutput(os.Stderr)
	return c.logFile.Close()
}

func (c *cli) loadCatalog() (*catalog.Catalog, error) {
	if c.cfg.Catalog == "" {
		return catalog.Default()
	}
	cat, err := catalog.Load(c.fs, c.cfg.Catalog)
	if err != nil {
		return nil, err
	}
	log.Info("catalog loaded", "path", c.cfg.Catalog, "distros", cat.Len())
	return cat, nil
}

func (c *cli) runInteractiveMode(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errdefs.NewCustomError(errdefs.ErrTypeNotTerminal, "interactive mode needs a terminal on stdin; try 'jom list'")
	}

	cat, err := c.loadCatalog()
	if err != nil {
		return err
	}

	opts := []menu.Option{menu.WithStrict(c.cfg.UI.Strict)}
	host := ""
	if c.cfg.UI.DetectDistro {
		var cursor int
		cursor, host = c.detectDistro(cat)
		opts = append(opts, menu.WithCursor(menu.ScreenDistros, cursor))
	}

	d := menu.NewDispatcher(menu.NewApp(cat), opts...)
	final, err := tui.Run(tui.NewModel(d, Version).WithHost(host), c.cfg.UI.AltScreen)
	if err != nil {
		return fmt.Errorf("running menu: %w", err)
	}

	if c.cfg.UI.PrintPlan {
		printPlan(cmd.OutOrStdout(), final.Dispatcher().App())
	}
	return nil
}

// detectDistro returns the catalog index matching this host, and its pretty
// name. Detection failures fall back to the first row.
func (c *cli) detectDistro(cat *catalog.Catalog) (int, string) {
	info, err := osinfo.GetOSInfo(c.fs)
	if err != nil {
		log.Warn("host detection failed", "err", err)
		return 0, ""
	}
	i, ok := cat.Match(info.Candidates())
	if !ok {
		log.Info("host distribution not in catalog", "id", info.Distribution)
		return 0, info.PrettyName
	}
	return i, info.PrettyName
}

func printCatalog(w io.Writer, cat *catalog.Catalog) {
	if cat.Len() == 0 {
		fmt.Fprintln(w, "catalog is empty")
		return
	}
	for _, d := range cat.Distros {
		var tags []string
		if d.ID != "" {
			tags = append(tags, d.ID)
		}
		if d.Manager != "" {
			tags = append(tags, string(d.Manager))
		}
		if len(tags) > 0 {
			fmt.Fprintf(w, "%s [%s]\n", d.Name, strings.Join(tags, ", "))
		} else {
			fmt.Fprintln(w, d.Name)
		}
		for _, p := range d.Packages {
			fmt.Fprintf(w, "  %s\n", p.Name)
			for _, a := range catalog.Actions {
				for _, cmd := range p.Commands(a) {
					fmt.Fprintf(w, "    %s: %s\n", a, cmd)
				}
			}
		}
	}
}

func printPlan(w io.Writer, app *menu.App) {
	plan := app.Plan()
	if len(plan) == 0 {
		return
	}
	name, err := app.DistroName(app.SelectedDistro())
	if err != nil {
		return
	}
	fmt.Fprintf(w, "# %s on %s\n", app.Action(), name)
	for _, cmd := range plan {
		fmt.Fprintln(w, cmd)
	}
}
