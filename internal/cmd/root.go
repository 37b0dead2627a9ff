package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"commitfmt/internal/config"
	"commitfmt/internal/debug"
	"commitfmt/internal/git"
	"commitfmt/internal/session"
	"commitfmt/internal/tui"
)

var (
	cfgFile         string
	interactiveFlag bool
	debugFlag       bool
	noColorFlag     bool
	buildInfo       = struct{ commit, buildTime string }{"unknown", "unknown"}
	rootCmd         = &cobra.Command{
		Use:   "commitfmt",
		Short: "Interactive Angular commit message builder",
		Long: `commitfmt asks for the type, scope, description, body, breaking change and
closed issues of a change, prints an Angular convention commit message and the
matching git command, and can run the commit for you.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}
)

func Execute(version, commit, buildTime string) error {
	rootCmd.Version = version
	buildInfo.commit, buildInfo.buildTime = commit, buildTime
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "Start interactive mode")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/commitfmt/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "Enable debug mode (verbose output)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable coloured output")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		debug.Enabled = debugFlag
	}

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// runRoot starts the interactive session for "-i" or a bare invocation.
// Anything else only prints a hint; wrong usage is not an error.
func runRoot(cmd *cobra.Command, args []string) error {
	if !interactiveFlag && len(args) > 0 {
		styles := tui.NewStyles(cmd.OutOrStdout(), noColorFlag)
		fmt.Fprintln(cmd.OutOrStdout(), styles.Warning.Render("Use --interactive or -i to start interactive mode"))
		return nil
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cfg.Debug {
		debug.Enabled = true
	}
	debug.Printf("config: %+v\n", *cfg)

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	out := cmd.OutOrStdout()
	styles := tui.NewStyles(out, cfg.NoColor || noColorFlag)
	s := &session.Session{
		Prompter:  tui.NewPrompter(styles),
		Executor:  git.ExecExecutor{Dir: wd},
		Styles:    styles,
		Out:       out,
		GitBinary: cfg.GitBinary,
		RepoDir:   wd,
	}
	return s.Run(cmd.Context())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "commitfmt version %s (commit %s, built %s)\n",
			rootCmd.Version, buildInfo.commit, buildInfo.buildTime)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage commitfmt configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create initial configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Init(cfgFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created at: %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := config.Show(cfgFile)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), content)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Update a configuration value (git_binary, no_color, debug)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return config.Set(cfgFile, args[0], args[1])
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
