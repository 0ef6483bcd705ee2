package cmd

import (
	"fmt"
	"github.com/carlmjohnson/versioninfo"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/robinovitch61/copycode/internal"
	"github.com/robinovitch61/copycode/internal/clipboard"
	"github.com/robinovitch61/copycode/internal/copyaction"
	"github.com/robinovitch61/copycode/internal/feedback"
	"github.com/robinovitch61/copycode/internal/keymap"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"os"
	"strings"
	"time"
)

var (
	// Version is public so users can optionally specify or override the version
	// at build time by passing in ldflags, e.g.
	//   go build -ldflags "-X github.com/robinovitch61/copycode/cmd.Version=vX.Y.Z"
	Version = ""
)

type arg struct {
	cliShort, cfgFileEnvVar, description, defaultString string
	isBool, isDuration, defaultIfBool                   bool
	defaultIfDuration                                   time.Duration
}

var (
	rootNameToArg = map[string]arg{
		"clipboard": {
			cfgFileEnvVar: "clipboard",
			description:   `Clipboard backend: auto, system, or exec. Default auto`,
			defaultString: "auto",
		},
		"config": {
			cfgFileEnvVar: "config",
			description:   `Config file path. Keys match flag names`,
		},
		"delay": {
			cliShort:          "d",
			cfgFileEnvVar:     "delay",
			description:       `How long a block shows as copied. E.g. 500ms, 2s. Default 2s`,
			isDuration:        true,
			defaultIfDuration: copyaction.DefaultDelay,
		},
		"dry-run": {
			cfgFileEnvVar: "dry-run",
			description:   `If present, copy to an in-memory clipboard instead of the system one`,
			isBool:        true,
		},
		"help": {
			description: `Print usage`,
		},
		"legacy-reset": {
			cfgFileEnvVar: "legacy-reset",
			description:   `If present, every reset clears the copied state, even one left over from an earlier copy`,
			isBool:        true,
		},
		"require-success": {
			cfgFileEnvVar: "require-success",
			description:   `If present, only show a block as copied when the clipboard write succeeded`,
			isBool:        true,
		},
		"save-dir": {
			cfgFileEnvVar: "save-dir",
			description:   `Directory saved blocks are written to. Default current directory`,
			defaultString: ".",
		},
		"watch": {
			cliShort:      "w",
			cfgFileEnvVar: "watch",
			description:   `If present, reload the page whenever it changes`,
			isBool:        true,
		},
	}

	description = fmt.Sprintf(`copycode %s

copycode lists the copyable code blocks of a generated page and copies them to the clipboard

Home page: https://github.com/robinovitch61/copycode`,
		getVersion(),
	)

	rootCmd = &cobra.Command{
		Use:   "copycode <page.html>",
		Short: "copycode: copy code blocks from a page",
		Long:  description,
		Args:  cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, rootNameToArg)
		},
		RunE:    mainEntrypoint,
		Version: getVersion(),
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cliLong := "help"
	rootCmd.PersistentFlags().BoolP(cliLong, rootNameToArg[cliLong].cliShort, rootNameToArg[cliLong].defaultIfBool, rootNameToArg[cliLong].description)

	addRootFlags(rootCmd.PersistentFlags())
	rootCmd.SetVersionTemplate(`{{printf "copycode %s\n" .Version}}`)
	rootCmd.Flags().BoolP("version", "v", false, "Show copycode version")

	rootCmd.AddCommand(decodeCmd, encodeCmd, copyCmd)
}

func addRootFlags(flags *pflag.FlagSet) {
	for _, cliLong := range []string{
		"clipboard",
		"config",
		"delay",
		"dry-run",
		"legacy-reset",
		"require-success",
		"save-dir",
		"watch",
	} {
		c := rootNameToArg[cliLong]
		if c.isBool {
			flags.BoolP(cliLong, c.cliShort, c.defaultIfBool, c.description)
		} else if c.isDuration {
			flags.DurationP(cliLong, c.cliShort, c.defaultIfDuration, c.description)
		} else {
			flags.StringP(cliLong, c.cliShort, c.defaultString, c.description)
		}
		_ = viper.BindPFlag(c.cfgFileEnvVar, flags.Lookup(cliLong))
	}
}

func initConfig(cmd *cobra.Command, nameToArg map[string]arg) error {
	// bind viper to env vars, e.g. COPYCODE_DELAY
	viper.SetEnvPrefix("COPYCODE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config %s: %w", cfgFile, err)
		}
	}

	return bindFlags(cmd, nameToArg)
}

func bindFlags(cmd *cobra.Command, nameToArg map[string]arg) error {
	v := viper.GetViper()
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Determine the naming convention of the flags when represented in the config file
		cliLong := f.Name
		viperName := nameToArg[cliLong].cfgFileEnvVar
		if viperName == "" {
			return
		}

		// Apply the viper config value to the flag when the flag is not manually specified
		// and viper has a value from the config file or env var
		if !f.Changed && v.IsSet(viperName) {
			val := v.Get(viperName)
			if err := cmd.Flags().Set(cliLong, fmt.Sprintf("%v", val)); err != nil && bindErr == nil {
				bindErr = fmt.Errorf("error setting flag %s: %w", cliLong, err)
			}
		}
	})
	return bindErr
}

func mainEntrypoint(cmd *cobra.Command, args []string) error {
	config, err := getConfig(cmd, args[0])
	if err != nil {
		return err
	}
	handler, err := newHandler(config)
	if err != nil {
		return err
	}
	program := tea.NewProgram(internal.InitialModel(config, handler), tea.WithAltScreen())
	final, err := program.Run()
	if m, ok := final.(internal.Model); ok {
		m.Close()
	}
	if err != nil {
		return fmt.Errorf("error on copycode startup: %w", err)
	}
	return nil
}

func getVersion() string {
	if Version != "" {
		return Version
	}
	return versioninfo.Short()
}

func getCopyConfig(cmd *cobra.Command) (copyaction.Config, error) {
	config := copyaction.DefaultConfig()
	delay, err := cmd.Flags().GetDuration("delay")
	if err != nil {
		return config, fmt.Errorf("error parsing delay: %w", err)
	}
	if delay <= 0 {
		return config, fmt.Errorf("error: delay must be positive")
	}
	config.Delay = delay
	config.RequireSuccess = cmd.Flags().Lookup("require-success").Value.String() == "true"
	config.SupersedeStale = cmd.Flags().Lookup("legacy-reset").Value.String() != "true"
	return config, nil
}

func getConfig(cmd *cobra.Command, pagePath string) (internal.Config, error) {
	copyConfig, err := getCopyConfig(cmd)
	if err != nil {
		return internal.Config{}, err
	}
	if pagePath == "-" {
		return internal.Config{}, fmt.Errorf("error: the interactive view needs a page file, use `copycode copy` to read from stdin")
	}
	if _, err := os.Stat(pagePath); err != nil {
		return internal.Config{}, err
	}
	return internal.Config{
		KeyMap:    keymap.DefaultKeyMap(),
		Copy:      copyConfig,
		Clipboard: cmd.Flags().Lookup("clipboard").Value.String(),
		DryRun:    cmd.Flags().Lookup("dry-run").Value.String() == "true",
		PagePath:  pagePath,
		SaveDir:   cmd.Flags().Lookup("save-dir").Value.String(),
		Version:   getVersion(),
		Watch:     cmd.Flags().Lookup("watch").Value.String() == "true",
	}, nil
}

func newWriter(backend string, dryRun bool) (clipboard.Writer, error) {
	if dryRun {
		return &clipboard.Memory{}, nil
	}
	return clipboard.New(backend)
}

func newHandler(config internal.Config) (*copyaction.Handler, error) {
	writer, err := newWriter(config.Clipboard, config.DryRun)
	if err != nil {
		return nil, err
	}
	return copyaction.NewHandler(config.Copy, writer, feedback.NewMemory()), nil
}
