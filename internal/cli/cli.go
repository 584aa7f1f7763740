package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vk/restricteddsl/internal/app"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "RDSL"

// Configuration keys shared by flags, environment and config file.
const (
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
	keyTask      = "task"
	keyOutput    = "output"
	keyFormat    = "format"
	keyAt        = "at"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Execute runs the command line args. Task output goes to outW; logs,
// help and usage go to errW except when help is explicitly requested.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := NewRootCommand(outW, errW)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the command tree with its own viper instance.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "text")
	v.SetDefault(keyTask, app.DefaultTask)
	v.SetDefault(keyOutput, "text")
	v.SetDefault(keyFormat, "json")
	v.SetDefault(keyAt, "")

	var cfgFile string
	root := &cobra.Command{
		Use:   "restricteddsl",
		Short: "Configure a restricted extension from declarative HCL scripts",
		Long: `restricteddsl applies HCL scripts to a restricted configuration schema.

Scripts may only assign properties, configure singletons and add collection
elements; pure functions such as point(x, y) may appear inside expressions.
After the scripts are applied, a task reads the resulting configuration.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile == "" {
				return nil
			}
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return &ExitError{Code: 1, Message: fmt.Sprintf("reading config file %s: %v", cfgFile, err)}
			}
			return nil
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError("%v", err)
	})

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "YAML config file with defaults for any flag")
	root.PersistentFlags().String(keyLogLevel, "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	root.PersistentFlags().String(keyLogFormat, "text", "Log output format. Options: 'text' or 'json'.")
	_ = v.BindPFlag(keyLogLevel, root.PersistentFlags().Lookup(keyLogLevel))
	_ = v.BindPFlag(keyLogFormat, root.PersistentFlags().Lookup(keyLogFormat))

	root.AddCommand(newRunCommand(v, outW, errW), newSchemaCommand(v, outW, errW))
	return root
}

func newRunCommand(v *viper.Viper, outW, errW io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] SCRIPT...",
		Short: "Apply scripts and run a task",
		Long: `Apply every SCRIPT (an .hcl file or a directory of them, in lexical order)
to the project and then run the task, which prints the configuration by default.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageError("at least one SCRIPT path is required")
			}
			cfg, err := newConfig(v, args)
			if err != nil {
				return err
			}
			a, err := app.New(outW, errW, cfg)
			if err != nil {
				return err
			}
			return a.Run(cmd.Context())
		},
	}
	cmd.Flags().StringP(keyTask, "t", app.DefaultTask, "Task to run after the scripts are applied.")
	cmd.Flags().StringP(keyOutput, "o", "text", "Configuration output format. Options: 'text', 'json' or 'yaml'.")
	_ = v.BindPFlag(keyTask, cmd.Flags().Lookup(keyTask))
	_ = v.BindPFlag(keyOutput, cmd.Flags().Lookup(keyOutput))
	return cmd
}

func newSchemaCommand(v *viper.Viper, outW, errW io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Describe what scripts may do",
		Long:  `Print every node type reachable from the project with its visible members and their categories.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := newConfig(v, nil)
			if err != nil {
				return err
			}
			a, err := app.New(outW, errW, cfg)
			if err != nil {
				return err
			}
			return a.DescribeSchema(cmd.Context(), outW, v.GetString(keyFormat), v.GetString(keyAt))
		},
	}
	cmd.Flags().StringP(keyFormat, "f", "json", "Schema output format. Options: 'json' or 'yaml'.")
	cmd.Flags().String(keyAt, "", "Describe only the node at this path, e.g. 'restricted.primary_access'.")
	_ = v.BindPFlag(keyFormat, cmd.Flags().Lookup(keyFormat))
	_ = v.BindPFlag(keyAt, cmd.Flags().Lookup(keyAt))
	return cmd
}

func newConfig(v *viper.Viper, scripts []string) (*app.Config, error) {
	cfg, err := app.NewConfig(app.Config{
		ScriptPaths:  scripts,
		Task:         v.GetString(keyTask),
		OutputFormat: v.GetString(keyOutput),
		LogFormat:    v.GetString(keyLogFormat),
		LogLevel:     v.GetString(keyLogLevel),
	})
	if err != nil {
		return nil, usageError("%v", err)
	}
	return cfg, nil
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
