package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/bilingo/internal"
	"codeberg.org/snonux/bilingo/internal/config"
	"codeberg.org/snonux/bilingo/internal/lang"
)

// Runner implements the commands. An empty source language means the
// language is detected from the text.
type Runner interface {
	Menu(ctx context.Context) error
	Serve(ctx context.Context) error
	Translate(ctx context.Context, text string, source lang.Lang) error
	Lookup(ctx context.Context, word string) error
	Annotate(ctx context.Context, text string, source lang.Lang) error
	Batch(ctx context.Context, file, outputDir string, archive bool) error
	ListModels(ctx context.Context) error
}

// RunnerFactory builds the Runner once flags and configuration are loaded.
type RunnerFactory func(ctx context.Context) (Runner, error)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags, newRunner RunnerFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bilingo",
		Short: "Chinese/English translator with dictionary annotations",
		Long: `bilingo translates between Simplified Chinese and English and annotates
the English side with pronunciations, definitions and example sentences.

Examples:
  bilingo                               # Interactive menu (default)
  bilingo translate 我爱学习              # Translate, language detected
  bilingo annotate --from en "I love learning"
  bilingo lookup hello                  # Dictionary lookup
  bilingo serve --addr :5000            # HTTP JSON API
  bilingo batch texts.txt --archive     # Annotate a file of texts`,
		Args:          cobra.NoArgs,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(cmd.Context())
			if err != nil {
				return err
			}
			return r.Menu(cmd.Context())
		},
	}

	setupFlags(rootCmd, flags)

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "menu",
			Short: "Start the interactive menu",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := newRunner(cmd.Context())
				if err != nil {
					return err
				}
				return r.Menu(cmd.Context())
			},
		},
		newServeCommand(flags, newRunner),
		newTextCommand("translate", "Translate a text", flags, newRunner, Runner.Translate),
		newTextCommand("annotate", "Translate a text and show dictionary examples", flags, newRunner, Runner.Annotate),
		&cobra.Command{
			Use:   "lookup WORD",
			Short: "Look up an English word in the dictionary",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := newRunner(cmd.Context())
				if err != nil {
					return err
				}
				return r.Lookup(cmd.Context(), args[0])
			},
		},
		newBatchCommand(flags, newRunner),
		&cobra.Command{
			Use:   "list-models",
			Short: "List OpenAI chat models available for the current API key",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := newRunner(cmd.Context())
				if err != nil {
					return err
				}
				return r.ListModels(cmd.Context())
			},
		},
	)

	return rootCmd
}

func newServeCommand(flags *Flags, newRunner RunnerFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(cmd.Context())
			if err != nil {
				return err
			}
			return r.Serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&flags.Addr, "addr", flags.Addr, "Listen address")
	viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	return cmd
}

func newTextCommand(name, short string, flags *Flags, newRunner RunnerFactory,
	run func(Runner, context.Context, string, lang.Lang) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " TEXT...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := ParseFrom(flags.From)
			if err != nil {
				return err
			}
			r, err := newRunner(cmd.Context())
			if err != nil {
				return err
			}
			return run(r, cmd.Context(), strings.Join(args, " "), source)
		},
	}
	cmd.Flags().StringVar(&flags.From, "from", flags.From, "Source language: zh, en or auto")
	return cmd
}

func newBatchCommand(flags *Flags, newRunner RunnerFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Annotate every line of a file",
		Long: `Annotate every line of FILE and write the results as JSON lines to
<output>/annotations.jsonl. Lines may start with "zh:" or "en:" to force the
source language; blank lines and lines starting with # are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(cmd.Context())
			if err != nil {
				return err
			}
			return r.Batch(cmd.Context(), args[0], flags.OutputDir, flags.Archive)
		},
	}
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Output directory")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive an existing output directory before the run")
	return cmd
}

// ParseFrom converts the --from value; "auto" and "" mean detection.
func ParseFrom(s string) (lang.Lang, error) {
	if s == "" || strings.EqualFold(s, "auto") {
		return "", nil
	}
	return lang.Parse(s)
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	pf := cmd.PersistentFlags()

	// Global flags
	pf.StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.bilingo.yaml)")
	pf.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")

	// Translation flags
	pf.StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: openai, gemini, mymemory")
	pf.StringVar(&flags.Fallback, "fallback", "", "Fallback translation provider")
	pf.StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model")
	pf.StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model")
	pf.StringVar(&flags.DetectMethod, "detect", flags.DetectMethod, "Language detection: cjk or whatlang")

	// Dictionary flags
	pf.StringVar(&flags.DictSource, "dict-source", flags.DictSource, "Dictionary source: builtin, file, sql")
	pf.StringVar(&flags.DictPath, "dict-path", "", "Dictionary file (YAML or JSON) for --dict-source file")

	// Bind flags to viper
	bindFlagsToViper(pf)
}

func bindFlagsToViper(pf *pflag.FlagSet) {
	viper.BindPFlag("log.level", pf.Lookup("log-level"))
	viper.BindPFlag("translation.provider", pf.Lookup("provider"))
	viper.BindPFlag("translation.fallback", pf.Lookup("fallback"))
	viper.BindPFlag("translation.openai_model", pf.Lookup("openai-model"))
	viper.BindPFlag("translation.gemini_model", pf.Lookup("gemini-model"))
	viper.BindPFlag("detect.method", pf.Lookup("detect"))
	viper.BindPFlag("dictionary.source", pf.Lookup("dict-source"))
	viper.BindPFlag("dictionary.path", pf.Lookup("dict-path"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".bilingo" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bilingo")
	}

	// Environment variables, e.g. BILINGO_TRANSLATION_PROVIDER
	viper.SetEnvPrefix("BILINGO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// LoadConfig returns the validated configuration with API keys resolved.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}
	cfg.Translation.OpenAIKey = GetOpenAIKey()
	cfg.Translation.GeminiKey = GetGeminiKey()
	return cfg, nil
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translation.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	for _, env := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}
	return viper.GetString("translation.gemini_key")
}
