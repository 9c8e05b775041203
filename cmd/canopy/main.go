package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kzmw/canopy"
)

var (
	// Traversal
	maxDepth       int
	showAll        bool
	showHidden     bool
	skipDirs       []string
	skipFiles      []string
	skipProfile    string
	useGitignore   bool
	followSymlinks bool

	// Output
	asciiFormat     bool
	outputFile      string
	copyToClipboard bool
	pdfOutput       string

	// Token Counting
	countTokens    bool
	tokenizerType  string
	tokenizerModel string
	tokenizerFile  string

	// Interactive Mode
	interactiveMode bool
)

// version is the application version, set via ldflags.
var version string = "dev"

var rootCmd = &cobra.Command{
	Use:   "canopy [directory]",
	Short: "Canopy renders a directory hierarchy as an indented text tree.",
	Long: `Canopy prints a directory's structure as a text tree, skipping common
noise like .git, node_modules and OS artifacts. The output is meant for
humans and for pasting a project's layout into an LLM prompt. The argument
may also be a Git URL, which is cloned to a temporary directory first.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if interactiveMode {
			picked, err := pickDirectory()
			if err != nil {
				return fmt.Errorf("interactive mode: %w", err)
			}
			if picked == "" {
				// User aborted selection.
				return nil
			}
			root = picked
		} else if len(args) > 0 {
			root = args[0]
		}

		if isGitURL(root) {
			tempDir, err := cloneGitRepo(root)
			if err != nil {
				return fmt.Errorf("cloning %s: %w", root, err)
			}
			defer os.RemoveAll(tempDir)
			root = tempDir
		}

		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		// Core PDF fonts are Latin-1 only, so PDF output always uses the
		// ASCII glyph set.
		if pdfOutput != "" {
			cfg.Format = canopy.FormatASCII
		}

		tree, err := canopy.Generate(root, cfg)
		if err != nil {
			return err
		}

		if countTokens {
			tk, err := getTokenizer()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: token counting disabled: %v\n", err)
			} else {
				defer tk.Close()
				fmt.Fprintf(os.Stderr, "Tokens: %d\n", tk.CountTokens(tree))
			}
		}

		switch {
		case pdfOutput != "":
			if err := writePDF(tree, pdfOutput); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Tree saved to %s\n", pdfOutput)
		case outputFile != "":
			if err := os.WriteFile(outputFile, []byte(tree), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", outputFile, err)
			}
			fmt.Fprintf(os.Stderr, "Tree saved to %s\n", outputFile)
		case copyToClipboard:
			if err := clipboard.WriteAll(tree); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: clipboard write failed: %v\n", err)
				fmt.Print(tree)
			} else {
				fmt.Fprintln(os.Stderr, "Tree copied to clipboard.")
			}
		default:
			fmt.Print(tree)
		}
		return nil
	},
}

// buildConfig assembles the traversal configuration from flags, config file
// and environment, in viper's usual precedence order.
func buildConfig() (canopy.Config, error) {
	cfg := canopy.DefaultConfig()
	cfg.MaxDepth = maxDepth
	cfg.SkipCommon = !showAll
	cfg.SkipHidden = !showHidden
	cfg.FollowSymlinks = followSymlinks
	cfg.UseGitignore = useGitignore
	if asciiFormat {
		cfg.Format = canopy.FormatASCII
	}
	for _, d := range skipDirs {
		cfg.AddSkipDir(d)
	}
	for _, f := range skipFiles {
		cfg.AddSkipFile(f)
	}
	if skipProfile != "" {
		p, err := canopy.LoadSkipProfile(skipProfile)
		if err != nil {
			return cfg, err
		}
		cfg.ApplyProfile(p)
	}
	return cfg, nil
}

func init() {
	cobra.OnInitialize(initConfig)

	// Traversal
	rootCmd.Flags().IntVarP(&maxDepth, "depth", "d", 0, "Maximum depth to display (0 for no limit)")
	viper.BindPFlag("depth", rootCmd.Flags().Lookup("depth"))
	rootCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Disable skipping of common directories/files")
	viper.BindPFlag("all", rootCmd.Flags().Lookup("all"))
	rootCmd.Flags().BoolVarP(&showHidden, "hidden", "H", false, "Show hidden files and directories")
	viper.BindPFlag("hidden", rootCmd.Flags().Lookup("hidden"))
	rootCmd.Flags().StringSliceVar(&skipDirs, "skip-dir", nil, "Additional directory names to skip (repeatable)")
	viper.BindPFlag("skip_dirs", rootCmd.Flags().Lookup("skip-dir"))
	rootCmd.Flags().StringSliceVar(&skipFiles, "skip-file", nil, "Additional file names to skip (repeatable)")
	viper.BindPFlag("skip_files", rootCmd.Flags().Lookup("skip-file"))
	rootCmd.Flags().StringVar(&skipProfile, "skip-profile", "", "YAML file with extra skip names")
	viper.BindPFlag("skip_profile", rootCmd.Flags().Lookup("skip-profile"))
	rootCmd.Flags().BoolVar(&useGitignore, "gitignore", false, "Also exclude entries matched by the root .gitignore")
	viper.BindPFlag("gitignore", rootCmd.Flags().Lookup("gitignore"))
	rootCmd.Flags().BoolVar(&followSymlinks, "follow-symlinks", false, "Recurse into symlinks that resolve to directories")
	viper.BindPFlag("follow_symlinks", rootCmd.Flags().Lookup("follow-symlinks"))

	// Output
	rootCmd.Flags().BoolVar(&asciiFormat, "ascii", false, "Use plain ASCII branch characters")
	viper.BindPFlag("ascii", rootCmd.Flags().Lookup("ascii"))
	rootCmd.Flags().StringVarP(&outputFile, "file", "f", "", "Save output to specified file")
	viper.BindPFlag("file", rootCmd.Flags().Lookup("file"))
	rootCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy output to clipboard")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))
	rootCmd.Flags().StringVar(&pdfOutput, "pdf", "", "Save output as PDF")
	viper.BindPFlag("pdf", rootCmd.Flags().Lookup("pdf"))

	// Token Counting
	rootCmd.Flags().BoolVar(&countTokens, "tokens", false, "Report the token count of the rendered tree")
	viper.BindPFlag("tokens", rootCmd.Flags().Lookup("tokens"))
	rootCmd.Flags().StringVar(&tokenizerType, "tokenizer", "tiktoken", "Tokenizer to use: tiktoken or huggingface")
	viper.BindPFlag("tokenizer", rootCmd.Flags().Lookup("tokenizer"))
	rootCmd.Flags().StringVar(&tokenizerModel, "model", "", "Model name for tokenizer (e.g., gpt-4o, gpt2)")
	viper.BindPFlag("model", rootCmd.Flags().Lookup("model"))
	rootCmd.Flags().StringVar(&tokenizerFile, "tokenizer-file", "", "Path to local tokenizer file")
	viper.BindPFlag("tokenizer_file", rootCmd.Flags().Lookup("tokenizer-file"))

	// Interactive Mode
	rootCmd.Flags().BoolVar(&interactiveMode, "interactive", false, "Pick the root directory with a fuzzy finder")
	viper.BindPFlag("interactive", rootCmd.Flags().Lookup("interactive"))

	viper.SetDefault("depth", 0)
	viper.SetDefault("tokenizer", "tiktoken")
	viper.SetDefault("ascii", false)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	viper.AddConfigPath(filepath.Join(home, ".config", "canopy"))
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CANOPY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
