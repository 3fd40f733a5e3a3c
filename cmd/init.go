package cmd

import (
	"bufio"
	"fmt"
	"os"
	"os/user"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alignhq/align/internal/ai"
	"github.com/alignhq/align/internal/config"
	"github.com/alignhq/align/internal/store"
	"github.com/alignhq/align/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up align for the first time",
	Long:  `Initialize align with your preferences. Creates config and data directories and the tracking database.`,
	RunE:  runInit,
}

func runInit(_ *cobra.Command, _ []string) error {
	return runInitWithReader(bufio.NewReader(os.Stdin))
}

func runInitWithReader(reader *bufio.Reader) error {
	fmt.Println(ui.Title.Render(ui.IconGoal + " Welcome to align!"))
	fmt.Println()
	ui.Inf("Let's get you set up. This takes about 30 seconds.")
	fmt.Println()

	cfg := &config.Config{}
	cfg.User.Name = prompt(reader, "  What should I call you?", guessName())
	fmt.Println()

	// AI coach setup
	fmt.Println(ui.Subtitle.Render("  AI Coach (optional)"))
	fmt.Println()
	fmt.Println(ui.Muted.Render("  align can analyze your week and coach you on closing the gap"))
	fmt.Println(ui.Muted.Render("  between your goals and your actions."))
	fmt.Println()

	detected := detectAIKeys()
	switch {
	case len(detected) == 1:
		for provider := range detected {
			cfg.AI.Provider = provider
		}
		ui.Ok(fmt.Sprintf("Detected a %s API key in your environment.", cfg.AI.Provider))

	case len(detected) > 1:
		providers := make([]string, 0, len(detected))
		for p := range detected {
			providers = append(providers, p)
		}
		fmt.Printf("  Which provider should the coach use? %s ",
			ui.Muted.Render(fmt.Sprintf("(%s)", strings.Join(providers, ", "))))
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(strings.ToLower(input))
		if detected[input] {
			cfg.AI.Provider = input
		} else {
			cfg.AI.Provider = providers[0]
		}

	default:
		fmt.Println(ui.Muted.Render("  No API key detected in environment."))
		fmt.Printf("  Set one up now? %s ", ui.Muted.Render("(y/N)"))
		input, _ := reader.ReadString('\n')
		if in := strings.TrimSpace(strings.ToLower(input)); in == "y" || in == "yes" {
			if err := setupAIKey(reader, cfg); err != nil {
				ui.Warn(err.Error())
			}
		} else {
			fmt.Println(ui.Muted.Render("  Skipping. You can set a key later with `align config set-key`."))
		}
	}
	fmt.Println()

	if cfg.AI.Provider == "" {
		cfg.AI.Provider = "gemini"
	}
	cfg.AI.Model = config.DefaultModel
	cfg.Coach.IncludeJournal = config.BoolPtr(true)
	cfg.Track.HistoryDays = config.DefaultHistoryDays

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	// Opening the store runs migrations and seeds the default categories.
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	db.Close()

	ui.Ok("You're all set, " + cfg.User.Name + "!")
	fmt.Println()
	fmt.Printf("  Try %s to name who you want to become.\n", ui.Accent.Render(`align goal add "Become a runner"`))
	fmt.Println()
	return nil
}

// setupAIKey walks through choosing a provider and storing its key.
func setupAIKey(reader *bufio.Reader, cfg *config.Config) error {
	providers := ai.Names()
	provider := prompt(reader, fmt.Sprintf("  Provider? (%s)", strings.Join(providers, ", ")), "gemini")

	valid := false
	for _, p := range providers {
		if p == provider {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("unknown provider %q", provider)
	}

	key, err := readSecret("  API key: ")
	if err != nil {
		return err
	}
	if key == "" {
		return fmt.Errorf("no key entered, skipping AI setup")
	}

	ks := ai.NewKeyStore()
	if err := ks.Load(); err != nil {
		return err
	}
	ks.Set(provider, key)
	if err := ks.Save(); err != nil {
		return fmt.Errorf("saving key: %w", err)
	}

	cfg.AI.Provider = provider
	ui.Ok("Key stored for " + provider + ".")
	return nil
}

// detectAIKeys returns the providers with API keys present in the
// environment.
func detectAIKeys() map[string]bool {
	found := make(map[string]bool)
	if os.Getenv(ai.EnvGeminiKey) != "" {
		found["gemini"] = true
	}
	if os.Getenv(ai.EnvClaudeKey) != "" {
		found["claude"] = true
	}
	return found
}

// readSecret reads a line without echoing it. Falls back to plain reads when
// stdin is not a terminal.
func readSecret(promptText string) (string, error) {
	fmt.Print(promptText)
	if !term.IsTerminal(int(syscall.Stdin)) {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}

	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func prompt(reader *bufio.Reader, question, fallback string) string {
	if fallback != "" {
		fmt.Printf("%s %s ", question, ui.Muted.Render(fmt.Sprintf("(%s)", fallback)))
	} else {
		fmt.Printf("%s ", question)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return fallback
	}
	return input
}

func guessName() string {
	if u, err := user.Current(); err == nil {
		if fields := strings.Fields(u.Name); len(fields) > 0 {
			return fields[0]
		}
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return ""
}
