// Command scheme is the interactive driver for the evaluator: a thin
// line-buffered front end that decides when a top-level expression is
// complete and feeds the resulting source string to a Session, printing
// the result. It carries no evaluator semantics of its own.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/PaliukhA/Scheme-interpreter/scheme"
)

// config holds the driver's tunables, loadable from a TOML file and
// overridable by flags.
type config struct {
	Mode       string `toml:"mode"`
	Prompt     string `toml:"prompt"`
	DoPrompt   bool   `toml:"doprompt"`
	ConfigFile string `toml:"-"`
	FilePath   string `toml:"file"`
}

func defaultConfig() config {
	return config{
		Mode:     "monocode",
		Prompt:   "> ",
		DoPrompt: true,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

func main() {
	cfg := defaultConfig()

	configPath := flag.String("config", "", "path to a TOML config file")
	mode := flag.String("mode", "", "driver mode: monocode, splitcode, or file")
	prompt := flag.String("prompt", "", "interactive prompt")
	doPrompt := flag.Bool("doprompt", true, "show the interactive prompt")
	filePath := flag.String("file", "", "source file to read in file mode")
	verbose := flag.BoolP("verbose", "v", false, "enable debug logging")
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *prompt != "" {
		cfg.Prompt = *prompt
	}
	if flag.CommandLine.Changed("doprompt") {
		cfg.DoPrompt = *doPrompt
	}
	if *filePath != "" {
		cfg.FilePath = *filePath
	}

	session := scheme.NewSession(log)
	log.WithField("session", session.ID()).WithField("mode", cfg.Mode).Info("session started")

	var err error
	switch cfg.Mode {
	case "monocode":
		err = runMonocode(session, cfg, log)
	case "splitcode":
		err = runSplitcode(session, os.Stdin, cfg, log)
	case "file":
		err = runFileMode(session, cfg, log)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q (want monocode, splitcode, or file)\n", cfg.Mode)
		os.Exit(1)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runMonocode treats each input line as one full expression.
func runMonocode(session *scheme.Session, cfg config, log *logrus.Logger) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptText(cfg),
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		out, err := session.Build(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			log.WithError(err).Debug("build failed")
			continue
		}
		fmt.Println(out)
	}
}

// runSplitcode concatenates input lines until parenthesis balance
// returns to zero and the buffer holds at least one character that is
// neither an apostrophe nor whitespace, then builds the accumulated
// source.
func runSplitcode(session *scheme.Session, r io.Reader, cfg config, log *logrus.Logger) error {
	scanner := bufio.NewScanner(r)
	var buf strings.Builder
	balance := 0
	hasContent := false
	for {
		if cfg.DoPrompt && buf.Len() == 0 {
			fmt.Print(promptText(cfg))
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		buf.WriteString(line)
		buf.WriteByte('\n')
		for _, r := range line {
			switch r {
			case '(':
				balance++
				hasContent = true
			case ')':
				balance--
				hasContent = true
			default:
				if r != '\'' && !isSpaceByte(r) {
					hasContent = true
				}
			}
		}
		if balance == 0 && hasContent {
			out, err := session.Build(buf.String())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				log.WithError(err).Debug("build failed")
			} else {
				fmt.Println(out)
			}
			buf.Reset()
			hasContent = false
		}
	}
}

func isSpaceByte(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// runFileMode behaves like splitcode but reads from the configured
// file instead of stdin.
func runFileMode(session *scheme.Session, cfg config, log *logrus.Logger) error {
	if cfg.FilePath == "" {
		return fmt.Errorf("file mode requires --file or a file key in the config")
	}
	f, err := os.Open(cfg.FilePath)
	if err != nil {
		return err
	}
	defer f.Close()
	quiet := cfg
	quiet.DoPrompt = false
	return runSplitcode(session, f, quiet, log)
}

func promptText(cfg config) string {
	if !cfg.DoPrompt {
		return ""
	}
	return cfg.Prompt
}
