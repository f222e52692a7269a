package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/shivanshs9/wordcheck/set"
	"github.com/shivanshs9/wordcheck/wordcheck"
	"github.com/sirupsen/logrus"
)

var mainLog = logrus.WithField("module", "main")

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [-config file.yaml] <wordlist> [textfile]\n", fs.Name())
		fs.PrintDefaults()
	}
}

// stats logs the shape of the loaded word set
func stats(words set.Set[string]) logrus.Fields {
	fields := logrus.Fields{"size": words.Size()}

	switch s := words.(type) {
	case *set.BSTSet[string]:
		fields["height"] = s.Height()
	case *set.AVLSet[string]:
		fields["height"] = s.Height()
	case *set.HashSet[string]:
		fields["capacity"] = s.Capacity()
		fields["load_factor"] = fmt.Sprintf("%.2f", s.LoadFactor())
	case *set.SkipListSet[string]:
		fields["levels"] = s.Levels()
	}

	return fields
}

func run(ctx context.Context, cfg Config, wordList string, text io.Reader, out io.Writer) (Report, error) {
	opts, err := cfg.parse()
	if err != nil {
		return Report{}, errors.Wrap(err, "invalid config")
	}

	logrus.SetLevel(opts.logLevel)

	words, err := set.NewStringSet(opts.kind)
	if err != nil {
		return Report{}, err
	}

	if _, err := LoadWordFile(wordList, words, opts.maxSize); err != nil {
		return Report{}, err
	}
	mainLog.WithField("backend", opts.kind).WithFields(stats(words)).Info("Word set ready")

	checker := wordcheck.New(words, wordcheck.WithSuggestionCache(cfg.SuggestionCache))
	return CheckText(ctx, text, checker, out)
}

// runCLI runs the command line with args (program name excluded) and
// returns the process exit code. Deferred cleanup, including writing a
// profile, has run by the time it returns.
func runCLI(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) int {
	var cfgPath string

	fs := flag.NewFlagSet("wordcheck", flag.ContinueOnError)
	fs.StringVar(&cfgPath, "config", "", "path to config.yaml")
	fs.Usage = usage(fs)

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return 2
	}

	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		mainLog.Error(err)
		return 1
	}

	profileOpts := []func(*profile.Profile){profile.Quiet, profile.NoShutdownHook}
	if cfg.ProfilePath != "" {
		profileOpts = append(profileOpts, profile.ProfilePath(cfg.ProfilePath))
	}

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(append(profileOpts, profile.CPUProfile)...).Stop()
	case "mem":
		defer profile.Start(append(profileOpts, profile.MemProfile)...).Stop()
	}

	text := stdin
	if fs.NArg() == 2 {
		f, err := os.Open(fs.Arg(1))
		if err != nil {
			mainLog.Error(errors.Wrap(err, "open text"))
			return 1
		}
		defer f.Close()
		text = f
	}

	report, err := run(ctx, cfg, fs.Arg(0), text, stdout)
	if err != nil {
		mainLog.Error(err)
		return 1
	}

	mainLog.WithFields(logrus.Fields{
		"checked":    report.Checked,
		"misspelled": report.Misspelled,
		"distinct":   report.Distinct,
	}).Info("Done")
	return 0
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := runCLI(ctx, os.Args[1:], os.Stdin, os.Stdout)
	cancel()
	os.Exit(code)
}
