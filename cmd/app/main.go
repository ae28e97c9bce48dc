package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/akyairhashvil/unitconv/internal/catalog"
	"github.com/akyairhashvil/unitconv/internal/config"
	"github.com/akyairhashvil/unitconv/internal/models"
	"github.com/akyairhashvil/unitconv/internal/tui"
	"github.com/akyairhashvil/unitconv/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func main() {
	root := newRootCmd()
	root.SetArgs(normalizeArgs(os.Args[1:]))
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

var negativeNumber = regexp.MustCompile(`^-\.?[0-9]`)

// boolFlags take no value, so a negative number after them is positional.
var boolFlags = map[string]bool{"-h": true, "--help": true, "-v": true, "--version": true}

// normalizeArgs moves negative VALUE arguments behind "--" so pflag does not
// read "-5" as a shorthand flag. A negative number directly after a flag that
// takes a value stays where it is.
func normalizeArgs(args []string) []string {
	var head, tail []string
	for i, a := range args {
		if a == "--" {
			head = append(head, args[i:]...)
			break
		}
		prev := ""
		if i > 0 {
			prev = args[i-1]
		}
		flagValue := strings.HasPrefix(prev, "-") && !strings.Contains(prev, "=") &&
			!boolFlags[prev] && !negativeNumber.MatchString(prev)
		if negativeNumber.MatchString(a) && !flagValue {
			tail = append(tail, a)
			continue
		}
		head = append(head, a)
	}
	if len(tail) == 0 {
		return head
	}
	if i := indexOf(head, "--"); i >= 0 {
		return append(append(head[:i+1:i+1], tail...), head[i+1:]...)
	}
	return append(append(head, "--"), tail...)
}

func indexOf(args []string, s string) int {
	for i, a := range args {
		if a == s {
			return i
		}
	}
	return -1
}

// app carries state shared by all commands once flags are parsed.
type app struct {
	v          *viper.Viper
	configPath string
	settings   config.Settings
	catalog    *catalog.Catalog
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Convert values between units of length, time, temperature and more",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       tui.AppVersion,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runInteractive()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultConfigPath()+")")
	flags.String("theme", config.DefaultTheme, "color theme")
	flags.String("category", string(config.DefaultCategory), "measurement category")
	flags.String("categories-file", "", "YAML file with extra categories")
	flags.String("log-file", "", "write logs to this file")

	root.AddCommand(newConvertCmd(a), newListCmd(a), newTableCmd(a))
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	bindings := map[string]string{
		config.KeyTheme:          "theme",
		config.KeyCategory:       "category",
		config.KeyCategoriesFile: "categories-file",
		config.KeyLogFile:        "log-file",
	}
	for key, name := range bindings {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	s, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	if !tui.HasTheme(s.Theme) {
		return fmt.Errorf("unknown theme %q (available: %v)", s.Theme, tui.ThemeNames())
	}

	cat := catalog.Default()
	if s.CategoriesFile != "" {
		extra, err := catalog.LoadFile(s.CategoriesFile)
		if err != nil {
			return err
		}
		if cat, err = cat.With(extra...); err != nil {
			return err
		}
	}
	if !cat.Has(s.Category) {
		return fmt.Errorf("%w: %q", catalog.ErrUnknownCategory, string(s.Category))
	}
	a.settings = s
	a.catalog = cat
	return nil
}

func (a *app) runInteractive() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("interactive mode needs a terminal; see 'unitconv convert --help'")
	}
	if a.settings.LogFile != "" {
		f, err := tea.LogToFile(a.settings.LogFile, config.AppName)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		util.DiscardLogs()
	}

	model, err := tui.NewConverterModel(a.catalog, tui.Options{
		Category: a.settings.Category,
		Theme:    a.settings.Theme,
	})
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// system returns the unit system for name, or the configured category.
func (a *app) system(name string) (models.UnitSystem, error) {
	c := a.settings.Category
	if name != "" {
		c = models.ParseCategory(name)
	}
	return a.catalog.System(c)
}
