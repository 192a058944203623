package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/quillshell/quill/internal/core"
	"github.com/quillshell/quill/internal/repl/completion"
	"github.com/quillshell/quill/internal/repl/config"
	"github.com/quillshell/quill/internal/repl/registry"
)

var BUILD_VERSION = "dev"

var line = flag.String("line", "", "the input line to complete")
var pos = flag.Int("pos", -1, "cursor position; defaults to the end of the line")
var configFile = flag.String("config", "", "path to the config file")

var helpFlag = flag.Bool("h", false, "display help information")
var versionFlag = flag.Bool("ver", false, "display build version")

const helpText = `quill-complete - completion engine debug host for the quill shell

USAGE:
  quill-complete -line "cd /usr/lo"            Complete at the end of the line
  quill-complete -line "ls --al" -pos 7        Complete at an explicit cursor position

Prints the replacement start offset followed by one suggestion per
line (replacement text, then display text).

OPTIONS:
`

var dimStyle = lipgloss.NewStyle().Faint(true)

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(BUILD_VERSION)
		return
	}

	if *helpFlag || *line == "" {
		fmt.Print(helpText)
		flag.PrintDefaults()
		return
	}

	logger, err := initializeLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // Flush any buffered log entries

	path := *configFile
	if path == "" {
		path = core.ConfigFile()
	}
	store := config.Load(path)

	pwd, err := os.Getwd()
	if err != nil {
		pwd = core.HomeDir()
	}

	cursor := *pos
	if cursor < 0 || cursor > len(*line) {
		cursor = len(*line)
	}

	completer := completion.NewCompleter(store, logger)
	start, suggestions := completer.Complete(*line, cursor, completion.Context{
		Pwd:      pwd,
		Registry: registry.NewStaticRegistry(registry.Builtins()...),
	})

	printResult(start, suggestions)
}

func initializeLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(os.Getenv("QUILL_LOG_LEVEL"))
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = level
	loggerConfig.OutputPaths = []string{core.LogFile()}
	loggerConfig.ErrorOutputPaths = []string{core.LogFile()}
	return loggerConfig.Build()
}

func printResult(start int, suggestions []completion.Suggestion) {
	styled := term.IsTerminal(int(os.Stdout.Fd()))

	fmt.Println(start)
	for _, s := range suggestions {
		if styled && s.Display != s.Replacement {
			fmt.Printf("%s\t%s\n", s.Replacement, dimStyle.Render(s.Display))
		} else {
			fmt.Printf("%s\t%s\n", s.Replacement, s.Display)
		}
	}
}
