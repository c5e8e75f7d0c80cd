package main

import (
	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"github.com/wrenhold/rofigo/src/config"
	"github.com/wrenhold/rofigo/src/rofi"
)

// CLI represents the main CLI structure
type CLI struct {
	ConfigFile string `help:"Extra configuration file, applied over the user and project configs" type:"path"`
	LogLevel   string `help:"Log level (debug, info, warn, error)"`

	// Layout overrides applied over the configured defaults.
	Lines      *int     `help:"Maximum number of rows to show before scrolling"`
	FixedLines *int     `help:"Keep a fixed number of rows visible"`
	Width      *float64 `help:"Window width (percent, pixels, or negative character estimate)"`
	Fullscreen *bool    `help:"Use the full screen"`
	Location   *int     `help:"Window position on screen (0-8, 0 is centre)"`

	Select   SelectCmd   `cmd:"" help:"Pick one of several choices"`
	Input    InputCmd    `cmd:"" help:"Prompt for a piece of text"`
	Integer  IntegerCmd  `cmd:"" help:"Prompt for an integer"`
	Float    FloatCmd    `cmd:"" help:"Prompt for a floating point number"`
	Decimal  DecimalCmd  `cmd:"" help:"Prompt for a decimal number"`
	Date     DateCmd     `cmd:"" help:"Prompt for a date"`
	Time     TimeCmd     `cmd:"" help:"Prompt for a time of day"`
	Datetime DatetimeCmd `cmd:"" help:"Prompt for a combined date and time"`
	Message  MessageCmd  `cmd:"" help:"Show a message window"`
	Error    ErrorCmd    `cmd:"" help:"Show an error window"`
	Status   StatusCmd   `cmd:"" help:"Show a status window for a while"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rofigo"),
		kong.Description("Simple GUIs from the command line using rofi"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	handleExit(ctx.Run(&cli))
}

// invoker builds the Rofi instance from the merged configuration and
// the command-line layout overrides.
func (cli *CLI) invoker() (*rofi.Rofi, error) {
	paths := config.DefaultPaths()
	if cli.ConfigFile != "" {
		paths = append(paths, cli.ConfigFile)
	}

	cfg, err := config.NewLoader(afero.NewOsFs(), paths...).Load()
	if err != nil {
		return nil, err
	}

	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.Lines != nil {
		cfg.Layout.Lines = cli.Lines
	}
	if cli.FixedLines != nil {
		cfg.Layout.FixedLines = cli.FixedLines
	}
	if cli.Width != nil {
		cfg.Layout.Width = cli.Width
	}
	if cli.Fullscreen != nil {
		cfg.Layout.Fullscreen = cli.Fullscreen
	}
	if cli.Location != nil {
		cfg.Layout.Location = cli.Location
	}

	return rofi.New(cfg.RofiConfig(createCLILogger(cfg.LogLevel))), nil
}
