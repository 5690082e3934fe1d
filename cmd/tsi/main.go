/*
Tsi starts an interactive TunaScene session.

It sets up a single room with a few objects in it, then reads commands from
stdin and prints what happens to stdout until the "exit" command is given or
input ends.

Usage:

	tsi [flags]

The flags are:

	-v, --version
		Give the current version of TunaScene and then exit.

	-s, --scene FILE
		Use the provided TQS file (TOML or YAML) to define the objects in the
		room. If not given, will default to the value of environment variable
		TUNASCENE_SCENE, and if that is not given, the built-in room with an
		apple and a book is used.

	-c, --commands FILE
		Read commands from the given file, one per line, instead of from
		stdin. Each command is echoed after the prompt.

	-d, --direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading command input even if launched in
		a tty with stdin and stdout.

	-w, --width COLS
		Wrap output at the given column. Defaults to TUNASCENE_WIDTH, or 80.

	--log-level LEVEL
		Write log entries of at least LEVEL to stderr. Defaults to
		TUNASCENE_LOG_LEVEL, or "warn".

	--log-format FORMAT
		Write log entries as "text" or "json". Defaults to
		TUNASCENE_LOG_FORMAT, or "text".

Environment variables may also be given in a .env file in the current working
directory.

Once a session has started, the commands are "look", "look at THING", "eat
THING", "read THING", and "exit".
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/tunascene"
	"github.com/dekarrin/tunascene/internal/config"
	"github.com/dekarrin/tunascene/internal/logging"
	"github.com/dekarrin/tunascene/internal/version"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (

	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitGameError indicates an unsuccessful program execution due to a
	// problem during the game.
	ExitGameError

	// ExitInitError indicates an unsuccessful program execution due to an issue
	// initializing the engine.
	ExitInitError
)

var (
	returnCode = ExitSuccess

	flagVersion   = pflag.BoolP("version", "v", false, "Give the current version of TunaScene and then exit.")
	flagScene     = pflag.StringP("scene", "s", "", "Use the given TQS file to define the scene.")
	flagCommands  = pflag.StringP("commands", "c", "", "Read commands from the given file instead of stdin.")
	flagDirect    = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible.")
	flagWidth     = pflag.IntP("width", "w", 0, "Wrap output at the given column.")
	flagLogLevel  = pflag.String("log-level", "", "Minimum level of log entries to write to stderr.")
	flagLogFormat = pflag.String("log-format", "", "Format of log entries; one of 'text' or 'json'.")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			// we are panicking, make sure we dont lose the panic just because
			// we checked
			panic(panicErr)
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: too many arguments\nDo -h for help.\n")
		returnCode = ExitInitError
		return
	}

	// not having a .env file is normal
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\nDo -h for help.\n", err.Error())
		returnCode = ExitInitError
		return
	}

	log, err := logging.New(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	var inputStream io.Reader = os.Stdin
	if cfg.ScriptFile != "" {
		scriptFile, err := os.Open(cfg.ScriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
		defer scriptFile.Close()
		inputStream = scriptFile
	}

	gameEng, initErr := tunascene.New(inputStream, os.Stdout, tunascene.Options{
		SceneFile:   cfg.SceneFile,
		ForceDirect: cfg.ForceDirect,
		Echo:        cfg.ScriptFile != "",
		Width:       cfg.Width,
		Log:         log,
	})
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer gameEng.Close()

	log.WithField("session", gameEng.Session().String()).Infof("starting TunaScene %s", version.Current)

	err = gameEng.RunUntilExit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGameError
		return
	}
}

// loadConfig builds the Config from the environment and then applies any
// flags that were given on top of it.
func loadConfig() (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return cfg, err
	}

	if pflag.Lookup("scene").Changed {
		cfg.SceneFile = *flagScene
	}
	if pflag.Lookup("width").Changed {
		cfg.Width = *flagWidth
	}
	if pflag.Lookup("log-level").Changed {
		cfg.LogLevel = *flagLogLevel
	}
	if pflag.Lookup("log-format").Changed {
		lf, err := config.ParseLogFormat(*flagLogFormat)
		if err != nil {
			return cfg, err
		}
		cfg.LogFormat = lf
	}
	cfg.ScriptFile = *flagCommands
	cfg.ForceDirect = *flagDirect

	cfg = cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
