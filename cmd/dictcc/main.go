package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"dictcc-go/internal/application/usecases"
	"dictcc-go/internal/domain/dictionary"
	"dictcc-go/internal/infrastructure/filesystem"
	"dictcc-go/internal/infrastructure/persistence"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] [<database>] <word>...\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "The database argument may be omitted when DICTCC_DATABASE is set.\n")
	fmt.Fprintf(os.Stderr, "All words are looked up as a single phrase.\n\nOptions:\n")
	fmt.Fprint(os.Stderr, pflag.CommandLine.FlagUsages())
}

func main() {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	reverse := pflag.BoolP("reverse", "r", false,
		"perform reverse lookup, i.e., map from language 2 to language 1")
	patternsFile := pflag.String("patterns", "",
		"JSON file overriding the built-in pattern suffix list")
	debug := pflag.Bool("debug", false, "enable debug logging")
	pflag.Usage = usage
	pflag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	dbPath := os.Getenv("DICTCC_DATABASE")
	args := pflag.Args()
	if dbPath == "" {
		if len(args) < 2 {
			usage()
			os.Exit(1)
		}
		dbPath, args = args[0], args[1:]
	} else if len(args) < 1 {
		usage()
		os.Exit(1)
	}

	// All remaining arguments form one search phrase, joined by single
	// spaces.
	term := strings.Join(args, " ")

	direction := dictionary.Lang1ToLang2
	if *reverse {
		direction = dictionary.Lang2ToLang1
	}

	var suffixes []string
	if *patternsFile != "" {
		loaded, err := filesystem.NewSuffixLoader().LoadFromFile(*patternsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load pattern suffixes")
		}
		suffixes = loaded
	}

	translator := usecases.NewTranslationUseCase(
		persistence.NewOpener(dictionary.DefaultSchema()),
		dictionary.NewGenerator(suffixes),
	)

	consumer := func(t dictionary.Translation) error {
		_, err := fmt.Printf("%s (%s): %s\n", t.Source, t.Category, t.Target)
		return err
	}

	if err := translator.Translate(context.Background(), dbPath, term, direction, consumer); err != nil {
		log.Fatal().Err(err).Msg("lookup failed")
	}
}
