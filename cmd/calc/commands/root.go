package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Dan9191/calc-service/internal/config"
	"github.com/Dan9191/calc-service/internal/repository"
	"github.com/Dan9191/calc-service/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// localDevice owns everything the CLI stores
const localDevice = "local"

var (
	home    string
	jsonOut bool
	verbose bool

	logger *logrus.Logger
	svc    *service.Service
	store  repository.KVStore
	now    = time.Now
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "calc",
		Short:         "Everyday calculators on the command line",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			store, svc = nil, nil
			logger = logrus.New()
			logger.SetOutput(cmd.ErrOrStderr())
			logger.SetLevel(logrus.WarnLevel)
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if store != nil {
				err := store.Close()
				store, svc = nil, nil
				return err
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir for notes and favorites (default ~/.calc)")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "print results as JSON")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		simpleCmd(),
		emiCmd(), interestCmd(), investmentCmd(), fuelCmd(),
		ageCmd(), periodCmd(), pregnancyCmd(), zonesCmd(),
		gpaCmd(), hexCmd(), clockCmd(),
		calculatorsCmd(), notesCmd(), favoritesCmd(),
	)
	return root
}

// openService opens the local file store on first use
func openService() (*service.Service, error) {
	if svc != nil {
		return svc, nil
	}
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		home = filepath.Join(dir, ".calc")
	}
	if err := os.MkdirAll(home, 0o700); err != nil {
		return nil, err
	}
	fs, err := repository.NewFileStore(filepath.Join(home, "store.json"))
	if err != nil {
		return nil, err
	}
	fs.SetLogger(logger)
	store = fs
	svc = service.NewService(fs, logger, &config.Config{}, nil)
	return svc, nil
}

// render prints v as JSON with --json, otherwise through text
func render(w io.Writer, v any, text func(io.Writer)) error {
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}

// notReady reports incomplete input the same way for every calculator
func notReady(w io.Writer) error {
	if jsonOut {
		return json.NewEncoder(w).Encode(map[string]bool{"ready": false})
	}
	fmt.Fprintln(w, "Enter all values to see the result.")
	return nil
}
