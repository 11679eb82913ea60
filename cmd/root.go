package cmd

import (
	_ "expvar"
	"fmt"
	"io/ioutil"
	"net/http"
	_ "net/http/pprof"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/letterdesk/letterdesk/pkg/config"
	"github.com/letterdesk/letterdesk/pkg/model"
)

var (
	flags = struct {
		ConfigFile string
		DataFile   string
		PprofAddr  string
		Debug      bool
	}{}

	root = &cobra.Command{
		Use:   "letterdesk",
		Short: "Letterdesk is a terminal browser for a letter registry",
		Args:  cobra.MaximumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(flags.Debug)

			if flags.PprofAddr != "" {
				go func() {
					err := http.ListenAndServe(flags.PprofAddr, nil)
					log.Error().Err(err).Str("addr", flags.PprofAddr).Msg("pprof listener stopped")
				}()
			}

			m, err := model.NewFromConfigFile(flags.ConfigFile, flags.DataFile, log)
			if err != nil {
				return err
			}

			p := tea.NewProgram(m, tea.WithAltScreen())
			return p.Start()
		},
	}
)

func newLogger(debug bool) zerolog.Logger {
	if !debug {
		return zerolog.New(ioutil.Discard)
	}
	path, err := config.RuntimeFile("debug.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to resolve debug log path: %v\n", err)
		return zerolog.New(ioutil.Discard)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to open debug log %s: %v\n", path, err)
		return zerolog.New(ioutil.Discard)
	}
	fmt.Fprintf(os.Stderr, "debug log: %s\n", path)
	return zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

func init() {
	root.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "~/.letterdesk.yaml", "configuration file")
	root.PersistentFlags().StringVarP(&flags.DataFile, "data", "d", "", "registry data file, overriding the configured one")
	root.PersistentFlags().StringVar(&flags.PprofAddr, "pprof", "", "serve pprof and expvar on this address, e.g. localhost:6060")
	root.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "write a debug log")
}

func Execute() {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
