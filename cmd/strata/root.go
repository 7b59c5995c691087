// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"gioui.org/strata/internal/config"
	"gioui.org/strata/internal/observability"
	"gioui.org/strata/unit"
)

// defaultConfigFile is read from the working directory when --config
// is not given.
const defaultConfigFile = "strata.yaml"

// app holds the state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

// flagKeys binds global flags to configuration keys.
var flagKeys = map[string]string{
	"width":     "layout.width",
	"height":    "layout.height",
	"debug":     "layout.debug",
	"culling":   "layout.culling",
	"log-level": "logger.level",
	"log-file":  "logger.log_file",
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}
	root := &cobra.Command{
		Use:          "strata",
		Short:        "Strata lays out scene documents into render commands.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	defaults := config.NewDefaultConfig()
	f := root.PersistentFlags()
	f.StringVarP(&a.cfgFile, "config", "c", "", "config file (default ./"+defaultConfigFile+" if present)")
	f.Float32("width", defaults.Layout.Width, "layout width in pixels")
	f.Float32("height", defaults.Layout.Height, "layout height in pixels")
	f.Bool("debug", defaults.Layout.Debug, "enable the debug view")
	f.Bool("culling", defaults.Layout.Culling, "skip render commands outside the layout")
	f.String("log-level", defaults.Logger.Level, "log level (debug, info, warn, error)")
	f.String("log-file", defaults.Logger.LogFile, "also write JSON logs to this file")
	for name, key := range flagKeys {
		if err := a.v.BindPFlag(key, f.Lookup(name)); err != nil {
			panic(fmt.Errorf("binding flag %s: %w", name, err))
		}
	}

	root.AddCommand(newRenderCmd(a), newMeasureCmd(a))
	return root
}

// setup loads the configuration and sets up logging.
func (a *app) setup() error {
	if a.cfgFile == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			a.cfgFile = defaultConfigFile
		}
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	observability.InitializeLogger(cfg.Logger)
	observability.GetLogger().Debug("configuration loaded",
		zap.String("file", a.cfgFile),
		zap.Float32("width", cfg.Layout.Width),
		zap.Float32("height", cfg.Layout.Height),
	)
	return nil
}

// metric converts scene units with the configured scale.
func (a *app) metric() unit.Metric {
	s := a.cfg.Layout.Scale
	return unit.Metric{PxPerDp: s, PxPerSp: s}
}
