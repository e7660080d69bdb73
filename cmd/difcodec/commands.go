package main

import (
	"bytes"
	"fmt"

	"github.com/urfave/cli/v2"
	"sutext.github.io/difio/coder"
	"sutext.github.io/difio/dif"
	"sutext.github.io/difio/xerr"
	"sutext.github.io/difio/xlog"
)

const version = "0.1.0"

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a YAML config file",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "override the configured log level (debug, info, warn, error)",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "log as JSON",
		},
	}
}

// setup loads the config, applies flag overrides and installs the logger.
func setup(c *cli.Context) (*config, []coder.Option, error) {
	cfg, err := readConfig(c.String("config"))
	if err != nil {
		return nil, nil, cli.Exit(err, 1)
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.Bool("json") {
		cfg.LogFormat = "json"
	}
	if err := cfg.validate(); err != nil {
		return nil, nil, cli.Exit(fmt.Errorf("%w: %w", xerr.InvalidConfig, err), 1)
	}
	logger := cfg.Logger()
	xlog.SetDefault(logger)
	return cfg, cfg.CoderOptions(logger), nil
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Decode a path follower file and log its contents",
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			path, err := fileArg(c)
			if err != nil {
				return err
			}
			_, opts, err := setup(c)
			if err != nil {
				return err
			}
			pf, err := dif.LoadPathFollower(path, opts...)
			if err != nil {
				xlog.Error("inspect failed", xlog.File(path), xlog.Err(err))
				return cli.Exit(err, 1)
			}
			xlog.Info("path follower",
				xlog.File(path),
				xlog.Str("name", pf.Name),
				xlog.Str("datablock", pf.Datablock),
				xlog.Int("interiorResIndex", int(pf.InteriorResIndex)),
				xlog.Int("properties", len(pf.Properties)),
				xlog.Int("triggers", len(pf.TriggerIDs)),
				xlog.Count(len(pf.WayPoints)),
				xlog.Uint64("totalMS", uint64(pf.TotalMS)),
				xlog.Uint64("wayPointMS", pf.Duration()),
			)
			for i, w := range pf.WayPoints {
				xlog.Debug("way point",
					xlog.Int("index", i),
					xlog.Any("position", w.Position),
					xlog.Any("rotation", w.Rotation),
					xlog.Uint64("msToNext", uint64(w.MSToNext)),
				)
			}
			return nil
		},
	}
}

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Decode a path follower file, re-encode it and compare the bytes",
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			path, err := fileArg(c)
			if err != nil {
				return err
			}
			_, opts, err := setup(c)
			if err != nil {
				return err
			}
			if err := verify(path, opts...); err != nil {
				xlog.Error("verify failed", xlog.File(path), xlog.Err(err))
				return cli.Exit(err, 1)
			}
			xlog.Info("verify ok", xlog.File(path))
			return nil
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprintln(c.App.Writer, version)
			return err
		},
	}
}

func verify(path string, opts ...coder.Option) error {
	data, err := dif.ReadFile(path)
	if err != nil {
		return err
	}
	pf := &dif.PathFollower{}
	if err := coder.Unmarshal(data, pf, opts...); err != nil {
		return fmt.Errorf("%w: %s: %w", xerr.RecordLoadFailed, path, err)
	}
	out, err := coder.Marshal(pf, opts...)
	if err != nil {
		return err
	}
	if len(out) > len(data) || !bytes.Equal(data[:len(out)], out) {
		return fmt.Errorf("%w: %s", xerr.RecordMismatch, path)
	}
	return nil
}

func fileArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", cli.Exit("expected exactly one FILE argument", 2)
	}
	return c.Args().First(), nil
}
