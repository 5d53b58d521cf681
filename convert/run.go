package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"h2jsx/dom"
	"h2jsx/jsx"
	"h2jsx/markup"
	"h2jsx/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	if env.Cfg == nil {
		return errors.New("configuration is not available")
	}

	settings := NewSettings(&env.Cfg.Conversion)
	if err := settings.Apply(cmd, src); err != nil {
		return fmt.Errorf("bad command line: %w", err)
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.String("input", settings.Input))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, settings, log)
}

func process(ctx context.Context, src, dst string, settings Settings, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	data, err := readSource(ctx, src)
	if err != nil {
		return err
	}
	if env.Rpt != nil {
		name := "source/" + filepath.Base(src)
		if err := env.Rpt.StoreCopy(name, src); err != nil {
			// source is not a regular file, it came from archive
			env.Rpt.StoreData(name, data)
		}
	}

	parser, err := markup.New(settings.Input, settings.Markup, log)
	if err != nil {
		return err
	}
	nodes, err := parser.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("unable to parse '%s': %w", src, err)
	}
	if env.Rpt != nil {
		env.Rpt.StoreData("tree.txt", []byte(dom.Dump(nodes)))
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	c, err := jsx.New(settings.Options, jsx.WithLogger(log))
	if err != nil {
		return fmt.Errorf("unable to prepare converter: %w", err)
	}
	out, err := c.Convert(nodes)
	if err != nil {
		return fmt.Errorf("unable to convert '%s': %w", src, err)
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	env.Rpt.StoreData("result.jsx", []byte(out))

	return write(env.Stdout, out, src, dst, log)
}

func write(stdout io.Writer, out, src, dst string, log *zap.Logger) error {
	if len(dst) == 0 {
		if _, err := io.WriteString(stdout, out); err != nil {
			return fmt.Errorf("unable to write result: %w", err)
		}
		return nil
	}

	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		dst = filepath.Join(dst, OutputName(src))
	} else if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create destination directory: %w", err)
	}
	if err := os.WriteFile(dst, []byte(out), 0644); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	log.Debug("Result written", zap.String("file", dst))
	return nil
}
