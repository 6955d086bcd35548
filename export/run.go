package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"mapsheet/common"
	"mapsheet/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("export")

	req := Request{ProductDir: cmd.String("products")}

	if req.Document = cmd.Args().Get(0); len(req.Document) == 0 {
		return errors.New("no map document has been specified")
	}
	if req.Document, err = filepath.Abs(req.Document); err != nil {
		return err
	}

	if req.Destination = cmd.Args().Get(1); len(req.Destination) == 0 {
		if req.Destination, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if req.Destination, err = filepath.Abs(req.Destination); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	req.Format = env.Cfg.Export.Format
	if cmd.IsSet("to") {
		if req.Format, err = common.ParseExportFmtName(cmd.String("to")); err != nil {
			return fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
	}

	parser := env.Parser()

	size := env.Cfg.Layout.PageSize
	if cmd.IsSet("size") {
		size = cmd.String("size")
	}
	if req.Page, err = parser.PageSize(size); err != nil {
		return fmt.Errorf("unable to use page size: %w", err)
	}

	margins := env.Cfg.Layout.Margins
	if cmd.IsSet("margins") {
		margins = cmd.String("margins")
	}
	if req.Margins, err = parser.Margins(margins); err != nil {
		return fmt.Errorf("unable to use margins: %w", err)
	}

	for _, spec := range cmd.StringSlice("frame") {
		frame, err := ParseFrame(spec)
		if err != nil {
			return err
		}
		req.Frames = append(req.Frames, frame)
	}

	var backend Backend = TicketWriter{Log: log}
	if env.Cfg.Export.Proof || cmd.Bool("proof") {
		backend = Backends{backend, ProofWriter{Conv: parser.Converter(), Log: log}}
	}
	if path := env.Cfg.Export.Journal; len(path) > 0 {
		var journal *Journal
		if journal, err = OpenJournal(path, log); err != nil {
			return err
		}
		defer func() {
			err = multierr.Append(err, journal.Close())
		}()
		backend = journal.Wrap(backend)
	}

	d := NewDispatcher(&env.Cfg.Export, parser.Converter(), backend, env.Log)
	name, err := d.Run(ctx, req)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.Root().Writer, name)
	return err
}

// RunJobs lists recent jobs from the journal.
func RunJobs(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("jobs")

	path := env.Cfg.Export.Journal
	if len(path) == 0 {
		return errors.New("export journal is not configured")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("unable to access export journal: %w", err)
	}

	journal, err := OpenJournal(path, log)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, journal.Close())
	}()

	limit := int(cmd.Int("limit"))
	if limit <= 0 {
		limit = -1
	}
	entries, err := journal.Recent(limit)
	if err != nil {
		return err
	}
	log.Debug("Journal read", zap.String("journal", path), zap.Int("entries", len(entries)))

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("unable to marshal journal entries: %w", err)
	}
	_, err = cmd.Root().Writer.Write(data)
	return err
}
