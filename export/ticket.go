package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"
)

// TicketExt is appended to output file name to form job ticket name.
const TicketExt = ".job.yaml"

// TicketWriter is a back end which does not render anything, it writes job
// ticket next to the expected output so external exporter could pick it up.
type TicketWriter struct {
	Log *zap.Logger
}

func (w TicketWriter) Export(ctx context.Context, job *Job) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(job)
	if err != nil {
		return fmt.Errorf("unable to marshal job ticket: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(job.Output), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	name := job.Output + TicketExt
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("unable to create job ticket: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("unable to write job ticket: %w", err)
	}
	if w.Log != nil {
		w.Log.Debug("Job ticket written", zap.String("ticket", name))
	}
	return nil
}
