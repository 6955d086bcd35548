// Package layout implements commands reporting page geometry.
package layout

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"mapsheet/common"
	"mapsheet/measure"
	"mapsheet/state"
)

// Sheet is page geometry as reported by page command. Margins are in
// requested output units, content area is in page units.
type Sheet struct {
	Page    measure.PageSize `yaml:"page"`
	Margins measure.Margins  `yaml:"margins"`
	Content measure.Size     `yaml:"content"`
}

func outputUnits(cmd *cli.Command, env *state.LocalEnv) (common.Unit, error) {
	if !cmd.IsSet("units") {
		return env.Cfg.Layout.OutputUnits, nil
	}
	u, err := measure.ParseUnit(cmd.String("units"))
	if err != nil {
		return 0, err
	}
	if !u.IsLength() {
		return 0, fmt.Errorf("%w: output units must be a length, not %s", measure.ErrInvalidArgument, u)
	}
	return u, nil
}

// Run reports page size, margins and content area.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("page")

	if cmd.Args().Len() > 0 {
		log.Warn("Malformed command line, unexpected arguments", zap.Strings("ignoring", cmd.Args().Slice()))
	}

	units, err := outputUnits(cmd, env)
	if err != nil {
		return err
	}

	size, margins := env.Cfg.Layout.PageSize, env.Cfg.Layout.Margins
	if cmd.IsSet("size") {
		size = cmd.String("size")
	}
	if cmd.IsSet("margins") {
		margins = cmd.String("margins")
	}

	parser := env.Parser()

	var sheet Sheet
	if sheet.Page, err = parser.PageSize(size); err != nil {
		return fmt.Errorf("unable to use page size: %w", err)
	}
	// content area needs margins as specified, percent included
	native, err := parser.Margins(margins)
	if err != nil {
		return fmt.Errorf("unable to use margins: %w", err)
	}
	if sheet.Margins, err = parser.MarginsIn(margins, units); err != nil {
		return fmt.Errorf("unable to use margins: %w", err)
	}
	sheet.Content = parser.Converter().ContentArea(sheet.Page, native)

	log.Debug("Page geometry", zap.Stringer("page", sheet.Page), zap.Stringer("margins", sheet.Margins),
		zap.Float64("width", sheet.Content.Width), zap.Float64("height", sheet.Content.Height))

	if err := env.Rpt.StoreYAML("page.yaml", sheet); err != nil {
		log.Warn("Unable to store page geometry in report", zap.Error(err))
	}

	data, err := yaml.Marshal(sheet)
	if err != nil {
		return fmt.Errorf("unable to marshal page geometry: %w", err)
	}
	_, err = cmd.Root().Writer.Write(data)
	return err
}

// RunConvert converts single value between length units.
func RunConvert(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	if cmd.Args().Len() != 3 {
		return errors.New("VALUE, FROM and TO must be specified")
	}
	args := cmd.Args().Slice()

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("%w: %w: value %q: %w", measure.ErrInvalidArgument, measure.ErrMalformedNumber, args[0], err)
	}
	var units [2]common.Unit
	for i, token := range args[1:] {
		if units[i], err = measure.ParseUnit(token); err != nil {
			return err
		}
		if !units[i].IsLength() {
			return fmt.Errorf("%w: percent is relative and cannot be converted", measure.ErrInvalidArgument)
		}
	}

	result := env.Parser().Converter().Convert(value, units[0], units[1])
	log.Debug("Converted", zap.Float64("value", value), zap.Stringer("from", units[0]),
		zap.Stringer("to", units[1]), zap.Float64("result", result))

	_, err = fmt.Fprintln(cmd.Root().Writer, strconv.FormatFloat(result, 'f', -1, 64))
	return err
}
