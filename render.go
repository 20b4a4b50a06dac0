package main

import (
	"bytes"
	"context"
	"os"
	"os/signal"

	"github.com/df07/go-sppm/pkg/log"
	"github.com/df07/go-sppm/pkg/output"
	"github.com/df07/go-sppm/pkg/renderer"
	"github.com/df07/go-sppm/pkg/scene"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"github.com/urfave/cli"
)

// Render a scene progressively, saving an image and a checkpoint every
// checkpoint iterations.
func Render(ctx *cli.Context) error {
	setupLogging(ctx)

	config, err := configFromContext(ctx)
	if err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return errors.Wrap(err, "invalid render parameters")
	}

	runID := uuid.New().String()
	logger.Noticef("run %s", runID)
	logHost(config)

	sc, err := scene.New(ctx.String("scene"), scene.Params{
		Width:      config.Width,
		Height:     config.Height,
		LensRadius: config.LensRadius,
		Depth:      config.Depth,
	})
	if err != nil {
		return err
	}

	bg, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bucket, err := output.OpenBucket(bg, ctx.String("output"))
	if err != nil {
		return err
	}
	defer bucket.Close()

	r, err := renderer.NewProgressiveRenderer(sc, config, output.NewWriter(bucket, runID, log.New("output")), log.New("renderer"))
	if err != nil {
		return err
	}

	if key := ctx.String("resume"); key != "" {
		iter, buf, err := output.LoadCheckpoint(bg, bucket, key)
		if err != nil {
			return err
		}
		if err := r.Resume(iter, buf); err != nil {
			return err
		}
	}

	_, stats, err := r.Render(bg)
	if err != nil {
		return err
	}

	logger.Noticef("render statistics\n%s", stats.Table())
	return nil
}

// configFromContext layers the YAML file given with --config over the
// defaults, then every flag set on the command line over that.
func configFromContext(ctx *cli.Context) (renderer.Config, error) {
	config := renderer.DefaultConfig()

	if path := ctx.String("config"); path != "" {
		var err error
		if config, err = renderer.LoadConfigFile(path, config); err != nil {
			return config, err
		}
	}

	ints := map[string]*int{
		"width":           &config.Width,
		"height":          &config.Height,
		"iter":            &config.Iter,
		"photon_per_iter": &config.PhotonPerIter,
		"threads":         &config.Threads,
		"supersampling":   &config.Supersampling,
		"checkpoint":      &config.Checkpoint,
		"bounce_limit":    &config.BounceLimit,
		"volume_steps":    &config.VolumeSteps,
	}
	for name, field := range ints {
		if ctx.IsSet(name) {
			*field = ctx.Int(name)
		}
	}

	floats := map[string]*float64{
		"radius_0":                &config.Radius0,
		"alpha":                   &config.Alpha,
		"k":                       &config.K,
		"lens_radius":             &config.LensRadius,
		"depth":                   &config.Depth,
		"mean_dist":               &config.MeanDist,
		"volumetric_radius_ratio": &config.VolumetricRadiusRatio,
	}
	for name, field := range floats {
		if ctx.IsSet(name) {
			*field = ctx.Float64(name)
		}
	}

	if ctx.IsSet("seed") {
		config.Seed = ctx.Uint64("seed")
	}
	return config, nil
}

func logHost(config renderer.Config) {
	cores, err := cpu.Counts(true)
	if err != nil {
		logger.Warningf("could not read cpu count: %v", err)
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		logger.Warningf("could not read memory stats: %v", err)
		vm = &mem.VirtualMemoryStat{}
	}

	logger.Noticef("host: %d logical cpus, %d MiB memory (%d MiB available)", cores, vm.Total>>20, vm.Available>>20)
	logger.Infof("parameters: %+v", config)
}

// ListScenes prints the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{info.ID, info.Description})
	}
	table.Render()

	_, err := ctx.App.Writer.Write(buf.Bytes())
	return err
}
