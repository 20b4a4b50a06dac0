package main

import (
	"os"

	"github.com/df07/go-sppm/pkg/log"
	"github.com/df07/go-sppm/pkg/renderer"
	"github.com/urfave/cli"
)

var logger = log.New("sppm")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	defaults := renderer.DefaultConfig()

	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-sppm"
	app.Usage = "render scenes with stochastic progressive photon mapping"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "scene, s",
			Value: "box",
			Usage: "built-in scene to render",
		},
		cli.StringFlag{
			Name:  "output, o",
			Value: "output",
			Usage: "directory or bucket URL (file://, mem://, gs://) receiving images and checkpoints",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "YAML file with render parameters; explicit flags take precedence",
		},
		cli.StringFlag{
			Name:  "resume",
			Usage: "checkpoint key in the output bucket to continue from",
		},
		cli.IntFlag{Name: "width", Value: defaults.Width, Usage: "image width"},
		cli.IntFlag{Name: "height", Value: defaults.Height, Usage: "image height"},
		cli.IntFlag{Name: "iter", Value: defaults.Iter, Usage: "total number of iterations"},
		cli.IntFlag{Name: "photon_per_iter", Value: defaults.PhotonPerIter, Usage: "photons emitted per iteration"},
		cli.Float64Flag{Name: "radius_0", Value: defaults.Radius0, Usage: "initial gather radius"},
		cli.Float64Flag{Name: "alpha", Value: defaults.Alpha, Usage: "radius reduction parameter in (0, 1]"},
		cli.Float64Flag{Name: "k", Value: defaults.K, Usage: "cone filter parameter"},
		cli.IntFlag{Name: "threads", Value: defaults.Threads, Usage: "number of render workers"},
		cli.IntFlag{Name: "supersampling", Value: defaults.Supersampling, Usage: "eye rays per pixel per iteration"},
		cli.IntFlag{Name: "checkpoint", Value: defaults.Checkpoint, Usage: "iterations between saved images and checkpoints"},
		cli.Float64Flag{Name: "lens_radius", Value: defaults.LensRadius, Usage: "thin lens radius, 0 for a pinhole camera"},
		cli.Float64Flag{Name: "depth", Value: defaults.Depth, Usage: "focus distance"},
		cli.Float64Flag{Name: "mean_dist", Value: defaults.MeanDist, Usage: "mean free path of the medium, 0 disables it"},
		cli.Float64Flag{Name: "volumetric_radius_ratio", Value: defaults.VolumetricRadiusRatio, Usage: "volume gather radius relative to the surface radius"},
		cli.Uint64Flag{Name: "seed", Value: defaults.Seed, Usage: "base seed of the worker random streams"},
		cli.IntFlag{Name: "bounce_limit", Value: defaults.BounceLimit, Usage: "maximum path length"},
		cli.IntFlag{Name: "volume_steps", Value: defaults.VolumeSteps, Usage: "maximum medium samples per eye ray segment"},
	}
	app.Action = Render
	app.Commands = []cli.Command{
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: ListScenes,
		},
	}
	return app
}

func setupLogging(ctx *cli.Context) {
	log.SetLevel(log.FromFlags(ctx.GlobalBool("v"), ctx.GlobalBool("vv")))
}
