package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/voronoi"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of the Voronoi diagram, generating an SVG or GeoJSON document from a
// set of points. Input on stdin should be newline separated points in the form
// "x y". Blank lines are ignored.
//
// Every point must lie on the canvas given by --width and --height. Duplicate
// points, or three points on a line, are rejected.
func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type config struct {
	width, height float64
	format        string
	png           string
	imgcat        bool
	verbose       bool
	triangles     bool
	cells         bool
}

func parseArgs(args []string) (*config, error) {
	var cfg config
	app := kingpin.New("voronoi", "Delaunay triangulation and Voronoi diagram of points read from stdin.")
	app.Flag("width", "Canvas width.").Default("800").Float64Var(&cfg.width)
	app.Flag("height", "Canvas height.").Default("600").Float64Var(&cfg.height)
	app.Flag("format", "Output format.").Default("svg").EnumVar(&cfg.format, "svg", "geojson")
	app.Flag("png", "Also save a PNG snapshot to this file.").StringVar(&cfg.png)
	app.Flag("imgcat", "Preview the diagram in the terminal on stderr (iTerm only).").BoolVar(&cfg.imgcat)
	app.Flag("verbose", "Log construction steps.").Short('v').BoolVar(&cfg.verbose)
	app.Flag("triangles", "Draw the triangulation.").Default("true").BoolVar(&cfg.triangles)
	app.Flag("cells", "Draw the Voronoi cells.").Default("true").BoolVar(&cfg.cells)
	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// The document goes to out. A terminal preview goes to preview, so it never
// mixes with the document.
func run(args []string, in io.Reader, out, preview io.Writer) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.verbose)
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	defer logger.Sync()

	points, err := readPoints(in)
	if err != nil {
		return err
	}
	logger.Info("read points", zap.Int("count", len(points)))

	d, err := voronoi.Compute(cfg.width, cfg.height, points, voronoi.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("computed diagram",
		zap.Int("triangles", len(d.Triangles())),
		zap.Int("cells", len(d.Cells())),
		zap.Int("flips", d.Flips()),
	)

	if cfg.png != "" {
		if err := d.SavePNG(cfg.png, 1); err != nil {
			return err
		}
	}
	if cfg.imgcat {
		if err := d.Preview(preview, 1); err != nil {
			return err
		}
	}

	switch cfg.format {
	case "geojson":
		data, err := voronoi.FeatureCollection(d).MarshalJSON()
		if err != nil {
			return errors.Wrap(err, "encoding geojson")
		}
		_, err = out.Write(data)
		return errors.Wrap(err, "writing geojson")
	default:
		style := voronoi.DefaultSVGStyle
		style.Triangles = cfg.triangles
		style.Cells = cfg.cells
		return voronoi.WriteSVG(out, d, style)
	}
}

func readPoints(in io.Reader) ([]voronoi.Point, error) {
	points := []voronoi.Point{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, errors.Wrap(scanner.Err(), "reading points")
}

func parsePoint(line string) (voronoi.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return voronoi.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return voronoi.Point{}, errors.Wrap(err, "parsing x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return voronoi.Point{}, errors.Wrap(err, "parsing y")
	}
	return voronoi.NewPoint(x, y), nil
}
