// Command pdfvector interprets a raw PDF content stream and reports the
// geometry it draws.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tsawler/pdfvector"
	"github.com/tsawler/pdfvector/config"
	"github.com/tsawler/pdfvector/diag"
	"github.com/tsawler/pdfvector/randomaccess"
	"github.com/tsawler/pdfvector/render"
)

var (
	configFile = flag.String("config", "", "TOML configuration `file`")
	pngFile    = flag.String("png", "", "write a rasterised coverage mask to `file`")
	svgFile    = flag.String("svg", "", "write the painted paths as SVG to `file`")
)

func main() {
	flag.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "usage: pdfvector [flags] STREAM\n")
		fmt.Fprintf(w, "   interprets the decoded content stream in STREAM\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	conf := config.New()
	if *configFile != "" {
		var err error
		conf, err = config.Load(*configFile)
		if err != nil {
			die("loading %s: %v", *configFile, err)
		}
	}
	if *pngFile != "" {
		conf.Output.PNG = *pngFile
	}
	if *svgFile != "" {
		conf.Output.SVG = *svgFile
	}

	logger, err := conf.Logger()
	if err != nil {
		die("%v", err)
	}
	code := run(conf, logger, flag.Arg(0))
	_ = logger.Sync()
	os.Exit(code)
}

func run(conf *config.Config, logger *zap.Logger, name string) int {
	f, err := randomaccess.OpenFile(name)
	if err != nil {
		logger.Error("opening content stream", zap.String("file", name), zap.Error(err))
		return 1
	}
	shared := randomaccess.Share(f)
	defer shared.Close()

	length, err := shared.Length()
	if err != nil {
		logger.Error("sizing content stream", zap.String("file", name), zap.Error(err))
		return 1
	}

	page := conf.BasePage()
	width, height := page.DeviceSize(conf.Scale)

	r := pdfvector.FromWindow(randomaccess.NewWindow(shared, 0, length)).
		Page(page, conf.Scale).
		MaxStackDepth(conf.MaxStackDepth).
		Reporter(diag.NewLogReporter(logger))
	if conf.Strict {
		r = r.Strict()
	}

	var raster *render.Raster
	if conf.Output.PNG != "" {
		raster = render.NewRaster(width, height)
		r = r.Sink(raster)
	}
	var svg *render.SVG
	if conf.Output.SVG != "" {
		svg = render.NewSVG(width, height)
		r = r.Sink(svg)
	}

	res, runErr := r.Run()
	code := 0
	if runErr != nil {
		logger.Error("interpretation stopped", zap.String("file", name), zap.Error(runErr))
		code = 1
	}
	if res == nil {
		return code
	}

	printSummary(os.Stdout, res)

	if raster != nil {
		if err := writePNG(conf.Output.PNG, raster.Image()); err != nil {
			logger.Error("writing PNG", zap.Error(err))
			code = 1
		}
	}
	if svg != nil {
		if err := writeFile(conf.Output.SVG, svg.Render); err != nil {
			logger.Error("writing SVG", zap.Error(err))
			code = 1
		}
	}
	return code
}

func printSummary(w io.Writer, res *pdfvector.Result) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "operators:   %d\n", res.Operators)
	p.Fprintf(w, "painted:     %d\n", len(res.Path.Painted))
	p.Fprintf(w, "segments:    %d\n", res.Path.SegmentCount())
	p.Fprintf(w, "diagnostics: %d\n", len(res.Diagnostics))

	byKind := make(map[string]int)
	for _, d := range res.Diagnostics {
		byKind[d.Kind.String()]++
	}
	kinds := make([]string, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		p.Fprintf(w, "  %-22s %d\n", k, byKind[k])
	}

	if len(res.Path.Painted) > 0 {
		b := res.Path.Bounds()
		p.Fprintf(w, "bounds:      %.2f %.2f %.2f %.2f\n", b.X, b.Y, b.X+b.Width, b.Y+b.Height)
	}
}

func writePNG(name string, img image.Image) error {
	return writeFile(name, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

func writeFile(name string, write func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	return errors.Wrapf(write(f), "writing %s", name)
}

func die(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
