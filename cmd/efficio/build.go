package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/efficio-cad/efficio/internal/catalog"
	"github.com/efficio-cad/efficio/internal/config"
	"github.com/efficio-cad/efficio/internal/fsutil"
	"github.com/efficio-cad/efficio/internal/history"
	"github.com/efficio-cad/efficio/internal/monitoring"
	"github.com/efficio-cad/efficio/measure"
	"github.com/efficio-cad/efficio/render"
)

// paramFlags collects repeated -param name=value flags.
type paramFlags struct {
	values map[string]string
}

func (p *paramFlags) String() string {
	if len(p.values) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(p.values))
	for name, value := range p.values {
		pairs = append(pairs, name+"="+value)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func (p *paramFlags) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("parameter must be name=value, got %q", s)
	}
	if p.values == nil {
		p.values = make(map[string]string)
	}
	p.values[name] = strings.TrimSpace(value)
	return nil
}

func handleBuild(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	object := fs.String("object", "", "Catalog object to build (see 'efficio objects')")
	var params paramFlags
	fs.Var(&params, "param", "Object parameter as name=value (repeatable)")
	stlPath := fs.String("stl", "", "Write a printable mesh to this .stl path")
	pngPath := fs.String("png", "", "Write a single-view drawing to this .png path")
	svgPath := fs.String("svg", "", "Write a single-view drawing to this .svg path")
	sheetPath := fs.String("composite", "", "Write the four-view sheet to this .png path")
	viewName := fs.String("view", "iso", "View for -png and -svg: top, front, left or iso")
	title := fs.String("title", "", "Drawing title (defaults to the object name)")
	meshCells := fs.Int("mesh-cells", 0, "Marching cubes resolution (0 uses the config default)")
	configPath := fs.String("render-config", "", "Render configuration JSON (defaults to "+config.DefaultConfigPath+" when present)")
	dbPath := fs.String("db", defaultDBFile, "Build history database (empty disables recording)")
	fs.Parse(args)

	if *object == "" {
		fmt.Fprintln(os.Stderr, "build requires -object (see 'efficio objects')")
		os.Exit(1)
	}
	entry, ok := catalog.Lookup(*object)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown object %q (valid: %s)\n", *object, strings.Join(catalog.Names(), ", "))
		os.Exit(1)
	}
	if *stlPath == "" && *pngPath == "" && *svgPath == "" && *sheetPath == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: pass at least one of -stl, -png, -svg or -composite")
		os.Exit(1)
	}

	cfg, err := loadRenderConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render config: %v\n", err)
		os.Exit(1)
	}
	view, err := render.ParseView(*viewName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p, err := entry.Build(params.values)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build %s: %v\n", *object, err)
		os.Exit(1)
	}
	shape, err := p.Shape()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build %s: %v\n", *object, err)
		os.Exit(1)
	}
	if b, ok := shape.Bounds(); ok {
		size := b.Size()
		monitoring.Logf("%s bounds %s x %s x %s", *object,
			measure.FormatMM(size.X), measure.FormatMM(size.Y), measure.FormatMM(size.Z))
	}

	opts := renderOptions(cfg, *title)
	if opts.Title == "" {
		opts.Title = *object
	}
	cells := *meshCells
	if cells <= 0 {
		cells = cfg.GetMeshCells()
	}

	db := openHistory(*dbPath)
	if db != nil {
		defer db.Close()
	}
	record := func(format, path string, start time.Time, meshCells int) {
		if db == nil {
			return
		}
		var size int64
		if info, err := os.Stat(path); err == nil {
			size = info.Size()
		}
		b := history.Build{
			Object:     *object,
			Params:     params.values,
			Format:     format,
			Path:       path,
			SizeBytes:  size,
			DurationMS: time.Since(start).Milliseconds(),
			MeshCells:  meshCells,
		}
		if err := db.Insert(&b); err != nil {
			monitoring.Warnf("failed to record build: %v", err)
		}
	}

	osfs := fsutil.NewOSFileSystem()
	if *stlPath != "" {
		start := time.Now()
		if err := render.WriteSTL(shape, *stlPath, cells); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", *stlPath, err)
			os.Exit(1)
		}
		monitoring.Logf("wrote %s (%d cells, %s)", *stlPath, cells, time.Since(start).Round(time.Millisecond))
		record("stl", *stlPath, start, cells)
	}
	if *pngPath != "" {
		start := time.Now()
		if err := render.WriteView(osfs, shape, view, *pngPath, opts); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", *pngPath, err)
			os.Exit(1)
		}
		monitoring.Logf("wrote %s (%s view)", *pngPath, view.Name)
		record("png", *pngPath, start, 0)
	}
	if *svgPath != "" {
		start := time.Now()
		if err := render.WriteView(osfs, shape, view, *svgPath, opts); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", *svgPath, err)
			os.Exit(1)
		}
		monitoring.Logf("wrote %s (%s view)", *svgPath, view.Name)
		record("svg", *svgPath, start, 0)
	}
	if *sheetPath != "" {
		start := time.Now()
		if err := render.CompositePNG(osfs, shape, *sheetPath, opts); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", *sheetPath, err)
			os.Exit(1)
		}
		monitoring.Logf("wrote %s (four-view sheet)", *sheetPath)
		record("composite", *sheetPath, start, 0)
	}
}

// loadRenderConfig returns the config at path, the repository default
// when it exists, or built-in defaults.
func loadRenderConfig(path string) (*config.RenderConfig, error) {
	if path == "" {
		if _, err := os.Stat(config.DefaultConfigPath); err == nil {
			return config.LoadRenderConfig(config.DefaultConfigPath)
		}
		return config.EmptyRenderConfig(), nil
	}
	return config.LoadRenderConfig(path)
}

func renderOptions(cfg *config.RenderConfig, title string) render.Options {
	return render.Options{
		Width:       cfg.GetWidth(),
		Height:      cfg.GetHeight(),
		Margin:      cfg.GetMargin(),
		StrokeWidth: cfg.GetStrokeWidth(),
		ShowAxes:    cfg.GetShowAxes(),
		Title:       title,
	}
}

// openHistory opens and migrates the build history database. History
// is best effort: failures warn and disable recording rather than
// failing the build.
func openHistory(path string) *history.DB {
	if path == "" {
		return nil
	}
	db, err := history.Open(path)
	if err != nil {
		monitoring.Warnf("build history unavailable: %v", err)
		return nil
	}
	if err := db.MigrateUp(); err != nil {
		monitoring.Warnf("build history unavailable: %v", err)
		db.Close()
		return nil
	}
	return db
}
