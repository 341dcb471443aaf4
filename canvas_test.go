package chartcanvas

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image/png"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/chartcanvas/chartcanvas/engine"
	"github.com/chartcanvas/chartcanvas/surface"
	chart "github.com/wcharczuk/go-chart/v2"
)

var (
	pngSignature  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	jpegSignature = []byte{0xff, 0xd8, 0xff}
)

// lineConfig returns a minimal valid chart definition.
func lineConfig() chart.Chart {
	return chart.Chart{
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{1, 2, 3, 4},
				YValues: []float64{1, 4, 9, 16},
			},
		},
	}
}

func TestNew_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		want          error
	}{
		{"zero width", 0, 300, ErrInvalidWidth},
		{"negative width", -10, 300, ErrInvalidWidth},
		{"zero height", 400, 0, ErrInvalidHeight},
		{"negative height", 400, -1, ErrInvalidHeight},
		{"both zero", 0, 0, ErrInvalidWidth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(Options{Width: tc.width, Height: tc.height})
			if !errors.Is(err, tc.want) {
				t.Errorf("New() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRenderToBuffer_PNG(t *testing.T) {
	cv, err := New(Options{Width: 400, Height: 300})
	if err != nil {
		t.Fatal(err)
	}

	buf, err := cv.RenderToBuffer(lineConfig(), MimePNG)
	if err != nil {
		t.Fatalf("RenderToBuffer() error = %v", err)
	}
	if len(buf) == 0 {
		t.Fatal("RenderToBuffer() returned empty buffer")
	}
	if !bytes.HasPrefix(buf, pngSignature) {
		t.Errorf("output does not start with PNG signature: % x", buf[:8])
	}
}

func TestRenderToBuffer_DefaultMimeIsPNG(t *testing.T) {
	cv, err := New(Options{Width: 200, Height: 150})
	if err != nil {
		t.Fatal(err)
	}

	buf, err := cv.RenderToBuffer(lineConfig(), "")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf, pngSignature) {
		t.Error("empty mime should produce PNG output")
	}
}

func TestRenderToBuffer_JPEG(t *testing.T) {
	cv, err := New(Options{Width: 400, Height: 300})
	if err != nil {
		t.Fatal(err)
	}

	buf, err := cv.RenderToBuffer(lineConfig(), MimeJPEG)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf, jpegSignature) {
		t.Errorf("output does not start with JPEG signature: % x", buf[:3])
	}
}

func TestRenderToBuffer_Raw(t *testing.T) {
	cv, err := New(Options{Width: 40, Height: 30})
	if err != nil {
		t.Fatal(err)
	}

	buf, err := cv.RenderToBuffer(lineConfig(), MimeRaw)
	if err != nil {
		t.Fatal(err)
	}
	if want := 40 * 30 * 4; len(buf) != want {
		t.Errorf("raw output length = %d, want %d", len(buf), want)
	}
}

func TestRenderToBuffer_Idempotent(t *testing.T) {
	cv, err := New(Options{Width: 300, Height: 200})
	if err != nil {
		t.Fatal(err)
	}

	cfg := lineConfig()
	first, err := cv.RenderToBuffer(cfg, MimePNG)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := cv.RenderToBuffer(cfg, MimePNG)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("two renders of the same configuration differ")
	}
	if cfg.Width != 0 || cfg.Height != 0 {
		t.Errorf("caller configuration mutated: %dx%d", cfg.Width, cfg.Height)
	}
}

func TestRenderToBuffer_BackgroundOpaqueWhite(t *testing.T) {
	cv, err := New(Options{Width: 100, Height: 80})
	if err != nil {
		t.Fatal(err)
	}

	buf, err := cv.RenderToBuffer(lineConfig(), MimePNG)
	if err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	r, g, b, a := img.At(1, 1).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("corner pixel = %d,%d,%d,%d, want opaque white", r, g, b, a)
	}
}

func TestRenderToDataURL(t *testing.T) {
	cv, err := New(Options{Width: 120, Height: 90})
	if err != nil {
		t.Fatal(err)
	}

	url, err := cv.RenderToDataURL(lineConfig(), MimePNG)
	if err != nil {
		t.Fatal(err)
	}

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(url, prefix) {
		t.Fatalf("data URL prefix = %q", url[:min(len(url), len(prefix))])
	}
	payload, err := base64.StdEncoding.DecodeString(url[len(prefix):])
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if !bytes.HasPrefix(payload, pngSignature) {
		t.Error("decoded payload is not PNG")
	}
}

func TestRenderToDataURL_MimeMatches(t *testing.T) {
	cv, err := New(Options{Width: 120, Height: 90})
	if err != nil {
		t.Fatal(err)
	}

	url, err := cv.RenderToDataURL(lineConfig(), MimeJPEG)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(url, "data:image/jpeg;base64,") {
		t.Errorf("data URL does not declare image/jpeg: %q", url[:30])
	}
}

func TestRenderToDataURL_RawRejected(t *testing.T) {
	cv, err := New(Options{Width: 50, Height: 50})
	if err != nil {
		t.Fatal(err)
	}

	_, err = cv.RenderToDataURL(lineConfig(), MimeRaw)
	if !errors.Is(err, ErrRawDataURL) {
		t.Errorf("error = %v, want ErrRawDataURL", err)
	}
}

func TestRenderToBufferContext_Canceled(t *testing.T) {
	cv, err := New(Options{Width: 50, Height: 50})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = cv.RenderToBufferContext(ctx, lineConfig(), MimePNG)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestRender_NilConfiguration(t *testing.T) {
	cv, err := New(Options{Width: 50, Height: 50})
	if err != nil {
		t.Fatal(err)
	}

	_, err = cv.RenderToBuffer(nil, MimePNG)
	if !errors.Is(err, ErrNilConfiguration) {
		t.Errorf("error = %v, want ErrNilConfiguration", err)
	}
}

// detachedConfig never requests a renderer from the provider.
type detachedConfig struct{}

func (detachedConfig) Render(chart.RendererProvider, io.Writer) error { return nil }

func TestRender_SurfaceDetached(t *testing.T) {
	cv, err := New(Options{Width: 50, Height: 50})
	if err != nil {
		t.Fatal(err)
	}

	_, err = cv.RenderToBuffer(detachedConfig{}, MimePNG)
	if !errors.Is(err, ErrSurfaceDetached) {
		t.Errorf("error = %v, want ErrSurfaceDetached", err)
	}
}

func TestRender_CollaboratorErrorPropagates(t *testing.T) {
	cv, err := New(Options{Width: 50, Height: 50})
	if err != nil {
		t.Fatal(err)
	}

	// A chart with no series fails the engine's own validation.
	_, err = cv.RenderToBuffer(chart.Chart{}, MimePNG)
	if err == nil {
		t.Fatal("expected engine validation error, got nil")
	}
	if errors.Is(err, ErrSurfaceDetached) || errors.Is(err, ErrNilConfiguration) {
		t.Errorf("engine error misclassified: %v", err)
	}
}

// countingPlugin records how often its hooks run.
type countingPlugin struct {
	name   string
	before int
	after  int
}

func (p *countingPlugin) Name() string { return p.name }

func (p *countingPlugin) BeforeDraw(surface.DrawContext) error {
	p.before++
	return nil
}

func (p *countingPlugin) AfterDraw(surface.DrawContext) error {
	p.after++
	return nil
}

func TestCanvas_PluginLifecycle(t *testing.T) {
	counter := &countingPlugin{name: "counter"}
	cv, err := New(Options{Width: 80, Height: 60, Plugins: []engine.Plugin{counter}})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := cv.RenderToBuffer(lineConfig(), MimePNG); err != nil {
		t.Fatal(err)
	}
	if counter.before != 1 {
		t.Errorf("BeforeDraw ran %d times, want 1", counter.before)
	}
	if counter.after != 1 {
		t.Errorf("AfterDraw ran %d times, want 1", counter.after)
	}
}

func TestCanvas_InstanceIsolation(t *testing.T) {
	counter := &countingPlugin{name: "counter"}
	withPlugin, err := New(Options{Width: 80, Height: 60, Plugins: []engine.Plugin{counter}})
	if err != nil {
		t.Fatal(err)
	}
	plain, err := New(Options{Width: 80, Height: 60})
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range plain.Engine().Plugins() {
		if p.Name() == "counter" {
			t.Fatal("plugin registered on one canvas is visible on another")
		}
	}

	if _, err := plain.RenderToBuffer(lineConfig(), MimePNG); err != nil {
		t.Fatal(err)
	}
	if counter.before != 0 {
		t.Errorf("foreign canvas ran this canvas's plugin %d times", counter.before)
	}
	if _, err := withPlugin.RenderToBuffer(lineConfig(), MimePNG); err != nil {
		t.Fatal(err)
	}
	if counter.before != 1 {
		t.Errorf("BeforeDraw ran %d times, want 1", counter.before)
	}
}

func TestCanvas_ConcurrentRenders(t *testing.T) {
	cv, err := New(Options{Width: 120, Height: 90})
	if err != nil {
		t.Fatal(err)
	}
	other, err := New(Options{Width: 60, Height: 45})
	if err != nil {
		t.Fatal(err)
	}

	const renders = 8
	errs := make(chan error, renders*2)
	var wg sync.WaitGroup
	for i := 0; i < renders; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := cv.RenderToBuffer(lineConfig(), MimePNG)
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := other.RenderToBuffer(lineConfig(), MimePNG)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("concurrent render failed: %v", err)
		}
	}
}

func TestCanvas_SVGKind(t *testing.T) {
	cv, err := New(Options{Width: 200, Height: 150, Type: "SVG"})
	if err != nil {
		t.Fatal(err)
	}
	if cv.Kind() != surface.KindSVG {
		t.Fatalf("Kind = %s, want svg", cv.Kind())
	}

	buf, err := cv.RenderToBuffer(lineConfig(), "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(buf), "<svg") {
		t.Error("output does not contain <svg")
	}
}

func TestCanvas_PDFKind(t *testing.T) {
	cv, err := New(Options{Width: 200, Height: 150, Type: "pdf"})
	if err != nil {
		t.Fatal(err)
	}

	buf, err := cv.RenderToBuffer(lineConfig(), "")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF: % x", buf[:4])
	}
}

func TestCanvas_EngineInitHook(t *testing.T) {
	var seen *engine.Engine
	cv, err := New(Options{
		Width:  50,
		Height: 50,
		EngineInit: func(e *engine.Engine) error {
			seen = e
			return nil
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if seen == nil {
		t.Fatal("EngineInit hook did not run")
	}
	if seen != cv.Engine() {
		t.Error("hook received a different engine than the canvas owns")
	}
}

func TestCanvas_EngineInitFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := New(Options{
		Width:  50,
		Height: 50,
		EngineInit: func(*engine.Engine) error {
			return boom
		},
	})
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped boom", err)
	}
}
