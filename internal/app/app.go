package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sangtae/appicon/internal/icon"
	"github.com/sangtae/appicon/internal/render"
)

// App runs one render-and-write pass: draw the chevron glyph onto a fresh
// canvas, encode it as PNG, and persist it at OutputPath.
type App struct {
	Render *render.ImageRenderer
	Glyph  render.Glyph
	Logger Logger

	// OutputPath is where the artifact lands; relative paths resolve
	// against the working directory of the invocation.
	OutputPath string
}

func New() *App {
	return &App{
		Render:     render.NewImageRenderer(),
		Glyph:      render.ChevronGlyph{},
		Logger:     NoopLogger{},
		OutputPath: icon.Filename,
	}
}

func (app *App) Run(ctx context.Context) error {
	canvas := app.Render.Render(app.Glyph)
	width, height := app.Render.Size()
	app.Logger.Infof("render", "canvas rendered, %dx%d", width, height)

	// Drawing has no suspension points; honor cancellation once before the
	// only side effect.
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := icon.WriteFile(app.OutputPath, canvas); err != nil {
		app.Logger.Errorf("icon", "write failed: %v", err)
		return err
	}
	app.Logger.Infof("icon", "wrote %s", app.OutputPath)
	return nil
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
