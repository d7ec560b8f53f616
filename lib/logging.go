package lib

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

type LoggerStruct struct {
	log  zerolog.Logger
	Exit func(code int)
}

func newConsole(w io.Writer, color bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !color,
		PartsOrder: []string{zerolog.MessageFieldName},
	}
	return zerolog.New(out).Level(zerolog.InfoLevel)
}

var Logger = &LoggerStruct{
	log:  newConsole(os.Stderr, isatty.IsTerminal(os.Stderr.Fd())),
	Exit: os.Exit,
}

// SetOutput redirects the logger, keeping the current level. Color is only
// used when w is a terminal.
func (l *LoggerStruct) SetOutput(w io.Writer) {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd())
	}
	l.log = newConsole(w, color).Level(l.log.GetLevel())
}

func (l *LoggerStruct) SetVerbose(verbose bool) {
	if verbose {
		l.log = l.log.Level(zerolog.DebugLevel)
	} else {
		l.log = l.log.Level(zerolog.InfoLevel)
	}
}

func (l *LoggerStruct) Verbose() bool {
	return l.log.GetLevel() <= zerolog.DebugLevel
}

func join(v []interface{}) string {
	var xs []string
	for _, x := range v {
		xs = append(xs, fmt.Sprint(x))
	}
	return strings.Join(xs, " ")
}

func (l *LoggerStruct) Println(v ...interface{}) {
	l.log.Info().Msg(join(v))
}

func (l *LoggerStruct) Printf(format string, v ...interface{}) {
	l.log.Info().Msg(fmt.Sprintf(format, v...))
}

func (l *LoggerStruct) Debugln(v ...interface{}) {
	l.log.Debug().Msg(join(v))
}

func (l *LoggerStruct) Debugf(format string, v ...interface{}) {
	l.log.Debug().Msg(fmt.Sprintf(format, v...))
}

func (l *LoggerStruct) Fatal(v ...interface{}) {
	l.log.WithLevel(zerolog.FatalLevel).Msg(join(v))
	l.Exit(1)
}

func (l *LoggerStruct) Fatalf(format string, v ...interface{}) {
	l.log.WithLevel(zerolog.FatalLevel).Msg(fmt.Sprintf(format, v...))
	l.Exit(1)
}
