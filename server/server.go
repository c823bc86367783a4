package server

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"syscall"

	logx "github.com/ije/gox/log"
	"github.com/ije/rex"

	"spaloading/loading"
)

var (
	config Config
	log    *logx.Logger
)

// Serve runs the spaloading command:
//
//	spaloading [flags] [serve|preview|build] [dir]
//
// serve injects the placeholder in development mode, preview serves the
// production output, build writes the production index.html to the out dir.
func Serve() {
	var port int
	var logLevel string
	var dev bool
	var kindName string

	flag.IntVar(&port, "port", 0, "http server port")
	flag.StringVar(&logLevel, "log-level", "info", "log level")
	flag.BoolVar(&dev, "d", false, "print debug logs")
	flag.StringVar(&kindName, "type", "", "loading type: text, img or svg")
	flag.Parse()

	command, dir := parseArgs(flag.Args())
	workingDir, err := filepath.Abs(dir)
	if err != nil {
		log.Fatal(err)
	}

	if !dirExists(workingDir) {
		log.Fatalf("no such working dir: %s", workingDir)
	}

	config, err = LoadConfig(workingDir)
	if err != nil {
		log.Fatalf("invalid config file: %v", err)
	}
	if kindName != "" {
		config.Type = kindName
	}
	kind, err := loading.ParseKind(config.Type)
	if err != nil {
		log.Fatal(err)
	}
	if port == 0 {
		port = config.Port
	}

	if config.LogDir != "" {
		log, err = logx.New(fmt.Sprintf("file:%s?buffer=32k", path.Join(config.LogDir, "main.log")))
		if err != nil {
			fmt.Printf("initiate main logger: %v\n", err)
			os.Exit(1)
		}
		defer log.FlushBuffer()

		accessLogger, err := logx.New(fmt.Sprintf("file:%s?buffer=32k&fileDateFormat=20060102", path.Join(config.LogDir, "access.log")))
		if err != nil {
			log.Fatalf("initiate access logger: %v", err)
		}
		accessLogger.SetQuite(true)
		rex.Use(rex.AccessLogger(accessLogger))
		defer accessLogger.FlushBuffer()
	}

	// after logDir, which replaces the logger
	log.SetLevelByName(logLevelName(dev, logLevel))

	plugin := loading.New(kind, config.Options, loading.WithLogger(log))

	switch command {
	case "build":
		app := NewApp(workingDir, "build", plugin)
		filename, err := app.WriteOutput(config.OutDir)
		if err != nil {
			log.Fatal(err)
		}
		log.Infof("Built %s", filename)
		return
	case "preview":
		// preview serves what a build would write
		serve(NewApp(workingDir, "build", plugin), port, false)
	case "serve":
		serve(NewApp(workingDir, "serve", plugin), port, true)
	default:
		log.Fatalf("unknown command %q, must be one of: serve, preview, build", command)
	}
}

func serve(app *App, port int, watch bool) {
	rex.Use(
		rex.ErrorLogger(log),
		rex.Header("Server", "spaloading"),
		rex.Cors(rex.CORS{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET"},
			AllowHeaders:    []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding"},
			MaxAge:          3600,
		}),
		app.Handle(),
	)

	C := rex.Serve(rex.ServerConfig{
		Port: uint16(port),
	})

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGHUP)

	if watch {
		w := app.Watch()
		defer w.stop()
	}
	log.Infof("Server ready on http://localhost:%d (%s)", port, app.ctx.Mode)

	select {
	case <-c:
	case err := <-C:
		log.Error(err)
	}
}

func logLevelName(dev bool, logLevel string) string {
	if dev {
		return "debug"
	}
	return logLevel
}

// parseArgs splits the positional arguments into a command and a working dir.
func parseArgs(args []string) (command string, dir string) {
	command, dir = "serve", "."
	switch len(args) {
	case 0:
	case 1:
		if isCommand(args[0]) {
			command = args[0]
		} else {
			dir = args[0]
		}
	default:
		command, dir = args[0], args[1]
	}
	return
}

func isCommand(s string) bool {
	return s == "serve" || s == "preview" || s == "build"
}

func init() {
	log = &logx.Logger{}
}
