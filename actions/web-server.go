package actions

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/dataops-works/snowload/helper"
	"github.com/dataops-works/snowload/logger"
	"github.com/dataops-works/snowload/pipeline"
)

const (
	urlContext4Load = "/load"
)

type WebServerConfig struct {
	LogLevel         string `errorTxt:"log level" mandatory:"yes"`
	Scheme           string `errorTxt:"scheme" mandatory:"no"`
	Addr             net.IP `errorTxt:"address" mandatory:"no"`
	Port             int    `errorTxt:"port" mandatory:"no"`
	Connections      ConnectionLoader
	ConnectionName   string `errorTxt:"connection name" mandatory:"yes"`
	StackDumpOnPanic bool
}

// RunWebServer starts the HTTP surface: health checks, the statement plan and
// a load trigger. The load parameter Bundle is rebuilt from the environment
// per request so a redeploy is not needed to repoint the pipeline.
func RunWebServer(web *WebServerConfig) error {
	// Setup logging.
	if web == nil {
		return errors.New("nil pointer to web server config supplied")
	}
	log := logger.NewLogger("snowload", web.LogLevel, web.StackDumpOnPanic)
	// Check if we have valid input params.
	err := helper.ValidateStructIsPopulated(web)
	if err != nil {
		return err
	}
	// Start the web server.
	srv, chanStopServer := runServer(log, web)
	// Block & wait for completion.
	return waitForServer(log, srv, chanStopServer)
}

// runServer starts a web server and returns:
// 1) the server; and
// 2) a channel that can be used to stop the web server
func runServer(log logger.Logger, web *WebServerConfig) (*http.Server, chan string) {
	chanStopServer := make(chan string, 1)
	getBundleFn := func() *pipeline.Bundle { return pipeline.NewBundleFromEnv() }
	// Create routes.
	r := mux.NewRouter()
	r.HandleFunc("/stop", GetHandlerStopServer(log, chanStopServer))
	r.Path("/health").HandlerFunc(GetHandlerHealth(log))
	r.Path("/plan").HandlerFunc(GetHandlerPlan(log, getBundleFn))
	r.Path("/sample").HandlerFunc(GetHandlerSample(log, web.Connections, web.ConnectionName, getBundleFn))
	r.Path(urlContext4Load).Methods(http.MethodPost).HandlerFunc(
		GetHandlerLoad(log, web.Connections, web.ConnectionName, getBundleFn))
	// Configure HTTP server.
	srv := &http.Server{ // Good practice to set timeouts to avoid Slowloris attacks.
		Addr:         fmt.Sprintf("%v:%v", web.Addr, web.Port),
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      r, // supply our instance of gorilla/mux.
	}
	// Run HTTP server non-blocking.
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			if err == http.ErrServerClosed {
				log.Info(err)
			} else {
				log.Panic(err)
			}
		}
	}()
	log.Info(fmt.Sprintf("Listening on %v://%v:%v", strings.ToLower(web.Scheme), web.Addr, web.Port))
	return srv, chanStopServer
}

func waitForServer(log logger.Logger, srv *http.Server, chanStopServer chan string) error {
	// Block & wait for shutdown signals.
	// Accept graceful shutdowns when quit via SIGINT (Ctrl+C)
	// SIGKILL, SIGQUIT or SIGTERM (Ctrl+\) will not be caught.
	chanOS := make(chan os.Signal, 1)
	signal.Notify(chanOS, os.Interrupt) // request signals be sent to chanOS.
	select {
	case <-chanStopServer:
	case <-chanOS:
	}
	fmt.Println() // print new line char for clean looking CLI.
	log.Info("Shutting down web server...")
	// Shutdown web server now.
	wait := time.Second * 15                                       // duration
	ctx, cancel := context.WithTimeout(context.Background(), wait) // create a timeout to wait for.
	defer cancel()                                                 // cancel the timeout.
	err := srv.Shutdown(ctx)                                       // Doesn't block if no connections, but will otherwise wait until the timeout deadline.
	return err
}
