package actions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/xid"
	"github.com/dataops-works/snowload/logger"
	"github.com/dataops-works/snowload/pipeline"
	"github.com/dataops-works/snowload/rdbms"
)

type WebServerResponse uint32

const (
	Okay WebServerResponse = iota + 1
	Error
)

func (w WebServerResponse) MarshalJSON() ([]byte, error) {
	var retval string
	switch w {
	case Okay:
		retval = "ok"
	case Error:
		retval = "error"
	default:
		err := fmt.Errorf("unhandled WebServerResponse value in MarshalJSON() conversion")
		return nil, err
	}
	return json.Marshal(retval)
}

type ResponseSimple struct {
	ServerStatus WebServerResponse `json:"status"`
}

type ResponsePlan struct {
	Status  WebServerResponse `json:"status"`
	Message string            `json:"message,omitempty"`
	Plan    *PlanDefinition   `json:"plan,omitempty"`
}

type ResponseLoad struct {
	Status    WebServerResponse    `json:"status"`
	Message   string               `json:"message"`
	LoadRunId string               `json:"loadRunId,omitempty"`
	Rows      []pipeline.SampleRow `json:"rows,omitempty"`
}

func GetHandlerHealth(log logger.Logger) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		respond(log, w, ResponseSimple{ServerStatus: Okay})
	}
}

func GetHandlerStopServer(log logger.Logger, chanStop chan string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		chanStop <- "stop"
		log.Info("Stop signal sent")
		respond(log, w, ResponseSimple{ServerStatus: Okay})
	}
}

// GetHandlerPlan returns the statements a load would execute for the current
// environment without connecting to the warehouse.
func GetHandlerPlan(log logger.Logger, getBundleFn func() *pipeline.Bundle) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		b := getBundleFn()
		if err := b.Validate(); err != nil {
			logAndRespond(log, err, w, ResponsePlan{Status: Error, Message: fmt.Sprintf("invalid load parameters: %v", err)})
			return
		}
		p, err := getPlanDefinition(b)
		if err != nil {
			logAndRespond(log, err, w, ResponsePlan{Status: Error, Message: fmt.Sprintf("error building plan: %v", err)})
			return
		}
		w.WriteHeader(http.StatusOK)
		respond(log, w, ResponsePlan{Status: Okay, Plan: p})
	}
}

// GetHandlerLoad runs the full pipeline and responds with the sample rows.
func GetHandlerLoad(log logger.Logger, c ConnectionLoader, connectionName string, getBundleFn func() *pipeline.Bundle) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		runId := xid.New().String()
		runLog := log
		if l, ok := log.(*logger.LoggerImpl); ok {
			runLog = l.WithField("loadRunId", runId)
		}
		b := getBundleFn()
		if err := b.Validate(); err != nil {
			logAndRespond(runLog, err, w, ResponseLoad{Status: Error, Message: fmt.Sprintf("invalid load parameters: %v", err)})
			return
		}
		conn, err := c.LoadConnection(connectionName)
		if err != nil {
			logAndRespond(runLog, err, w, ResponseLoad{Status: Error, Message: fmt.Sprintf("error loading connection details: %v", err)})
			return
		}
		db, err := rdbms.OpenDbConnection(runLog, conn)
		if err != nil {
			logAndRespond(runLog, err, w, ResponseLoad{Status: Error, Message: fmt.Sprintf("error connecting to the warehouse: %v", err)})
			return
		}
		defer db.Close()
		rows, err := pipeline.Run(r.Context(), runLog, db, b)
		if err != nil {
			logAndRespond(runLog, err, w, ResponseLoad{Status: Error, Message: fmt.Sprintf("load failed: %v", err), LoadRunId: runId})
			return
		}
		w.WriteHeader(http.StatusOK)
		respond(runLog, w, ResponseLoad{Status: Okay, Message: "load complete", LoadRunId: runId, Rows: rows})
	}
}

// GetHandlerSample fetches the current sample rows without loading.
func GetHandlerSample(log logger.Logger, c ConnectionLoader, connectionName string, getBundleFn func() *pipeline.Bundle) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		b := getBundleFn()
		if err := b.Validate(); err != nil {
			logAndRespond(log, err, w, ResponseLoad{Status: Error, Message: fmt.Sprintf("invalid load parameters: %v", err)})
			return
		}
		conn, err := c.LoadConnection(connectionName)
		if err != nil {
			logAndRespond(log, err, w, ResponseLoad{Status: Error, Message: fmt.Sprintf("error loading connection details: %v", err)})
			return
		}
		db, err := rdbms.OpenDbConnection(log, conn)
		if err != nil {
			logAndRespond(log, err, w, ResponseLoad{Status: Error, Message: fmt.Sprintf("error connecting to the warehouse: %v", err)})
			return
		}
		defer db.Close()
		rows, err := pipeline.Sample(context.Background(), log, db, b)
		if err != nil {
			logAndRespond(log, err, w, ResponseLoad{Status: Error, Message: fmt.Sprintf("sample failed: %v", err)})
			return
		}
		w.WriteHeader(http.StatusOK)
		respond(log, w, ResponseLoad{Status: Okay, Message: "sample complete", Rows: rows})
	}
}

func logAndRespond(log logger.Logger, err error, w http.ResponseWriter, r interface{}) {
	log.Error(err)
	w.WriteHeader(http.StatusBadRequest)
	respond(log, w, r)
}

// respond will marshal i to a string and write it to w.
func respond(log logger.Logger, w http.ResponseWriter, i interface{}) {
	j, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		log.Panic(err)
	}
	_, err = fmt.Fprint(w, string(j))
	if err != nil {
		log.Panic(err)
	}
}
