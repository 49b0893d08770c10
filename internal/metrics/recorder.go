package metrics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/temirov/runshell/execshell"
)

const (
	metricsNamespaceConstant            = "runshell"
	startedMetricNameConstant           = "commands_started_total"
	startedMetricHelpConstant           = "Total number of child processes spawned."
	completedMetricNameConstant         = "commands_completed_total"
	completedMetricHelpConstant         = "Total number of child processes whose exit status was observed, by outcome."
	executionFailureMetricNameConstant  = "command_execution_failures_total"
	executionFailureMetricHelpConstant  = "Total number of spawn or status query failures."
	outcomeLabelConstant                = "outcome"
	outcomeSuccessConstant              = "success"
	outcomeFailureConstant              = "failure"
	outcomeSignalConstant               = "signal"
	textfilePathRequiredMessageConstant = "metrics textfile path is required"
	textfileWriteErrorTemplateConstant  = "unable to write metrics textfile %s: %w"
)

var errTextfilePathRequired = errors.New(textfilePathRequiredMessageConstant)

// Recorder implements execshell.CommandEventObserver by counting events in
// its own Prometheus registry.
type Recorder struct {
	registry          *prometheus.Registry
	started           prometheus.Counter
	completed         *prometheus.CounterVec
	executionFailures prometheus.Counter
}

// NewRecorder constructs a Recorder with every metric registered.
func NewRecorder() *Recorder {
	recorder := &Recorder{
		registry: prometheus.NewRegistry(),
		started: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespaceConstant,
			Name:      startedMetricNameConstant,
			Help:      startedMetricHelpConstant,
		}),
		completed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespaceConstant,
			Name:      completedMetricNameConstant,
			Help:      completedMetricHelpConstant,
		}, []string{outcomeLabelConstant}),
		executionFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespaceConstant,
			Name:      executionFailureMetricNameConstant,
			Help:      executionFailureMetricHelpConstant,
		}),
	}

	recorder.registry.MustRegister(recorder.started, recorder.completed, recorder.executionFailures)
	return recorder
}

// Registry returns the registry holding the recorder's metrics.
func (recorder *Recorder) Registry() *prometheus.Registry {
	return recorder.registry
}

// CommandStarted implements execshell.CommandEventObserver.
func (recorder *Recorder) CommandStarted(execshell.ShellCommand) {
	recorder.started.Inc()
}

// CommandCompleted implements execshell.CommandEventObserver.
func (recorder *Recorder) CommandCompleted(_ execshell.ShellCommand, status execshell.ExitStatus) {
	recorder.completed.WithLabelValues(outcomeLabel(status)).Inc()
}

// CommandExecutionFailed implements execshell.CommandEventObserver.
func (recorder *Recorder) CommandExecutionFailed(execshell.ShellCommand, error) {
	recorder.executionFailures.Inc()
}

// WriteTextfile writes the current metric values to path atomically.
func (recorder *Recorder) WriteTextfile(path string) error {
	trimmedPath := strings.TrimSpace(path)
	if len(trimmedPath) == 0 {
		return errTextfilePathRequired
	}
	if writeError := prometheus.WriteToTextfile(trimmedPath, recorder.registry); writeError != nil {
		return fmt.Errorf(textfileWriteErrorTemplateConstant, trimmedPath, writeError)
	}
	return nil
}

func outcomeLabel(status execshell.ExitStatus) string {
	switch {
	case status.Success():
		return outcomeSuccessConstant
	case len(status.Signal) > 0:
		return outcomeSignalConstant
	default:
		return outcomeFailureConstant
	}
}
