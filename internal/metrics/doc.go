// Package metrics counts child process lifecycle events in a Prometheus
// registry and exports them in the node exporter textfile format.
package metrics
