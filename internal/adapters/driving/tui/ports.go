// Package tui provides the terminal dashboard for raglab. It implements
// a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the dashboard.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Overview provides the summary statistics.
	Overview driving.OverviewService

	// Logs provides the historical question log.
	Logs driving.LogService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(overview driving.OverviewService, logs driving.LogService) *Ports {
	return &Ports{
		Overview: overview,
		Logs:     logs,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Overview == nil {
		return ErrMissingOverviewService
	}
	if p.Logs == nil {
		return ErrMissingLogService
	}
	return nil
}
