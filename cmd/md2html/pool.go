package main

import (
	"runtime"
	"sync"

	md2html "github.com/alnah/go-md2html"
)

// ServicePool manages md2html.Service instances for parallel batch
// conversion. Services are created lazily on first acquire so that a
// small batch never allocates the full pool.
type ServicePool struct {
	size    int
	sem     chan *md2html.Service
	mu      sync.Mutex
	created int
	newSvc  func() *md2html.Service
}

// NewServicePool creates a pool with capacity for n Service instances
// built by newSvc.
func NewServicePool(n int, newSvc func() *md2html.Service) *ServicePool {
	if n < 1 {
		n = 1
	}

	return &ServicePool{
		size:   n,
		sem:    make(chan *md2html.Service, n),
		newSvc: newSvc,
	}
}

// Acquire gets a service from the pool, creating one if needed.
// Blocks if all services are in use.
func (p *ServicePool) Acquire() *md2html.Service {
	select {
	case svc := <-p.sem:
		return svc
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()
		return p.newSvc()
	}
	p.mu.Unlock()

	return <-p.sem
}

// Release returns a service to the pool.
func (p *ServicePool) Release(svc *md2html.Service) {
	p.sem <- svc
}

// Size returns the pool capacity.
func (p *ServicePool) Size() int {
	return p.size
}

// resolvePoolSize determines the pool size.
// Priority: explicit worker count > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// Auto-calculate from GOMAXPROCS (adjusted by automaxprocs in containers)
	available := runtime.GOMAXPROCS(0)
	n := available / 2

	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
