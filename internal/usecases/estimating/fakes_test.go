package estimating

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/smartstore-sales-api/internal/domain"
)

type probeCall struct {
	productID string
	basis     int
}

// scriptedProber responde a partir de um mapa basis -> contagem por produto
type scriptedProber struct {
	mu        sync.Mutex
	responses map[string]map[int]int
	panicAt   map[string]int
	calls     []probeCall
}

func newScriptedProber() *scriptedProber {
	return &scriptedProber{
		responses: map[string]map[int]int{},
		panicAt:   map[string]int{},
	}
}

func (p *scriptedProber) set(productID string, basis, count int) *scriptedProber {
	if p.responses[productID] == nil {
		p.responses[productID] = map[int]int{}
	}
	p.responses[productID][basis] = count
	return p
}

func (p *scriptedProber) Probe(_ context.Context, productID string, basis int) domain.ProbeResult {
	p.mu.Lock()
	p.calls = append(p.calls, probeCall{productID: productID, basis: basis})
	panicBasis, shouldPanic := p.panicAt[productID]
	count := p.responses[productID][basis]
	p.mu.Unlock()

	if shouldPanic && panicBasis == basis {
		panic("falha simulada")
	}

	return domain.ProbeResult{Count: count}
}

func (p *scriptedProber) basesFor(productID string) []int {
	p.mu.Lock()
	defer p.mu.Unlock()

	var bases []int
	for _, c := range p.calls {
		if c.productID == productID {
			bases = append(bases, c.basis)
		}
	}
	return bases
}

func (p *scriptedProber) distinctProducts() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	seen := map[string]struct{}{}
	for _, c := range p.calls {
		seen[c.productID] = struct{}{}
	}
	return len(seen)
}

type panickingProber struct{}

func (panickingProber) Probe(context.Context, string, int) domain.ProbeResult {
	panic("sempre falha")
}

// snapshotSleeper registra quantos produtos já tinham sido sondados a cada pausa
type snapshotSleeper struct {
	prober    *scriptedProber
	delays    []time.Duration
	snapshots []int
	cancel    context.CancelFunc
}

func (s *snapshotSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	s.snapshots = append(s.snapshots, s.prober.distinctProducts())
	if s.cancel != nil {
		s.cancel()
		return ctx.Err()
	}
	return nil
}
