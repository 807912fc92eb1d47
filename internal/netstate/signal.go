package netstate

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
)

// DefaultPollInterval is used when a non-positive interval is given.
const DefaultPollInterval = 5 * time.Second

// Signal is the platform connectivity signal.
type Signal interface {
	// IsUp reports whether a usable network interface exists.
	IsUp() bool
	// Subscribe registers fn to be called on every up/down transition.
	// The returned func removes the subscription.
	Subscribe(fn func(up bool)) (unsubscribe func())
}

// InterfaceLister returns the host's network interfaces.
type InterfaceLister func() ([]net.Interface, error)

// InterfacePoller implements [Signal] by polling the host's interfaces.
// Run must be running for subscribers to be notified.
type InterfacePoller struct {
	interval time.Duration
	list     InterfaceLister

	mu          sync.Mutex
	up          bool
	nextID      int
	subscribers map[int]func(up bool)

	logger *logger.Logger
}

// NewInterfacePoller returns a poller reading [net.Interfaces] every interval.
func NewInterfacePoller(interval time.Duration, logger *logger.Logger) *InterfacePoller {
	return newInterfacePoller(interval, net.Interfaces, logger)
}

func newInterfacePoller(interval time.Duration, list InterfaceLister, logger *logger.Logger) *InterfacePoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	p := &InterfacePoller{
		interval:    interval,
		list:        list,
		subscribers: make(map[int]func(up bool)),
		logger:      logger,
	}
	p.up = p.probe()

	return p
}

// IsUp implements [Signal].
func (p *InterfacePoller) IsUp() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.up
}

// Subscribe implements [Signal].
func (p *InterfacePoller) Subscribe(fn func(up bool)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.subscribers[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subscribers, id)
	}
}

// Run polls until ctx is done.
func (p *InterfacePoller) Run(ctx context.Context) {
	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.poll()
		}
	}
}

// poll reads the interfaces once and notifies subscribers on a transition.
func (p *InterfacePoller) poll() {
	up := p.probe()

	p.mu.Lock()
	if up == p.up {
		p.mu.Unlock()
		return
	}
	p.up = up
	subscribers := make([]func(bool), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		subscribers = append(subscribers, fn)
	}
	p.mu.Unlock()

	p.logger.Info().Str("func", "*InterfacePoller.poll").Bool("up", up).Msg("network state changed")
	for _, fn := range subscribers {
		fn(up)
	}
}

func (p *InterfacePoller) probe() bool {
	ifaces, err := p.list()
	if err != nil {
		p.logger.Warn().Err(err).Str("func", "*InterfacePoller.probe").Msg("failed to list network interfaces")
		return false
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp != 0 && iface.Flags&net.FlagLoopback == 0 {
			return true
		}
	}
	return false
}

// Static is a [Signal] with a fixed value. It never emits transitions.
type Static bool

// IsUp implements [Signal].
func (s Static) IsUp() bool { return bool(s) }

// Subscribe implements [Signal].
func (s Static) Subscribe(func(bool)) func() { return func() {} }
