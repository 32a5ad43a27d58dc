// Package roku sends External Control Protocol commands to the TV without
// ever making the frame loop wait. Every Send is fire-and-forget: the
// request runs in its own goroutine with a bounded timeout, failures go to a
// diagnostics ring and the log, and nothing is retried or surfaced to a
// screen. The remote panel must never show a toddler an error dialog.
package roku

import (
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 3 * time.Second
	diagnosticsCap = 64

	// A mashed button fires at most this often; the burst soaks up a
	// normal double-tap.
	sendInterval = 150 * time.Millisecond
	sendBurst    = 8
)

// Record is one diagnostics entry for a dispatched (or dropped) command.
type Record struct {
	ID       uuid.UUID
	Command  string
	At       time.Time
	Duration time.Duration
	Status   int
	Err      string
	Dropped  bool
}

// diagnostics is an append-only ring of the most recent Records. Worker
// goroutines write it concurrently; the mutex is the only sharing point.
type diagnostics struct {
	mu      sync.Mutex
	records []Record
}

func (d *diagnostics) add(rec Record) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.records = append(d.records, rec)
	if len(d.records) > diagnosticsCap {
		d.records = d.records[len(d.records)-diagnosticsCap:]
	}
}

func (d *diagnostics) recent(n int) []Record {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n > len(d.records) {
		n = len(d.records)
	}
	out := make([]Record, n)
	copy(out, d.records[len(d.records)-n:])
	return out
}

// Options configures a Client.
type Options struct {
	// Address is the ECP endpoint, host:port (scheme optional).
	Address string
	// Enabled false turns the client into a no-op; no network calls at
	// all. This is the shipped default so a unit on a new network does
	// nothing surprising.
	Enabled bool
	// Timeout bounds each attempt; zero means 3s.
	Timeout time.Duration
	Logger  *zap.Logger
}

// Client dispatches commands to one device.
type Client struct {
	http    *resty.Client
	log     *zap.Logger
	limiter *rate.Limiter
	diag    *diagnostics
	enabled bool
}

// New builds a client. It performs no I/O.
func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	base := opts.Address
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}

	httpClient := resty.New().
		SetBaseURL(base).
		SetTimeout(opts.Timeout).
		SetHeader("User-Agent", "GameBox/1.0")

	return &Client{
		http:    httpClient,
		log:     opts.Logger.Named("roku"),
		limiter: rate.NewLimiter(rate.Every(sendInterval), sendBurst),
		diag:    &diagnostics{},
		enabled: opts.Enabled,
	}
}

// Enabled reports whether the client will actually talk to the device.
func (c *Client) Enabled() bool { return c.enabled }

// Send dispatches a command and returns immediately. The attempt runs on
// its own goroutine with the client timeout; its outcome lands in the
// diagnostics ring. Ordering between rapid commands is not guaranteed.
func (c *Client) Send(cmd Command) {
	if !c.enabled {
		return
	}
	if !c.limiter.Allow() {
		c.diag.add(Record{
			ID:      uuid.New(),
			Command: cmd.Name,
			At:      time.Now(),
			Dropped: true,
		})
		c.log.Debug("command dropped by rate limit", zap.String("command", cmd.Name))
		return
	}
	go c.post(cmd)
}

func (c *Client) post(cmd Command) {
	rec := Record{
		ID:      uuid.New(),
		Command: cmd.Name,
		At:      time.Now(),
	}

	req := c.http.R().SetBody("")
	if len(cmd.Query) > 0 {
		req.SetQueryParams(cmd.Query)
	}
	resp, err := req.Post(cmd.Path)

	rec.Duration = time.Since(rec.At)
	if err != nil {
		rec.Err = err.Error()
		c.log.Warn("command failed",
			zap.String("command", cmd.Name),
			zap.Duration("after", rec.Duration),
			zap.Error(err))
	} else {
		rec.Status = resp.StatusCode()
		c.log.Debug("command sent",
			zap.String("command", cmd.Name),
			zap.Int("status", rec.Status),
			zap.Duration("took", rec.Duration))
	}
	c.diag.add(rec)
}

// Diagnostics returns up to n of the most recent attempt records, oldest
// first. Safe to call from any goroutine.
func (c *Client) Diagnostics(n int) []Record {
	return c.diag.recent(n)
}
