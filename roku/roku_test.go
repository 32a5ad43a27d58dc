package roku

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeypressCommand(t *testing.T) {
	cmd := Keypress("Home")
	assert.Equal(t, "/keypress/Home", cmd.Path)
	assert.Equal(t, "keypress/Home", cmd.Name)
	assert.Empty(t, cmd.Query)
}

func TestLaunchCommand(t *testing.T) {
	cmd := Launch(291097, "fa6973b9", "series")
	assert.Equal(t, "/launch/291097", cmd.Path)
	assert.Equal(t, "fa6973b9", cmd.Query["ContentID"])
	assert.Equal(t, "series", cmd.Query["MediaType"])

	// Bare channel open carries no query.
	bare := Launch(837, "", "")
	assert.Empty(t, bare.Query)
}

func TestSendDoesNotBlockOnSlowDevice(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := New(Options{Address: srv.URL, Enabled: true, Timeout: 5 * time.Second})

	start := time.Now()
	c.Send(Keypress("Home"))
	elapsed := time.Since(start)

	// The server will not answer until the test ends; Send must already
	// be back.
	assert.Less(t, elapsed, 100*time.Millisecond,
		"Send blocked for %v on an unresponsive device", elapsed)
}

func TestSendRecordsSuccess(t *testing.T) {
	var gotPath atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.Path + "?" + r.URL.RawQuery)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(Options{Address: srv.URL, Enabled: true})
	c.Send(Launch(291097, "abc", "movie"))

	require.Eventually(t, func() bool {
		recs := c.Diagnostics(10)
		return len(recs) == 1 && recs[0].Status == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond, "success never recorded")

	url, _ := gotPath.Load().(string)
	assert.Contains(t, url, "/launch/291097")
	assert.Contains(t, url, "ContentID=abc")
	assert.Contains(t, url, "MediaType=movie")

	rec := c.Diagnostics(1)[0]
	assert.Equal(t, "launch/291097", rec.Command)
	assert.Empty(t, rec.Err)
	assert.False(t, rec.Dropped)
}

func TestSendRecordsFailureWithoutRaising(t *testing.T) {
	// Nothing listens here; the attempt must fail quietly.
	c := New(Options{Address: "127.0.0.1:1", Enabled: true, Timeout: 500 * time.Millisecond})

	c.Send(Keypress("Up")) // must not panic or return anything

	require.Eventually(t, func() bool {
		recs := c.Diagnostics(10)
		return len(recs) == 1 && recs[0].Err != ""
	}, 3*time.Second, 10*time.Millisecond, "failure never recorded")
}

func TestDisabledClientSendsNothing(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := New(Options{Address: srv.URL, Enabled: false})
	c.Send(Keypress("Home"))
	c.Send(Launch(12, "x", "movie"))

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, hits.Load(), "disabled client reached the network")
	assert.Empty(t, c.Diagnostics(10))
}

func TestButtonMashIsRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(Options{Address: srv.URL, Enabled: true})

	const mashed = 40
	start := time.Now()
	for i := 0; i < mashed; i++ {
		c.Send(Keypress("Right"))
	}
	// Dropping must be non-blocking too.
	assert.Less(t, time.Since(start), 200*time.Millisecond)

	require.Eventually(t, func() bool {
		return len(c.Diagnostics(mashed)) >= sendBurst
	}, 3*time.Second, 10*time.Millisecond)

	dropped := 0
	for _, rec := range c.Diagnostics(mashed) {
		if rec.Dropped {
			dropped++
		}
	}
	assert.Greater(t, dropped, 0, "burst of %d sends produced no drops", mashed)
}
