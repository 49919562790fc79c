package notifications

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEventuallyTimeout = time.Second
	testPollInterval      = 10 * time.Millisecond
)

func TestHub_JoinScopeRoutesBroadcasts(t *testing.T) {
	hub := NewHub()

	tvClient, err := hub.Register(0, nil)
	require.NoError(t, err)
	radioClient, err := hub.Register(0, nil)
	require.NoError(t, err)

	require.NoError(t, hub.JoinScope(tvClient, "live-tv"))
	require.NoError(t, hub.JoinScope(radioClient, "live-radio"))

	hub.Broadcast("live-tv", `{"type":"comment_created"}`)

	select {
	case msg := <-tvClient.Send:
		assert.Contains(t, string(msg), "comment_created")
	default:
		t.Fatal("tv subscriber did not receive the scope event")
	}

	select {
	case <-radioClient.Send:
		t.Fatal("radio subscriber received an event for another scope")
	default:
	}

	_ = hub.Shutdown(context.Background())
}

func TestHub_JoinScopeReplacesPreviousScope(t *testing.T) {
	hub := NewHub()

	client, err := hub.Register(0, nil)
	require.NoError(t, err)

	require.NoError(t, hub.JoinScope(client, "live-tv"))
	require.NoError(t, hub.JoinScope(client, "42"))

	assert.Equal(t, "42", hub.Scope(client))
	assert.Equal(t, 0, hub.ScopeCount("live-tv"))
	assert.Equal(t, 1, hub.ScopeCount("42"))

	_ = hub.Shutdown(context.Background())
}

func TestHub_JoinScopeRejectsInvalidScope(t *testing.T) {
	hub := NewHub()

	client, err := hub.Register(0, nil)
	require.NoError(t, err)

	assert.Error(t, hub.JoinScope(client, "live-web"))
	assert.Error(t, hub.JoinScope(client, "007"))
	assert.Equal(t, "", hub.Scope(client))

	_ = hub.Shutdown(context.Background())
}

func TestHub_UnregisterLeavesScopeRoom(t *testing.T) {
	hub := NewHub()

	client, err := hub.Register(7, nil)
	require.NoError(t, err)
	require.NoError(t, hub.JoinScope(client, "live-tv"))

	hub.UnregisterClient(client)
	assert.Equal(t, 0, hub.ScopeCount("live-tv"))

	// Unregistering twice is harmless.
	hub.UnregisterClient(client)

	_ = hub.Shutdown(context.Background())
}

func TestHub_BroadcastAllReachesEveryScope(t *testing.T) {
	hub := NewHub()

	tvClient, err := hub.Register(0, nil)
	require.NoError(t, err)
	idleClient, err := hub.Register(0, nil)
	require.NoError(t, err)
	require.NoError(t, hub.JoinScope(tvClient, "live-tv"))

	hub.BroadcastAll(`{"type":"channel_liked"}`)

	for _, c := range []*Client{tvClient, idleClient} {
		select {
		case msg := <-c.Send:
			assert.Contains(t, string(msg), "channel_liked")
		default:
			t.Fatal("client missed the site-wide event")
		}
	}

	_ = hub.Shutdown(context.Background())
}

func TestHub_HandleClientMessageJoins(t *testing.T) {
	hub := NewHub()

	client, err := hub.Register(0, nil)
	require.NoError(t, err)

	client.IncomingHandler(client, []byte(`{"action":"join","scope":"live-radio"}`))
	assert.Equal(t, "live-radio", hub.Scope(client))

	client.IncomingHandler(client, []byte(`{"action":"leave"}`))
	assert.Equal(t, "", hub.Scope(client))

	client.IncomingHandler(client, []byte(`not json`))
	select {
	case msg := <-client.Send:
		assert.Contains(t, string(msg), "bad_command")
	default:
		t.Fatal("malformed command did not produce an error frame")
	}

	_ = hub.Shutdown(context.Background())
}

func TestHub_StartWiringForwardsScopeEvents(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	hub := NewHub()
	notifier := NewNotifier(rdb)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, hub.StartWiring(ctx, notifier))

	client, err := hub.Register(0, nil)
	require.NoError(t, err)
	require.NoError(t, hub.JoinScope(client, "live-tv"))

	var received int32
	go func() {
		for range client.Send {
			atomic.AddInt32(&received, 1)
		}
	}()

	require.NoError(t, notifier.PublishScope(context.Background(), "live-tv", `{"type":"comment_created"}`))
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&received) >= 1
	}, testEventuallyTimeout, testPollInterval)

	_ = hub.Shutdown(context.Background())
}
