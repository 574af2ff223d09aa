package node

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SystemBuilders/dll/internal/config"
	"github.com/SystemBuilders/dll/internal/routing"
	"github.com/SystemBuilders/dll/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckValidPort(t *testing.T) {
	tests := []struct {
		port    string
		wantErr bool
	}{
		{"61111", false},
		{"1", false},
		{"65535", false},
		{"65536", true},
		{"0", true},
		{"-5", true},
		{"http", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.port, func(t *testing.T) {
			err := checkValidPort(tt.port)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	s := store.NewListStore(zerolog.Nop())

	_, err := NewServer(s, config.NewSimpleConfig("127.0.0.1", "99999"))
	assert.Error(t, err)

	server, err := NewServer(s, config.NewSimpleConfig("127.0.0.1", "1234"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:1234", server.Addr)

	server6, err := NewServer(s, config.NewSimpleConfig("::1", "1234"))
	require.NoError(t, err)
	assert.Equal(t, "[::1]:1234", server6.Addr)

	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/lists", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	var res routing.CreateRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Len(t, s.IDs(), 1)
	assert.Equal(t, s.IDs()[0].String(), res.ID)
}

func TestStartReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	_, port, err := net.SplitHostPort(busy.Addr().String())
	require.NoError(t, err)

	s := store.NewListStore(zerolog.Nop())
	errc := make(chan error, 1)
	go func() {
		errc <- Start(s, config.NewSimpleConfig("127.0.0.1", port), zerolog.Nop())
	}()

	select {
	case err := <-errc:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after the listener failed")
	}
}
