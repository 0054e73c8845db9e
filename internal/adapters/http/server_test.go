package http

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"gateguard/internal/config"
	"gateguard/internal/platform/logger"
)

type ServerTestSuite struct {
	suite.Suite
	cfg *config.HttpConfig
}

func (s *ServerTestSuite) SetupTest() {
	s.cfg = &config.HttpConfig{
		Server: config.HttpServerConfig{
			Host:              "127.0.0.1",
			Port:              0,
			ReadTimeout:       5,
			ReadHeaderTimeout: 2,
			WriteTimeout:      5,
			IdleTimeout:       30,
			ShutdownTimeout:   3,
		},
	}
}

func (s *ServerTestSuite) startServer(handler http.Handler) *Server {
	server := NewServer(s.cfg, logger.NewNop(), handler)
	s.Require().NoError(server.Start(context.Background()))
	s.T().Cleanup(func() { _ = server.Stop(context.Background()) })
	return server
}

func (s *ServerTestSuite) TestNewServer() {
	s.cfg.Server.Port = 8080
	handler := http.NewServeMux()

	server := NewServer(s.cfg, logger.NewNop(), handler)

	s.Assert().Equal("127.0.0.1:8080", server.Addr())
	s.Assert().Equal(handler, server.server.Handler)
	s.Assert().Equal(5*time.Second, server.server.ReadTimeout)
	s.Assert().Equal(2*time.Second, server.server.ReadHeaderTimeout)
	s.Assert().Equal(5*time.Second, server.server.WriteTimeout)
	s.Assert().Equal(30*time.Second, server.server.IdleTimeout)
	s.Assert().Equal(maxHeaderBytes, server.server.MaxHeaderBytes)
	s.Assert().Equal(3*time.Second, server.shutdownTimeout)
}

func (s *ServerTestSuite) TestNewServer_EmptyHost() {
	s.cfg.Server.Host = ""
	s.cfg.Server.Port = 9000

	s.Assert().Equal(":9000", NewServer(s.cfg, logger.NewNop(), http.NewServeMux()).Addr())
}

func (s *ServerTestSuite) TestStart_ServesOnBoundAddress() {
	mux := http.NewServeMux()
	mux.HandleFunc("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := s.startServer(mux)
	s.Assert().NotEqual("127.0.0.1:0", server.Addr())

	resp, err := http.Get("http://" + server.Addr() + "/health/live")
	s.Require().NoError(err)
	s.Assert().Equal(http.StatusOK, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())
}

func (s *ServerTestSuite) TestStart_PortInUse() {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	defer func() { _ = occupied.Close() }()

	s.cfg.Server.Port = occupied.Addr().(*net.TCPAddr).Port
	server := NewServer(s.cfg, logger.NewNop(), http.NewServeMux())

	err = server.Start(context.Background())

	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "listen on 127.0.0.1:")
}

func (s *ServerTestSuite) TestStart_CancelledContextShutsDown() {
	server := NewServer(s.cfg, logger.NewNop(), http.NewServeMux())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.Assert().NoError(server.Start(ctx))

	_, err := http.Get("http://" + server.Addr() + "/")
	s.Assert().Error(err)
}

func (s *ServerTestSuite) TestStop_WaitsForInFlightRequest() {
	released := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		close(released)
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusAccepted)
	})
	server := s.startServer(mux)

	done := make(chan int, 1)
	go func() {
		resp, err := http.Get("http://" + server.Addr() + "/slow")
		if err != nil {
			done <- 0
			return
		}
		_ = resp.Body.Close()
		done <- resp.StatusCode
	}()

	<-released
	s.Require().NoError(server.Stop(context.Background()))
	s.Assert().Equal(http.StatusAccepted, <-done)
}

func (s *ServerTestSuite) TestStop_ExpiredContext() {
	block := make(chan struct{})
	defer close(block)
	started := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/hang", func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-block
	})
	server := s.startServer(mux)

	go func() {
		if resp, err := http.Get("http://" + server.Addr() + "/hang"); err == nil {
			_ = resp.Body.Close()
		}
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := server.Stop(ctx)

	s.Require().Error(err)
	s.Assert().ErrorIs(err, context.DeadlineExceeded)
}

func (s *ServerTestSuite) TestStop_NilServer() {
	server := &Server{logger: logger.NewNop()}

	s.Assert().NoError(server.Stop(context.Background()))
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
