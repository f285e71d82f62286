package app

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/GlebRadaev/digimon/internal/config"
	"github.com/stretchr/testify/suite"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) freeAddress() string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	addr := l.Addr().String()
	s.Require().NoError(l.Close())
	return addr
}

func (s *ApplicationSuite) TestWait_GracefulShutdown() {
	ctx, cancel := context.WithCancel(context.Background())
	s.app.cfg = &config.Config{Address: s.freeAddress()}

	s.app.startHTTPServer(ctx, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	var resp *http.Response
	s.Eventually(func() bool {
		var err error
		resp, err = http.Get("http://" + s.app.cfg.Address)
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	s.Require().NotNil(resp)
	s.Equal(http.StatusNoContent, resp.StatusCode)
	s.NoError(resp.Body.Close())

	cancel()
	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestWait_ListenError() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	defer busy.Close()

	s.app.cfg = &config.Config{Address: busy.Addr().String()}
	s.app.startHTTPServer(ctx, http.NotFoundHandler())

	err = s.app.Wait(ctx, cancel)
	s.Require().Error(err)
	s.Contains(err.Error(), "http server exited with error")
	s.ErrorIs(ctx.Err(), context.Canceled)
}

func (s *ApplicationSuite) TestWait_WithoutServer() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}
