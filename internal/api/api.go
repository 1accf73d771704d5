package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/tcfw/starnotary/internal/node"
)

type APIHandler interface {
	Setup(*Api, *mux.Router) error
}

var (
	reg = []func() APIHandler{}
)

type BaseHandler struct {
	a *Api
}

func (b *BaseHandler) Setup(a *Api, _ *mux.Router) error {
	b.a = a
	return nil
}

type Api struct {
	n *node.Node
	r *mux.Router
	s *http.Server
}

func NewAPI(n *node.Node) (*Api, error) {
	a := &Api{
		n: n,
		r: newRouter(n.Logger()),
	}

	for _, mk := range reg {
		if err := mk().Setup(a, a.r); err != nil {
			return nil, errors.Wrap(err, "registering handler")
		}
	}

	a.s = &http.Server{
		Handler:           a.r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return a, nil
}

func (a *Api) Handler() http.Handler {
	return a.r
}

func (a *Api) ListenAndServe(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	return a.Serve(lis)
}

func (a *Api) Serve(lis net.Listener) error {
	if err := a.s.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (a *Api) Shutdown(ctx context.Context) error {
	return a.s.Shutdown(ctx)
}
