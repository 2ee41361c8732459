package server

import (
	"context"

	"github.com/buaazp/fasthttprouter"
	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/lueurxax/forwardlist/internal/log"
)

const (
	serverName      = "listd"
	keyParam        = "key"
	afterParam      = "after"
	contentTypeJSON = "application/json"

	payloadCacheCounters = 10000
	payloadCacheMaxCost  = 64 << 20
	payloadCacheBuffer   = 64
)

// Server exposes the list store over HTTP.
type Server interface {
	ListenAndServe(ctx context.Context) error
}

type server struct {
	cfg *Config

	repo
	payloads *cache.Cache[[]byte]

	log log.Logger
}

func (s *server) ListenAndServe(ctx context.Context) error {
	srv := &fasthttp.Server{
		Handler: s.handler(),
		Name:    serverName,
	}

	go func() {
		<-ctx.Done()

		if err := srv.Shutdown(); err != nil {
			s.log.WithError(err).Error("shutdown error")
		}
	}()

	s.log.WithField("addr", s.cfg.ListenAddr).Info("listening")

	return srv.ListenAndServe(s.cfg.ListenAddr)
}

func (s *server) handler() fasthttp.RequestHandler {
	r := fasthttprouter.New()

	r.GET("/healthz", s.health)
	r.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()))

	r.GET("/lists", s.listKeys)
	r.GET("/lists/:key", s.getList)
	r.PUT("/lists/:key", s.replaceList)
	r.DELETE("/lists/:key", s.deleteList)

	r.POST("/lists/:key/front", s.pushFront)
	r.DELETE("/lists/:key/front", s.popFront)
	r.POST("/lists/:key/items", s.insertItem)
	r.DELETE("/lists/:key/items", s.eraseItem)
	r.POST("/lists/:key/clear", s.clearList)
	r.POST("/lists/:key/copy", s.copyList)

	r.POST("/swap", s.swapLists)
	r.GET("/compare", s.compareLists)

	return r.Handler
}

func New(cfg *Config, st repo, logger log.Logger) (Server, error) {
	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: payloadCacheCounters,
		MaxCost:     payloadCacheMaxCost,
		BufferItems: payloadCacheBuffer,
	})
	if err != nil {
		return nil, err
	}

	return &server{
		cfg:      cfg,
		repo:     st,
		payloads: cache.New[[]byte](ristretto_store.NewRistretto(client)),
		log:      logger,
	}, nil
}
