package server

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	libstore "github.com/eko/gocache/lib/v4/store"
	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"

	"github.com/lueurxax/forwardlist/internal/store"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock_repo.go -package=mocks

type repo interface {
	Keys(ctx context.Context) []string
	Snapshot(ctx context.Context, key string) ([]string, uint64, error)
	Replace(ctx context.Context, key string, values []string) uint64
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, key string) error
	PushFront(ctx context.Context, key, value string) int
	PopFront(ctx context.Context, key string) (string, error)
	InsertAfter(ctx context.Context, key string, after int, value string) (int, error)
	EraseAfter(ctx context.Context, key string, after int) (string, error)
	Swap(ctx context.Context, a, b string) error
	Copy(ctx context.Context, dst, src string) error
	Compare(ctx context.Context, a, b string) (int, error)
}

type listResponse struct {
	Key      string   `json:"key"`
	Revision uint64   `json:"revision"`
	Length   int      `json:"length"`
	Values   []string `json:"values"`
}

type keysResponse struct {
	Keys []string `json:"keys"`
}

type replaceRequest struct {
	Values []string `json:"values"`
}

type revisionResponse struct {
	Revision uint64 `json:"revision"`
}

type pushRequest struct {
	Value string `json:"value"`
}

type insertRequest struct {
	Value string `json:"value"`
	After *int   `json:"after"` // element index, nil inserts at the front
}

type swapRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

type copyRequest struct {
	Source string `json:"source"`
}

type lengthResponse struct {
	Length int `json:"length"`
}

type valueResponse struct {
	Value string `json:"value"`
}

type compareResponse struct {
	Equal      bool `json:"equal"`
	Comparison int  `json:"comparison"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) health(ctx *fasthttp.RequestCtx) {
	ctx.SetBodyString("ok")
}

func (s *server) listKeys(ctx *fasthttp.RequestCtx) {
	s.writeJSON(ctx, fasthttp.StatusOK, keysResponse{Keys: s.Keys(ctx)})
}

func (s *server) getList(ctx *fasthttp.RequestCtx) {
	key := ctx.UserValue(keyParam).(string)

	values, rev, err := s.Snapshot(ctx, key)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	// Responses are cached per revision, so an entry can never go stale.
	cacheKey := fmt.Sprintf("%s@%d", key, rev)
	if data, cacheErr := s.payloads.Get(ctx, cacheKey); cacheErr == nil {
		ctx.SetContentType(contentTypeJSON)
		ctx.SetBody(data)

		return
	}

	data, err := jsoniter.Marshal(listResponse{Key: key, Revision: rev, Length: len(values), Values: values})
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	if err = s.payloads.Set(ctx, cacheKey, data, libstore.WithCost(int64(len(data)))); err != nil {
		s.log.WithError(err).Debug("payload cache set failed")
	}

	ctx.SetContentType(contentTypeJSON)
	ctx.SetBody(data)
}

func (s *server) replaceList(ctx *fasthttp.RequestCtx) {
	key := ctx.UserValue(keyParam).(string)

	req := replaceRequest{}
	if err := jsoniter.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeError(ctx, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, revisionResponse{Revision: s.Replace(ctx, key, req.Values)})
}

func (s *server) deleteList(ctx *fasthttp.RequestCtx) {
	key := ctx.UserValue(keyParam).(string)

	if err := s.Delete(ctx, key); err != nil {
		s.writeError(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (s *server) clearList(ctx *fasthttp.RequestCtx) {
	key := ctx.UserValue(keyParam).(string)

	if err := s.Clear(ctx, key); err != nil {
		s.writeError(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (s *server) pushFront(ctx *fasthttp.RequestCtx) {
	key := ctx.UserValue(keyParam).(string)

	req := pushRequest{}
	if err := jsoniter.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeError(ctx, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, lengthResponse{Length: s.PushFront(ctx, key, req.Value)})
}

func (s *server) popFront(ctx *fasthttp.RequestCtx) {
	key := ctx.UserValue(keyParam).(string)

	removed, err := s.PopFront(ctx, key)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, valueResponse{Value: removed})
}

func (s *server) insertItem(ctx *fasthttp.RequestCtx) {
	key := ctx.UserValue(keyParam).(string)

	req := insertRequest{}
	if err := jsoniter.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeError(ctx, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	after := store.FrontAnchor
	if req.After != nil {
		after = *req.After
	}

	length, err := s.InsertAfter(ctx, key, after, req.Value)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, lengthResponse{Length: length})
}

func (s *server) eraseItem(ctx *fasthttp.RequestCtx) {
	key := ctx.UserValue(keyParam).(string)

	after := store.FrontAnchor

	if raw := ctx.QueryArgs().Peek(afterParam); len(raw) > 0 {
		parsed, err := strconv.Atoi(string(raw))
		if err != nil {
			s.writeError(ctx, fmt.Errorf("%w: %v", errBadRequest, err))
			return
		}

		after = parsed
	}

	removed, err := s.EraseAfter(ctx, key, after)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, valueResponse{Value: removed})
}

func (s *server) copyList(ctx *fasthttp.RequestCtx) {
	key := ctx.UserValue(keyParam).(string)

	req := copyRequest{}
	if err := jsoniter.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeError(ctx, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	if err := s.Copy(ctx, key, req.Source); err != nil {
		s.writeError(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (s *server) swapLists(ctx *fasthttp.RequestCtx) {
	req := swapRequest{}
	if err := jsoniter.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeError(ctx, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	if err := s.Swap(ctx, req.A, req.B); err != nil {
		s.writeError(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (s *server) compareLists(ctx *fasthttp.RequestCtx) {
	a := string(ctx.QueryArgs().Peek("a"))
	b := string(ctx.QueryArgs().Peek("b"))

	if a == "" || b == "" {
		s.writeError(ctx, fmt.Errorf("%w: query params a and b are required", errBadRequest))
		return
	}

	// both fields must derive from a single comparison
	res, err := s.Compare(ctx, a, b)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, compareResponse{Equal: res == 0, Comparison: res})
}

func (s *server) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	data, err := jsoniter.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetStatusCode(status)
	ctx.SetContentType(contentTypeJSON)
	ctx.SetBody(data)
}

func (s *server) writeError(ctx *fasthttp.RequestCtx, err error) {
	status := fasthttp.StatusInternalServerError

	switch {
	case errors.Is(err, store.ErrListNotFound):
		status = fasthttp.StatusNotFound
	case errors.Is(err, store.ErrIndexOutOfRange),
		errors.Is(err, store.ErrEmptyList),
		errors.Is(err, store.ErrSameList),
		errors.Is(err, errBadRequest):
		status = fasthttp.StatusBadRequest
	}

	s.log.WithError(err).WithField("status", status).Debug("request failed")
	s.writeJSON(ctx, status, errorResponse{Error: err.Error()})
}
