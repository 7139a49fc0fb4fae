package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fedimser/GroupEnumerator/cayley"
	"github.com/fedimser/GroupEnumerator/fingroup"
	"github.com/fedimser/GroupEnumerator/finfield"
	"github.com/fedimser/GroupEnumerator/isocheck"
)

// GroupJSON describes one group.
type GroupJSON struct {
	Index         int     `json:"index"`
	Order         int     `json:"order"`
	Abelian       bool    `json:"abelian"`
	ElementOrders []int   `json:"element_orders"`
	Table         [][]int `json:"table"`
}

// GroupsJSON is the body of GET /groups/{order}.
type GroupsJSON struct {
	Order  int         `json:"order"`
	Count  int         `json:"count"`
	Cached bool        `json:"cached"`
	Groups []GroupJSON `json:"groups"`
}

// IsoRequest is the body of POST /isomorphic.
type IsoRequest struct {
	A [][]int `json:"a"`
	B [][]int `json:"b"`
}

// IsoResponse answers POST /isomorphic. Mapping[i] is the image of element
// i of A when the groups are isomorphic.
type IsoResponse struct {
	Isomorphic bool  `json:"isomorphic"`
	Mapping    []int `json:"mapping,omitempty"`
}

// FieldJSON is the body of GET /fields/{q}.
type FieldJSON struct {
	Cardinality    int      `json:"cardinality"`
	Characteristic int      `json:"characteristic"`
	Degree         int      `json:"degree"`
	Modulus        string   `json:"modulus"`
	Elements       []string `json:"elements"`
}

func groupJSON(i int, g *fingroup.Group) GroupJSON {
	orders := make([]int, g.Order())
	for x := range orders {
		orders[x] = g.ElementOrder(x)
	}

	return GroupJSON{
		Index:         i,
		Order:         g.Order(),
		Abelian:       g.IsAbelian(),
		ElementOrders: orders,
		Table:         g.Table(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// intParam parses a path parameter that must be ≥ lo.
func intParam(r *http.Request, name string, lo int) (int, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo {
		return 0, fmt.Errorf("%s: want an integer ≥ %d, got %q", name, lo, raw)
	}

	return v, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// groupsFor resolves {order} and enumerates; it writes the error response
// itself and returns ok=false on failure.
func (s *Server) groupsFor(w http.ResponseWriter, r *http.Request) (order int, groups []*fingroup.Group, cached, ok bool) {
	order, err := intParam(r, "order", 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return 0, nil, false, false
	}
	if order > s.maxOrder {
		writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("order %d exceeds the limit %d", order, s.maxOrder))
		return 0, nil, false, false
	}
	l, err := s.cat.Fetch(r.Context(), order)
	if err != nil {
		s.logger.Error("enumeration failed", "order", order, "err", err, "id", RequestIDFrom(r.Context()))
		writeError(w, http.StatusInternalServerError, err)
		return 0, nil, false, false
	}

	return order, l.Groups, l.Hit, true
}

// groupAt resolves {order}/{index}.
func (s *Server) groupAt(w http.ResponseWriter, r *http.Request) (int, *fingroup.Group, bool) {
	_, groups, _, ok := s.groupsFor(w, r)
	if !ok {
		return 0, nil, false
	}
	idx, err := intParam(r, "index", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return 0, nil, false
	}
	if idx >= len(groups) {
		writeError(w, http.StatusNotFound, fmt.Errorf("index %d: only %d groups", idx, len(groups)))
		return 0, nil, false
	}

	return idx, groups[idx], true
}

func (s *Server) handleGroups(w http.ResponseWriter, r *http.Request) {
	order, groups, cached, ok := s.groupsFor(w, r)
	if !ok {
		return
	}
	body := GroupsJSON{Order: order, Count: len(groups), Cached: cached, Groups: make([]GroupJSON, len(groups))}
	for i, g := range groups {
		body.Groups[i] = groupJSON(i, g)
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleGroup(w http.ResponseWriter, r *http.Request) {
	idx, g, ok := s.groupAt(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, groupJSON(idx, g))
}

func (s *Server) handleCayley(w http.ResponseWriter, r *http.Request) {
	idx, g, ok := s.groupAt(w, r)
	if !ok {
		return
	}
	dot := cayley.ToDOT(g, cayley.GeneratingSet(g), cayley.Options{
		Name:                fmt.Sprintf("G%d_%d", g.Order(), idx),
		CollapseInvolutions: true,
	})
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	_, _ = w.Write([]byte(dot))
}

func (s *Server) handleIsomorphic(w http.ResponseWriter, r *http.Request) {
	var req IsoRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
		return
	}
	if len(req.A) > MaxIsoOrder || len(req.B) > MaxIsoOrder {
		writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("tables above order %d are not accepted", MaxIsoOrder))
		return
	}
	a, err := fingroup.New(req.A)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("a: %w", err))
		return
	}
	b, err := fingroup.New(req.B)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("b: %w", err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.isoTimeout)
	defer cancel()
	p, ok, err := isocheck.IsomorphismContext(ctx, a, b)
	if err != nil {
		s.logger.Warn("isomorphism search stopped", "order", a.Order(), "err", err, "id", RequestIDFrom(r.Context()))
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}

	var resp IsoResponse
	if ok {
		resp = IsoResponse{Isomorphic: true, Mapping: p.Slice()}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleField(w http.ResponseWriter, r *http.Request) {
	q, err := intParam(r, "q", 2)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if q > MaxFieldOrder {
		writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("q %d exceeds the limit %d", q, MaxFieldOrder))
		return
	}
	f, err := finfield.New(q)
	if errors.Is(err, finfield.ErrNoSuchField) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	body := FieldJSON{
		Cardinality:    f.Cardinality(),
		Characteristic: f.Characteristic(),
		Degree:         f.Degree(),
		Modulus:        f.Modulus().String(),
		Elements:       make([]string, q),
	}
	for i := range body.Elements {
		body.Elements[i] = f.ElementString(i)
	}
	writeJSON(w, http.StatusOK, body)
}
