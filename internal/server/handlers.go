// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/zimsendapi/docs/internal/render"
)

var contentTypes = map[render.Format]string{
	render.FormatJSON: "application/json",
	render.FormatYAML: "application/yaml",
	render.FormatTS:   "text/typescript; charset=utf-8",
}

// handleSidebars returns the whole sidebar file in the requested encoding.
func (s *Server) handleSidebars(w http.ResponseWriter, r *http.Request) {
	format, err := render.ParseFormat(mux.Vars(r)["format"])
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.build(r.Context())
	if err != nil {
		s.writeBuildError(w, err)
		return
	}
	out, err := render.Encode(render.FromTree(res.Tree), format)
	if err != nil {
		s.writeBuildError(w, err)
		return
	}

	w.Header().Set(BuildIDHeader, res.ID)
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// handleSidebar returns the items of one sidebar.
func (s *Server) handleSidebar(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	res, err := s.build(r.Context())
	if err != nil {
		s.writeBuildError(w, err)
		return
	}
	w.Header().Set(BuildIDHeader, res.ID)

	sb, ok := res.Tree.Sidebar(name)
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("sidebar %q not found", name))
		return
	}
	s.writeJSON(w, http.StatusOK, render.ToItems(sb.Items))
}

type operationView struct {
	DocID       string `json:"doc_id"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	Label       string `json:"label"`
	OperationID string `json:"operation_id,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty"`
}

type tagView struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Overview    string          `json:"overview"`
	Operations  []operationView `json:"operations"`
}

// handleOperations summarizes the catalog with the page id of every entry.
func (s *Server) handleOperations(w http.ResponseWriter, r *http.Request) {
	res, err := s.build(r.Context())
	if err != nil {
		s.writeBuildError(w, err)
		return
	}
	w.Header().Set(BuildIDHeader, res.ID)

	opts := res.Synth
	tags := make([]tagView, 0, len(res.Catalog.Tags))
	for _, tag := range res.Catalog.Tags {
		tv := tagView{
			Name:        tag.Name,
			Description: tag.Description,
			Overview:    opts.OverviewID(tag.Name),
			Operations:  make([]operationView, 0, len(tag.Operations)),
		}
		for _, op := range tag.Operations {
			tv.Operations = append(tv.Operations, operationView{
				DocID:       opts.DocID(op.ID),
				Method:      string(op.Method),
				Path:        op.Path,
				Label:       op.Label,
				OperationID: op.OperationID,
				Deprecated:  op.Deprecated,
			})
		}
		tags = append(tags, tv)
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"title":   res.Catalog.Title,
		"version": res.Catalog.Version,
		"count":   res.Catalog.OperationCount(),
		"tags":    tags,
	})
}

// handleSchema returns the JSON Schema of the sidebar file.
func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, render.Schema())
}

// handleHealth reports liveness. It does not build.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
}
