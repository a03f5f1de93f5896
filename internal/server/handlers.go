package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ankek/terraform-provider-infographic/internal/canvas"
	"github.com/ankek/terraform-provider-infographic/internal/catalog"
	"github.com/ankek/terraform-provider-infographic/internal/content"
	"github.com/ankek/terraform-provider-infographic/internal/generator"
	"github.com/ankek/terraform-provider-infographic/internal/style"
	"github.com/ankek/terraform-provider-infographic/internal/validation"
)

type listResponse[T any] struct {
	Data []T `json:"data"`
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	content.Document
	SuggestedTemplate catalog.ID `json:"suggested_template"`
}

type renderRequest struct {
	Text     string `json:"text"`
	Template string `json:"template,omitempty"`
	Palette  string `json:"palette,omitempty"`
	Font     string `json:"font,omitempty"`
	Glyph    string `json:"glyph,omitempty"`
	Size     string `json:"size,omitempty"`
	Format   string `json:"format,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, listResponse[catalog.Template]{Data: catalog.All()})
}

func (s *Server) handlePalettes(w http.ResponseWriter, r *http.Request) {
	var palettes []style.Palette
	if s.cfg.PaletteFile != "" {
		fromFile, err := style.LoadPaletteFile(r.Context(), s.cfg.PaletteFile)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		palettes = append(palettes, fromFile...)
	}
	palettes = append(palettes, s.cfg.Palettes...)
	palettes = append(palettes, style.Palettes()...)
	writeJSON(w, http.StatusOK, listResponse[style.Palette]{Data: palettes})
}

func (s *Server) handleGlyphs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, listResponse[style.GlyphCategory]{Data: style.GlyphCategories()})
}

func (s *Server) handleSizes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, listResponse[canvas.Size]{Data: canvas.Sizes()})
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := validation.ValidateText(req.Text); err != nil {
		s.writeError(w, r, err)
		return
	}

	m := content.Classify(strings.TrimSpace(req.Text))
	writeJSON(w, http.StatusOK, classifyResponse{
		Document:          m.Document(),
		SuggestedTemplate: catalog.Suggest(m).ID,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := validation.ValidateText(req.Text); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.gen.Render(r.Context(), s.generatorConfig(req))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	filename := fmt.Sprintf("infographic-%d.%s", time.Now().UnixMilli(), res.Format.Extension())
	h := w.Header()
	h.Set("Content-Type", res.Format.ContentType())
	h.Set("Content-Length", strconv.Itoa(len(res.Data)))
	h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	h.Set("ETag", strconv.Quote(res.SHA256))
	h.Set("X-Infographic-Template", string(res.Template.ID))
	h.Set("X-Infographic-Category", string(res.Model.Category()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.Data); err != nil {
		s.logger.Warn("write response", "err", err)
	}
}

// generatorConfig fills the blanks of req from the configuration
func (s *Server) generatorConfig(req renderRequest) generator.Config {
	return generator.Config{
		Text:           req.Text,
		Template:       or(req.Template, s.cfg.Template),
		Palette:        or(req.Palette, s.cfg.Palette),
		PaletteFile:    s.cfg.PaletteFile,
		CustomPalettes: s.cfg.Palettes,
		FontFamily:     or(req.Font, s.cfg.Font),
		Glyph:          or(req.Glyph, s.cfg.Glyph),
		Size:           or(req.Size, s.cfg.Size),
		Format:         or(req.Format, s.cfg.Format),
		Delay:          s.cfg.Delay.Duration,
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("decode request: %w", err)}
	}
	return nil
}

func or(v, fallback string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}
