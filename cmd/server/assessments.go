package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Skufu/vitalrisk/internal/intake"
	"github.com/Skufu/vitalrisk/internal/report"
)

type assessmentHandler struct {
	gen *report.Generator
	log *logrus.Logger
}

func (h *assessmentHandler) defaults(c *gin.Context) {
	c.JSON(http.StatusOK, intake.DefaultForm())
}

// create scores a submitted form. Fields missing from the body keep their
// form defaults; unknown fields are rejected so a misspelled key is never
// scored on its default.
func (h *assessmentHandler) create(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "markdown" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format", "formats": []string{"json", "markdown"}})
		return
	}

	form := intake.DefaultForm()
	if err := decodeStrict(c.Request.Body, &form); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "payload too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	profile, err := intake.FromForm(form)
	if err != nil {
		var verr *intake.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "validation_failed",
				"fields": verr.Fields,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	rep := h.gen.Generate(profile)
	h.log.WithFields(logrus.Fields{
		"request_id":      c.GetString(requestIDKey),
		"report_id":       rep.ID,
		"overall_level":   rep.Assessment.OverallRisk.Level,
		"score":           rep.Assessment.OverallRisk.Score,
		"recommendations": len(rep.Assessment.Recommendations),
	}).Info("assessment generated")

	if format == "markdown" {
		var buf bytes.Buffer
		if err := report.NewMarkdownFormatter().Format(&buf, rep); err != nil {
			h.log.WithError(err).Error("render markdown report")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
			return
		}
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", buf.Bytes())
		return
	}

	c.JSON(http.StatusOK, rep)
}

func decodeStrict(body io.Reader, form *intake.Form) error {
	if body == nil {
		return io.EOF
	}
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	return dec.Decode(form)
}
