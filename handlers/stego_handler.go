// Package handlers is made to handle requests
package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"imagestego-backend/imageutil"
	"imagestego-backend/models"
	"imagestego-backend/stego"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 32 << 20 // 32MB limit

type StegoHandler struct{}

func NewStegoHandler() *StegoHandler {
	return &StegoHandler{}
}

func (h *StegoHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Steganography API is running",
		"version": "1.0.0",
	})
}

// Capacity reports how many bits/bytes the uploaded image can carry.
func (h *StegoHandler) Capacity(c *gin.Context) {
	img, ok := h.openImage(c)
	if !ok {
		return
	}

	capBits, capBytes := stego.Capacity(img)
	c.JSON(http.StatusOK, models.CapacityResponse{
		CapacityBits:  capBits,
		CapacityBytes: capBytes,
	})
}

// Encode embeds a text or file payload into the uploaded image and
// streams the resulting stego PNG back as an attachment.
func (h *StegoHandler) Encode(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadBytes); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("Failed to parse form: %v", err),
		})
		return
	}

	mode := c.DefaultPostForm("mode", "text")

	var payload []byte
	var payloadName string
	switch mode {
	case "text":
		payload = []byte(c.PostForm("text"))
		payloadName = "message.txt"
	case "file":
		payloadFile, payloadHeader, err := c.Request.FormFile("payload")
		if err != nil || payloadHeader.Filename == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "No payload file uploaded",
			})
			return
		}
		defer payloadFile.Close()

		payload, err = io.ReadAll(payloadFile)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Failed to read payload file: %v", err),
			})
			return
		}
		payloadName = filepath.Base(payloadHeader.Filename)
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid mode",
		})
		return
	}

	img, ok := h.openImage(c)
	if !ok {
		return
	}

	cover := imageutil.ToRGB(img)
	stegoImg, stats, err := stego.Encode(img, payload, payloadName)
	if err != nil {
		var capErr *stego.CapacityError
		if errors.As(err, &capErr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: fmt.Sprintf("Encoding failed: %v", err),
		})
		return
	}

	var out bytes.Buffer
	if err := imageutil.EncodePNG(&out, stegoImg); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: fmt.Sprintf("Encoding failed: %v", err),
		})
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename=stego.png`)
	c.Header("Content-Length", strconv.Itoa(out.Len()))

	// Metadata about the steganography operation
	c.Header("X-Stego-Method", "Image LSB (1 bit per RGB channel)")
	c.Header("X-Stego-Capacity", strconv.Itoa(stats.CapacityBits))
	c.Header("X-Stego-Used-Bits", strconv.Itoa(stats.UsedBits))
	c.Header("X-Stego-PSNR", fmt.Sprintf("%.2f", imageutil.PSNR(cover, stegoImg)))

	c.Data(http.StatusOK, "image/png", out.Bytes())
}

// Decode recovers an embedded payload and streams it back as an
// attachment named by the embedded filename.
func (h *StegoHandler) Decode(c *gin.Context) {
	img, ok := h.openImage(c)
	if !ok {
		return
	}

	filename, payload, err := stego.Decode(img)
	if err != nil {
		// Decode failures mean "no hidden data found", not a bad request
		if errors.Is(err, stego.ErrNoStegoHeader) || errors.Is(err, stego.ErrHeaderTooShort) ||
			errors.Is(err, stego.ErrCorruptHeader) || errors.Is(err, stego.ErrInsufficientData) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: fmt.Sprintf("Decoding failed: %v", err),
		})
		return
	}

	safeName := filename
	if safeName == "" {
		safeName = "payload.bin"
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", safeName))
	c.Header("Content-Length", strconv.Itoa(len(payload)))

	c.Data(http.StatusOK, "application/octet-stream", payload)
}

// Detect scores the uploaded image for likely LSB embedding.
func (h *StegoHandler) Detect(c *gin.Context) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "No image uploaded"})
		return
	}
	defer file.Close()

	img, _, err := imageutil.DecodeImage(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: fmt.Sprintf("Detection failed: %v", err),
		})
		return
	}

	score, details := stego.Detect(img)
	c.JSON(http.StatusOK, models.DetectResponse{
		SuspicionScore: score,
		Details:        details,
	})
}

// openImage pulls the multipart "image" field and decodes it, writing
// the error response itself when either step fails.
func (h *StegoHandler) openImage(c *gin.Context) (image.Image, bool) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "No image uploaded"})
		return nil, false
	}
	defer file.Close()

	img, _, err := imageutil.DecodeImage(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return nil, false
	}
	return img, true
}
