package handlers

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"imagestego-backend/models"

	"github.com/gin-gonic/gin"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewStegoHandler()
	api := router.Group("/api/v1/stego")
	api.POST("/capacity", h.Capacity)
	api.POST("/encode", h.Encode)
	api.POST("/decode", h.Decode)
	api.POST("/detect", h.Detect)
	return router
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		img.Pix[i*4] = uint8(i * 7)
		img.Pix[i*4+1] = uint8(i * 13)
		img.Pix[i*4+2] = uint8(i * 29)
		img.Pix[i*4+3] = 255
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

type formFile struct {
	field, name string
	data        []byte
}

func multipartRequest(t *testing.T, url string, fields map[string]string, files ...formFile) *http.Request {
	t.Helper()
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.field, f.name)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := fw.Write(f.data); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestCapacityEndpoint(t *testing.T) {
	router := newRouter()
	req := multipartRequest(t, "/api/v1/stego/capacity", nil,
		formFile{field: "image", name: "test.png", data: testPNG(t, 4, 4)})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var resp models.CapacityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.CapacityBits != 48 || resp.CapacityBytes != 6 {
		t.Errorf("capacity = %d bits / %d bytes, want 48 / 6", resp.CapacityBits, resp.CapacityBytes)
	}
}

func TestCapacityEndpointNoImage(t *testing.T) {
	router := newRouter()
	req := multipartRequest(t, "/api/v1/stego/capacity", map[string]string{"unused": "1"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestEncodeDecodeRoundTripHTTP(t *testing.T) {
	router := newRouter()

	req := multipartRequest(t, "/api/v1/stego/encode",
		map[string]string{"mode": "text", "text": "hello over http"},
		formFile{field: "image", name: "cover.png", data: testPNG(t, 40, 40)})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("encode status = %d, body = %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if rec.Header().Get("X-Stego-PSNR") == "" {
		t.Error("X-Stego-PSNR header missing")
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "stego.png") {
		t.Errorf("Content-Disposition = %q, want attachment stego.png", cd)
	}

	stegoPNG, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read stego body: %v", err)
	}

	req = multipartRequest(t, "/api/v1/stego/decode", nil,
		formFile{field: "image", name: "stego.png", data: stegoPNG})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("decode status = %d, body = %s", rec.Code, rec.Body)
	}
	if got := rec.Body.String(); got != "hello over http" {
		t.Errorf("payload = %q, want %q", got, "hello over http")
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "message.txt") {
		t.Errorf("Content-Disposition = %q, want message.txt", cd)
	}
}

func TestEncodeFileMode(t *testing.T) {
	router := newRouter()
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}

	req := multipartRequest(t, "/api/v1/stego/encode",
		map[string]string{"mode": "file"},
		formFile{field: "image", name: "cover.png", data: testPNG(t, 30, 30)},
		formFile{field: "payload", name: "secret.bin", data: payload})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("encode status = %d, body = %s", rec.Code, rec.Body)
	}

	req = multipartRequest(t, "/api/v1/stego/decode", nil,
		formFile{field: "image", name: "stego.png", data: rec.Body.Bytes()})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("decode status = %d, body = %s", rec.Code, rec.Body)
	}
	if !bytes.Equal(rec.Body.Bytes(), payload) {
		t.Errorf("payload = % x, want % x", rec.Body.Bytes(), payload)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "secret.bin") {
		t.Errorf("Content-Disposition = %q, want secret.bin", cd)
	}
}

func TestEncodeCapacityExceededHTTP(t *testing.T) {
	router := newRouter()
	req := multipartRequest(t, "/api/v1/stego/encode",
		map[string]string{"mode": "text", "text": "does not fit"},
		formFile{field: "image", name: "tiny.png", data: testPNG(t, 2, 2)})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.Contains(resp.Error, "payload too large") {
		t.Errorf("error = %q, want capacity message", resp.Error)
	}
}

func TestDecodeNoHiddenData(t *testing.T) {
	router := newRouter()
	req := multipartRequest(t, "/api/v1/stego/decode", nil,
		formFile{field: "image", name: "plain.png", data: testPNG(t, 20, 20)})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDetectEndpoint(t *testing.T) {
	router := newRouter()
	req := multipartRequest(t, "/api/v1/stego/detect", nil,
		formFile{field: "image", name: "test.png", data: testPNG(t, 16, 16)})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var resp models.DetectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.SuspicionScore < 0 || resp.SuspicionScore > 1 {
		t.Errorf("suspicion_score = %v, want within [0,1]", resp.SuspicionScore)
	}
	if resp.Details == nil || resp.Details.Width != 16 || resp.Details.Height != 16 {
		t.Errorf("details = %+v, want 16x16", resp.Details)
	}
}
