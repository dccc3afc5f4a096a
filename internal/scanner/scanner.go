// server/internal/scanner/scanner.go
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"ecoconnect-api-server/internal/centers"
	"ecoconnect-api-server/internal/models"
)

// ErrUnsupportedFormat rejects uploads that are not one of the accepted
// image types.
var ErrUnsupportedFormat = errors.New("invalid file type, supported formats: PNG, JPG, JPEG, GIF, WebP")

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// Uploader stores the scanned image and returns its URL. The S3 uploader
// implements it; a nil Uploader skips retention entirely.
type Uploader interface {
	UploadFile(ctx context.Context, file io.Reader, objectKey string) (string, error)
}

// Request is one scan invocation: an image plus an optional requester
// location used for the center recommendation.
type Request struct {
	Filename  string
	Image     io.Reader
	Latitude  *float64
	Longitude *float64
}

// Classifier is the stand-in for a real inference service. It accepts an
// image and, after a fixed delay, yields one result drawn pseudorandomly
// from a fixture pool. Only the interface is meaningful; a real model can
// replace the body without touching callers.
type Classifier struct {
	results   []models.ScanResult
	delay     time.Duration
	uploader  Uploader
	directory *centers.Directory
	pick      func(n int) int
}

func New(results []models.ScanResult, delay time.Duration, uploader Uploader, directory *centers.Directory) *Classifier {
	return &Classifier{
		results:   append([]models.ScanResult(nil), results...),
		delay:     delay,
		uploader:  uploader,
		directory: directory,
		pick:      rand.Intn,
	}
}

// Classify validates the upload, optionally retains the image, waits out
// the simulated inference delay and returns a result. With a requester
// location and a recyclable result, the nearest suitable center is
// attached.
func (c *Classifier) Classify(ctx context.Context, req Request) (models.ScanResult, error) {
	ext := strings.ToLower(filepath.Ext(req.Filename))
	if !allowedExtensions[ext] {
		return models.ScanResult{}, ErrUnsupportedFormat
	}
	if len(c.results) == 0 {
		return models.ScanResult{}, errors.New("no scan results configured")
	}

	imageURL := ""
	if c.uploader != nil && req.Image != nil {
		objectKey := fmt.Sprintf("scans/%s%s", uuid.New().String(), ext)
		url, err := c.uploader.UploadFile(ctx, req.Image, objectKey)
		if err != nil {
			// Retention is best-effort; classification proceeds without it.
			log.Printf("Could not store scan image: %v", err)
		} else {
			imageURL = url
		}
	}

	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return models.ScanResult{}, ctx.Err()
		}
	}

	result := c.results[c.pick(len(c.results))]
	result.ImageURL = imageURL

	if req.Latitude != nil && req.Longitude != nil && result.Recyclable && c.directory != nil {
		loc := centers.Location{Latitude: *req.Latitude, Longitude: *req.Longitude}
		if center, ok := c.directory.NearestAccepting(result.MaterialCategory, loc); ok {
			result.RecommendedCenter = &models.RecommendedCenter{
				ID:             center.ID,
				Name:           center.Name,
				Address:        center.Address,
				Distance:       center.Distance,
				Phone:          center.Phone,
				OperatingHours: center.OperatingHours,
			}
		}
	}

	return result, nil
}
