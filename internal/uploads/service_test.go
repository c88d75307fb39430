package uploads

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/james-eo/portfolio/internal/shared/storage/object/local"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestUploadImage(t *testing.T) {
	ctx := context.Background()
	store := local.New(t.TempDir())
	svc := NewService(NewMemoryRepo(), store)

	u, err := svc.UploadImage(ctx, "photo.png", "admin-1", bytes.NewReader(pngBytes(t, 800, 600)))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if u.Kind != KindImage {
		t.Errorf("kind = %s", u.Kind)
	}
	if u.StorageKey == "" || u.SizeBytes == 0 {
		t.Errorf("file not recorded: %+v", u)
	}
	if u.ThumbnailKey == "" || !strings.HasSuffix(u.ThumbnailKey, "_thumb.jpg") {
		t.Errorf("thumbnail key = %q", u.ThumbnailKey)
	}

	rc, err := store.Open(ctx, u.ThumbnailKey)
	if err != nil {
		t.Fatalf("open thumbnail: %v", err)
	}
	defer rc.Close()

	thumb, err := jpeg.Decode(rc)
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	b := thumb.Bounds()
	if b.Dx() > thumbnailMaxDim || b.Dy() > thumbnailMaxDim {
		t.Errorf("thumbnail %dx%d exceeds %d", b.Dx(), b.Dy(), thumbnailMaxDim)
	}
}

func TestUploadImageRejectsGarbage(t *testing.T) {
	svc := NewService(NewMemoryRepo(), local.New(t.TempDir()))
	_, err := svc.UploadImage(context.Background(), "x.png", "", strings.NewReader("not an image"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestUploadResumeRejectsGarbage(t *testing.T) {
	svc := NewService(NewMemoryRepo(), local.New(t.TempDir()))
	_, err := svc.UploadResume(context.Background(), "x.pdf", "", strings.NewReader("plainly not a pdf"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestOpenResumeWithoutUpload(t *testing.T) {
	svc := NewService(NewMemoryRepo(), local.New(t.TempDir()))
	_, _, err := svc.OpenResume(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteRemovesFiles(t *testing.T) {
	ctx := context.Background()
	store := local.New(t.TempDir())
	svc := NewService(NewMemoryRepo(), store)

	u, err := svc.UploadImage(ctx, "photo.png", "", bytes.NewReader(pngBytes(t, 64, 64)))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if err := svc.Delete(ctx, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Open(ctx, u.StorageKey); err == nil {
		t.Error("original should be gone")
	}
	if _, err := store.Open(ctx, u.ThumbnailKey); err == nil {
		t.Error("thumbnail should be gone")
	}
	if err := svc.Delete(ctx, u.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}

	items, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("list size = %d, want 0", len(items))
	}
}

func TestListRejectsUnknownKind(t *testing.T) {
	svc := NewService(NewMemoryRepo(), local.New(t.TempDir()))
	if _, err := svc.List(context.Background(), "video"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
