package handler

import (
	"context"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/food-recipe-finder/internal/classifier"
	"github.com/iliyamo/food-recipe-finder/internal/config"
	"github.com/iliyamo/food-recipe-finder/internal/queue"
	"github.com/iliyamo/food-recipe-finder/internal/recipe"
	queue_publisher "github.com/iliyamo/food-recipe-finder/internal/service"
	"github.com/iliyamo/food-recipe-finder/internal/utils"
)

// Classifier is the single capability the upload flow needs from the
// model: one image in, one label out.
type Classifier interface {
	Classify(ctx context.Context, imagePath string) (string, error)
}

// UploadHandler serves the protected upload page: accept an image,
// classify it and show the matching recipe. The classifier client and
// recipe table are constructed once at startup and held read-only.
type UploadHandler struct {
	Cfg        config.Config
	Classifier Classifier
	Recipes    *recipe.Table
}

func NewUploadHandler(cfg config.Config, cl Classifier, rt *recipe.Table) *UploadHandler {
	return &UploadHandler{Cfg: cfg, Classifier: cl, Recipes: rt}
}

// Index renders the upload form.
func (h *UploadHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", echo.Map{
		"Username": c.Get("username"),
		"Flash":    popFlash(c),
	})
}

// Upload validates, stores and classifies one image, then renders the
// result. Validation happens strictly before anything touches disk or
// the model: a rejected upload has no side effects.
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil || fh.Filename == "" || fh.Size == 0 {
		setFlash(c, "Please choose an image to upload.")
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if !utils.ExtAllowed(fh.Filename, h.Cfg.AllowedExt) {
		setFlash(c, "Unsupported file type. Allowed: png, jpg, jpeg.")
		return c.Redirect(http.StatusSeeOther, "/")
	}
	filename := utils.SanitizeFilename(fh.Filename)
	if filename == "" {
		setFlash(c, "That filename cannot be used.")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := os.MkdirAll(h.Cfg.UploadDir, 0o755); err != nil {
		setFlash(c, "Upload failed, please try again.")
		return c.Redirect(http.StatusSeeOther, "/")
	}
	dstPath := filepath.Join(h.Cfg.UploadDir, filename)
	if err := saveUpload(fh, dstPath); err != nil {
		log.Printf("upload: save %s failed: %v", dstPath, err)
		setFlash(c, "Upload failed, please try again.")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	label, err := h.Classifier.Classify(ctx, dstPath)
	if err != nil {
		log.Printf("classifier: %v", err)
		setFlash(c, "Classification is temporarily unavailable, please try again.")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	recipeText := recipe.NotFoundText
	if label != classifier.UnknownLabel {
		recipeText = h.Recipes.Lookup(label)
	}

	h.publishClassified(c, filename, label, recipeText != recipe.NotFoundText)

	return c.Render(http.StatusOK, "index.html", echo.Map{
		"Username": c.Get("username"),
		"Flash":    popFlash(c),
		"FoodName": label,
		"Recipe":   recipeText,
		"Image":    filename,
	})
}

// saveUpload streams the multipart file to its destination path.
func saveUpload(fh *multipart.FileHeader, dstPath string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// publishClassified emits the analytics event for a finished
// classification. Failures are logged and dropped: the broker is never
// allowed to affect the user-facing request.
func (h *UploadHandler) publishClassified(c echo.Context, filename, label string, found bool) {
	uid, _ := c.Get("user_id").(uint64)
	username, _ := c.Get("username").(string)
	ev := queue.ImageClassifiedEvent{
		UserID:       uid,
		Username:     username,
		Filename:     filename,
		Label:        label,
		RecipeFound:  found,
		ClassifiedAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishImageClassified(ctx, ev)
	}()
}
