package validator

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("cv-language", validateCvLanguage)
}

func validateCvLanguage(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case "fr", "en":
		return true
	default:
		return false
	}
}

// Upload rules are checked per asset class before anything touches
// the binary store.

type AssetClass string

const (
	AssetImage    AssetClass = "image"
	AssetDocument AssetClass = "document"
)

var allowedExtensions = map[AssetClass][]string{
	AssetImage:    {".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"},
	AssetDocument: {".pdf", ".doc", ".docx"},
}

// AllowedExtension reports whether filename carries an extension the
// asset class accepts.
func AllowedExtension(class AssetClass, filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range allowedExtensions[class] {
		if ext == allowed {
			return true
		}
	}
	return false
}

// WithinSizeLimit reports whether size fits under limit. Non-positive
// sizes are rejected outright.
func WithinSizeLimit(size, limit int64) bool {
	return size > 0 && size <= limit
}
